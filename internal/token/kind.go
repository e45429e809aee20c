package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwStruct represents the reserved 'struct' keyword.
	KwStruct // struct
	// KwSelf represents the reserved 'self' keyword.
	KwSelf // self
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// Type keywords. The block is contiguous: see IsTypeKeyword.

	KwU8     // u8
	KwI8     // i8
	KwU16    // u16
	KwI16    // i16
	KwU32    // u32
	KwI32    // i32
	KwU64    // u64
	KwI64    // i64
	KwUSize  // usize
	KwISize  // isize
	KwF32    // f32
	KwF64    // f64
	KwBool   // bool

	// IntLit represents an integer literal token.
	IntLit
	// DecimalLit represents a decimal (floating-point) literal token.
	DecimalLit
	// StringLit represents a string literal token.
	StringLit

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Assign     // =
	Bang       // !
	Lt         // <
	Gt         // >
	PlusEq     // +=
	MinusEq    // -=
	StarEq     // *=
	SlashEq    // /=
	LtEq       // <=
	GtEq       // >=
	EqEq       // ==
	BangEq     // !=
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
	At         // @
	Comma      // ,
	Dot        // .
	Semicolon  // ;
)

var kindNames = map[Kind]string{
	Invalid:    "invalid",
	EOF:        "end of file",
	Ident:      "identifier",
	KwFun:      "fun",
	KwLet:      "let",
	KwReturn:   "return",
	KwStruct:   "struct",
	KwSelf:     "self",
	KwTrue:     "true",
	KwFalse:    "false",
	KwU8:       "u8",
	KwI8:       "i8",
	KwU16:      "u16",
	KwI16:      "i16",
	KwU32:      "u32",
	KwI32:      "i32",
	KwU64:      "u64",
	KwI64:      "i64",
	KwUSize:    "usize",
	KwISize:    "isize",
	KwF32:      "f32",
	KwF64:      "f64",
	KwBool:     "bool",
	IntLit:     "int literal",
	DecimalLit: "decimal literal",
	StringLit:  "string literal",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Assign:     "=",
	Bang:       "!",
	Lt:         "<",
	Gt:         ">",
	PlusEq:     "+=",
	MinusEq:    "-=",
	StarEq:     "*=",
	SlashEq:    "/=",
	LtEq:       "<=",
	GtEq:       ">=",
	EqEq:       "==",
	BangEq:     "!=",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	At:         "@",
	Comma:      ",",
	Dot:        ".",
	Semicolon:  ";",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}
