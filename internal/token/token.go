package token

import (
	"arkoi/internal/source"
)

// ValueKind tags the decoded payload carried by literal and identifier tokens.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueDecimal
	ValueBool
	ValueString
)

// Value is a literal's decoded form, produced at lex time. String and
// identifier payloads are interned; numeric payloads are machine values.
type Value struct {
	Kind    ValueKind
	Int     uint64
	Decimal float64
	Bool    bool
	Str     source.StringID
}

func IntValue(v uint64) Value        { return Value{Kind: ValueInt, Int: v} }
func DecimalValue(v float64) Value   { return Value{Kind: ValueDecimal, Decimal: v} }
func BoolValue(v bool) Value         { return Value{Kind: ValueBool, Bool: v} }
func StrValue(v source.StringID) Value { return Value{Kind: ValueString, Str: v} }

// Token represents a single classified lexical unit with its location.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value Value
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, DecimalLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFun, KwLet, KwReturn, KwStruct, KwSelf, KwTrue, KwFalse:
		return true
	default:
		return t.IsTypeKeyword()
	}
}

// IsTypeKeyword reports whether the token names a primitive type.
func (t Token) IsTypeKeyword() bool {
	return t.Kind.IsTypeKeyword()
}

// IsTypeKeyword reports whether the kind names a primitive type.
func (k Kind) IsTypeKeyword() bool {
	return k >= KwU8 && k <= KwBool
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
