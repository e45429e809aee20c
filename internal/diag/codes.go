package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. The numeric ranges group codes by the
// stage that produces them: 1xxx lexical, 2xxx syntactic, 3xxx name
// resolution, 4xxx type checking. x9xx within a range is reserved for
// internal (SevBug) conditions.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnexpectedChar     Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntactic
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002
	// SynInternalEOF signals running out of tokens while definitely
	// mid-construct; ordinary end-of-program never produces it.
	SynInternalEOF Code = 2901

	// Name resolution
	ResSymbolNotFound  Code = 3001
	ResNameAlreadyUsed Code = 3002
	ResKindMismatch    Code = 3003

	// Type checking
	TypeInvalidBinary Code = 4001
	TypeInvalidUnary  Code = 4002
	TypeMismatch      Code = 4003
	TypeInvalidArity  Code = 4004
	TypeMissingSymbol Code = 4901
	TypeMissingType   Code = 4902
)

var codeNames = map[Code]string{
	UnknownCode:           "unknown",
	LexUnexpectedChar:     "unexpected character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed number literal",
	SynUnexpectedToken:    "unexpected token",
	SynUnexpectedEOF:      "unexpected end of file",
	SynInternalEOF:        "internal: end of file mid-construct",
	ResSymbolNotFound:     "symbol not found",
	ResNameAlreadyUsed:    "name already used",
	ResKindMismatch:       "symbol kind mismatch",
	TypeInvalidBinary:     "invalid binary operator types",
	TypeInvalidUnary:      "invalid unary operator type",
	TypeMismatch:          "type mismatch",
	TypeInvalidArity:      "invalid argument count",
	TypeMissingSymbol:     "internal: symbol missing after resolution",
	TypeMissingType:       "internal: type missing after checking",
}

// ID returns the stable rendered form, e.g. "ARK2001".
func (c Code) ID() string {
	return fmt.Sprintf("ARK%04d", uint16(c))
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// Stage returns the pipeline stage a code belongs to, by numeric range.
func (c Code) Stage() string {
	switch {
	case c >= 1000 && c < 2000:
		return "lex"
	case c >= 2000 && c < 3000:
		return "parse"
	case c >= 3000 && c < 4000:
		return "resolve"
	case c >= 4000 && c < 5000:
		return "typecheck"
	default:
		return "unknown"
	}
}
