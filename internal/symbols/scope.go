package symbols

import (
	"arkoi/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // the single root scope of a program
	ScopeFunction           // function body scope, holds the parameters
	ScopeBlock              // generic block scope
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope models a lexical scope with a parent-child hierarchy. Names
// maps each declared name to its newest symbol; a local redeclaration
// in the same scope simply replaces the entry.
type Scope struct {
	Kind     ScopeKind
	Parent   ScopeID
	Span     source.Span
	Names    map[source.StringID]SymbolID
	Symbols  []SymbolID
	Children []ScopeID
}
