package symbols

import (
	"arkoi/internal/ast"
	"arkoi/internal/source"
	"arkoi/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolGlobalVar
	SymbolLocalVar
	SymbolParam
	SymbolFunction
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolGlobalVar:
		return "global variable"
	case SymbolLocalVar:
		return "local variable"
	case SymbolParam:
		return "parameter"
	case SymbolFunction:
		return "function"
	default:
		return "invalid"
	}
}

// IsVariable reports whether the symbol may appear in operand position.
func (k SymbolKind) IsVariable() bool {
	return k == SymbolGlobalVar || k == SymbolLocalVar || k == SymbolParam
}

// SymbolDecl records the AST origin of a declaration for diagnostics
// and for later passes that need the declared annotation.
type SymbolDecl struct {
	Item  ast.ItemID
	Stmt  ast.StmtID
	Param ast.ParamID
}

// Symbol is one declared name. It is created exactly once per
// declaration and shared by every reference that resolves to it.
// The Type field starts unset and is written exactly once by the
// type checker.
type Symbol struct {
	Name source.StringID
	Span source.Span
	Kind SymbolKind
	Decl SymbolDecl
	Type types.TypeID
}

// SetType fills the write-once type slot. Overwriting an already set
// type is an internal invariant violation.
func (s *Symbol) SetType(t types.TypeID) {
	if s.Type != types.NoTypeID && s.Type != t {
		panic("symbols: symbol type set twice")
	}
	s.Type = t
}
