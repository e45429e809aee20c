package ast

import (
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// TypeAnn is a source type annotation: one of the closed set of type
// keywords (u8..f64, bool) with its span.
type TypeAnn struct {
	Kind token.Kind
	Span source.Span
}

// Types manages allocation of type annotations.
type Types struct {
	Arena *Arena[TypeAnn]
}

func NewTypes(capHint uint) *Types {
	return &Types{Arena: NewArena[TypeAnn](capHint)}
}

func (t *Types) New(kind token.Kind, span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(TypeAnn{Kind: kind, Span: span}))
}

func (t *Types) Get(id TypeID) *TypeAnn {
	return t.Arena.Get(uint32(id))
}
