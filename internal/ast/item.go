package ast

import (
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// ItemKind distinguishes top-level declarations.
type ItemKind uint8

const (
	ItemInvalid ItemKind = iota
	ItemLet
	ItemFn
)

// Item is a top-level declaration header; Payload addresses the kind's data
// arena (LetID or FnID).
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload uint32
}

// LetData backs both top-level and block-level let declarations. NameTok is
// the declaration's name token (its Value carries the interned name). Value
// is NoExprID when the declaration has no initializer.
type LetData struct {
	NameTok token.Token
	Type    TypeID
	Value   ExprID
	Span    source.Span
}

// FnData describes a function declaration.
type FnData struct {
	NameTok token.Token
	Params  []ParamID
	Return  TypeID
	Body    StmtID // block statement
	Span    source.Span
}

// ParamData describes one function parameter.
type ParamData struct {
	NameTok token.Token
	Type    TypeID
	Span    source.Span
}

// Items manages allocation of top-level items and their payloads.
type Items struct {
	Arena  *Arena[Item]
	Lets   *Arena[LetData]
	Fns    *Arena[FnData]
	Params *Arena[ParamData]
}

func NewItems(capHint uint) *Items {
	return &Items{
		Arena:  NewArena[Item](capHint),
		Lets:   NewArena[LetData](capHint),
		Fns:    NewArena[FnData](capHint),
		Params: NewArena[ParamData](capHint),
	}
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

// Let returns the payload of a let item.
func (i *Items) Let(id ItemID) (*LetData, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemLet {
		return nil, false
	}
	return i.Lets.Get(item.Payload), true
}

// Fn returns the payload of a function item.
func (i *Items) Fn(id ItemID) (*FnData, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(item.Payload), true
}

// Param returns a parameter payload.
func (i *Items) Param(id ParamID) *ParamData {
	return i.Params.Get(uint32(id))
}
