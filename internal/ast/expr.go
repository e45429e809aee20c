package ast

import (
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// ExprKind distinguishes expression forms.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprLit
	ExprIdent
	ExprUnary
	ExprBinary
	ExprGroup
	ExprCall
)

// Expr is an expression header; Payload addresses the kind's data arena
// (for ExprGroup, the inner ExprID itself).
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload uint32
}

// LitData keeps the literal's token: kind, span and decoded value.
type LitData struct {
	Tok token.Token
}

// IdentData keeps the reference's name token.
type IdentData struct {
	NameTok token.Token
}

// UnaryData is a prefix operator application.
type UnaryData struct {
	Op      token.Token
	Operand ExprID
}

// BinaryData is a binary operator application; the operator tag decides the
// precedence level the parser built it at.
type BinaryData struct {
	Op    token.Token
	Left  ExprID
	Right ExprID
}

// CallData is a call with its ordered argument list.
type CallData struct {
	Callee ExprID
	Args   []ExprID
}

// Exprs manages allocation of expressions and their payloads.
type Exprs struct {
	Arena    *Arena[Expr]
	Lits     *Arena[LitData]
	Idents   *Arena[IdentData]
	Unaries  *Arena[UnaryData]
	Binaries *Arena[BinaryData]
	Calls    *Arena[CallData]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Lits:     NewArena[LitData](capHint),
		Idents:   NewArena[IdentData](capHint),
		Unaries:  NewArena[UnaryData](capHint),
		Binaries: NewArena[BinaryData](capHint),
		Calls:    NewArena[CallData](capHint),
	}
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return expr.Payload, true
}

// Lit returns the payload of a literal expression.
func (e *Exprs) Lit(id ExprID) (*LitData, bool) {
	p, ok := e.payload(id, ExprLit)
	if !ok {
		return nil, false
	}
	return e.Lits.Get(p), true
}

// Ident returns the payload of an identifier reference.
func (e *Exprs) Ident(id ExprID) (*IdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

// Unary returns the payload of a unary expression.
func (e *Exprs) Unary(id ExprID) (*UnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

// Binary returns the payload of a binary expression.
func (e *Exprs) Binary(id ExprID) (*BinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

// Group returns the inner expression of a grouping.
func (e *Exprs) Group(id ExprID) (ExprID, bool) {
	p, ok := e.payload(id, ExprGroup)
	if !ok {
		return NoExprID, false
	}
	return ExprID(p), true
}

// Call returns the payload of a call expression.
func (e *Exprs) Call(id ExprID) (*CallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}
