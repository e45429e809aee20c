package ast

import (
	"arkoi/internal/source"
)

// StmtKind distinguishes block-level statements.
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtLet
	StmtReturn
	StmtExpr
	StmtBlock
)

// Stmt is a statement header; Payload addresses the kind's data arena
// (LetID for StmtLet, a Returns index for StmtReturn, the ExprID itself for
// StmtExpr, a Blocks index for StmtBlock).
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload uint32
}

// ReturnData describes a return statement; Value is NoExprID for a bare
// `return;`.
type ReturnData struct {
	Value ExprID
}

// BlockData is an ordered statement sequence.
type BlockData struct {
	Stmts []StmtID
}

// Stmts manages allocation of statements and their payloads. Let payloads
// live in Items.Lets so item-level and block-level lets share one shape.
type Stmts struct {
	Arena   *Arena[Stmt]
	Returns *Arena[ReturnData]
	Blocks  *Arena[BlockData]
}

func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Returns: NewArena[ReturnData](capHint),
		Blocks:  NewArena[BlockData](capHint),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// Return returns the payload of a return statement.
func (s *Stmts) Return(id StmtID) (*ReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(stmt.Payload), true
}

// Block returns the payload of a block statement.
func (s *Stmts) Block(id StmtID) (*BlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(stmt.Payload), true
}

// Expr returns the expression of an expression statement.
func (s *Stmts) Expr(id StmtID) (ExprID, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return NoExprID, false
	}
	return ExprID(stmt.Payload), true
}
