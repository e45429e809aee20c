package ast

import (
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// Hints suggest arena capacities.
type Hints struct{ Files, Items, Stmts, Exprs, Types uint }

// Builder owns all node arenas for one parse. Nodes are immutable once
// built; later passes attach their results in side tables keyed by IDs.
type Builder struct {
	Files *Files
	Items *Items
	Stmts *Stmts
	Exprs *Exprs
	Types *Types
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Items == 0 {
		hints.Items = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 6
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Items: NewItems(hints.Items),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
		Types: NewTypes(hints.Types),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushItem(file FileID, item ItemID) {
	f := b.Files.Get(file)
	f.Items = append(f.Items, item)
}

func (b *Builder) NewLetItem(data LetData) ItemID {
	payload := b.Items.Lets.Allocate(data)
	return ItemID(b.Items.Arena.Allocate(Item{Kind: ItemLet, Span: data.Span, Payload: payload}))
}

func (b *Builder) NewFnItem(data FnData) ItemID {
	payload := b.Items.Fns.Allocate(data)
	return ItemID(b.Items.Arena.Allocate(Item{Kind: ItemFn, Span: data.Span, Payload: payload}))
}

func (b *Builder) NewParam(data ParamData) ParamID {
	return ParamID(b.Items.Params.Allocate(data))
}

func (b *Builder) NewLetStmt(data LetData) StmtID {
	payload := b.Items.Lets.Allocate(data)
	return StmtID(b.Stmts.Arena.Allocate(Stmt{Kind: StmtLet, Span: data.Span, Payload: payload}))
}

func (b *Builder) NewReturnStmt(value ExprID, span source.Span) StmtID {
	payload := b.Stmts.Returns.Allocate(ReturnData{Value: value})
	return StmtID(b.Stmts.Arena.Allocate(Stmt{Kind: StmtReturn, Span: span, Payload: payload}))
}

func (b *Builder) NewExprStmt(expr ExprID, span source.Span) StmtID {
	return StmtID(b.Stmts.Arena.Allocate(Stmt{Kind: StmtExpr, Span: span, Payload: uint32(expr)}))
}

func (b *Builder) NewBlockStmt(stmts []StmtID, span source.Span) StmtID {
	payload := b.Stmts.Blocks.Allocate(BlockData{Stmts: stmts})
	return StmtID(b.Stmts.Arena.Allocate(Stmt{Kind: StmtBlock, Span: span, Payload: payload}))
}

// LetStmt returns the payload of a block-level let statement.
func (b *Builder) LetStmt(id StmtID) (*LetData, bool) {
	stmt := b.Stmts.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return b.Items.Lets.Get(stmt.Payload), true
}

func (b *Builder) NewLitExpr(tok token.Token) ExprID {
	payload := b.Exprs.Lits.Allocate(LitData{Tok: tok})
	return ExprID(b.Exprs.Arena.Allocate(Expr{Kind: ExprLit, Span: tok.Span, Payload: payload}))
}

func (b *Builder) NewIdentExpr(tok token.Token) ExprID {
	payload := b.Exprs.Idents.Allocate(IdentData{NameTok: tok})
	return ExprID(b.Exprs.Arena.Allocate(Expr{Kind: ExprIdent, Span: tok.Span, Payload: payload}))
}

func (b *Builder) NewUnaryExpr(op token.Token, operand ExprID, span source.Span) ExprID {
	payload := b.Exprs.Unaries.Allocate(UnaryData{Op: op, Operand: operand})
	return ExprID(b.Exprs.Arena.Allocate(Expr{Kind: ExprUnary, Span: span, Payload: payload}))
}

func (b *Builder) NewBinaryExpr(op token.Token, left, right ExprID, span source.Span) ExprID {
	payload := b.Exprs.Binaries.Allocate(BinaryData{Op: op, Left: left, Right: right})
	return ExprID(b.Exprs.Arena.Allocate(Expr{Kind: ExprBinary, Span: span, Payload: payload}))
}

func (b *Builder) NewGroupExpr(inner ExprID, span source.Span) ExprID {
	return ExprID(b.Exprs.Arena.Allocate(Expr{Kind: ExprGroup, Span: span, Payload: uint32(inner)}))
}

func (b *Builder) NewCallExpr(callee ExprID, args []ExprID, span source.Span) ExprID {
	payload := b.Exprs.Calls.Allocate(CallData{Callee: callee, Args: args})
	return ExprID(b.Exprs.Arena.Allocate(Expr{Kind: ExprCall, Span: span, Payload: payload}))
}

func (b *Builder) NewTypeAnn(kind token.Kind, span source.Span) TypeID {
	return b.Types.New(kind, span)
}

// ExprSpan returns the span of an expression, or a zero span for invalid IDs.
func (b *Builder) ExprSpan(id ExprID) source.Span {
	if e := b.Exprs.Get(id); e != nil {
		return e.Span
	}
	return source.Span{}
}
