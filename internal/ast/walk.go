package ast

// Visitor reacts to nodes during a pre-order, left-to-right traversal that
// matches source order. A pass implements handlers for the node kinds it
// cares about and inherits default walk-the-children behaviour for the rest
// by embedding Walker. A handler's error stops the walk of the enclosing
// construct; at statement-sequence level the visitor decides itself whether
// to record-and-continue or to abort.
type Visitor interface {
	VisitLetItem(id ItemID) error
	VisitFnItem(id ItemID) error
	VisitParam(id ParamID) error
	VisitLetStmt(id StmtID) error
	VisitReturnStmt(id StmtID) error
	VisitExprStmt(id StmtID) error
	VisitBlockStmt(id StmtID) error
	VisitLitExpr(id ExprID) error
	VisitIdentExpr(id ExprID) error
	VisitUnaryExpr(id ExprID) error
	VisitBinaryExpr(id ExprID) error
	VisitGroupExpr(id ExprID) error
	VisitCallExpr(id ExprID) error
}

// AcceptItem dispatches to the handler for the item's exact kind.
func AcceptItem(b *Builder, v Visitor, id ItemID) error {
	item := b.Items.Get(id)
	if item == nil {
		return nil
	}
	switch item.Kind {
	case ItemLet:
		return v.VisitLetItem(id)
	case ItemFn:
		return v.VisitFnItem(id)
	default:
		return nil
	}
}

// AcceptStmt dispatches to the handler for the statement's exact kind.
func AcceptStmt(b *Builder, v Visitor, id StmtID) error {
	stmt := b.Stmts.Get(id)
	if stmt == nil {
		return nil
	}
	switch stmt.Kind {
	case StmtLet:
		return v.VisitLetStmt(id)
	case StmtReturn:
		return v.VisitReturnStmt(id)
	case StmtExpr:
		return v.VisitExprStmt(id)
	case StmtBlock:
		return v.VisitBlockStmt(id)
	default:
		return nil
	}
}

// AcceptExpr dispatches to the handler for the expression's exact kind.
func AcceptExpr(b *Builder, v Visitor, id ExprID) error {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return nil
	}
	switch expr.Kind {
	case ExprLit:
		return v.VisitLitExpr(id)
	case ExprIdent:
		return v.VisitIdentExpr(id)
	case ExprUnary:
		return v.VisitUnaryExpr(id)
	case ExprBinary:
		return v.VisitBinaryExpr(id)
	case ExprGroup:
		return v.VisitGroupExpr(id)
	case ExprCall:
		return v.VisitCallExpr(id)
	default:
		return nil
	}
}

// WalkFile visits every top-level item in source order, short-circuiting on
// the first handler error.
func WalkFile(b *Builder, v Visitor, id FileID) error {
	file := b.Files.Get(id)
	if file == nil {
		return nil
	}
	for _, itemID := range file.Items {
		if err := AcceptItem(b, v, itemID); err != nil {
			return err
		}
	}
	return nil
}

// WalkLetItem recurses into the initializer, if present.
func WalkLetItem(b *Builder, v Visitor, id ItemID) error {
	data, ok := b.Items.Let(id)
	if !ok || !data.Value.IsValid() {
		return nil
	}
	return AcceptExpr(b, v, data.Value)
}

// WalkFnItem visits the parameters, then the body block.
func WalkFnItem(b *Builder, v Visitor, id ItemID) error {
	data, ok := b.Items.Fn(id)
	if !ok {
		return nil
	}
	for _, paramID := range data.Params {
		if err := v.VisitParam(paramID); err != nil {
			return err
		}
	}
	if !data.Body.IsValid() {
		return nil
	}
	return AcceptStmt(b, v, data.Body)
}

// WalkLetStmt recurses into the initializer, if present.
func WalkLetStmt(b *Builder, v Visitor, id StmtID) error {
	data, ok := b.LetStmt(id)
	if !ok || !data.Value.IsValid() {
		return nil
	}
	return AcceptExpr(b, v, data.Value)
}

// WalkReturnStmt recurses into the returned value, if present.
func WalkReturnStmt(b *Builder, v Visitor, id StmtID) error {
	data, ok := b.Stmts.Return(id)
	if !ok || !data.Value.IsValid() {
		return nil
	}
	return AcceptExpr(b, v, data.Value)
}

// WalkExprStmt recurses into the expression.
func WalkExprStmt(b *Builder, v Visitor, id StmtID) error {
	expr, ok := b.Stmts.Expr(id)
	if !ok {
		return nil
	}
	return AcceptExpr(b, v, expr)
}

// WalkBlockStmt visits every statement in order, short-circuiting on the
// first handler error.
func WalkBlockStmt(b *Builder, v Visitor, id StmtID) error {
	data, ok := b.Stmts.Block(id)
	if !ok {
		return nil
	}
	for _, stmtID := range data.Stmts {
		if err := AcceptStmt(b, v, stmtID); err != nil {
			return err
		}
	}
	return nil
}

// WalkUnaryExpr recurses into the operand.
func WalkUnaryExpr(b *Builder, v Visitor, id ExprID) error {
	data, ok := b.Exprs.Unary(id)
	if !ok {
		return nil
	}
	return AcceptExpr(b, v, data.Operand)
}

// WalkBinaryExpr visits the left operand, then the right.
func WalkBinaryExpr(b *Builder, v Visitor, id ExprID) error {
	data, ok := b.Exprs.Binary(id)
	if !ok {
		return nil
	}
	if err := AcceptExpr(b, v, data.Left); err != nil {
		return err
	}
	return AcceptExpr(b, v, data.Right)
}

// WalkGroupExpr recurses into the inner expression.
func WalkGroupExpr(b *Builder, v Visitor, id ExprID) error {
	inner, ok := b.Exprs.Group(id)
	if !ok {
		return nil
	}
	return AcceptExpr(b, v, inner)
}

// WalkCallExpr visits the callee, then every argument.
func WalkCallExpr(b *Builder, v Visitor, id ExprID) error {
	data, ok := b.Exprs.Call(id)
	if !ok {
		return nil
	}
	if err := AcceptExpr(b, v, data.Callee); err != nil {
		return err
	}
	for _, arg := range data.Args {
		if err := AcceptExpr(b, v, arg); err != nil {
			return err
		}
	}
	return nil
}

// Walker implements Visitor by recursing into children and returning the
// first error. V must be set to the embedding visitor so that child nodes
// dispatch back through its overridden handlers.
type Walker struct {
	B *Builder
	V Visitor
}

func (w Walker) VisitLetItem(id ItemID) error    { return WalkLetItem(w.B, w.V, id) }
func (w Walker) VisitFnItem(id ItemID) error     { return WalkFnItem(w.B, w.V, id) }
func (w Walker) VisitParam(ParamID) error        { return nil }
func (w Walker) VisitLetStmt(id StmtID) error    { return WalkLetStmt(w.B, w.V, id) }
func (w Walker) VisitReturnStmt(id StmtID) error { return WalkReturnStmt(w.B, w.V, id) }
func (w Walker) VisitExprStmt(id StmtID) error   { return WalkExprStmt(w.B, w.V, id) }
func (w Walker) VisitBlockStmt(id StmtID) error  { return WalkBlockStmt(w.B, w.V, id) }
func (w Walker) VisitLitExpr(ExprID) error       { return nil }
func (w Walker) VisitIdentExpr(ExprID) error     { return nil }
func (w Walker) VisitUnaryExpr(id ExprID) error  { return WalkUnaryExpr(w.B, w.V, id) }
func (w Walker) VisitBinaryExpr(id ExprID) error { return WalkBinaryExpr(w.B, w.V, id) }
func (w Walker) VisitGroupExpr(id ExprID) error  { return WalkGroupExpr(w.B, w.V, id) }
func (w Walker) VisitCallExpr(id ExprID) error   { return WalkCallExpr(w.B, w.V, id) }
