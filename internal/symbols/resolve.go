package symbols

import (
	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/source"
)

// Result carries everything resolution produced: the scope table and
// the side tables binding AST nodes to symbols. Nodes are never
// mutated; later passes key into these maps by node ID.
type Result struct {
	Table        *Table
	Bindings     map[ast.ExprID]SymbolID // identifier reference -> resolved symbol
	ItemSymbols  map[ast.ItemID]SymbolID
	StmtSymbols  map[ast.StmtID]SymbolID
	ParamSymbols map[ast.ParamID]SymbolID
	Errors       uint
}

// Symbol resolves a binding recorded for an expression, or nil.
func (res *Result) Symbol(id ast.ExprID) *Symbol {
	return res.Table.Symbols.Get(res.Bindings[id])
}

// Resolve binds every identifier reference in the file to the symbol
// it denotes. Partial success is expected: each error is reported and
// traversal continues with the next sibling.
//
// All top-level function names are installed into the global scope
// before any body is resolved, so forward references between sibling
// functions always resolve regardless of declaration order.
func Resolve(b *ast.Builder, file ast.FileID, table *Table, opts Options) *Result {
	if table == nil {
		table = NewTable(Hints{}, nil)
	}
	res := &Result{
		Table:        table,
		Bindings:     make(map[ast.ExprID]SymbolID),
		ItemSymbols:  make(map[ast.ItemID]SymbolID),
		StmtSymbols:  make(map[ast.StmtID]SymbolID),
		ParamSymbols: make(map[ast.ParamID]SymbolID),
	}
	r := &Resolver{
		table: table,
		opts:  opts,
		res:   res,
		stack: []ScopeID{table.Global},
	}
	r.Walker = ast.Walker{B: b, V: r}

	start := r.opts.CurrentErrors
	r.registerFunctions(file)
	_ = ast.WalkFile(b, r, file)
	res.Errors = r.opts.CurrentErrors - start
	return res
}

// registerFunctions is the pre-pass that claims every function name in
// the global scope.
func (r *Resolver) registerFunctions(file ast.FileID) {
	f := r.B.Files.Get(file)
	if f == nil {
		return
	}
	for _, itemID := range f.Items {
		data, ok := r.B.Items.Fn(itemID)
		if !ok {
			continue
		}
		name := data.NameTok.Value.Str
		sym, ok := r.declareGlobal(name, data.NameTok.Span, SymbolFunction, SymbolDecl{Item: itemID})
		if ok {
			r.res.ItemSymbols[itemID] = sym
		}
	}
}

// VisitLetItem resolves the initializer before the name is declared,
// so `let x @i32 = x;` does not see its own binding.
func (r *Resolver) VisitLetItem(id ast.ItemID) error {
	data, ok := r.B.Items.Let(id)
	if !ok {
		return nil
	}
	_ = ast.WalkLetItem(r.B, r, id)
	r.checkVariable(r.symbolOf(data.Value), r.B.ExprSpan(data.Value))

	sym, ok := r.declare(data.NameTok.Value.Str, data.NameTok.Span, SymbolGlobalVar, SymbolDecl{Item: id})
	if ok {
		r.res.ItemSymbols[id] = sym
	}
	return nil
}

// VisitFnItem resolves the body in a fresh scope seeded with the
// parameters. The function's own name was claimed by the pre-pass.
func (r *Resolver) VisitFnItem(id ast.ItemID) error {
	data, ok := r.B.Items.Fn(id)
	if !ok {
		return nil
	}
	r.enter(ScopeFunction, data.Span)
	for _, paramID := range data.Params {
		_ = r.VisitParam(paramID)
	}
	if data.Body.IsValid() {
		_ = ast.AcceptStmt(r.B, r, data.Body)
	}
	r.leave()
	return nil
}

func (r *Resolver) VisitParam(id ast.ParamID) error {
	data := r.B.Items.Param(id)
	if data == nil {
		return nil
	}
	sym, ok := r.declare(data.NameTok.Value.Str, data.NameTok.Span, SymbolParam, SymbolDecl{Param: id})
	if ok {
		r.res.ParamSymbols[id] = sym
	}
	return nil
}

func (r *Resolver) VisitLetStmt(id ast.StmtID) error {
	data, ok := r.B.LetStmt(id)
	if !ok {
		return nil
	}
	_ = ast.WalkLetStmt(r.B, r, id)
	r.checkVariable(r.symbolOf(data.Value), r.B.ExprSpan(data.Value))

	kind := SymbolLocalVar
	if r.isGlobal() {
		kind = SymbolGlobalVar
	}
	sym, ok := r.declare(data.NameTok.Value.Str, data.NameTok.Span, kind, SymbolDecl{Stmt: id})
	if ok {
		r.res.StmtSymbols[id] = sym
	}
	return nil
}

// VisitBlockStmt opens a scope for the block's statements. A failure
// in one statement does not stop the rest of the block.
func (r *Resolver) VisitBlockStmt(id ast.StmtID) error {
	data, ok := r.B.Stmts.Block(id)
	if !ok {
		return nil
	}
	stmt := r.B.Stmts.Get(id)
	r.enter(ScopeBlock, stmt.Span)
	for _, stmtID := range data.Stmts {
		_ = ast.AcceptStmt(r.B, r, stmtID)
	}
	r.leave()
	return nil
}

func (r *Resolver) VisitReturnStmt(id ast.StmtID) error {
	data, ok := r.B.Stmts.Return(id)
	if !ok || !data.Value.IsValid() {
		return nil
	}
	_ = ast.AcceptExpr(r.B, r, data.Value)
	r.checkVariable(r.symbolOf(data.Value), r.B.ExprSpan(data.Value))
	return nil
}

func (r *Resolver) VisitIdentExpr(id ast.ExprID) error {
	data, ok := r.B.Exprs.Ident(id)
	if !ok {
		return nil
	}
	name := data.NameTok.Value.Str
	sym := r.lookup(name)
	if !sym.IsValid() {
		text := r.table.Strings.MustLookup(name)
		r.report(diag.ResSymbolNotFound, data.NameTok.Span, "the symbol '"+text+"' was not found")
		return nil
	}
	r.res.Bindings[id] = sym
	return nil
}

func (r *Resolver) VisitUnaryExpr(id ast.ExprID) error {
	data, ok := r.B.Exprs.Unary(id)
	if !ok {
		return nil
	}
	_ = ast.AcceptExpr(r.B, r, data.Operand)
	r.checkVariable(r.symbolOf(data.Operand), r.B.ExprSpan(data.Operand))
	return nil
}

func (r *Resolver) VisitBinaryExpr(id ast.ExprID) error {
	data, ok := r.B.Exprs.Binary(id)
	if !ok {
		return nil
	}
	_ = ast.AcceptExpr(r.B, r, data.Left)
	r.checkVariable(r.symbolOf(data.Left), r.B.ExprSpan(data.Left))
	_ = ast.AcceptExpr(r.B, r, data.Right)
	r.checkVariable(r.symbolOf(data.Right), r.B.ExprSpan(data.Right))
	return nil
}

// VisitCallExpr requires the callee to denote a function; arguments
// are plain operands.
func (r *Resolver) VisitCallExpr(id ast.ExprID) error {
	data, ok := r.B.Exprs.Call(id)
	if !ok {
		return nil
	}
	_ = ast.AcceptExpr(r.B, r, data.Callee)
	r.checkFunction(r.symbolOf(data.Callee), r.B.ExprSpan(data.Callee))
	for _, arg := range data.Args {
		_ = ast.AcceptExpr(r.B, r, arg)
	}
	return nil
}

// symbolOf reads back the binding recorded for an expression,
// unwrapping grouping parentheses. Non-identifier expressions have no
// symbol and no kind to check.
func (r *Resolver) symbolOf(id ast.ExprID) SymbolID {
	for {
		expr := r.B.Exprs.Get(id)
		if expr == nil {
			return NoSymbolID
		}
		if expr.Kind == ast.ExprGroup {
			id = ast.ExprID(expr.Payload)
			continue
		}
		if expr.Kind == ast.ExprIdent {
			return r.res.Bindings[id]
		}
		return NoSymbolID
	}
}

func (r *Resolver) checkVariable(sym SymbolID, sp source.Span) {
	s := r.table.Symbols.Get(sym)
	if s == nil || s.Kind.IsVariable() {
		return
	}
	r.report(diag.ResKindMismatch, sp, "expected a variable, got a "+s.Kind.String())
}

func (r *Resolver) checkFunction(sym SymbolID, sp source.Span) {
	s := r.table.Symbols.Get(sym)
	if s == nil || s.Kind == SymbolFunction {
		return
	}
	r.report(diag.ResKindMismatch, sp, "expected a function, got a "+s.Kind.String())
}
