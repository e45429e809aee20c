package sema

import (
	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/source"
	"arkoi/internal/symbols"
	"arkoi/internal/token"
	"arkoi/internal/types"
)

// Options configures error reporting during type checking.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result carries the computed type of every typed expression, keyed by
// node ID. Symbol types land directly on the symbols via their
// write-once slot.
type Result struct {
	ExprTypes map[ast.ExprID]types.TypeID
	Errors    uint
}

// checker is the bottom-up type checking pass. It expects name
// resolution to have run with zero errors: a node without a resolved
// symbol here is a broken pipeline invariant, reported as a bug
// diagnostic rather than a user error.
type checker struct {
	ast.Walker
	syms    *symbols.Result
	typesIn *types.Interner
	res     *Result
	opts    Options

	// current function state while its body is checked
	currentReturn     types.TypeID
	currentReturnSpan source.Span
}

// Check attaches a concrete type to every typed expression and
// declaration in the file, reporting incompatibilities along the way.
func Check(b *ast.Builder, file ast.FileID, syms *symbols.Result, typesIn *types.Interner, opts Options) *Result {
	if typesIn == nil {
		typesIn = types.NewInterner()
	}
	res := &Result{ExprTypes: make(map[ast.ExprID]types.TypeID)}
	tc := &checker{
		syms:    syms,
		typesIn: typesIn,
		res:     res,
		opts:    opts,
	}
	tc.Walker = ast.Walker{B: b, V: tc}

	start := tc.opts.CurrentErrors
	tc.typeFunctions(file)
	_ = ast.WalkFile(b, tc, file)
	res.Errors = tc.opts.CurrentErrors - start
	return res
}

// typeFunctions assigns every function symbol its signature type up
// front, so calls that precede the declaration in source order see a
// fully typed callee.
func (tc *checker) typeFunctions(file ast.FileID) {
	f := tc.B.Files.Get(file)
	if f == nil {
		return
	}
	for _, itemID := range f.Items {
		data, ok := tc.B.Items.Fn(itemID)
		if !ok {
			continue
		}
		sym := tc.itemSymbol(itemID)
		if sym == nil {
			continue
		}
		params := make([]types.TypeID, 0, len(data.Params))
		for _, paramID := range data.Params {
			param := tc.B.Items.Param(paramID)
			if param == nil {
				continue
			}
			params = append(params, tc.annType(param.Type))
		}
		sym.SetType(tc.typesIn.RegisterFn(params, tc.annType(data.Return)))
	}
}

// annType lowers a syntactic annotation to its interned type.
func (tc *checker) annType(id ast.TypeID) types.TypeID {
	ann := tc.B.Types.Get(id)
	if ann == nil {
		return types.NoTypeID
	}
	bt := tc.typesIn.Builtins()
	switch ann.Kind {
	case token.KwU8:
		return bt.U8
	case token.KwU16:
		return bt.U16
	case token.KwU32:
		return bt.U32
	case token.KwU64:
		return bt.U64
	case token.KwUSize:
		return bt.USize
	case token.KwI8:
		return bt.I8
	case token.KwI16:
		return bt.I16
	case token.KwI32:
		return bt.I32
	case token.KwI64:
		return bt.I64
	case token.KwISize:
		return bt.ISize
	case token.KwF32:
		return bt.F32
	case token.KwF64:
		return bt.F64
	case token.KwBool:
		return bt.Bool
	default:
		return types.NoTypeID
	}
}

func (tc *checker) VisitLetItem(id ast.ItemID) error {
	data, ok := tc.B.Items.Let(id)
	if !ok {
		return nil
	}
	tc.checkLet(data, tc.itemSymbol(id))
	return nil
}

func (tc *checker) VisitLetStmt(id ast.StmtID) error {
	data, ok := tc.B.LetStmt(id)
	if !ok {
		return nil
	}
	tc.checkLet(data, tc.syms.Table.Symbols.Get(tc.syms.StmtSymbols[id]))
	return nil
}

// checkLet types the declared symbol from its annotation and
// cross-checks the initializer against it. The annotation is
// authoritative: a disagreeing initializer is a type mismatch at the
// initializer's span.
func (tc *checker) checkLet(data *ast.LetData, sym *symbols.Symbol) {
	declared := tc.annType(data.Type)
	if sym != nil {
		sym.SetType(declared)
	}
	if !data.Value.IsValid() {
		return
	}
	_ = ast.AcceptExpr(tc.B, tc, data.Value)
	got := tc.res.ExprTypes[data.Value]
	if got == types.NoTypeID || declared == types.NoTypeID || got == declared {
		return
	}
	b := tc.beginReport(diag.TypeMismatch, tc.B.ExprSpan(data.Value),
		"expected type '"+types.Label(tc.typesIn, declared)+"', got '"+types.Label(tc.typesIn, got)+"'")
	if b != nil {
		if ann := tc.B.Types.Get(data.Type); ann != nil {
			b.WithLabel(ann.Span, "declared as '"+types.Label(tc.typesIn, declared)+"' here")
		}
		b.Emit()
	}
}

func (tc *checker) VisitFnItem(id ast.ItemID) error {
	data, ok := tc.B.Items.Fn(id)
	if !ok {
		return nil
	}
	for _, paramID := range data.Params {
		param := tc.B.Items.Param(paramID)
		if param == nil {
			continue
		}
		if sym := tc.syms.Table.Symbols.Get(tc.syms.ParamSymbols[paramID]); sym != nil {
			sym.SetType(tc.annType(param.Type))
		}
	}

	prevReturn, prevSpan := tc.currentReturn, tc.currentReturnSpan
	tc.currentReturn = tc.annType(data.Return)
	if ann := tc.B.Types.Get(data.Return); ann != nil {
		tc.currentReturnSpan = ann.Span
	}
	if data.Body.IsValid() {
		_ = ast.AcceptStmt(tc.B, tc, data.Body)
	}
	tc.currentReturn, tc.currentReturnSpan = prevReturn, prevSpan
	return nil
}

// VisitReturnStmt checks the returned value against the enclosing
// function's declared return type. A bare `return;` always passes.
func (tc *checker) VisitReturnStmt(id ast.StmtID) error {
	data, ok := tc.B.Stmts.Return(id)
	if !ok || !data.Value.IsValid() {
		return nil
	}
	_ = ast.AcceptExpr(tc.B, tc, data.Value)
	got := tc.res.ExprTypes[data.Value]
	if got == types.NoTypeID || got == tc.currentReturn {
		return nil
	}
	b := tc.beginReport(diag.TypeMismatch, tc.B.ExprSpan(data.Value),
		"expected type '"+types.Label(tc.typesIn, tc.currentReturn)+"', got '"+types.Label(tc.typesIn, got)+"'")
	if b != nil {
		if !tc.currentReturnSpan.Empty() {
			b.WithLabel(tc.currentReturnSpan, "the function returns '"+types.Label(tc.typesIn, tc.currentReturn)+"'")
		}
		b.Emit()
	}
	return nil
}

func (tc *checker) VisitGroupExpr(id ast.ExprID) error {
	inner, ok := tc.B.Exprs.Group(id)
	if !ok {
		return nil
	}
	_ = ast.AcceptExpr(tc.B, tc, inner)
	if t := tc.res.ExprTypes[inner]; t != types.NoTypeID {
		tc.res.ExprTypes[id] = t
	}
	return nil
}

// VisitIdentExpr reads the type off the resolved symbol. Resolution
// ran clean before this pass, so a missing symbol or an untyped one is
// an internal defect, not a user error.
func (tc *checker) VisitIdentExpr(id ast.ExprID) error {
	sym := tc.syms.Symbol(id)
	if sym == nil {
		tc.bug(diag.TypeMissingSymbol, tc.B.ExprSpan(id), "identifier reached type checking without a resolved symbol")
		return nil
	}
	if sym.Type == types.NoTypeID {
		tc.bug(diag.TypeMissingType, tc.B.ExprSpan(id), "symbol reached type checking without a computed type")
		return nil
	}
	tc.res.ExprTypes[id] = sym.Type
	return nil
}

func (tc *checker) beginReport(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	enough := tc.opts.Enough()
	tc.opts.CurrentErrors++
	if tc.opts.Reporter == nil || enough {
		return nil
	}
	return diag.ReportError(tc.opts.Reporter, code, sp, msg)
}

func (tc *checker) report(code diag.Code, sp source.Span, msg string) {
	if b := tc.beginReport(code, sp, msg); b != nil {
		b.Emit()
	}
}

func (tc *checker) bug(code diag.Code, sp source.Span, msg string) {
	enough := tc.opts.Enough()
	tc.opts.CurrentErrors++
	if tc.opts.Reporter == nil || enough {
		return
	}
	diag.ReportBug(tc.opts.Reporter, code, sp, msg).Emit()
}

func (tc *checker) itemSymbol(id ast.ItemID) *symbols.Symbol {
	return tc.syms.Table.Symbols.Get(tc.syms.ItemSymbols[id])
}
