package sema

import (
	"strconv"

	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/symbols"
	"arkoi/internal/token"
	"arkoi/internal/types"
)

// VisitUnaryExpr checks the operand against the operator's table:
// negate wants a signed integer or a float and preserves its type,
// logical not wants a boolean.
func (tc *checker) VisitUnaryExpr(id ast.ExprID) error {
	data, ok := tc.B.Exprs.Unary(id)
	if !ok {
		return nil
	}
	_ = ast.AcceptExpr(tc.B, tc, data.Operand)
	operand := tc.res.ExprTypes[data.Operand]
	if operand == types.NoTypeID {
		return nil
	}

	tt := tc.typesIn.MustLookup(operand)
	var result types.TypeID
	switch data.Op.Kind {
	case token.Minus:
		if tt.Kind == types.KindInt || tt.Kind == types.KindFloat {
			result = operand
		}
	case token.Bang:
		if tt.Kind == types.KindBool {
			result = operand
		}
	}
	if result == types.NoTypeID {
		tc.report(diag.TypeInvalidUnary, tc.B.Exprs.Get(id).Span,
			"there is no unary operator that supports: "+data.Op.Text+" "+types.Label(tc.typesIn, operand))
		return nil
	}
	tc.res.ExprTypes[id] = result
	return nil
}

// VisitBinaryExpr checks both operands against the operator's table.
// Operands must match in kind and width exactly; there is no implicit
// promotion between widths or signedness.
func (tc *checker) VisitBinaryExpr(id ast.ExprID) error {
	data, ok := tc.B.Exprs.Binary(id)
	if !ok {
		return nil
	}
	_ = ast.AcceptExpr(tc.B, tc, data.Left)
	_ = ast.AcceptExpr(tc.B, tc, data.Right)
	left := tc.res.ExprTypes[data.Left]
	right := tc.res.ExprTypes[data.Right]
	if left == types.NoTypeID || right == types.NoTypeID {
		return nil
	}

	result := tc.binaryResult(data.Op.Kind, left, right)
	if result == types.NoTypeID {
		tc.report(diag.TypeInvalidBinary, tc.B.Exprs.Get(id).Span,
			"there is no binary operator that supports: "+
				types.Label(tc.typesIn, left)+" "+data.Op.Text+" "+types.Label(tc.typesIn, right))
		return nil
	}
	tc.res.ExprTypes[id] = result
	return nil
}

func (tc *checker) binaryResult(op token.Kind, left, right types.TypeID) types.TypeID {
	if left != right {
		return types.NoTypeID
	}
	kind := tc.typesIn.MustLookup(left).Kind
	bt := tc.typesIn.Builtins()
	switch op {
	case token.EqEq, token.BangEq:
		if kind == types.KindBool || kind.IsNumeric() {
			return bt.Bool
		}
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		if kind.IsNumeric() {
			return bt.Bool
		}
	case token.Plus, token.Minus, token.Star, token.Slash:
		if kind.IsNumeric() {
			return left
		}
	}
	return types.NoTypeID
}

// VisitCallExpr types the call from the callee's signature and checks
// the argument count against the declaration.
func (tc *checker) VisitCallExpr(id ast.ExprID) error {
	data, ok := tc.B.Exprs.Call(id)
	if !ok {
		return nil
	}
	_ = ast.AcceptExpr(tc.B, tc, data.Callee)
	for _, arg := range data.Args {
		_ = ast.AcceptExpr(tc.B, tc, arg)
	}

	sym := tc.syms.Symbol(tc.unwrapGroup(data.Callee))
	if sym == nil || sym.Kind != symbols.SymbolFunction {
		// a non-function callee was already rejected during resolution
		return nil
	}
	info, ok := tc.typesIn.FnInfo(sym.Type)
	if !ok {
		tc.bug(diag.TypeMissingType, tc.B.ExprSpan(data.Callee), "function symbol reached type checking without a signature")
		return nil
	}

	if len(data.Args) != len(info.Params) {
		b := tc.beginReport(diag.TypeInvalidArity, tc.B.Exprs.Get(id).Span,
			"this call expects "+strconv.Itoa(len(info.Params))+" argument(s), got "+strconv.Itoa(len(data.Args)))
		if b != nil {
			if !sym.Span.Empty() {
				b.WithLabel(sym.Span, "the function is declared here")
			}
			b.Emit()
		}
		return nil
	}
	tc.res.ExprTypes[id] = info.Result
	return nil
}

// unwrapGroup strips grouping parentheses off an expression ID.
func (tc *checker) unwrapGroup(id ast.ExprID) ast.ExprID {
	for {
		expr := tc.B.Exprs.Get(id)
		if expr == nil || expr.Kind != ast.ExprGroup {
			return id
		}
		id = ast.ExprID(expr.Payload)
	}
}
