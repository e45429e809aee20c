package sema

import (
	"math"

	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/token"
	"arkoi/internal/types"
)

// VisitLitExpr infers the literal's type from its decoded value.
// Integer literals get the smallest unsigned width that fits the
// magnitude; decimal literals get 32 bits when the magnitude is zero or
// within float32's normal range, 64 otherwise.
func (tc *checker) VisitLitExpr(id ast.ExprID) error {
	data, ok := tc.B.Exprs.Lit(id)
	if !ok {
		return nil
	}
	bt := tc.typesIn.Builtins()
	switch data.Tok.Value.Kind {
	case token.ValueInt:
		tc.res.ExprTypes[id] = intLiteralType(bt, data.Tok.Value.Int)
	case token.ValueDecimal:
		tc.res.ExprTypes[id] = decimalLiteralType(bt, data.Tok.Value.Decimal)
	case token.ValueBool:
		tc.res.ExprTypes[id] = bt.Bool
	case token.ValueString:
		tc.res.ExprTypes[id] = bt.String
	default:
		tc.bug(diag.TypeMissingType, data.Tok.Span, "literal token carries no decoded value")
	}
	return nil
}

func intLiteralType(bt types.Builtins, v uint64) types.TypeID {
	switch {
	case v <= math.MaxUint8:
		return bt.U8
	case v <= math.MaxUint16:
		return bt.U16
	case v <= math.MaxUint32:
		return bt.U32
	default:
		return bt.U64
	}
}

func decimalLiteralType(bt types.Builtins, v float64) types.TypeID {
	if fitsFloat32(v) {
		return bt.F32
	}
	return bt.F64
}

// minNormalFloat32 is the smallest positive normal float32 (2^-126).
const minNormalFloat32 = 0x1p-126

// fitsFloat32 is a range check only; in-range values may still lose
// precision in float32. Subnormal float32 magnitudes get 64 bits.
func fitsFloat32(v float64) bool {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}
	abs := math.Abs(v)
	return abs == 0 || (abs >= minNormalFloat32 && abs <= math.MaxFloat32)
}
