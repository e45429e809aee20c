package lexer

import (
	"strconv"

	"arkoi/internal/diag"
	"arkoi/internal/token"
)

// scanNumber scans a digit run, and if a '.' follows, a fractional run,
// classifying the token as IntLit or DecimalLit. The decoded value is
// produced here: integers as unsigned machine integers, decimals as 64-bit
// floats. Malformed forms are reported and yield an Invalid token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.EatWhile(isDec)

	// A dot after the digit run always starts the fractional part, even
	// when no digits follow: "1." is the decimal 1.0.
	kind := token.IntLit
	if lx.cursor.Eat('.') {
		lx.cursor.EatWhile(isDec)
		kind = token.DecimalLit
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if kind == token.IntLit {
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			lx.errLex(diag.LexBadNumber, sp, "integer literal '%s' does not fit 64 bits", text)
			return token.Token{Kind: token.Invalid, Span: sp, Text: text}
		}
		return token.Token{Kind: kind, Span: sp, Text: text, Value: token.IntValue(v)}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, sp, "malformed decimal literal '%s'", text)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: text, Value: token.DecimalValue(v)}
}
