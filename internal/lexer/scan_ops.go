package lexer

import (
	"arkoi/internal/diag"
	"arkoi/internal/token"
)

// scanOperatorOrPunct scans one operator or punctuation token, fusing the
// two-character forms (+= -= *= /= <= >= == !=) with one byte of lookahead.
// An unknown byte is reported and skipped; ok is false in that case.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()

	var kind token.Kind
	switch lx.cursor.Bump() {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '@':
		kind = token.At
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case ';':
		kind = token.Semicolon
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '=':
		kind = token.Assign
	case '!':
		kind = token.Bang
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedChar, sp,
			"didn't expect '%s', expected a token starter", lx.text(sp))
		return token.Token{}, false
	}

	if fused, ok := fuseAssign(kind); ok && lx.cursor.Eat('=') {
		kind = fused
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}, true
}

// fuseAssign maps a single-character base token to its '='-fused form.
func fuseAssign(k token.Kind) (token.Kind, bool) {
	switch k {
	case token.Plus:
		return token.PlusEq, true
	case token.Minus:
		return token.MinusEq, true
	case token.Star:
		return token.StarEq, true
	case token.Slash:
		return token.SlashEq, true
	case token.Lt:
		return token.LtEq, true
	case token.Gt:
		return token.GtEq, true
	case token.Assign:
		return token.EqEq, true
	case token.Bang:
		return token.BangEq, true
	default:
		return k, false
	}
}
