package lexer

import (
	"strings"

	"arkoi/internal/diag"
	"arkoi/internal/token"
)

// scanString scans a double-quoted literal, seeing through backslash
// escapes via the windowed predicate. The decoded value is the body with
// the surrounding quotes stripped and escapes resolved, interned.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	lx.cursor.EatWindowedWhile(func(prev, cur byte) bool {
		return cur != '"' || prev == '\\'
	})

	if !lx.cursor.Eat('"') {
		// EOF before the closing quote.
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	body := unescape(text[1 : len(text)-1])
	return token.Token{
		Kind:  token.StringLit,
		Span:  sp,
		Text:  text,
		Value: token.StrValue(lx.interner.Intern(body)),
	}
}

// unescape resolves the supported escapes; an unknown escape keeps the
// escaped byte as-is.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
