package lexer

import (
	"arkoi/internal/token"
)

// scanIdentOrKeyword scans an alphanumeric/underscore run starting with a
// letter, then classifies it against the keyword table. Token.Text is the
// exact source slice; plain identifiers get their name interned.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump() // first letter, checked by the caller
	lx.cursor.EatWhile(isIdentContinue)

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		tok := token.Token{Kind: k, Span: sp, Text: text}
		// Boolean keywords decode directly.
		switch k {
		case token.KwTrue:
			tok.Value = token.BoolValue(true)
		case token.KwFalse:
			tok.Value = token.BoolValue(false)
		}
		return tok
	}

	return token.Token{
		Kind:  token.Ident,
		Span:  sp,
		Text:  text,
		Value: token.StrValue(lx.interner.Intern(text)),
	}
}
