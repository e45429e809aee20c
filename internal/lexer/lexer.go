package lexer

import (
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// Lexer converts one file's bytes into a lazy sequence of tokens. Each call
// to Next produces the next significant token; malformed input is reported
// through Options.Reporter and scanning continues with the following byte,
// so a single bad character never aborts the scan.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	interner *source.Interner
	opts     Options
	look     *token.Token // 1-element lookahead buffer
	errors   int
}

func New(file *source.File, interner *source.Interner, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		interner: interner,
		opts:     opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipWhitespace()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.EmptySpan(),
			}
		}

		ch := lx.cursor.Peek()
		switch {
		case isAlpha(ch):
			return lx.scanIdentOrKeyword()
		case isDec(ch):
			return lx.scanNumber()
		case ch == '"':
			return lx.scanString()
		default:
			tok, ok := lx.scanOperatorOrPunct()
			if !ok {
				// Unknown byte already reported; keep scanning.
				continue
			}
			return tok
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// ScanAll drains the lexer, returning every token up to and including EOF.
func (lx *Lexer) ScanAll() []token.Token {
	toks := make([]token.Token, 0, len(lx.file.Content)/4)
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// ErrorCount returns the number of lexical errors seen so far.
func (lx *Lexer) ErrorCount() int {
	return lx.errors
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) skipWhitespace() {
	lx.cursor.EatWhile(isWhitespace)
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
