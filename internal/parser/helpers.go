package parser

import (
	"slices"

	"arkoi/internal/diag"
	"arkoi/internal/source"
	"arkoi/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.toks.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.toks.Peek().Kind)
}

// advance consumes the next token and remembers its span.
func (p *Parser) advance() token.Token {
	tok := p.toks.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan returns the best span for a diagnostic at the
// current position. At EOF the peeked span is empty, so point at the
// position right after the last consumed token instead.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.toks.Peek()
	if peek.Kind == token.EOF || (peek.Kind == token.Invalid && peek.Span.Empty()) {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of the given kind or reports what was
// expected instead.
func (p *Parser) expect(k token.Kind, expected string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errUnexpected(expected)
	return token.Token{Kind: token.Invalid, Span: p.getDiagnosticSpan()}, false
}

// errUnexpected reports the current token as unexpected. Running out
// of input gets its own code and message shape; a stream that ran dry
// without a real EOF token is a broken lexer contract, not user input.
func (p *Parser) errUnexpected(expected string) {
	peek := p.toks.Peek()
	if peek.Kind == token.EOF {
		if p.toks.Synthesized() {
			p.reportBug(diag.SynInternalEOF, p.getDiagnosticSpan(),
				"token stream ended without a terminating end-of-file token, expected "+expected)
			return
		}
		p.report(diag.SynUnexpectedEOF, p.getDiagnosticSpan(),
			"unexpectedly reached the end of the file, expected "+expected)
		return
	}
	got := peek.Text
	if got == "" {
		got = peek.Kind.String()
	}
	p.report(diag.SynUnexpectedToken, peek.Span,
		"didn't expect '"+got+"', expected "+expected)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	enough := p.opts.Enough()
	p.opts.CurrentErrors++
	if p.opts.Reporter == nil || enough {
		return
	}
	diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
}

func (p *Parser) reportBug(code diag.Code, sp source.Span, msg string) {
	enough := p.opts.Enough()
	p.opts.CurrentErrors++
	if p.opts.Reporter == nil || enough {
		return
	}
	diag.ReportBug(p.opts.Reporter, code, sp, msg).Emit()
}

// resyncUntil discards tokens until one of the stop kinds (or EOF).
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(stop...) {
		p.advance()
	}
}
