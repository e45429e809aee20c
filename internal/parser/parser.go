package parser

import (
	"arkoi/internal/ast"
	"arkoi/internal/diag"
	"arkoi/internal/source"
	"arkoi/internal/token"
)

// Options controls error reporting during a parse.
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

// Result is what ParseFile hands back to the driver.
type Result struct {
	File   ast.FileID
	Errors uint
}

// Parser holds the state for parsing one file.
type Parser struct {
	toks     *token.Stream
	arenas   *ast.Builder
	file     ast.FileID
	src      *source.File
	opts     Options
	lastSpan source.Span // span of the last consumed token, for end-of-input diagnostics
}

// ParseFile parses one file from an already-scanned token stream.
// The stream must end with an EOF token; lexing is expected to have
// finished (and been gated on) before this runs.
func ParseFile(src *source.File, toks *token.Stream, arenas *ast.Builder, opts Options) Result {
	empty := source.Span{File: src.ID}
	p := Parser{
		toks:     toks,
		arenas:   arenas,
		file:     arenas.NewFile(empty),
		src:      src,
		opts:     opts,
		lastSpan: empty,
	}

	p.parseItems()
	return Result{File: p.file, Errors: p.opts.CurrentErrors}
}

// parseItems is the top-level loop: until EOF, parse one declaration
// and resynchronize past anything malformed.
func (p *Parser) parseItems() {
	startSpan := p.toks.Peek().Span
	for !p.at(token.EOF) {
		itemID, st := p.parseItem()
		if st != statusOK {
			p.resyncTop()
			continue
		}
		p.arenas.PushItem(p.file, itemID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// parseItem dispatches on the first token of a top-level declaration.
// Bare expressions are not allowed at the top level.
func (p *Parser) parseItem() (ast.ItemID, status) {
	if id, st := p.parseLetItem(); st != statusNoMatch {
		return id, st
	}
	if id, st := p.parseFnItem(); st != statusNoMatch {
		return id, st
	}
	p.errUnexpected("fun or let declaration")
	return ast.NoItemID, statusFailed
}

// resyncTop discards tokens until something that plausibly starts the
// next top-level declaration. A statement terminator also counts, and
// is consumed so the loop does not trip over it again.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.Semicolon, token.KwFun, token.KwStruct, token.KwLet)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// resyncStmt is the block-level analogue: resume at the next statement
// starter or at the brace that closes the enclosing block.
func (p *Parser) resyncStmt() {
	p.resyncUntil(token.KwLet, token.KwReturn, token.Semicolon, token.RBrace)
	if p.at(token.Semicolon) {
		p.advance()
	}
}
