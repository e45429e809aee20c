package parser

import (
	"arkoi/internal/ast"
	"arkoi/internal/token"
)

// parseLetItem parses `let IDENTIFIER type ( "=" expression )? ";"`.
// Returns statusNoMatch when the leading `let` is absent.
func (p *Parser) parseLetItem() (ast.ItemID, status) {
	data, st := p.parseLetDecl()
	if st != statusOK {
		return ast.NoItemID, st
	}
	return p.arenas.NewLetItem(data), statusOK
}

// parseLetDecl is the shared body of let items and let statements.
func (p *Parser) parseLetDecl() (ast.LetData, status) {
	if !p.at(token.KwLet) {
		return ast.LetData{}, statusNoMatch
	}
	start := p.advance()

	name, ok := p.expect(token.Ident, "identifier")
	if !ok {
		return ast.LetData{}, statusFailed
	}

	typeID, st := p.parseTypeAnn()
	if st != statusOK {
		return ast.LetData{}, statusFailed
	}

	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		var est status
		value, est = p.requireExpr("expression after '='")
		if est != statusOK {
			return ast.LetData{}, statusFailed
		}
	}

	end, ok := p.expect(token.Semicolon, "';'")
	if !ok {
		return ast.LetData{}, statusFailed
	}

	return ast.LetData{
		NameTok: name,
		Type:    typeID,
		Value:   value,
		Span:    start.Span.Cover(end.Span),
	}, statusOK
}

// parseFnItem parses
// `fun IDENTIFIER "(" parameters? ")" type block`.
func (p *Parser) parseFnItem() (ast.ItemID, status) {
	if !p.at(token.KwFun) {
		return ast.NoItemID, statusNoMatch
	}
	start := p.advance()

	name, ok := p.expect(token.Ident, "identifier")
	if !ok {
		return ast.NoItemID, statusFailed
	}

	if _, ok := p.expect(token.LParen, "'('"); !ok {
		return ast.NoItemID, statusFailed
	}

	var params []ast.ParamID
	if !p.at(token.RParen) {
		params, ok = p.parseParams()
		if !ok {
			return ast.NoItemID, statusFailed
		}
	}
	if _, ok := p.expect(token.RParen, "')'"); !ok {
		return ast.NoItemID, statusFailed
	}

	ret, st := p.parseTypeAnn()
	if st != statusOK {
		return ast.NoItemID, statusFailed
	}

	body, st := p.parseBlock()
	if st == statusNoMatch {
		p.errUnexpected("'{'")
		return ast.NoItemID, statusFailed
	}
	if st != statusOK {
		return ast.NoItemID, statusFailed
	}

	bodySpan := p.arenas.Stmts.Get(body).Span
	return p.arenas.NewFnItem(ast.FnData{
		NameTok: name,
		Params:  params,
		Return:  ret,
		Body:    body,
		Span:    start.Span.Cover(bodySpan),
	}), statusOK
}

// parseParams parses `IDENTIFIER type ( "," IDENTIFIER type )*`.
func (p *Parser) parseParams() ([]ast.ParamID, bool) {
	var params []ast.ParamID
	for {
		name, ok := p.expect(token.Ident, "identifier")
		if !ok {
			return nil, false
		}
		typeID, st := p.parseTypeAnn()
		if st != statusOK {
			return nil, false
		}
		span := name.Span.Cover(p.arenas.Types.Get(typeID).Span)
		params = append(params, p.arenas.NewParam(ast.ParamData{
			NameTok: name,
			Type:    typeID,
			Span:    span,
		}))

		if !p.at(token.Comma) {
			return params, true
		}
		p.advance()
	}
}

// parseTypeAnn parses `"@" TYPE_KEYWORD`. Every annotation site in the
// grammar is mandatory, so a missing '@' is a hard error here.
func (p *Parser) parseTypeAnn() (ast.TypeID, status) {
	start, ok := p.expect(token.At, "'@'")
	if !ok {
		return ast.NoTypeID, statusFailed
	}
	peek := p.toks.Peek()
	if !peek.Kind.IsTypeKeyword() {
		p.errUnexpected("a type name like u8, i32, f64 or bool")
		return ast.NoTypeID, statusFailed
	}
	tok := p.advance()
	return p.arenas.NewTypeAnn(tok.Kind, start.Span.Cover(tok.Span)), statusOK
}
