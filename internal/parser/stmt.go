package parser

import (
	"arkoi/internal/ast"
	"arkoi/internal/token"
)

// parseStmt parses one block-level statement: a let declaration, a
// return, a nested block, or an expression statement.
func (p *Parser) parseStmt() (ast.StmtID, status) {
	if data, st := p.parseLetDecl(); st != statusNoMatch {
		if st != statusOK {
			return ast.NoStmtID, st
		}
		return p.arenas.NewLetStmt(data), statusOK
	}
	if id, st := p.parseReturnStmt(); st != statusNoMatch {
		return id, st
	}
	if id, st := p.parseBlock(); st != statusNoMatch {
		return id, st
	}
	if id, st := p.parseExprStmt(); st != statusNoMatch {
		return id, st
	}
	p.errUnexpected("statement or let declaration")
	return ast.NoStmtID, statusFailed
}

// parseReturnStmt parses `return expression? ";"`.
func (p *Parser) parseReturnStmt() (ast.StmtID, status) {
	if !p.at(token.KwReturn) {
		return ast.NoStmtID, statusNoMatch
	}
	start := p.advance()

	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		var st status
		value, st = p.requireExpr("expression or ';'")
		if st != statusOK {
			return ast.NoStmtID, statusFailed
		}
	}

	end, ok := p.expect(token.Semicolon, "';'")
	if !ok {
		return ast.NoStmtID, statusFailed
	}
	return p.arenas.NewReturnStmt(value, start.Span.Cover(end.Span)), statusOK
}

// parseExprStmt parses `expression ";"`.
func (p *Parser) parseExprStmt() (ast.StmtID, status) {
	expr, st := p.parseExpr()
	if st != statusOK {
		return ast.NoStmtID, st
	}
	end, ok := p.expect(token.Semicolon, "';'")
	if !ok {
		return ast.NoStmtID, statusFailed
	}
	span := p.arenas.ExprSpan(expr).Cover(end.Span)
	return p.arenas.NewExprStmt(expr, span), statusOK
}

// parseBlock parses `"{" statement* "}"`. A syntax error inside the
// block resynchronizes to the next statement starter so one bad
// statement does not take the rest of the block with it.
func (p *Parser) parseBlock() (ast.StmtID, status) {
	if !p.at(token.LBrace) {
		return ast.NoStmtID, statusNoMatch
	}
	start := p.advance()

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, st := p.parseStmt()
		if st != statusOK {
			p.resyncStmt()
			continue
		}
		stmts = append(stmts, stmt)
	}

	end, ok := p.expect(token.RBrace, "'}'")
	if !ok {
		return ast.NoStmtID, statusFailed
	}
	return p.arenas.NewBlockStmt(stmts, start.Span.Cover(end.Span)), statusOK
}
