package parser

import (
	"arkoi/internal/ast"
	"arkoi/internal/token"
)

// parseExpr parses a full expression, lowest precedence first.
// Like every alternative rule it returns statusNoMatch when the first
// token cannot start an expression.
func (p *Parser) parseExpr() (ast.ExprID, status) {
	return p.parseEquality()
}

// requireExpr is parseExpr in mandatory mode: a no-match becomes a
// hard error naming what was expected.
func (p *Parser) requireExpr(expected string) (ast.ExprID, status) {
	expr, st := p.parseExpr()
	if st == statusNoMatch {
		p.errUnexpected(expected)
		return ast.NoExprID, statusFailed
	}
	return expr, st
}

// parseEquality parses `comparison ( ( "==" | "!=" ) comparison )*`.
// Binary levels left-fold iteratively so long chains do not grow the
// call stack.
func (p *Parser) parseEquality() (ast.ExprID, status) {
	return p.parseBinaryLevel(p.parseComparison, token.EqEq, token.BangEq)
}

// parseComparison parses `term ( ( "<" | "<=" | ">" | ">=" ) term )*`.
func (p *Parser) parseComparison() (ast.ExprID, status) {
	return p.parseBinaryLevel(p.parseTerm, token.Lt, token.LtEq, token.Gt, token.GtEq)
}

// parseTerm parses `factor ( ( "+" | "-" ) factor )*`.
func (p *Parser) parseTerm() (ast.ExprID, status) {
	return p.parseBinaryLevel(p.parseFactor, token.Plus, token.Minus)
}

// parseFactor parses `unary ( ( "*" | "/" ) unary )*`.
func (p *Parser) parseFactor() (ast.ExprID, status) {
	return p.parseBinaryLevel(p.parseUnary, token.Star, token.Slash)
}

func (p *Parser) parseBinaryLevel(next func() (ast.ExprID, status), ops ...token.Kind) (ast.ExprID, status) {
	left, st := next()
	if st != statusOK {
		return left, st
	}
	for p.atAny(ops...) {
		op := p.advance()
		right, st := next()
		if st == statusNoMatch {
			p.errUnexpected("expression after '" + op.Text + "'")
			return ast.NoExprID, statusFailed
		}
		if st != statusOK {
			return ast.NoExprID, st
		}
		span := p.arenas.ExprSpan(left).Cover(p.arenas.ExprSpan(right))
		left = p.arenas.NewBinaryExpr(op, left, right, span)
	}
	return left, statusOK
}

// parseUnary parses `( "!" | "-" ) unary | call`.
func (p *Parser) parseUnary() (ast.ExprID, status) {
	if p.atAny(token.Bang, token.Minus) {
		op := p.advance()
		operand, st := p.parseUnary()
		if st == statusNoMatch {
			p.errUnexpected("expression after '" + op.Text + "'")
			return ast.NoExprID, statusFailed
		}
		if st != statusOK {
			return ast.NoExprID, st
		}
		span := op.Span.Cover(p.arenas.ExprSpan(operand))
		return p.arenas.NewUnaryExpr(op, operand, span), statusOK
	}
	return p.parseCall()
}

// parseCall parses `primary ( "(" arguments? ")" )*`.
func (p *Parser) parseCall() (ast.ExprID, status) {
	callee, st := p.parsePrimary()
	if st != statusOK {
		return callee, st
	}
	for p.at(token.LParen) {
		p.advance()
		callee, st = p.finishCall(callee)
		if st != statusOK {
			return ast.NoExprID, st
		}
	}
	return callee, statusOK
}

func (p *Parser) finishCall(callee ast.ExprID) (ast.ExprID, status) {
	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, st := p.requireExpr("argument expression")
			if st != statusOK {
				return ast.NoExprID, statusFailed
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	end, ok := p.expect(token.RParen, "')'")
	if !ok {
		return ast.NoExprID, statusFailed
	}
	span := p.arenas.ExprSpan(callee).Cover(end.Span)
	return p.arenas.NewCallExpr(callee, args, span), statusOK
}

// parsePrimary parses
// `INT | DECIMAL | STRING | "true" | "false" | IDENTIFIER | "(" expression ")"`.
func (p *Parser) parsePrimary() (ast.ExprID, status) {
	switch p.toks.Peek().Kind {
	case token.IntLit, token.DecimalLit, token.StringLit, token.KwTrue, token.KwFalse:
		return p.arenas.NewLitExpr(p.advance()), statusOK
	case token.Ident:
		return p.arenas.NewIdentExpr(p.advance()), statusOK
	case token.LParen:
		start := p.advance()
		inner, st := p.requireExpr("expression")
		if st != statusOK {
			return ast.NoExprID, statusFailed
		}
		end, ok := p.expect(token.RParen, "')'")
		if !ok {
			return ast.NoExprID, statusFailed
		}
		return p.arenas.NewGroupExpr(inner, start.Span.Cover(end.Span)), statusOK
	default:
		return ast.NoExprID, statusNoMatch
	}
}
