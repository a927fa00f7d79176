package parser

import (
	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// parseExpr is the expression entry point. The returned ID is always
// valid: a failed parse yields a Bad placeholder so the surrounding
// statement keeps its shape. ok=false means a diagnostic was already
// reported and the caller should stop extending this expression.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseTernary()
}

// parseTernary handles `cond ? then : else`, the loosest level.
// Right-associative: the else branch re-enters at the same level.
func (p *Parser) parseTernary() (ast.ExprID, bool) {
	cond, ok := p.parseBinary(0)
	if !ok {
		return cond, false
	}
	if !p.at(token.Question) {
		return cond, true
	}
	p.advance() // '?'

	then, ok := p.parseExpr()
	if !ok {
		return p.badCover(cond, then), false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return p.badCover(cond, then), false
	}
	elseExpr, ok := p.parseTernary()
	if !ok {
		return p.badCover(cond, elseExpr), false
	}

	span := p.arenas.Exprs.Span(cond).Cover(p.arenas.Exprs.Span(elseExpr))
	return p.arenas.Exprs.NewTernary(span, cond, then, elseExpr), true
}

// parseBinary is the iterative precedence climber over the binary
// operator table. All levels in the table are left-associative; the
// right-associative '**' binds above unary and lives in parsePower.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return left, false
	}

	for {
		op, isBin := binaryOpFor(p.lx.Peek().Kind)
		if !isBin {
			break
		}
		prec := op.Precedence()
		if prec < minPrec {
			break
		}
		p.advance() // the operator

		right, ok := p.parseBinary(prec + 1)
		if !ok {
			span := p.arenas.Exprs.Span(left).Cover(p.arenas.Exprs.Span(right))
			return p.arenas.Exprs.NewBinary(span, op, left, right), false
		}

		span := p.arenas.Exprs.Span(left).Cover(p.arenas.Exprs.Span(right))
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}

	return left, true
}

// parseUnary handles the prefix operators '-', '!', '~'. They bind
// tighter than every binary level except exponentiation, so the operand
// comes from parsePower.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	op, isUnary := unaryOpFor(p.lx.Peek().Kind)
	if !isUnary {
		return p.parsePower()
	}
	opTok := p.advance()

	operand, ok := p.parseUnary()
	span := opTok.Span.Cover(p.arenas.Exprs.Span(operand))
	return p.arenas.Exprs.NewUnary(span, op, operand), ok
}

// parsePower handles '**', right-associative and binding tighter than
// unary: `2**-3**4` is `2**(-(3**4))`, so the right operand re-enters
// through parseUnary.
func (p *Parser) parsePower() (ast.ExprID, bool) {
	base, ok := p.parsePostfix()
	if !ok {
		return base, false
	}
	if !p.at(token.StarStar) {
		return base, true
	}
	p.advance() // '**'

	exp, ok := p.parseUnary()
	span := p.arenas.Exprs.Span(base).Cover(p.arenas.Exprs.Span(exp))
	return p.arenas.Exprs.NewBinary(span, ast.BinPow, base, exp), ok
}

// badExpr reports a missing expression and allocates the placeholder.
func (p *Parser) badExpr(sp source.Span, msg string) ast.ExprID {
	p.report(diag.SynExpectExpression, diag.SevError, sp, msg)
	return p.arenas.Exprs.NewBad(sp)
}

// badCover wraps two partial results into one Bad node covering both.
func (p *Parser) badCover(a, b ast.ExprID) ast.ExprID {
	span := p.arenas.Exprs.Span(a).Cover(p.arenas.Exprs.Span(b))
	return p.arenas.Exprs.NewBad(span)
}
