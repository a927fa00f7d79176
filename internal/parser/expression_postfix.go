package parser

import (
	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

// parsePostfix folds calls, indexing, and slicing onto a primary
// expression iteratively, left to right. The grammar's left-recursive
// index/slice rule becomes this loop.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return expr, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			next, ok := p.parseCall(expr)
			if !ok {
				return next, false
			}
			expr = next

		case token.LBracket:
			next, ok := p.parseIndexOrSlice(expr)
			if !ok {
				return next, false
			}
			expr = next

		default:
			return expr, true
		}
	}
}

// parseCall parses `callee(args...)`. Newlines after '(' and ',' do not
// terminate the statement; a trailing comma before ')' is allowed.
func (p *Parser) parseCall(callee ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '('
	p.skipNewlines()

	var args []ast.ExprID
	for !p.atOr(token.RParen, token.EOF) {
		arg, ok := p.parseExpr()
		args = append(args, arg)
		if !ok {
			return p.badCover(callee, arg), false
		}
		p.skipNewlines()
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		p.skipNewlines()
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	if !ok {
		return p.badCover(callee, ast.NoExprID), false
	}

	span := p.arenas.Exprs.Span(callee).Cover(closeTok.Span)
	return p.arenas.Exprs.NewCall(span, callee, args), true
}

// parseIndexOrSlice parses `target[index]` or `target[lo:hi]` with
// either bound omittable.
func (p *Parser) parseIndexOrSlice(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '['
	p.skipNewlines()

	if p.at(token.RBracket) {
		p.report(diag.SynExpectSliceBound, diag.SevError, p.getDiagnosticSpan(),
			"expected index or slice bound")
		closeTok := p.advance()
		span := p.arenas.Exprs.Span(target).Cover(closeTok.Span)
		return p.arenas.Exprs.NewBad(span), false
	}

	lo := ast.NoExprID
	if !p.at(token.Colon) {
		expr, ok := p.parseExpr()
		if !ok {
			return p.badCover(target, expr), false
		}
		lo = expr
	}

	// a colon makes it a slice; otherwise it is a plain index
	if !p.at(token.Colon) {
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
		if !ok {
			return p.badCover(target, lo), false
		}
		span := p.arenas.Exprs.Span(target).Cover(closeTok.Span)
		return p.arenas.Exprs.NewIndex(span, target, lo), true
	}
	p.advance() // ':'
	p.skipNewlines()

	hi := ast.NoExprID
	if !p.at(token.RBracket) {
		expr, ok := p.parseExpr()
		if !ok {
			return p.badCover(target, expr), false
		}
		hi = expr
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after slice")
	if !ok {
		return p.badCover(target, hi), false
	}
	span := p.arenas.Exprs.Span(target).Cover(closeTok.Span)
	return p.arenas.Exprs.NewSlice(span, target, lo, hi), true
}

// parsePrimary parses the atoms: literals, names, parenthesized
// expressions, and array literals.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		name, _ := p.parseName() // cannot fail at an Ident
		span := p.arenas.Names.Get(name).Span
		return p.arenas.Exprs.NewName(span, name), true

	case token.IntLit, token.FloatLit, token.StringLit, token.CharLit,
		token.BoolLit, token.NoneLit:
		p.advance()
		kind, _ := litKindFor(tok.Kind)
		value := p.arenas.Interner.Intern(tok.Text)
		return p.arenas.Exprs.NewLit(tok.Span, kind, value), true

	case token.LParen:
		return p.parseParen()

	case token.LBracket:
		return p.parseArrayLit()

	default:
		return p.badExpr(p.getDiagnosticSpan(),
			"expected expression, got "+describeToken(tok)), false
	}
}

// parseParen parses `(expr)`. Newlines inside the parens are tolerated.
func (p *Parser) parseParen() (ast.ExprID, bool) {
	openTok := p.advance() // '('
	p.skipNewlines()

	inner, ok := p.parseExpr()
	if !ok {
		return p.badCover(inner, ast.NoExprID), false
	}
	p.skipNewlines()

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	if !ok {
		return p.badCover(inner, ast.NoExprID), false
	}

	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewParen(span, inner), true
}

// parseArrayLit parses `[elem, ...]`, trailing comma and internal
// newlines allowed.
func (p *Parser) parseArrayLit() (ast.ExprID, bool) {
	openTok := p.advance() // '['
	p.skipNewlines()

	var elems []ast.ExprID
	for !p.atOr(token.RBracket, token.EOF) {
		elem, ok := p.parseExpr()
		elems = append(elems, elem)
		if !ok {
			return p.badCover(elem, ast.NoExprID), false
		}
		p.skipNewlines()
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		p.skipNewlines()
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array elements")
	if !ok {
		span := openTok.Span
		if len(elems) > 0 {
			span = span.Cover(p.arenas.Exprs.Span(elems[len(elems)-1]))
		}
		return p.arenas.Exprs.NewBad(span), false
	}

	span := openTok.Span.Cover(closeTok.Span)
	return p.arenas.Exprs.NewArray(span, elems), true
}
