package parser

import (
	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

// parseIf parses `if cond { ... } [else if ... | else { ... }]`.
// Conditions may be bare or parenthesized; parentheses fall out of the
// expression grammar. An else-if chain nests as the Else statement.
func (p *Parser) parseIf() (ast.StmtID, bool) {
	ifTok := p.advance() // 'if'

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	elseStmt := ast.NoStmtID
	// 'else' may sit on the line after the closing brace
	if p.at(token.Newline) && p.lx.PeekAt(1).Kind == token.KwElse {
		p.advance()
	}
	if p.at(token.KwElse) {
		p.advance()
		switch {
		case p.at(token.KwIf):
			chained, ok := p.parseIf()
			if !ok {
				return ast.NoStmtID, false
			}
			elseStmt = chained
		case p.at(token.LBrace):
			block, ok := p.parseBlock()
			if !ok {
				return ast.NoStmtID, false
			}
			elseStmt = block
			if !p.terminator() {
				return ast.NoStmtID, false
			}
		default:
			p.err(diag.SynUnexpectedToken, "expected 'if' or '{' after 'else'")
			return ast.NoStmtID, false
		}
	} else if !p.terminator() {
		return ast.NoStmtID, false
	}

	span := ifTok.Span.Cover(p.arenas.Stmts.Get(then).Span)
	if elseStmt.IsValid() {
		span = span.Cover(p.arenas.Stmts.Get(elseStmt).Span)
	}
	return p.arenas.Stmts.NewIf(span, cond, then, elseStmt), true
}

// parseWhile parses `while cond { ... }`.
func (p *Parser) parseWhile() (ast.StmtID, bool) {
	whileTok := p.advance() // 'while'

	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}

	span := whileTok.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Stmts.NewWhile(span, cond, body), true
}

// parseForIn parses `for Name in Expr { ... }`.
func (p *Parser) parseForIn() (ast.StmtID, bool) {
	forTok := p.advance() // 'for'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwIn, diag.SynForMissingIn, "expected 'in' after loop variable"); !ok {
		return ast.NoStmtID, false
	}
	seq, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}

	span := forTok.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Stmts.NewForIn(span, name, nameSpan, seq, body), true
}
