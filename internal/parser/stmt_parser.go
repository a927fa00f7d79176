package parser

import (
	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

// parseStmt dispatches on the first token of a statement. On failure it
// returns an invalid ID; the caller runs resync. The returned ID may be
// a Bad statement when enough structure survived to keep a placeholder.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwVar:
		return p.parseVarDecl()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseForIn()
	case token.Ident:
		// one token past the identifier decides:
		//   x: ...  → const declaration
		// anything else parses as an expression first and sorts out
		// assignment afterward.
		if p.lx.PeekAt(1).Kind == token.Colon {
			return p.parseConstDecl()
		}
		return p.parseExprLedStmt()
	case token.KwFun:
		p.err(diag.SynUnexpectedToken, "function definitions cannot nest")
		return ast.NoStmtID, false
	default:
		return p.parseExprLedStmt()
	}
}

// parseVarDecl parses `var Name: Type [= Expr]`.
func (p *Parser) parseVarDecl() (ast.StmtID, bool) {
	varTok := p.advance() // 'var'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after variable name"); !ok {
		return ast.NoStmtID, false
	}
	typ, ok := p.parseTypeName()
	if !ok {
		return ast.NoStmtID, false
	}

	value := ast.NoExprID
	span := varTok.Span.Cover(p.arenas.Names.Get(typ).Span)
	if p.at(token.Assign) {
		p.advance()
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = expr
		span = span.Cover(p.arenas.Exprs.Span(expr))
	}

	if !p.terminator() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewVarDecl(span, name, nameSpan, typ, value), true
}

// parseConstDecl parses `Name: Type = Expr`. The initializer is
// mandatory: a constant without a value has no meaning.
func (p *Parser) parseConstDecl() (ast.StmtID, bool) {
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	p.advance() // ':' guaranteed by the dispatch lookahead

	typ, ok := p.parseTypeName()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in constant declaration"); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	if !p.terminator() {
		return ast.NoStmtID, false
	}
	span := nameSpan.Cover(p.arenas.Exprs.Span(value))
	return p.arenas.Stmts.NewConstDecl(span, name, nameSpan, typ, value), true
}

// parseReturn parses `return [Expr]`. The value is optional: a bare
// return before a newline, '}' or EOF returns nothing.
func (p *Parser) parseReturn() (ast.StmtID, bool) {
	retTok := p.advance() // 'return'

	value := ast.NoExprID
	span := retTok.Span
	if !p.atOr(token.Newline, token.RBrace, token.EOF) {
		expr, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = expr
		span = span.Cover(p.arenas.Exprs.Span(expr))
	}

	if !p.terminator() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewReturn(span, value), true
}

// parseExprLedStmt parses a statement that begins with an expression:
// either an assignment (`target op value`) or a bare expression.
func (p *Parser) parseExprLedStmt() (ast.StmtID, bool) {
	target, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	tok := p.lx.Peek()
	if !tok.IsAssignOp() {
		if !p.terminator() {
			return ast.NoStmtID, false
		}
		span := p.arenas.Exprs.Span(target)
		return p.arenas.Stmts.NewExprStmt(span, target), true
	}

	if !p.isAssignable(target) {
		p.report(diag.SynBadAssignTarget, diag.SevError, p.arenas.Exprs.Span(target),
			"cannot assign to this expression")
		// keep going so the value still gets parsed and checked
	}
	p.advance() // assignment operator

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}

	op := assignOpFor(tok.Kind)
	span := p.arenas.Exprs.Span(target).Cover(p.arenas.Exprs.Span(value))
	return p.arenas.Stmts.NewAssign(span, target, op, value), true
}

// isAssignable reports whether an expression can stand on the left of an
// assignment: a name, or an index/slice chain rooted in a name.
func (p *Parser) isAssignable(id ast.ExprID) bool {
	for {
		expr := p.arenas.Exprs.Get(id)
		if expr == nil {
			return false
		}
		switch expr.Kind {
		case ast.ExprName:
			return true
		case ast.ExprIndex:
			data, _ := p.arenas.Exprs.Index(id)
			id = data.Target
		case ast.ExprSlice:
			data, _ := p.arenas.Exprs.Slice(id)
			id = data.Target
		default:
			return false
		}
	}
}

// parseBlock parses `{ Statement* }`. Newlines between statements are
// skipped; a bad statement resyncs inside the block so its siblings
// still parse.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	openTok, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}
	p.skipNewlines()

	var stmts []ast.StmtID
	for !p.atOr(token.RBrace, token.EOF) {
		id, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			if id.IsValid() {
				stmts = append(stmts, id)
			} else {
				stmts = append(stmts, p.arenas.Stmts.NewBad(p.getDiagnosticSpan()))
			}
		} else if id.IsValid() {
			stmts = append(stmts, id)
		}
		p.skipNewlines()
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	span := openTok.Span
	if ok {
		span = span.Cover(closeTok.Span)
	} else if len(stmts) > 0 {
		span = span.Cover(p.arenas.Stmts.Get(stmts[len(stmts)-1]).Span)
	}
	return p.arenas.Stmts.NewBlock(span, stmts), true
}
