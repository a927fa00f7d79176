package parser

import (
	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

// parseFn parses a function definition:
//
//	fun Name(name: type, ...) [: ReturnType] { Statement* }
func (p *Parser) parseFn() (ast.FnID, bool) {
	funTok := p.advance() // 'fun'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoFnID, false
	}

	params, ok := p.parseFnParams()
	if !ok {
		return ast.NoFnID, false
	}

	ret := ast.NoNameID
	if p.at(token.Colon) {
		p.advance()
		retName, ok := p.parseTypeName()
		if !ok {
			return ast.NoFnID, false
		}
		ret = retName
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoFnID, false
	}

	if !p.terminator() {
		p.resyncStmt()
	}

	span := funTok.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Fns.New(span, name, nameSpan, params, ret, body), true
}

// parseFnParams parses '(' [name: type {',' name: type}] ')'. Newlines
// are tolerated after '(' and ','.
func (p *Parser) parseFnParams() ([]ast.Param, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}
	p.skipNewlines()

	var params []ast.Param
	for !p.atOr(token.RParen, token.EOF) {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
			return nil, false
		}
		typ, ok := p.parseTypeName()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{
			Name:     name,
			NameSpan: nameSpan,
			Type:     typ,
			Span:     nameSpan.Cover(p.arenas.Names.Get(typ).Span),
		})

		if !p.at(token.Comma) {
			break
		}
		p.advance()
		p.skipNewlines()
	}
	p.skipNewlines()

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}
