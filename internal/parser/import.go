package parser

import (
	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// parseUsingBlock parses the import block:
//
//	using {
//	    Name [as Alias] [, Name [as Alias]]... from Module
//	    ...
//	}
//
// Each line yields one Import per name. A second block, or one appearing
// after functions or statements, is diagnosed but still parsed so the
// imports stay visible to tooling.
func (p *Parser) parseUsingBlock() {
	usingTok := p.advance() // 'using'

	switch {
	case p.usingSeen:
		p.report(diag.SynDuplicateUsing, diag.SevError, usingTok.Span,
			"duplicate using block")
	case p.itemsSeen:
		p.report(diag.SynUsingAfterItems, diag.SevError, usingTok.Span,
			"using block must come before functions and statements")
	}
	p.usingSeen = true

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after 'using'"); !ok {
		p.resyncStmt()
		return
	}
	p.skipNewlines()

	for !p.atOr(token.RBrace, token.EOF) {
		if !p.parseImportLine() {
			p.resyncUntil(token.Newline, token.RBrace)
			p.skipNewlines()
		}
		p.skipNewlines()
	}

	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close using block")
}

// parseImportLine parses one newline-terminated import statement. Error
// recovery is per line: a malformed line costs one diagnostic and the
// block continues with the next line.
func (p *Parser) parseImportLine() bool {
	type entry struct {
		name  ast.NameID
		alias source.StringID
		span  source.Span
	}
	var entries []entry

	for {
		if !p.at(token.Ident) {
			p.err(diag.SynBadImport, "expected imported name, got "+describeToken(p.lx.Peek()))
			return false
		}
		name, ok := p.parseName()
		if !ok {
			return false
		}
		span := p.arenas.Names.Get(name).Span

		alias := source.NoStringID
		if p.at(token.KwAs) {
			p.advance()
			aliasID, aliasSpan, ok := p.parseIdent()
			if !ok {
				return false
			}
			// an alias is a single segment: a dot here would start
			// another name, which 'from' below rejects
			if p.at(token.Dot) {
				p.report(diag.SynBadAlias, diag.SevError, aliasSpan.Cover(p.lx.Peek().Span),
					"import alias must be a plain identifier")
				return false
			}
			alias = aliasID
			span = span.Cover(aliasSpan)
		}

		entries = append(entries, entry{name: name, alias: alias, span: span})

		if !p.at(token.Comma) {
			break
		}
		p.advance()
		p.skipNewlines()
	}

	if _, ok := p.expect(token.KwFrom, diag.SynExpectFrom, "expected 'from' in import"); !ok {
		return false
	}

	if !p.at(token.Ident) {
		p.err(diag.SynBadImport, "expected module name after 'from'")
		return false
	}
	module, ok := p.parseName()
	if !ok {
		return false
	}
	moduleSpan := p.arenas.Names.Get(module).Span

	if !p.terminator() {
		return false
	}

	file := p.arenas.Files.Get(p.file)
	for _, e := range entries {
		id := p.arenas.Imports.New(e.span.Cover(moduleSpan), e.name, e.alias, module)
		file.Imports = append(file.Imports, id)
	}
	return true
}
