package parser

import (
	"context"
	"slices"

	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/lexer"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// Options configure one parse.
type Options struct {
	// Reporter receives syntax diagnostics. Nil drops them.
	Reporter diag.Reporter
	// MaxErrors stops reporting (not parsing) after this many errors;
	// 0 means unlimited.
	MaxErrors     uint
	CurrentErrors uint
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result is the outcome of parsing one file. File is always a valid ID;
// a file with errors still gets a best-effort tree with Bad placeholders.
type Result struct {
	File ast.FileID
}

// Parser holds per-file parse state.
type Parser struct {
	lx     *lexer.Lexer
	arenas *ast.Builder
	file   ast.FileID
	fs     *source.FileSet
	opts   Options

	// lastSpan is the span of the last consumed token, kept so
	// diagnostics at EOF can point just past real input.
	lastSpan source.Span

	// stmtsSeen flips once a top-level statement has been parsed;
	// function definitions after that point get a diagnostic.
	stmtsSeen bool
	usingSeen bool
	itemsSeen bool
}

// ParseFile parses one file into the builder's arenas. The context is
// consulted between top-level items so directory-wide parses can be
// canceled without tearing down mid-statement.
func ParseFile(
	ctx context.Context,
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:     lx,
		arenas: arenas,
		fs:     fs,
		opts:   opts,
	}
	p.file = arenas.Files.New(lx.Peek().Span)

	p.parseModule(ctx)
	return Result{File: p.file}
}

// parseModule is the top-level loop: optional using block, then function
// definitions and script-style statements in source order.
func (p *Parser) parseModule(ctx context.Context) {
	startSpan := p.lx.Peek().Span
	p.skipNewlines()

	for !p.at(token.EOF) {
		if ctx != nil && ctx.Err() != nil {
			break
		}
		switch p.lx.Peek().Kind {
		case token.KwUsing:
			p.parseUsingBlock()

		case token.KwFun:
			if p.stmtsSeen {
				p.report(diag.SynFnAfterStmts, diag.SevWarning, p.lx.Peek().Span,
					"function defined after top-level statements")
			}
			if id, ok := p.parseFn(); ok {
				file := p.arenas.Files.Get(p.file)
				file.Fns = append(file.Fns, id)
			} else {
				p.resyncTopLevel()
			}
			p.itemsSeen = true

		default:
			id, ok := p.parseStmt()
			if !ok {
				p.resyncTopLevel()
			}
			if id.IsValid() {
				file := p.arenas.Files.Get(p.file)
				file.Stmts = append(file.Stmts, id)
			}
			p.stmtsSeen = true
			p.itemsSeen = true
		}
		p.skipNewlines()
	}

	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseIdent expects an identifier and interns it.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.Interner.Intern(tok.Text), tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+describeToken(p.lx.Peek()))
	return source.NoStringID, p.getDiagnosticSpan(), false
}

// parseName assembles a dotted path: Ident ('.' Ident)*. The lexer never
// fuses dots, so the parser owns the path invariant (non-empty segments).
func (p *Parser) parseName() (ast.NameID, bool) {
	first, firstSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoNameID, false
	}
	segments := []source.StringID{first}
	span := firstSpan

	for p.at(token.Dot) && p.lx.PeekAt(1).Kind == token.Ident {
		p.advance() // '.'
		seg, segSpan, _ := p.parseIdent()
		segments = append(segments, seg)
		span = span.Cover(segSpan)
	}

	return p.arenas.Names.New(span, segments), true
}

// parseTypeName parses the type position: a dotted name.
func (p *Parser) parseTypeName() (ast.NameID, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynExpectType, "expected type name, got "+describeToken(p.lx.Peek()))
		return ast.NoNameID, false
	}
	return p.parseName()
}
