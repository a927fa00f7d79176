package parser

import (
	"sheeppig/internal/diag"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// advance consumes the next token and tracks lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan picks the best span for a diagnostic at the current
// position. At EOF the span points just past the last consumed token.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.After()
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		if p.opts.Enough() {
			return
		}
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
}

// skipNewlines consumes any run of Newline tokens. Blank and comment-only
// lines never materialize as statements.
func (p *Parser) skipNewlines() {
	for p.at(token.Newline) {
		p.advance()
	}
}

// terminator enforces the end of a statement: a Newline is consumed, a
// closing brace or EOF is accepted without consuming. Anything else is a
// SynExpectNewline error and the statement resyncs.
func (p *Parser) terminator() bool {
	switch p.lx.Peek().Kind {
	case token.Newline:
		p.advance()
		return true
	case token.RBrace, token.EOF:
		return true
	default:
		p.err(diag.SynExpectNewline, "expected end of statement, got "+describeToken(p.lx.Peek()))
		return false
	}
}

// resyncStmt is the panic-mode recovery for a malformed statement: skip
// to the next newline (consumed) or closing brace / EOF (left in place),
// so one bad statement costs one diagnostic.
func (p *Parser) resyncStmt() {
	for {
		switch p.lx.Peek().Kind {
		case token.Newline:
			p.advance()
			return
		case token.RBrace, token.EOF:
			return
		default:
			p.advance()
		}
	}
}

// resyncTopLevel recovers at module scope. resyncStmt leaves a closing
// brace in place for an enclosing block to consume, but the top level
// has no enclosing block: a brace the resync stopped at is stray and
// must be consumed, or the module loop would never advance past it.
func (p *Parser) resyncTopLevel() {
	p.resyncStmt()
	if p.at(token.RBrace) {
		p.advance()
	}
}

// resyncUntil skips tokens until one of the stop kinds (left in place)
// or EOF.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(stop...) {
		p.advance()
	}
}

// describeToken renders a token for an error message.
func describeToken(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Newline:
		return "end of line"
	case token.Invalid:
		if tok.Text != "" {
			return "\"" + tok.Text + "\""
		}
		return "invalid token"
	default:
		if tok.Text != "" {
			return "\"" + tok.Text + "\""
		}
		return tok.Kind.String()
	}
}
