package lexer

import (
	"sheeppig/internal/diag"
	"sheeppig/internal/dialect"
	"sheeppig/internal/source"
)

// Options configure one lexing pass.
type Options struct {
	// Reporter receives lexical diagnostics. Nil drops them; lexing
	// continues either way.
	Reporter diag.Reporter
	// MaxTokens caps the number of significant tokens emitted; 0 means
	// unlimited. Hitting the cap reports LexTokenLimit once and the
	// lexer returns EOF from then on.
	MaxTokens int
	// DialectEvidence, when non-nil, collects foreign-syntax hints as a
	// side channel. It never changes token output.
	DialectEvidence *dialect.Evidence
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
}
