package dialect

import (
	"strings"

	"sheeppig/internal/source"
)

type keywordSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

var keywordSignals = map[string][]keywordSignal{
	// Rust-ish
	"fn":    {{Dialect: Rust, Score: 5, Reason: "rust keyword `fn`"}},
	"impl":  {{Dialect: Rust, Score: 6, Reason: "rust keyword `impl`"}},
	"trait": {{Dialect: Rust, Score: 6, Reason: "rust keyword `trait`"}},
	"crate": {{Dialect: Rust, Score: 5, Reason: "rust keyword `crate`"}},
	"mut":   {{Dialect: Rust, Score: 4, Reason: "rust keyword `mut`"}},
	"match": {{Dialect: Rust, Score: 3, Reason: "rust keyword `match`"}},
	// `let` is shared Rust/TS; keep it split and low.
	"let": {
		{Dialect: Rust, Score: 2, Reason: "rust keyword `let`"},
		{Dialect: TypeScript, Score: 2, Reason: "typescript keyword `let`"},
	},

	// Go-ish
	"func":    {{Dialect: Go, Score: 5, Reason: "go keyword `func`"}},
	"defer":   {{Dialect: Go, Score: 5, Reason: "go keyword `defer`"}},
	"chan":    {{Dialect: Go, Score: 4, Reason: "go keyword `chan`"}},
	"package": {{Dialect: Go, Score: 4, Reason: "go keyword `package`"}},
	"select":  {{Dialect: Go, Score: 2, Reason: "go keyword `select`"}},
	"range":   {{Dialect: Go, Score: 2, Reason: "go keyword `range`"}},
	"go":      {{Dialect: Go, Score: 2, Reason: "go keyword `go`"}},
	// `interface` is ambiguous (Go/TS); keep it low-signal for both.
	"interface": {
		{Dialect: Go, Score: 1, Reason: "go keyword `interface`"},
		{Dialect: TypeScript, Score: 1, Reason: "typescript keyword `interface`"},
	},

	// TypeScript-ish
	"function":   {{Dialect: TypeScript, Score: 4, Reason: "typescript keyword `function`"}},
	"implements": {{Dialect: TypeScript, Score: 4, Reason: "typescript keyword `implements`"}},
	"extends":    {{Dialect: TypeScript, Score: 4, Reason: "typescript keyword `extends`"}},
	"namespace":  {{Dialect: TypeScript, Score: 4, Reason: "typescript keyword `namespace`"}},
	"readonly":   {{Dialect: TypeScript, Score: 3, Reason: "typescript keyword `readonly`"}},
	"undefined":  {{Dialect: TypeScript, Score: 3, Reason: "typescript `undefined`"}},

	// Python-ish
	"def":    {{Dialect: Python, Score: 5, Reason: "python keyword `def`"}},
	"elif":   {{Dialect: Python, Score: 5, Reason: "python keyword `elif`"}},
	"lambda": {{Dialect: Python, Score: 4, Reason: "python keyword `lambda`"}},
	"pass":   {{Dialect: Python, Score: 3, Reason: "python keyword `pass`"}},
	"self":   {{Dialect: Python, Score: 2, Reason: "python `self`"}},
}

// RecordIdent collects keyword evidence for an identifier token. It tries
// an exact match, and also a lowercased match for keyword-like spellings
// (e.g. "Def").
func RecordIdent(e *Evidence, ident string, span source.Span) {
	if e == nil || ident == "" {
		return
	}
	recordIdentKey(e, ident, span)
	if lower := strings.ToLower(ident); lower != ident {
		recordIdentKey(e, lower, span)
	}
}

func recordIdentKey(e *Evidence, ident string, span source.Span) {
	signals := keywordSignals[ident]
	for _, sig := range signals {
		e.Add(Hint{
			Dialect: sig.Dialect,
			Score:   sig.Score,
			Reason:  sig.Reason,
			Span:    span,
		})
	}
}
