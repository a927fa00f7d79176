package dialect

import (
	"fmt"

	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// ObserveTokenPair records token-pattern evidence, if any, using a sliding
// 2-token window. The caller feeds tokens in source order.
func ObserveTokenPair(e *Evidence, prev, tok token.Token) {
	if e == nil {
		return
	}

	adjacent := prev.Span.File == tok.Span.File && prev.Span.End == tok.Span.Start

	// Go short variable declaration: :=
	if prev.Kind == token.Colon && tok.Kind == token.Assign && adjacent {
		e.Add(Hint{
			Dialect: Go,
			Score:   5,
			Reason:  "go short variable declaration `:=`",
			Span:    prev.Span.Cover(tok.Span),
		})
	}

	// Rust/Python return-type arrow: ->
	if prev.Kind == token.Minus && tok.Kind == token.Gt && adjacent {
		e.Add(Hint{
			Dialect: Rust,
			Score:   3,
			Reason:  "return-type arrow `->`",
			Span:    prev.Span.Cover(tok.Span),
		})
	}

	// TypeScript/JS fat arrow: =>
	if prev.Kind == token.Assign && tok.Kind == token.Gt && adjacent {
		e.Add(Hint{
			Dialect: TypeScript,
			Score:   4,
			Reason:  "arrow function syntax `=>`",
			Span:    prev.Span.Cover(tok.Span),
		})
	}

	// Rust macro call syntax: ident!(...)
	if prev.Kind == token.Ident && tok.Kind == token.Bang && adjacent {
		reason := "rust macro call syntax `ident!`"
		score := 4
		if prev.Text == "println" {
			reason = "rust macro call `println!`"
			score = 6
		}
		e.Add(Hint{
			Dialect: Rust,
			Score:   score,
			Reason:  reason,
			Span:    prev.Span.Cover(tok.Span),
		})
	}

	// Rust-ish path roots written with a double colon: crate: :, self: :
	// never lex as one token here, so approximate with ident+colon+colon.
	if prev.Kind == token.Ident && tok.Kind == token.Colon && adjacent {
		switch prev.Text {
		case "crate", "super":
			e.Add(Hint{
				Dialect: Rust,
				Score:   3,
				Reason:  fmt.Sprintf("rust path syntax `%s::`", prev.Text),
				Span:    prev.Span.Cover(tok.Span),
			})
		}
	}
}

// RecordUnknownChar notes stray characters that belong to foreign syntax.
func RecordUnknownChar(e *Evidence, ch byte, span source.Span) {
	if e == nil {
		return
	}
	switch ch {
	case '@':
		e.Add(Hint{
			Dialect: Python,
			Score:   3,
			Reason:  "decorator syntax `@`",
			Span:    span,
		})
	case ';':
		e.Add(Hint{
			Dialect: Go,
			Score:   1,
			Reason:  "semicolon statement terminator",
			Span:    span,
		})
	}
}
