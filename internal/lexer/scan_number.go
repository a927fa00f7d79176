package lexer

import (
	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

// scanNumber scans decimal integer and float literals:
//
//	[0-9][0-9_]*                      integer
//	int '.' [0-9][0-9_]*              float
//	either form [eE] [+-]? [0-9][0-9_]*  float
//
// A digit run followed by '.' with no digit after it stays an integer;
// the dot is left for the operator scanner. Underscores are separators
// only: a run may not end with one, and a missing exponent digit is an
// error (LexBadNumber in both cases). Token.Text is the raw slice; no
// normalization happens here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit
	bad := false

	badNumber := func(msg string) {
		if !bad {
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), msg)
			bad = true
		}
	}

	if trailing := lx.scanDigitRun(); trailing {
		badNumber("digit separator cannot end a number")
	}

	// fractional part: only when a digit follows the dot
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		if trailing := lx.scanDigitRun(); trailing {
			badNumber("digit separator cannot end a number")
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if trailing := lx.scanDigitRun(); trailing {
			badNumber("digit separator cannot end a number")
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if bad {
		kind = token.Invalid
	}
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanDigitRun consumes [0-9_]+ and reports whether it ended on '_'.
func (lx *Lexer) scanDigitRun() (trailingSep bool) {
	last := byte(0)
	for {
		b := lx.cursor.Peek()
		if !isDec(b) && b != '_' {
			break
		}
		last = b
		lx.cursor.Bump()
	}
	return last == '_'
}
