package lexer

import (
	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

// isEscapeChar reports whether '\'+b is a recognized escape.
func isEscapeChar(b byte) bool {
	switch b {
	case 'n', 'r', 't', '\'', '"', '\\', '0':
		return true
	default:
		return false
	}
}

// scanString scans a '"' literal. Escapes: \n \r \t \' \" \\ \0.
// A backslash immediately before the line break continues the string on
// the next line. A raw newline or EOF inside the literal reports
// LexUnterminatedString; recovery stops before the newline so the
// statement still terminates. Unknown escapes report LexUnknownEscape
// and scanning continues.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		case b == '\\':
			escStart := lx.cursor.Mark()
			lx.cursor.Bump()
			next := lx.cursor.Peek()
			if next == '\n' || next == '\r' {
				// continuation: the literal resumes on the next line
				lx.cursor.Eat('\r')
				lx.cursor.Eat('\n')
				continue
			}
			if lx.cursor.EOF() {
				continue // EOF right after '\'; loop exits and reports
			}
			lx.cursor.Bump()
			if !isEscapeChar(next) {
				lx.errLex(diag.LexUnknownEscape, lx.cursor.SpanFrom(escStart), "unknown escape sequence")
			}

		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}

		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanChar scans a single-quoted literal holding exactly one scalar (escapes
// allowed). Empty or multi-scalar content reports LexBadCharLiteral;
// a newline or EOF before the closing quote reports LexUnterminatedChar.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	bad := func(code diag.Code, msg string) token.Token {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(code, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	scalars := 0
	for {
		if lx.cursor.EOF() {
			return bad(diag.LexUnterminatedChar, "unterminated character literal")
		}
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			break
		}
		if b == '\n' {
			return bad(diag.LexUnterminatedChar, "newline in character literal")
		}
		if b == '\\' {
			escStart := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return bad(diag.LexUnterminatedChar, "unterminated character literal")
			}
			next := lx.cursor.Bump()
			if !isEscapeChar(next) {
				lx.errLex(diag.LexUnknownEscape, lx.cursor.SpanFrom(escStart), "unknown escape sequence")
			}
			scalars++
			continue
		}
		lx.bumpRune()
		scalars++
	}

	sp := lx.cursor.SpanFrom(start)
	if scalars != 1 {
		lx.errLex(diag.LexBadCharLiteral, sp, "character literal must hold exactly one character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
