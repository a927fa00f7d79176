package lexer

import (
	"sheeppig/internal/dialect"
	"sheeppig/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and resolves reserved words
// through LookupKeyword. Matching is case-sensitive; Token.Text is the
// exact source slice. Dots are never part of an identifier: the parser
// assembles dotted paths itself.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf && !isIdentStartByte(byte(r)) {
		return lx.scanOperatorOrPunct()
	}
	if r >= utf8RuneSelf && !isIdentStartRune(r) {
		return lx.scanOperatorOrPunct()
	}
	lx.bumpRune()
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf { // fast path
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	dialect.RecordIdent(lx.opts.DialectEvidence, text, sp)
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
