package lexer

import (
	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

// collectLeadingTrivia appends the trivia run at the cursor to lx.hold.
//   - spaces, tabs, and stray '\r' coalesce into one TriviaSpace
//   - '#' to end of line is a TriviaLineComment
//   - '/* ... */' is a TriviaBlockComment; it does not nest, may span
//     lines, and an unterminated one is reported and clipped at EOF
//   - '\' immediately before a newline is a TriviaLineContinuation;
//     both bytes vanish and no Newline token is produced
//
// Newlines themselves are significant and stay for the caller.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaLineComment, start)
			continue
		}

		if b == '/' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '*' {
				lx.scanBlockCommentIntoHold()
				continue
			}
		}

		if b == '\\' {
			if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == '\n' || b1 == '\r') {
				lx.cursor.Bump() // '\'
				lx.cursor.Eat('\r')
				lx.cursor.Eat('\n')
				lx.holdTrivia(token.TriviaLineContinuation, start)
				continue
			}
		}

		break
	}
}

// scanBlockCommentIntoHold consumes '/* ... */'. No nesting: the first
// '*/' closes the comment regardless of any '/*' inside.
func (lx *Lexer) scanBlockCommentIntoHold() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	closed := false
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		if lx.cursor.Off+1 == lx.cursor.limit() {
			// lone last byte cannot start '*/'
			lx.cursor.Bump()
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaBlockComment,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
