package lexer

import (
	"sheeppig/internal/diag"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// Lexer produces significant tokens on demand. Trivia (spaces, comments,
// continuations, folded blank lines) rides on the next token's Leading.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   []token.Token // lookahead buffer filled by PeekAt
	hold   []token.Trivia
	count  int
	capped bool // token limit reached; only EOF from here on
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading already
// collected. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[1:]
		return tok
	}
	return lx.lex()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	return lx.PeekAt(0)
}

// PeekAt returns the k-th upcoming token (0 = what Next would return)
// without consuming anything. The statement grammar needs two tokens of
// lookahead to tell `x: int = ...` from `x = ...` and `x(...)`.
func (lx *Lexer) PeekAt(k int) token.Token {
	for len(lx.look) <= k {
		lx.look = append(lx.look, lx.lex())
	}
	return lx.look[k]
}

func (lx *Lexer) lex() token.Token {
	if lx.capped {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if lx.opts.MaxTokens > 0 && lx.count >= lx.opts.MaxTokens {
		lx.capped = true
		sp := lx.emptySpan()
		lx.errLex(diag.LexTokenLimit, sp, "token limit reached; remaining input ignored")
		return token.Token{Kind: token.EOF, Span: sp}
	}

	// Leading collected so far belongs to the token scanned now;
	// scanNewline may stash fold trivia for the following one.
	leading := lx.hold
	lx.hold = nil

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '\n':
		tok = lx.scanNewline()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanChar()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = leading
	lx.count++
	return tok
}

// scanNewline emits a Newline token for the first newline byte and folds
// the rest of the run (blank and comment-only lines included) into trivia
// held for the next token.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	tok := token.Token{
		Kind: token.Newline,
		Span: lx.cursor.SpanFrom(start),
		Text: "\n",
	}

	for {
		lx.collectLeadingTrivia()
		if lx.cursor.EOF() || lx.cursor.Peek() != '\n' {
			break
		}
		m := lx.cursor.Mark()
		for lx.cursor.Peek() == '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(m)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: token.TriviaNewline,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
	}
	return tok
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
