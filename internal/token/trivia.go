package token

import "sheeppig/internal/source"

// TriviaKind classifies the non-token source text attached to tokens.
type TriviaKind uint8

const (
	// TriviaSpace covers runs of spaces, tabs, and stray carriage returns.
	TriviaSpace TriviaKind = iota
	// TriviaNewline covers newline bytes folded into a token's leading
	// trivia (blank lines absorbed by newline-run folding).
	TriviaNewline
	// TriviaLineComment covers '#' comments up to end of line.
	TriviaLineComment
	// TriviaBlockComment covers '/* ... */' comments, possibly multi-line.
	TriviaBlockComment
	// TriviaLineContinuation covers a backslash-newline pair.
	TriviaLineContinuation
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaLineContinuation:
		return "LineContinuation"
	default:
		return "Trivia(?)"
	}
}

// Trivia is one piece of skipped source text. The parser never sees
// trivia; it rides on the next token for tooling that wants it.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
