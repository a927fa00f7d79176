package token

import (
	"sheeppig/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, char,
// boolean, or None literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit, BoolLit, NoneLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Backslash, Percent, StarStar,
		Amp, Pipe, Caret, Tilde, Shl, Shr, AndAnd, OrOr, Bang,
		EqEq, BangEq, Lt, Gt, LtEq, GtEq,
		Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		BackslashAssign, PercentAssign, StarStarAssign, ShlAssign,
		ShrAssign, AmpAssign, PipeAssign, CaretAssign, AndAndAssign,
		OrOrAssign,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		Comma, Dot, Colon, Question:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwUsing, KwAs, KwFrom, KwFun, KwReturn, KwVar,
		KwIf, KwElse, KwFor, KwIn, KwWhile:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier segment.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsAssignOp reports whether the token is '=' or a compound
// assignment operator. Assignment operators only appear at statement
// level; they are never part of the expression grammar.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		BackslashAssign, PercentAssign, StarStarAssign, ShlAssign,
		ShrAssign, AmpAssign, PipeAssign, CaretAssign, AndAndAssign,
		OrOrAssign:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether the token can join two expressions.
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case OrOr, AndAnd, Pipe, Caret, Amp, EqEq, BangEq,
		Lt, Gt, LtEq, GtEq, Shl, Shr,
		Plus, Minus, Star, Slash, Backslash, Percent, StarStar:
		return true
	default:
		return false
	}
}
