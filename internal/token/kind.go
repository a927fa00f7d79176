package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token produced during recovery.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline is the statement terminator. A run of blank lines folds
	// into a single Newline token.
	Newline

	// Ident represents an identifier segment.
	Ident

	// KwUsing represents the 'using' keyword.
	KwUsing // using
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit
	// BoolLit represents 'true' or 'false'.
	BoolLit
	// NoneLit represents the 'None' literal.
	NoneLit

	// Plus represents the '+' operator.
	Plus // +
	// Minus represents the '-' operator.
	Minus // -
	// Star represents the '*' operator.
	Star // *
	// Slash represents the '/' operator.
	Slash // /
	// Backslash represents the '\' integer-division operator.
	Backslash // \
	// Percent represents the '%' operator.
	Percent // %
	// StarStar represents the '**' exponentiation operator.
	StarStar // **
	// Amp represents the '&' operator.
	Amp // &
	// Pipe represents the '|' operator.
	Pipe // |
	// Caret represents the '^' operator.
	Caret // ^
	// Tilde represents the '~' operator.
	Tilde // ~
	// Shl represents the '<<' operator.
	Shl // <<
	// Shr represents the '>>' operator.
	Shr // >>
	// AndAnd represents the '&&' operator.
	AndAnd // &&
	// OrOr represents the '||' operator.
	OrOr // ||
	// Bang represents the '!' operator.
	Bang // !
	// EqEq represents the '==' operator.
	EqEq // ==
	// BangEq represents the '!=' operator.
	BangEq // !=
	// Lt represents the '<' operator.
	Lt // <
	// Gt represents the '>' operator.
	Gt // >
	// LtEq represents the '<=' operator.
	LtEq // <=
	// GtEq represents the '>=' operator.
	GtEq // >=

	// Assign represents the '=' statement operator.
	Assign // =
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// BackslashAssign represents '\='.
	BackslashAssign // \=
	// PercentAssign represents '%='.
	PercentAssign // %=
	// StarStarAssign represents '**='.
	StarStarAssign // **=
	// ShlAssign represents '<<='.
	ShlAssign // <<=
	// ShrAssign represents '>>='.
	ShrAssign // >>=
	// AmpAssign represents '&='.
	AmpAssign // &=
	// PipeAssign represents '|='.
	PipeAssign // |=
	// CaretAssign represents '^='.
	CaretAssign // ^=
	// AndAndAssign represents '&&='.
	AndAndAssign // &&=
	// OrOrAssign represents '||='.
	OrOrAssign // ||=

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Colon represents ':'.
	Colon // :
	// Question represents '?'.
	Question // ?

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Newline:         "Newline",
	Ident:           "Ident",
	KwUsing:         "KwUsing",
	KwAs:            "KwAs",
	KwFrom:          "KwFrom",
	KwFun:           "KwFun",
	KwReturn:        "KwReturn",
	KwVar:           "KwVar",
	KwIf:            "KwIf",
	KwElse:          "KwElse",
	KwFor:           "KwFor",
	KwIn:            "KwIn",
	KwWhile:         "KwWhile",
	IntLit:          "IntLit",
	FloatLit:        "FloatLit",
	StringLit:       "StringLit",
	CharLit:         "CharLit",
	BoolLit:         "BoolLit",
	NoneLit:         "NoneLit",
	Plus:            "Plus",
	Minus:           "Minus",
	Star:            "Star",
	Slash:           "Slash",
	Backslash:       "Backslash",
	Percent:         "Percent",
	StarStar:        "StarStar",
	Amp:             "Amp",
	Pipe:            "Pipe",
	Caret:           "Caret",
	Tilde:           "Tilde",
	Shl:             "Shl",
	Shr:             "Shr",
	AndAnd:          "AndAnd",
	OrOr:            "OrOr",
	Bang:            "Bang",
	EqEq:            "EqEq",
	BangEq:          "BangEq",
	Lt:              "Lt",
	Gt:              "Gt",
	LtEq:            "LtEq",
	GtEq:            "GtEq",
	Assign:          "Assign",
	PlusAssign:      "PlusAssign",
	MinusAssign:     "MinusAssign",
	StarAssign:      "StarAssign",
	SlashAssign:     "SlashAssign",
	BackslashAssign: "BackslashAssign",
	PercentAssign:   "PercentAssign",
	StarStarAssign:  "StarStarAssign",
	ShlAssign:       "ShlAssign",
	ShrAssign:       "ShrAssign",
	AmpAssign:       "AmpAssign",
	PipeAssign:      "PipeAssign",
	CaretAssign:     "CaretAssign",
	AndAndAssign:    "AndAndAssign",
	OrOrAssign:      "OrOrAssign",
	LParen:          "LParen",
	RParen:          "RParen",
	LBrace:          "LBrace",
	RBrace:          "RBrace",
	LBracket:        "LBracket",
	RBracket:        "RBracket",
	Comma:           "Comma",
	Dot:             "Dot",
	Colon:           "Colon",
	Question:        "Question",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

var kindLexemes = map[Kind]string{
	Newline:         "newline",
	Plus:            "+",
	Minus:           "-",
	Star:            "*",
	Slash:           "/",
	Backslash:       "\\",
	Percent:         "%",
	StarStar:        "**",
	Amp:             "&",
	Pipe:            "|",
	Caret:           "^",
	Tilde:           "~",
	Shl:             "<<",
	Shr:             ">>",
	AndAnd:          "&&",
	OrOr:            "||",
	Bang:            "!",
	EqEq:            "==",
	BangEq:          "!=",
	Lt:              "<",
	Gt:              ">",
	LtEq:            "<=",
	GtEq:            ">=",
	Assign:          "=",
	PlusAssign:      "+=",
	MinusAssign:     "-=",
	StarAssign:      "*=",
	SlashAssign:     "/=",
	BackslashAssign: "\\=",
	PercentAssign:   "%=",
	StarStarAssign:  "**=",
	ShlAssign:       "<<=",
	ShrAssign:       ">>=",
	AmpAssign:       "&=",
	PipeAssign:      "|=",
	CaretAssign:     "^=",
	AndAndAssign:    "&&=",
	OrOrAssign:      "||=",
	LParen:          "(",
	RParen:          ")",
	LBrace:          "{",
	RBrace:          "}",
	LBracket:        "[",
	RBracket:        "]",
	Comma:           ",",
	Dot:             ".",
	Colon:           ":",
	Question:        "?",
	KwUsing:         "using",
	KwAs:            "as",
	KwFrom:          "from",
	KwFun:           "fun",
	KwReturn:        "return",
	KwVar:           "var",
	KwIf:            "if",
	KwElse:          "else",
	KwFor:           "for",
	KwIn:            "in",
	KwWhile:         "while",
}

// Lexeme returns the canonical source text for fixed-spelling kinds
// ("+", "fun", ...) and "" for open-ended kinds like Ident or IntLit.
func (k Kind) Lexeme() string {
	return kindLexemes[k]
}
