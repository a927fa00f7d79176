package token

var keywords = map[string]Kind{
	"using":  KwUsing,
	"as":     KwAs,
	"from":   KwFrom,
	"fun":    KwFun,
	"return": KwReturn,
	"var":    KwVar,
	"if":     KwIf,
	"else":   KwElse,
	"for":    KwFor,
	"in":     KwIn,
	"while":  KwWhile,

	// Literal words share the keyword table; the lexer resolves them
	// to literal kinds in one lookup.
	"true":  BoolLit,
	"false": BoolLit,
	"None":  NoneLit,
}

// LookupKeyword maps an identifier spelling to its reserved kind.
// Matching is case-sensitive: 'If' is an identifier, 'None' is not.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
