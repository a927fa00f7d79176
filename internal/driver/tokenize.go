package driver

import (
	"sheeppig/internal/diag"
	"sheeppig/internal/dialect"
	"sheeppig/internal/lexer"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// TokenizeResult holds the token stream and diagnostics for one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file and runs the lexer over it, collecting every
// token up to and including EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens := collectTokens(file, bag, nil)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// collectTokens drains the lexer into a slice. When ev is non-nil,
// consecutive token pairs are fed to the dialect pattern matcher as a
// side channel; token output is unaffected.
func collectTokens(file *source.File, bag *diag.Bag, ev *dialect.Evidence) []token.Token {
	lx := lexer.New(file, lexer.Options{
		Reporter:        lexer.BagReporter(bag),
		DialectEvidence: ev,
	})

	var tokens []token.Token
	var prev token.Token
	for {
		tok := lx.Next()
		if ev != nil && len(tokens) > 0 {
			dialect.ObserveTokenPair(ev, prev, tok)
		}
		tokens = append(tokens, tok)
		prev = tok
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}
