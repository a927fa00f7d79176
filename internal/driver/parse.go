package driver

import (
	"context"

	"fortio.org/safecast"

	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/lexer"
	"sheeppig/internal/parser"
	"sheeppig/internal/source"
)

// ParseResult holds the syntax tree and diagnostics for one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse loads a file and parses it into a fresh builder. Lexical and
// syntax diagnostics share one bag.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	builder := ast.NewBuilder(ast.Hints{}, nil)
	astFile := parseIntoBuilder(ctx, fs, file, builder, bag, maxDiagnostics)

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  astFile,
		Bag:     bag,
	}, nil
}

// parseIntoBuilder runs a single parse pass. The lexer reports into the
// same bag as the parser, so the error budget covers both.
func parseIntoBuilder(
	ctx context.Context,
	fs *source.FileSet,
	file *source.File,
	builder *ast.Builder,
	bag *diag.Bag,
	maxDiagnostics int,
) ast.FileID {
	lx := lexer.New(file, lexer.Options{Reporter: lexer.BagReporter(bag)})

	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		maxErrors = 0
	}

	result := parser.ParseFile(ctx, fs, lx, builder, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	return result.File
}
