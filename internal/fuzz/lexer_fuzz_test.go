package fuzztests

import (
	"testing"

	"sheeppig/internal/diag"
	"sheeppig/internal/lexer"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.sp", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		prevEnd := uint32(0)
		for {
			tok := lx.Next()
			if tok.Span.End < tok.Span.Start {
				t.Fatalf("inverted span %v for token %v", tok.Span, tok.Kind)
			}
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %v starts at %d before previous end %d", tok.Kind, tok.Span.Start, prevEnd)
			}
			if tok.Span.End > uint32(len(file.Content)) {
				t.Fatalf("token %v span %v exceeds input length %d", tok.Kind, tok.Span, len(file.Content))
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}

// FuzzLexerIdempotent re-lexes the same input and requires identical
// token streams; the lexer has no hidden state across runs.
func FuzzLexerIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.sp", input)
		file := fs.Get(fileID)

		first := lexAll(file)
		second := lexAll(file)
		if len(first) != len(second) {
			t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Kind != second[i].Kind || first[i].Span != second[i].Span {
				t.Fatalf("token %d differs: %v vs %v", i, first[i], second[i])
			}
		}
	})
}

func lexAll(file *source.File) []token.Token {
	lx := lexer.New(file, lexer.Options{})
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
