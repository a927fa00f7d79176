package parser_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/lexer"
	"sheeppig/internal/parser"
	"sheeppig/internal/source"
)

func benchParse(b *testing.B, program []byte) {
	fs := source.NewFileSetWithBase("")
	fileID := fs.AddVirtual("bench.sp", program)
	file := fs.Get(fileID)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		builder := ast.NewBuilder(ast.Hints{}, nil)
		bag := diag.NewBag(0)
		lx := lexer.New(file, lexer.Options{})
		parser.ParseFile(context.Background(), fs, lx, builder, parser.Options{
			Reporter: &diag.BagReporter{Bag: bag},
		})
	}
}

func BenchmarkParseShort(b *testing.B) {
	src := []byte("using { sqrt from math }\nfun main() {}\n")
	benchParse(b, src)
}

func BenchmarkParseLarge(b *testing.B) {
	var buf bytes.Buffer
	buf.WriteString("using { sqrt from math }\n")
	for i := 0; i < 2000; i++ {
		fmt.Fprintf(&buf, "fun f%d(a: int): int {\n    var x: int = a + 1\n    return x ** 2\n}\n", i)
	}
	benchParse(b, buf.Bytes())
}
