package diag_test

import (
	"strings"
	"testing"

	"sheeppig/internal/diag"
	"sheeppig/internal/source"
)

func TestFormatGoldenDiagnosticsStableOrder(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.sp", []byte("fun main() {\nx = \n}\n"))

	diags := []diag.Diagnostic{
		diag.NewError(diag.SynExpectNewline, source.Span{File: id, Start: 17, End: 18}, "second"),
		diag.NewError(diag.SynExpectExpression, source.Span{File: id, Start: 13, End: 14}, "first"),
	}

	got := diag.FormatGoldenDiagnostics(diags, fs, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Fatalf("unexpected order:\n%s", got)
	}
	if !strings.HasPrefix(lines[0], "error SYN2004 main.sp:2:1") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
}

func TestFormatGoldenDiagnosticsIncludesNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.sp", []byte("var x: int = 1\n"))

	d := diag.NewError(diag.SynExpectType, source.Span{File: id, Start: 7, End: 10}, "bad type").
		WithNote(source.Span{File: id, Start: 0, End: 3}, "declared here")

	got := diag.FormatGoldenDiagnostics([]diag.Diagnostic{d}, fs, true)
	if !strings.Contains(got, "note SYN2005") {
		t.Fatalf("missing note line:\n%s", got)
	}
}
