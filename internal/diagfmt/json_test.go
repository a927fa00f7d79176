package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sheeppig/internal/diag"
	"sheeppig/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("x = \"unterminated\n")
	fileID := fs.AddVirtual("test.sp", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 4, End: 17},
		"unterminated string literal",
	))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if output.Count != 1 {
		t.Errorf("count = %d, want 1", output.Count)
	}
	if len(output.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(output.Diagnostics))
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Errorf("severity = %s", d.Severity)
	}
	if d.Code != "LEX1002" {
		t.Errorf("code = %s", d.Code)
	}
	if d.Location.File != "test.sp" {
		t.Errorf("file = %s", d.Location.File)
	}
	if d.Location.StartByte != 4 || d.Location.EndByte != 17 {
		t.Errorf("bytes = %d..%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Errorf("position = %d:%d, want 1:5", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sp", []byte("abc\n"))

	bag := diag.NewBag(0)
	for i := 0; i < 5; i++ {
		bag.Add(diag.NewError(diag.SynUnexpectedToken,
			source.Span{File: fileID, Start: 0, End: 1}, "boom"))
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if output.Count != 2 {
		t.Errorf("count = %d, want 2", output.Count)
	}
	if bag.Len() != 5 {
		t.Errorf("bag itself must stay untouched, len = %d", bag.Len())
	}
}

func TestJSONFixesSortedPreferredFirst(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sp", []byte("val x = 1\n"))
	span := source.Span{File: fileID, Start: 0, End: 3}

	d := diag.NewError(diag.SynUnexpectedToken, span, "unknown keyword 'val'")
	d = d.WithFixSuggestion(diag.Fix{
		ID:    "later",
		Title: "remove it",
		Edits: []diag.TextEdit{{Span: span, NewText: "", OldText: "val"}},
	})
	d = d.WithFixSuggestion(diag.Fix{
		ID:          "preferred",
		Title:       "replace 'val' with 'var'",
		IsPreferred: true,
		Edits:       []diag.TextEdit{{Span: span, NewText: "var", OldText: "val"}},
	})

	bag := diag.NewBag(0)
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{IncludeFixes: true, IncludePreviews: true, PathMode: PathModeBasename}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	fixes := output.Diagnostics[0].Fixes
	if len(fixes) != 2 {
		t.Fatalf("fixes = %d, want 2", len(fixes))
	}
	if fixes[0].ID != "preferred" {
		t.Errorf("preferred fix must sort first, got %s", fixes[0].ID)
	}
	if len(fixes[0].Edits) != 1 {
		t.Fatalf("edits = %d", len(fixes[0].Edits))
	}
	edit := fixes[0].Edits[0]
	if len(edit.BeforeLines) == 0 || !strings.HasPrefix(edit.BeforeLines[0], "val") {
		t.Errorf("before preview = %v", edit.BeforeLines)
	}
	if len(edit.AfterLines) == 0 || !strings.HasPrefix(edit.AfterLines[0], "var") {
		t.Errorf("after preview = %v", edit.AfterLines)
	}
}

func TestJSONTimingNotesAlwaysIncluded(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sp", []byte("x = 1\n"))
	span := source.Span{File: fileID}

	d := diag.New(diag.SevInfo, diag.ObsTimings, span, "phase timings")
	d = d.WithNote(span, "tokenize: 1ms")

	bag := diag.NewBag(0)
	bag.Add(d)

	var buf bytes.Buffer
	// notes globally off; the timings payload still renders
	if err := JSON(&buf, bag, fs, JSONOpts{IncludeNotes: false}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(output.Diagnostics[0].Notes) != 1 {
		t.Errorf("timing notes = %d, want 1", len(output.Diagnostics[0].Notes))
	}
}

func TestSarifDocumentShape(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sp", []byte("x = ]\n"))

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectExpression,
		source.Span{File: fileID, Start: 4, End: 5}, "expected expression"))
	bag.Add(diag.New(diag.SevWarning, diag.SynFnAfterStmts,
		source.Span{File: fileID, Start: 0, End: 1}, "function after statements"))

	var buf bytes.Buffer
	meta := SarifRunMeta{ToolName: "sheeppig", ToolVersion: "0.1.0"}
	if err := Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatalf("Sarif() error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF JSON: %v", err)
	}
	if doc["version"] != "2.1.0" {
		t.Errorf("version = %v", doc["version"])
	}

	runs := doc["runs"].([]any)
	if len(runs) != 1 {
		t.Fatalf("runs = %d", len(runs))
	}
	run := runs[0].(map[string]any)
	results := run["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}
	first := results[0].(map[string]any)
	if first["level"] != "error" {
		t.Errorf("level = %v", first["level"])
	}
	if first["ruleId"] != diag.SynExpectExpression.ID() {
		t.Errorf("ruleId = %v", first["ruleId"])
	}
}
