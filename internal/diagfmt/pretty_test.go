package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"sheeppig/internal/diag"
	"sheeppig/internal/source"
)

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("x = 1\ny = ]\n")
	fileID := fs.AddVirtual("test.sp", content)

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectExpression,
		source.Span{File: fileID, Start: 10, End: 11},
		"expected expression"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	out := buf.String()
	if !strings.Contains(out, "test.sp:2:5: ERROR SYN2004: expected expression") {
		t.Errorf("header missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "y = ]") {
		t.Errorf("source line missing:\n%s", out)
	}
	// caret under column 5
	if !strings.Contains(out, "|     ^") {
		t.Errorf("caret misaligned:\n%s", out)
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("foobar = 1\n")
	fileID := fs.AddVirtual("test.sp", content)

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnexpectedToken,
		source.Span{File: fileID, Start: 0, End: 6},
		"what is foobar"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.Contains(buf.String(), "^~~~~~") {
		t.Errorf("underline must cover the 6-byte span:\n%s", buf.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("val x = 1\n")
	fileID := fs.AddVirtual("test.sp", content)
	span := source.Span{File: fileID, Start: 0, End: 3}

	d := diag.NewError(diag.SynUnexpectedToken, span, "unknown keyword 'val'")
	d = d.WithNote(span, "did you mean 'var'?")
	d = d.WithFixSuggestion(diag.Fix{
		Title:       "replace 'val' with 'var'",
		IsPreferred: true,
		Edits:       []diag.TextEdit{{Span: span, NewText: "var", OldText: "val"}},
	})

	bag := diag.NewBag(0)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	})

	out := buf.String()
	if !strings.Contains(out, "did you mean 'var'?") {
		t.Errorf("note missing:\n%s", out)
	}
	if !strings.Contains(out, "replace 'val' with 'var' (preferred)") {
		t.Errorf("fix title missing:\n%s", out)
	}
	if !strings.Contains(out, "- val x = 1") || !strings.Contains(out, "+ var x = 1") {
		t.Errorf("preview missing:\n%s", out)
	}
}

func TestPrettyNoColorByDefault(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sp", []byte("x = ]\n"))

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectExpression,
		source.Span{File: fileID, Start: 4, End: 5}, "expected expression"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("color escapes present with Color=false:\n%q", buf.String())
	}
}

func TestPrettyTabAlignment(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("\tx = ]\n")
	fileID := fs.AddVirtual("test.sp", content)

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectExpression,
		source.Span{File: fileID, Start: 5, End: 6}, "expected expression"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	// tab expands to 4 columns in the underline padding ("\tx = " -> 8 cells)
	lines := strings.Split(buf.String(), "\n")
	var caretLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	if caretLine == "" {
		t.Fatalf("no caret line:\n%s", buf.String())
	}
	if !strings.HasSuffix(caretLine, strings.Repeat(" ", 8)+"^") {
		t.Errorf("caret not aligned past the tab: %q", caretLine)
	}
}

func TestPrettyLocationFreeDiagnostic(t *testing.T) {
	// Load failures carry a zero span. They must render headed by the
	// code alone, never attributed to whichever file happens to exist.
	fs := source.NewFileSet()
	fs.AddVirtual("innocent.sp", []byte("x = 1\n"))

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
		"failed to load file: no such file"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	out := buf.String()
	if !strings.Contains(out, "ERROR IO4001: failed to load file") {
		t.Errorf("location-free header missing:\n%s", out)
	}
	if strings.Contains(out, "innocent.sp") {
		t.Errorf("load error attributed to an unrelated file:\n%s", out)
	}
}

func TestPrettyLocationFreeOnEmptyFileSet(t *testing.T) {
	fs := source.NewFileSet()

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
		"failed to load file: permission denied"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	if !strings.Contains(buf.String(), "IO4001") {
		t.Errorf("diagnostic not rendered:\n%s", buf.String())
	}
}
