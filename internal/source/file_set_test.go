package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.sp", []byte("hello world"), 0)
	if id1 == NoFileID {
		t.Error("first Add must issue a valid FileID")
	}

	latestID, exists := fs.GetLatest("test.sp")
	if !exists {
		t.Error("expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("expected latest ID %d, got %d", id1, latestID)
	}

	id2 := fs.Add("test.sp", []byte("hello universe"), 0)
	if id2 == id1 {
		t.Error("expected a fresh FileID for the second Add")
	}

	latestID, exists = fs.GetLatest("test.sp")
	if !exists {
		t.Error("expected file to exist after second Add")
	}
	if latestID != id2 {
		t.Errorf("expected latest ID %d, got %d", id2, latestID)
	}

	// Both versions stay addressable by ID.
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first version content = %q", got)
	}
	if got := string(fs.Get(id2).Content); got != "hello universe" {
		t.Errorf("second version content = %q", got)
	}
}

func TestNoFileIDSentinel(t *testing.T) {
	fs := NewFileSet()

	// The zero Span of a location-free diagnostic must never alias a
	// real file, even the first one added.
	id := fs.AddVirtual("first.sp", []byte("x = 1\n"))
	if id == NoFileID {
		t.Fatal("AddVirtual issued the sentinel ID")
	}

	if got := fs.Get(NoFileID); got != nil {
		t.Errorf("Get(NoFileID) = %+v, want nil", got)
	}
	if got := fs.Get(id + 1); got != nil {
		t.Errorf("Get(unissued ID) = %+v, want nil", got)
	}
	if fs.Get(id) == nil {
		t.Error("Get(issued ID) = nil")
	}

	start, end := fs.Resolve(Span{})
	if (start != LineCol{}) || (end != LineCol{}) {
		t.Errorf("Resolve(zero span) = %+v, %+v, want zero positions", start, end)
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.sp", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sp")
	raw := []byte{0xEF, 0xBB, 0xBF}
	raw = append(raw, []byte("a = 1\r\nb = 2\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	f := fs.Get(id)

	if string(f.Content) != "a = 1\nb = 2\n" {
		t.Errorf("normalized content = %q", string(f.Content))
	}
	if f.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sp", []byte("ab\ncd\nef"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"first byte", 0, LineCol{Line: 1, Col: 1}},
		{"newline terminates its line", 2, LineCol{Line: 1, Col: 3}},
		{"start of second line", 3, LineCol{Line: 2, Col: 1}},
		{"middle of second line", 4, LineCol{Line: 2, Col: 2}},
		{"start of third line", 6, LineCol{Line: 3, Col: 1}},
		{"end of buffer", 8, LineCol{Line: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
			}
		})
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// "α" is two bytes; columns are byte-based.
	id := fs.AddVirtual("test.sp", []byte("α\n"))

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("start = %+v, want 1:1", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("end = %+v, want 1:2", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sp", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}

	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
