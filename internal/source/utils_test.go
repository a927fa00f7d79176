package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb", "a\nb", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr preserved", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want || changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) = %q, %v; want %q, %v",
					tt.in, got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x")...)
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("x")) {
		t.Errorf("removeBOM = %q, %v", got, had)
	}

	got, had = removeBOM([]byte("xy"))
	if had || !bytes.Equal(got, []byte("xy")) {
		t.Errorf("removeBOM on short input = %q, %v", got, had)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "file.sp")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "file.sp")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "file.sp"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}
