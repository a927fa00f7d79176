package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"sheeppig/internal/diag"
	"sheeppig/internal/diagfmt"
	"sheeppig/internal/token"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestListSPFilesSortedAndFiltered(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.sp":          "x = 1\n",
		"a.sp":          "x = 1\n",
		"sub/c.sp":      "x = 1\n",
		"notes.txt":     "not source",
		"sub/README.md": "not source either",
	})

	files, err := listSPFiles(dir)
	if err != nil {
		t.Fatalf("listSPFiles error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Fatalf("files not sorted: %v", files)
		}
	}
}

func TestTokenizeDirAllFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"one.sp": "var a: int = 1\n",
		"two.sp": "var b: int = 2\n",
	})

	fileSet, results, err := TokenizeDir(context.Background(), dir, 0, 2)
	if err != nil {
		t.Fatalf("TokenizeDir error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, res := range results {
		if len(res.Tokens) == 0 {
			t.Fatalf("no tokens for %s", res.Path)
		}
		if res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
			t.Fatalf("missing EOF for %s", res.Path)
		}
		if res.Bag.HasErrors() {
			t.Fatalf("unexpected diagnostics for %s: %+v", res.Path, res.Bag.Items())
		}
		if fileSet.Get(res.FileID) == nil {
			t.Fatalf("file %s not in the set", res.Path)
		}
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fileSet, results, err := TokenizeDir(context.Background(), t.TempDir(), 0, 0)
	if err != nil {
		t.Fatalf("TokenizeDir error: %v", err)
	}
	if fileSet == nil {
		t.Fatalf("expected a file set even for an empty directory")
	}
	if len(results) != 0 {
		t.Fatalf("got %d results for an empty directory", len(results))
	}
}

func TestParseDirIsolatesBrokenFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"bad.sp":  "x = ]\n",
		"good.sp": "var a: int = 1\n",
	})

	_, results, err := ParseDir(context.Background(), dir, 0, 0)
	if err != nil {
		t.Fatalf("ParseDir error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Sorted order puts bad.sp first.
	if !results[0].Bag.HasErrors() {
		t.Fatalf("expected errors in bad.sp")
	}
	if results[1].Bag.HasErrors() {
		t.Fatalf("good.sp polluted by its sibling: %+v", results[1].Bag.Items())
	}
	if results[1].Builder == nil || !results[1].ASTFile.IsValid() {
		t.Fatalf("good.sp produced no tree")
	}
}

func TestParseDirResultsFollowFileOrder(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.sp": "var a: int = 1\n",
		"b.sp": "var b: int = 2\n",
		"c.sp": "var c: int = 3\n",
	})

	_, results, err := ParseDir(context.Background(), dir, 0, 3)
	if err != nil {
		t.Fatalf("ParseDir error: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Path >= results[i].Path {
			t.Fatalf("results out of order: %q before %q", results[i-1].Path, results[i].Path)
		}
	}
}

func TestCheckDirObserverCoversEveryFile(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.sp": "var a: int = 1\n",
		"b.sp": "x = ]\n",
		"c.sp": "var c: int = 3\n",
	})

	var mu sync.Mutex
	var events []FileEvent
	_, results, err := CheckDir(context.Background(), dir, CheckDirOptions{
		Jobs: 2,
		Observer: func(ev FileEvent) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("CheckDir error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if len(events) != 3 {
		t.Fatalf("got %d file events, want 3", len(events))
	}
	seenDone := make(map[int]bool, len(events))
	for _, ev := range events {
		if ev.Total != 3 {
			t.Fatalf("event total = %d, want 3", ev.Total)
		}
		if seenDone[ev.Done] {
			t.Fatalf("duplicate done counter %d", ev.Done)
		}
		seenDone[ev.Done] = true
	}

	var errorFiles int
	for _, res := range results {
		if res.Bag.HasErrors() {
			errorFiles++
		}
	}
	if errorFiles != 1 {
		t.Fatalf("got %d files with errors, want 1", errorFiles)
	}
}

func TestCheckDirLoadFailureStaysLocationFree(t *testing.T) {
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "a.sp")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	fileSet, results, err := CheckDir(context.Background(), dir, CheckDirOptions{})
	if err != nil {
		t.Fatalf("CheckDir error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	res := results[0]
	if res.FileID.IsValid() {
		t.Fatalf("load failure carries a real FileID %d", res.FileID)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected a load-error diagnostic")
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.IOLoadFileError {
		t.Fatalf("diagnostic code = %s, want IOLoadFileError", d.Code.ID())
	}
	if d.Primary.File.IsValid() {
		t.Fatalf("load error span names file %d, want the sentinel", d.Primary.File)
	}
	if fileSet.Get(d.Primary.File) != nil {
		t.Fatal("sentinel span resolved to a real file")
	}

	// Rendering the load error must not touch the file table.
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, fileSet, diagfmt.PrettyOpts{Context: 2})
	if !strings.Contains(buf.String(), "IO4001") {
		t.Fatalf("load error not rendered:\n%s", buf.String())
	}
}

func TestCheckDirLoadFailureDoesNotBlameSiblings(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.sp": "var x: int = 1\n",
	})
	if err := os.Symlink(filepath.Join(dir, "nowhere"), filepath.Join(dir, "a.sp")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	fileSet, results, err := CheckDir(context.Background(), dir, CheckDirOptions{})
	if err != nil {
		t.Fatalf("CheckDir error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	// Sorted order puts the dangling a.sp first.
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, results[0].Bag, fileSet, diagfmt.PrettyOpts{Context: 2})
	if strings.Contains(buf.String(), "b.sp") {
		t.Fatalf("load error attributed to a sibling file:\n%s", buf.String())
	}
	if results[1].Bag.HasErrors() {
		t.Fatalf("healthy sibling polluted: %+v", results[1].Bag.Items())
	}
}

func TestCheckDirUsesCacheAcrossRuns(t *testing.T) {
	cache := openTestCache(t)
	dir := writeTree(t, map[string]string{
		"a.sp": "var a: int = 1\n",
		"b.sp": "x = ]\n",
	})

	opts := CheckDirOptions{Cache: cache}
	if _, _, err := CheckDir(context.Background(), dir, opts); err != nil {
		t.Fatalf("first CheckDir error: %v", err)
	}

	_, results, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second CheckDir error: %v", err)
	}
	for _, res := range results {
		if !res.Cached {
			t.Fatalf("%s was re-checked despite an unchanged tree", res.Path)
		}
	}
	if !results[1].Bag.HasErrors() {
		t.Fatalf("cached replay lost the errors of b.sp")
	}
}
