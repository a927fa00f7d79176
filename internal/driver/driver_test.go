package driver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sheeppig/internal/diag"
	"sheeppig/internal/token"
)

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func rewriteSource(t *testing.T, path, src string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}
}

func TestTokenizeCollectsThroughEOF(t *testing.T) {
	path := writeSource(t, "basic.sp", "var x: int = 1\n")

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(res.Tokens) == 0 {
		t.Fatalf("expected tokens, got none")
	}
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("expected trailing EOF, got %v", last.Kind)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
}

func TestTokenizeReportsLexicalErrors(t *testing.T) {
	path := writeSource(t, "bad.sp", "var s = \"unterminated\n")

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected lexical diagnostics, got none")
	}
}

func TestParseProducesFileNode(t *testing.T) {
	src := `fun add(a: int, b: int): int {
    return a + b
}

add(1, 2)
`
	path := writeSource(t, "add.sp", src)

	res, err := Parse(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	fileNode := res.Builder.Files.Get(res.FileID)
	if fileNode == nil {
		t.Fatalf("expected a file node")
	}
	if len(fileNode.Fns) != 1 {
		t.Fatalf("expected 1 function, got %d", len(fileNode.Fns))
	}
	if len(fileNode.Stmts) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(fileNode.Stmts))
	}
}

func TestParseSharesBagAcrossLexerAndParser(t *testing.T) {
	// One lexical error (stray char) and one syntax error (no expression).
	path := writeSource(t, "mixed.sp", "x = $\n")

	res, err := Parse(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var sawLex, sawSyn bool
	for _, d := range res.Bag.Items() {
		if d.Code.IsLexical() {
			sawLex = true
		}
		if d.Code.IsSyntax() {
			sawSyn = true
		}
	}
	if !sawLex || !sawSyn {
		t.Fatalf("expected lexical and syntax diagnostics together, got %+v", res.Bag.Items())
	}
}

func TestCheckCleanFile(t *testing.T) {
	path := writeSource(t, "clean.sp", "var greeting: string = \"hi\"\n")

	res, err := Check(context.Background(), path, CheckOptions{})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	if res.Cached {
		t.Fatalf("no cache was configured, result must not be cached")
	}
}

func TestCheckEmitsDialectHintForGoSource(t *testing.T) {
	src := `func main() {
	x := 1
}
`
	path := writeSource(t, "gopher.sp", src)

	res, err := Check(context.Background(), path, CheckOptions{})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected syntax errors for go source")
	}

	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.AlnDialectHint {
			found = true
			if d.Severity != diag.SevInfo {
				t.Fatalf("hint must be informational, got %v", d.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("expected a dialect hint, got %+v", res.Bag.Items())
	}
}

func TestCheckNoDialectHintsFlag(t *testing.T) {
	src := `func main() {
	x := 1
}
`
	path := writeSource(t, "gopher.sp", src)

	res, err := Check(context.Background(), path, CheckOptions{NoDialectHints: true})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	for _, d := range res.Bag.Items() {
		if d.Code == diag.AlnDialectHint {
			t.Fatalf("dialect hint present despite NoDialectHints: %+v", d)
		}
	}
}

func TestCheckNoHintWithoutParseErrors(t *testing.T) {
	// Foreign-looking identifiers alone must not trigger hints when the
	// file parses cleanly.
	path := writeSource(t, "impl.sp", "var impl: int = 1\n")

	res, err := Check(context.Background(), path, CheckOptions{})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Items())
	}
	for _, d := range res.Bag.Items() {
		if d.Code == diag.AlnDialectHint {
			t.Fatalf("hint on a clean file: %+v", d)
		}
	}
}

func TestCheckTimingsDiagnostic(t *testing.T) {
	path := writeSource(t, "timed.sp", "var x: int = 1\n")

	res, err := Check(context.Background(), path, CheckOptions{EnableTimings: true})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}

	var timing *diag.Diagnostic
	for i := range res.Bag.Items() {
		d := &res.Bag.Items()[i]
		if d.Code == diag.ObsTimings {
			timing = d
			break
		}
	}
	if timing == nil {
		t.Fatalf("expected a timing diagnostic")
	}
	if len(timing.Notes) != 1 {
		t.Fatalf("timing diagnostic must carry one JSON note, got %d", len(timing.Notes))
	}
	var payload timingPayload
	if err := json.Unmarshal([]byte(timing.Notes[0].Msg), &payload); err != nil {
		t.Fatalf("timing note is not valid JSON: %v", err)
	}
	if payload.Kind != "file" {
		t.Fatalf("payload kind = %q, want file", payload.Kind)
	}
	if len(payload.Phases) == 0 {
		t.Fatalf("expected phase entries in the payload")
	}
}

func TestCheckTimingsSurviveFullBag(t *testing.T) {
	// Two syntax errors exhaust the cap; the timing info must still land.
	path := writeSource(t, "full.sp", "x = ]\ny = ]\nz = ]\n")

	res, err := Check(context.Background(), path, CheckOptions{MaxDiagnostics: 2, EnableTimings: true})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings {
			found = true
		}
	}
	if !found {
		t.Fatalf("timing diagnostic lost to the cap: %+v", res.Bag.Items())
	}
}

func TestCheckPhaseObserverSeesBothPhases(t *testing.T) {
	path := writeSource(t, "observed.sp", "var x: int = 1\n")

	var events []PhaseEvent
	_, err := Check(context.Background(), path, CheckOptions{
		Observer: func(ev PhaseEvent) { events = append(events, ev) },
	})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}

	want := []struct {
		name   string
		status PhaseStatus
	}{
		{"tokenize", PhaseStart},
		{"tokenize", PhaseEnd},
		{"parse", PhaseStart},
		{"parse", PhaseEnd},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d phase events, want %d: %+v", len(events), len(want), events)
	}
	for i, w := range want {
		if events[i].Name != w.name || events[i].Status != w.status {
			t.Fatalf("event %d = %+v, want %s/%v", i, events[i], w.name, w.status)
		}
	}
}
