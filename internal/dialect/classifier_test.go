package dialect

import (
	"testing"

	"sheeppig/internal/source"
)

func TestClassifyEmptyEvidence(t *testing.T) {
	var c Classifier
	got := c.Classify(nil)
	if got.Kind != Unknown {
		t.Fatalf("nil evidence should classify as unknown, got %v", got.Kind)
	}
	got = c.Classify(NewEvidence())
	if got.Kind != Unknown || got.ObservedSignals != 0 {
		t.Fatalf("empty evidence: %+v", got)
	}
}

func TestClassifyDominantDialect(t *testing.T) {
	e := NewEvidence()
	RecordIdent(e, "def", source.Span{})
	RecordIdent(e, "elif", source.Span{})
	RecordIdent(e, "func", source.Span{})

	var c Classifier
	got := c.Classify(e)
	if got.Kind != Python {
		t.Fatalf("Kind = %v, want python", got.Kind)
	}
	if got.RunnerUp != Go {
		t.Fatalf("RunnerUp = %v, want go", got.RunnerUp)
	}
	if got.Confidence <= 0.5 {
		t.Fatalf("Confidence = %v, want > 0.5", got.Confidence)
	}
}

func TestRecordIdentCaseFolding(t *testing.T) {
	e := NewEvidence()
	RecordIdent(e, "Defer", source.Span{})
	if len(e.Hints()) == 0 {
		t.Fatalf("capitalized keyword spelling should still record evidence")
	}
}

func TestRecordIdentNilEvidence(t *testing.T) {
	// Must not panic.
	RecordIdent(nil, "impl", source.Span{})
}

func TestRenderAlienHintDeterministic(t *testing.T) {
	in := RenderInput{Kind: AlienHintFnKeyword, Detected: "`func`", Example: "fun main() { }"}
	a := RenderAlienHint(Go, in)
	b := RenderAlienHint(Go, in)
	if a != b {
		t.Fatalf("render is not deterministic:\n%q\n%q", a, b)
	}
	if a == "" {
		t.Fatalf("expected non-empty hint message")
	}
}
