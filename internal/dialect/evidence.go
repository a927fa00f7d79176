package dialect

import "sheeppig/internal/source"

// Hint is a small piece of evidence suggesting a particular dialect.
// It is not itself a diagnostic; the driver classifies a file's hints
// before deciding whether to emit hint diagnostics.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string
	Span    source.Span
}

// Evidence aggregates per-file hints collected during tokenization and
// parsing. A nil *Evidence is a valid no-op sink.
type Evidence struct {
	hints []Hint
}

// NewEvidence creates a new Evidence container.
func NewEvidence() *Evidence {
	return &Evidence{
		hints: make([]Hint, 0, 16),
	}
}

// Add appends a hint to the evidence collection.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

// Hints returns the collected hints.
func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}
