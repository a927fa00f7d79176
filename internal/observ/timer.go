package observ

import (
	"fmt"
	"strings"
	"time"
)

// Timer collects named phase timings for one pipeline run. Begin hands the
// caller a stop function instead of an index, so a phase cannot be closed
// twice or closed for the wrong slot.
type Timer struct {
	spans []phaseSpan
}

type phaseSpan struct {
	name string
	dur  time.Duration
	note string
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{} }

// Begin starts timing a phase. The returned stop function records the
// elapsed time together with an optional note; calling it more than once
// records only the first call.
func (t *Timer) Begin(name string) func(note string) {
	start := time.Now()
	done := false
	return func(note string) {
		if done {
			return
		}
		done = true
		t.spans = append(t.spans, phaseSpan{name: name, dur: time.Since(start), note: note})
	}
}

// PhaseReport is the serializable form of one timed phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates the timer's phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report renders the recorded phases and their total in milliseconds.
func (t *Timer) Report() Report {
	if len(t.spans) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.spans))}
	var total time.Duration
	for i, span := range t.spans {
		total += span.dur
		report.Phases[i] = PhaseReport{
			Name:       span.name,
			DurationMS: millis(span.dur),
			Note:       span.note,
		}
	}
	report.TotalMS = millis(total)
	return report
}

// Summary returns a human-readable rendering of all recorded phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-12s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(&b, "  (%s)", p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %8.2f ms\n", "total", report.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
