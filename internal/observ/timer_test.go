package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()

	stop := timer.Begin("tokenize")
	time.Sleep(time.Millisecond)
	stop("42 tokens")

	stop = timer.Begin("parse")
	stop("")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d", len(report.Phases))
	}
	if report.Phases[0].Name != "tokenize" || report.Phases[0].Note != "42 tokens" {
		t.Errorf("first phase = %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Errorf("duration must be positive, got %f", report.Phases[0].DurationMS)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Errorf("total %f < first phase %f", report.TotalMS, report.Phases[0].DurationMS)
	}
}

func TestTimerStopIsIdempotent(t *testing.T) {
	timer := NewTimer()
	stop := timer.Begin("parse")
	stop("first")
	stop("second")

	report := timer.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(report.Phases))
	}
	if report.Phases[0].Note != "first" {
		t.Errorf("note = %q, want the first stop to win", report.Phases[0].Note)
	}
}

func TestTimerEmptyReport(t *testing.T) {
	timer := NewTimer()
	if len(timer.Report().Phases) != 0 {
		t.Fatalf("no phases expected")
	}
}

func TestTimerSummaryIncludesTotal(t *testing.T) {
	timer := NewTimer()
	stop := timer.Begin("parse")
	stop("")

	summary := timer.Summary()
	if !strings.Contains(summary, "parse") || !strings.Contains(summary, "total") {
		t.Errorf("summary = %q", summary)
	}
}
