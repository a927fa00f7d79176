package diag

import (
	"sheeppig/internal/source"
)

// Note is a secondary span/message pair attached to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// FixKind classifies a suggested fix for UI grouping.
type FixKind uint8

const (
	// FixKindQuickFix repairs the reported problem in place.
	FixKindQuickFix FixKind = iota
	// FixKindRefactor rewrites surrounding code beyond the reported span.
	FixKindRefactor
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactor:
		return "refactor"
	default:
		return "unknown"
	}
}

// FixApplicability states how confidently a fix may be applied unattended.
type FixApplicability uint8

const (
	// FixApplicabilityAlwaysSafe fixes can be applied without review.
	FixApplicabilityAlwaysSafe FixApplicability = iota
	// FixApplicabilitySafeWithHeuristics fixes are likely correct but rely
	// on guesses about intent.
	FixApplicabilitySafeWithHeuristics
	// FixApplicabilityManualReview fixes change meaning and need a human.
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	default:
		return "unknown"
	}
}

// TextEdit is one concrete replacement. OldText, when non-empty, acts as a
// guard: the fix engine refuses to apply the edit if the span's current
// content differs.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix is a structured, data-only suggestion for repairing a diagnostic.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
}

// Diagnostic is one finding with its location and optional extras.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// New builds a plain diagnostic with no notes or fixes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError builds an error-severity diagnostic.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy of d with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix returns a copy of d with a quick fix appended.
func (d Diagnostic) WithFix(title string, edits ...TextEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}

// WithFixSuggestion returns a copy of d with the given fix appended.
func (d Diagnostic) WithFixSuggestion(fix Fix) Diagnostic {
	d.Fixes = append(d.Fixes, fix)
	return d
}
