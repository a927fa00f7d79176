package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sheeppig/internal/diag"
	"sheeppig/internal/source"
)

// Pretty renders diagnostics in a human-readable layout. It walks
// bag.Items() in order (callers sort beforehand when they care), printing
// for each diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	   N | offending source line
//	     | ^~~~ underline over the primary span
//
// then notes and (optionally) fix suggestions in the same style.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.printDiagnostic(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan, color.Bold)
	}
}

func (p *prettyPrinter) paint(c *color.Color, s string) string {
	if !p.opts.Color {
		return s
	}
	return c.Sprint(s)
}

func (p *prettyPrinter) printDiagnostic(d diag.Diagnostic) {
	p.printHeader(d.Severity, d.Code.ID(), d.Primary, d.Message)
	p.printSpanContext(d.Primary, d.Severity)

	if p.opts.ShowNotes {
		for _, note := range d.Notes {
			p.printHeader(diag.SevInfo, "note", note.Span, note.Msg)
			if note.Span.File != 0 || note.Span.End > note.Span.Start {
				p.printSpanContext(note.Span, diag.SevInfo)
			}
		}
	}

	if p.opts.ShowFixes {
		for _, fix := range d.Fixes {
			p.printFix(fix)
		}
	}
}

func (p *prettyPrinter) printHeader(sev diag.Severity, code string, span source.Span, msg string) {
	file := p.fs.Get(span.File)
	if file == nil {
		fmt.Fprintf(p.w, "%s %s: %s\n",
			p.paint(p.severityColor(sev), sev.String()), code, msg)
		return
	}
	start, _ := p.fs.Resolve(span)
	path := file.FormatPath(p.opts.PathMode.formatMode(), p.fs.BaseDir())

	fmt.Fprintf(p.w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		p.paint(p.severityColor(sev), sev.String()),
		code, msg)
}

// printSpanContext prints the source line under the span with a caret
// underline, plus opts.Context lines of surrounding code.
func (p *prettyPrinter) printSpanContext(span source.Span, sev diag.Severity) {
	file := p.fs.Get(span.File)
	if file == nil || len(file.Content) == 0 {
		return
	}
	start, end := p.fs.Resolve(span)

	firstLine := start.Line
	lastLine := firstLine
	ctx := uint32(0)
	if p.opts.Context > 0 {
		ctx = uint32(p.opts.Context)
	}
	if firstLine > ctx {
		firstLine -= ctx
	} else {
		firstLine = 1
	}
	lastLine = start.Line + ctx

	gutter := len(fmt.Sprintf("%d", lastLine))

	for line := firstLine; line <= lastLine; line++ {
		text := file.GetLine(line)
		if text == "" && line > start.Line {
			break
		}
		fmt.Fprintf(p.w, " %*d | %s\n", gutter, line, text)

		if line != start.Line {
			continue
		}

		// underline: pad to the column using display width so tabs and
		// wide runes keep the caret aligned
		prefix := text
		if int(start.Col-1) <= len(text) {
			prefix = text[:start.Col-1]
		}
		pad := runewidth.StringWidth(expandTabs(prefix))

		width := 1
		if end.Line == start.Line && end.Col > start.Col {
			spanText := ""
			if int(end.Col-1) <= len(text) {
				spanText = text[start.Col-1 : end.Col-1]
			}
			width = max(runewidth.StringWidth(spanText), 1)
		}

		underline := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(p.w, " %*s | %s%s\n", gutter, "",
			strings.Repeat(" ", pad),
			p.paint(p.severityColor(sev), underline))
	}
}

func (p *prettyPrinter) printFix(fix diag.Fix) {
	title := fix.Title
	if fix.IsPreferred {
		title += " (preferred)"
	}
	fmt.Fprintf(p.w, "  %s %s [%s]\n",
		p.paint(color.New(color.FgGreen), "fix:"),
		title, fix.Applicability)

	if !p.opts.ShowPreview {
		return
	}
	for _, edit := range fix.Edits {
		preview, err := buildFixEditPreview(p.fs, edit)
		if err != nil {
			continue
		}
		for _, line := range preview.before {
			fmt.Fprintf(p.w, "    - %s\n", line)
		}
		for _, line := range preview.after {
			fmt.Fprintf(p.w, "    + %s\n", line)
		}
	}
}

// expandTabs rewrites tabs as four spaces so StringWidth measures what a
// typical terminal shows.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
