package driver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fortio.org/safecast"

	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/dialect"
	"sheeppig/internal/lexer"
	"sheeppig/internal/observ"
	"sheeppig/internal/parser"
	"sheeppig/internal/project"
	"sheeppig/internal/source"
)

// CheckOptions configure a diagnostics run over one file.
type CheckOptions struct {
	// MaxDiagnostics caps the bag; 0 means unlimited.
	MaxDiagnostics int
	// EnableTimings appends an info diagnostic with per-phase timings.
	EnableTimings bool
	// NoDialectHints suppresses foreign-syntax hint diagnostics.
	NoDialectHints bool
	// Cache, when non-nil, is consulted by content hash before any work
	// and updated after a full run.
	Cache *DiskCache
	// Observer receives phase boundary events.
	Observer PhaseObserver
}

// CheckResult is the outcome of diagnosing one file.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	FileID  ast.FileID
	Builder *ast.Builder
	Bag     *diag.Bag
	// Cached is true when the diagnostics were replayed from the disk
	// cache; Builder is nil and FileID invalid in that case.
	Cached bool
}

// Check loads a file and runs the full front end over it: tokenize with
// dialect evidence, parse, then optional hint and timing diagnostics.
func Check(ctx context.Context, path string, opts CheckOptions) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	return checkLoaded(ctx, fs, file, opts)
}

// checkLoaded diagnoses an already loaded file. Directory walks call this
// directly so every file shares one FileSet.
func checkLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts CheckOptions) (*CheckResult, error) {
	bag := diag.NewBag(opts.MaxDiagnostics)

	if opts.Cache != nil && file.Flags&source.FileVirtual == 0 {
		var payload DiskPayload
		hit, err := opts.Cache.Get(project.Digest(file.Hash), &payload)
		if err == nil && hit && payload.Schema == diskCacheSchemaVersion {
			replayCachedDiagnostics(bag, &payload, file.ID)
			return &CheckResult{
				FileSet: fs,
				File:    file,
				FileID:  ast.NoFileID,
				Bag:     bag,
				Cached:  true,
			}, nil
		}
	}

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	phase := func(name string, fn func()) {
		var stop func(string)
		if timer != nil {
			stop = timer.Begin(name)
		}
		if opts.Observer != nil {
			opts.Observer(PhaseEvent{Name: name, Status: PhaseStart})
		}
		start := time.Now()
		fn()
		if stop != nil {
			stop("")
		}
		if opts.Observer != nil {
			opts.Observer(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
		}
	}

	// The tokenize pass owns lexical diagnostics and dialect evidence.
	// The parse pass runs its own silent lexer to avoid duplicates.
	var ev *dialect.Evidence
	if !opts.NoDialectHints {
		ev = dialect.NewEvidence()
	}
	phase("tokenize", func() {
		collectTokens(file, bag, ev)
	})

	builder := ast.NewBuilder(ast.Hints{}, nil)
	var astFile ast.FileID
	phase("parse", func() {
		// Lexical diagnostics were already reported by the tokenize
		// pass, so this lexer runs without a reporter.
		lx := lexer.New(file, lexer.Options{})
		maxErrors, convErr := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
		if convErr != nil {
			maxErrors = 0
		}
		result := parser.ParseFile(ctx, fs, lx, builder, parser.Options{
			Reporter:      diag.BagReporter{Bag: bag},
			MaxErrors:     maxErrors,
			CurrentErrors: uint(bag.ErrorCount()),
		})
		astFile = result.File
	})

	if ev != nil && bag.HasErrors() {
		appendDialectHint(bag, ev)
	}

	bag.Sort()

	if opts.Cache != nil && file.Flags&source.FileVirtual == 0 {
		payload := payloadFromBag(bag, file)
		// Best effort; a failed write only costs the next run a re-check.
		_ = opts.Cache.Put(project.Digest(file.Hash), payload)
	}

	if timer != nil {
		report := timer.Report()
		appendTimingDiagnostic(bag, timingPayload{
			Kind:    "file",
			Path:    file.Path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}

	return &CheckResult{
		FileSet: fs,
		File:    file,
		FileID:  astFile,
		Builder: builder,
		Bag:     bag,
	}, nil
}

// Hints only fire on files that already fail to parse, and only when the
// evidence clearly favors one dialect.
const (
	dialectMinScore      = 5
	dialectMinConfidence = 0.6
)

func appendDialectHint(bag *diag.Bag, ev *dialect.Evidence) {
	cls := dialect.Classifier{}.Classify(ev)
	if cls.Kind == dialect.Unknown || cls.Score < dialectMinScore || cls.Confidence < dialectMinConfidence {
		return
	}

	top, ok := strongestHint(ev, cls.Kind)
	if !ok {
		return
	}

	msg := fmt.Sprintf("this file looks like %s (confidence %.0f%%)",
		cls.Kind, cls.Confidence*100)
	note := dialect.RenderAlienHint(cls.Kind, dialect.RenderInput{
		Kind:     alienHintKindFor(top.Reason),
		Detected: strings.TrimPrefix(top.Reason, strings.ToLower(cls.Kind.String())+" "),
	})

	bag.Add(diag.New(diag.SevInfo, diag.AlnDialectHint, top.Span, msg).
		WithNote(top.Span, note))
}

func strongestHint(ev *dialect.Evidence, kind dialect.Kind) (dialect.Hint, bool) {
	var best dialect.Hint
	found := false
	for _, h := range ev.Hints() {
		if h.Dialect != kind {
			continue
		}
		if !found || h.Score > best.Score {
			best = h
			found = true
		}
	}
	return best, found
}

// alienHintKindFor maps a hint reason back to its presentation group.
// Reasons are produced by this package's sibling collectors, so substring
// matching is stable enough here.
func alienHintKindFor(reason string) dialect.AlienHintKind {
	switch {
	case strings.Contains(reason, "`:=`"):
		return dialect.AlienHintShortDecl
	case strings.Contains(reason, "arrow"):
		return dialect.AlienHintArrow
	case strings.Contains(reason, "macro"):
		return dialect.AlienHintMacroCall
	case strings.Contains(reason, "decorator"):
		return dialect.AlienHintDecorator
	case strings.Contains(reason, "keyword"):
		return dialect.AlienHintFnKeyword
	default:
		return dialect.AlienHintUnknown
	}
}
