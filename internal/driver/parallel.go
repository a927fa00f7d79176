package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"sheeppig/internal/ast"
	"sheeppig/internal/diag"
	"sheeppig/internal/source"
	"sheeppig/internal/token"
)

// TokenizeDirResult holds the token stream for one file of a directory walk.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult holds the syntax tree for one file of a directory walk.
// Each file gets its own builder; the interner is not safe for
// concurrent use, so arenas are never shared across workers.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	ASTFile ast.FileID
	Bag     *diag.Bag
}

// CheckDirResult holds the diagnostics for one file of a directory walk.
type CheckDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	ASTFile ast.FileID
	Bag     *diag.Bag
	Cached  bool
}

// ListSourceFiles returns the sorted list of *.sp files under dir. The
// progress UI uses it to seed its file table before a walk starts.
func ListSourceFiles(dir string) ([]string, error) {
	return listSPFiles(dir)
}

// listSPFiles returns the sorted list of *.sp files under dir.
func listSPFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sp") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic order regardless of filesystem iteration.
	sort.Strings(files)
	return files, nil
}

// preloadFiles loads every path into the set, recording failures so the
// workers can turn them into diagnostics instead of aborting the walk.
func preloadFiles(fileSet *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileIDs, loadErrors
}

func loadErrorDiagnostic(err error) diag.Diagnostic {
	return diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error())
}

func effectiveJobs(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return min(jobs, files)
}

// TokenizeDir tokenizes every *.sp file under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listSPFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadErrors := preloadFiles(fileSet, files)

	// Each worker writes only its own index; no mutex needed.
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(effectiveJobs(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(loadErrorDiagnostic(loadErr))
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			tokens := collectTokens(file, bag, nil)

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir parses every *.sp file under dir in parallel.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := listSPFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadErrors := preloadFiles(fileSet, files)
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(effectiveJobs(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(loadErrorDiagnostic(loadErr))
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			builder := ast.NewBuilder(ast.Hints{}, nil)
			astFile := parseIntoBuilder(gctx, fileSet, file, builder, bag, maxDiagnostics)

			results[i] = ParseDirResult{
				Path:    path,
				FileID:  fileID,
				Builder: builder,
				ASTFile: astFile,
				Bag:     bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// CheckDirOptions configure a directory-wide diagnostics run.
type CheckDirOptions struct {
	MaxDiagnostics int
	Jobs           int
	EnableTimings  bool
	NoDialectHints bool
	Cache          *DiskCache
	// Observer receives one event per completed file, from worker
	// goroutines.
	Observer FileObserver
}

// CheckDir diagnoses every *.sp file under dir in parallel.
func CheckDir(ctx context.Context, dir string, opts CheckDirOptions) (*source.FileSet, []CheckDirResult, error) {
	files, err := listSPFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadErrors := preloadFiles(fileSet, files)
	results := make([]CheckDirResult, len(files))

	var done atomic.Int64
	notify := func(path string, errs int) {
		if opts.Observer == nil {
			done.Add(1)
			return
		}
		opts.Observer(FileEvent{
			Path:   path,
			Done:   int(done.Add(1)),
			Total:  len(files),
			Errors: errs,
		})
	}

	fileOpts := CheckOptions{
		MaxDiagnostics: opts.MaxDiagnostics,
		EnableTimings:  opts.EnableTimings,
		NoDialectHints: opts.NoDialectHints,
		Cache:          opts.Cache,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(effectiveJobs(opts.Jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(loadErrorDiagnostic(loadErr))
				results[i] = CheckDirResult{Path: path, Bag: bag}
				notify(path, bag.ErrorCount())
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			res, err := checkLoaded(gctx, fileSet, file, fileOpts)
			if err != nil {
				return err
			}
			results[i] = CheckDirResult{
				Path:    path,
				FileID:  fileID,
				Builder: res.Builder,
				ASTFile: res.FileID,
				Bag:     res.Bag,
				Cached:  res.Cached,
			}
			notify(path, res.Bag.ErrorCount())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
