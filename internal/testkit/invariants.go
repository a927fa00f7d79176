package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sheeppig/internal/ast"
	"sheeppig/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// module:
//  1. file.Span is within file content bounds, and non-empty whenever
//     the module has any top-level node
//  2. every top-level node span is non-empty and fully contained in
//     file.Span
//  3. file.Span covers the union of top-level spans (if any exist)
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	// 1) file span sanity
	hasContent := len(f.Imports)+len(f.Fns)+len(f.Stmts) > 0
	if hasContent && f.Span.End <= f.Span.Start {
		return fmt.Errorf("file span is empty: %v", f.Span)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	// 2) top-level spans within file span; 3) file covers union
	var union source.Span
	var haveNode bool
	check := func(what string, sp source.Span) error {
		if sp.End <= sp.Start {
			return fmt.Errorf("empty %s span: %v", what, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("%s span file mismatch: got=%d want=%d", what, sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("%s span %v is outside file span %v", what, sp, f.Span)
		}
		if !haveNode {
			union = sp
			haveNode = true
		} else {
			union = union.Cover(sp)
		}
		return nil
	}

	for _, id := range f.Imports {
		imp := b.Imports.Get(id)
		if imp == nil {
			return fmt.Errorf("nil import for id=%d", id)
		}
		if err := check("import", imp.Span); err != nil {
			return err
		}
	}
	for _, id := range f.Fns {
		fn := b.Fns.Get(id)
		if fn == nil {
			return fmt.Errorf("nil fn for id=%d", id)
		}
		if err := check("fn", fn.Span); err != nil {
			return err
		}
	}
	for _, id := range f.Stmts {
		stmt := b.Stmts.Get(id)
		if stmt == nil {
			return fmt.Errorf("nil stmt for id=%d", id)
		}
		if err := check("stmt", stmt.Span); err != nil {
			return err
		}
	}

	if haveNode {
		if union.Start < f.Span.Start || union.End > f.Span.End {
			return fmt.Errorf("file span %v does not cover union of nodes %v", f.Span, union)
		}
	}
	return nil
}
