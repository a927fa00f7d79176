package ast

import (
	"sheeppig/internal/source"
)

// Hints carry per-arena capacity estimates, usually derived from the
// source length so parsing a large file does not start from tiny slices.
type Hints struct {
	Files   uint
	Imports uint
	Fns     uint
	Stmts   uint
	Exprs   uint
	Names   uint
}

// HintsForSize derives arena capacities from a source byte length.
func HintsForSize(byteLen int) Hints {
	if byteLen < 256 {
		byteLen = 256
	}
	approx := uint(byteLen) / 16
	return Hints{
		Files:   1,
		Imports: 8,
		Fns:     approx / 32,
		Stmts:   approx / 2,
		Exprs:   approx,
		Names:   approx / 4,
	}
}

// Builder owns every arena produced by one parse and the interner that
// backs identifier and literal text. A Builder may accumulate multiple
// files; IDs are only meaningful against the builder that created them.
type Builder struct {
	Files    *Files
	Imports  *Imports
	Fns      *Fns
	Stmts    *Stmts
	Exprs    *Exprs
	Names    *Names
	Interner *source.Interner
}

// NewBuilder creates a builder over the given interner. A nil interner
// gets a fresh one.
func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Files:    NewFiles(maxUint(hints.Files, 1)),
		Imports:  NewImports(maxUint(hints.Imports, 4)),
		Fns:      NewFns(maxUint(hints.Fns, 4)),
		Stmts:    NewStmts(maxUint(hints.Stmts, 16)),
		Exprs:    NewExprs(maxUint(hints.Exprs, 16)),
		Names:    NewNames(maxUint(hints.Names, 8)),
		Interner: interner,
	}
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
