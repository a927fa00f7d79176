package ast

import (
	"sheeppig/internal/source"
)

// File is the module root: an optional import block, the function
// definitions, and any script-style top-level statements, all in source
// order. Order matters for diagnostics (first seen, first reported).
type File struct {
	Span    source.Span
	Imports []ImportID
	Fns     []FnID
	Stmts   []StmtID
}

// Files manages allocation of module roots.
type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Span: sp}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
