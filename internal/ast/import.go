package ast

import "sheeppig/internal/source"

// Import is one imported name from a using block:
//
//	using { Name [as Alias] from Module }
//
// A comma-separated import line produces one Import per name.
// Alias is NoStringID when absent; when present it is a single segment
// by invariant (the parser rejects dotted aliases).
type Import struct {
	Name   NameID
	Alias  source.StringID
	Module NameID
	Span   source.Span
}

// Imports manages allocation of import records.
type Imports struct {
	Arena *Arena[Import]
}

func NewImports(capHint uint) *Imports {
	return &Imports{Arena: NewArena[Import](capHint)}
}

func (i *Imports) New(span source.Span, name NameID, alias source.StringID, module NameID) ImportID {
	return ImportID(i.Arena.Allocate(Import{
		Name:   name,
		Alias:  alias,
		Module: module,
		Span:   span,
	}))
}

func (i *Imports) Get(id ImportID) *Import {
	return i.Arena.Get(uint32(id))
}
