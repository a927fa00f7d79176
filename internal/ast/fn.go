package ast

import "sheeppig/internal/source"

// Param is one function parameter: `name: type`.
// Name uniqueness within a definition is not checked here; that belongs
// to the external checker.
type Param struct {
	Name     source.StringID
	NameSpan source.Span
	Type     NameID
	Span     source.Span
}

// Fn is a function definition:
//
//	fun Name(params) [: ReturnType] { body }
//
// ReturnType is NoNameID when omitted. Body is always a Block statement,
// possibly empty.
type Fn struct {
	Name     source.StringID
	NameSpan source.Span
	Params   []Param
	Return   NameID
	Body     StmtID
	Span     source.Span
}

// Fns manages allocation of function definitions.
type Fns struct {
	Arena *Arena[Fn]
}

func NewFns(capHint uint) *Fns {
	return &Fns{Arena: NewArena[Fn](capHint)}
}

func (f *Fns) New(span source.Span, name source.StringID, nameSpan source.Span, params []Param, ret NameID, body StmtID) FnID {
	return FnID(f.Arena.Allocate(Fn{
		Name:     name,
		NameSpan: nameSpan,
		Params:   append([]Param(nil), params...),
		Return:   ret,
		Body:     body,
		Span:     span,
	}))
}

func (f *Fns) Get(id FnID) *Fn {
	return f.Arena.Get(uint32(id))
}
