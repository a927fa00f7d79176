package ast

import (
	"strings"

	"sheeppig/internal/source"
)

// Name is a dotted path such as math.sqrt: an ordered, non-empty list of
// interned segments. Segments are never the empty string.
type Name struct {
	Segments []source.StringID
	Span     source.Span
}

// IsSimple reports whether the name has exactly one segment.
func (n *Name) IsSimple() bool {
	return len(n.Segments) == 1
}

// Names manages allocation of dotted-path names.
type Names struct {
	Arena *Arena[Name]
}

func NewNames(capHint uint) *Names {
	return &Names{Arena: NewArena[Name](capHint)}
}

// New allocates a name. The segment slice is copied.
func (n *Names) New(span source.Span, segments []source.StringID) NameID {
	return NameID(n.Arena.Allocate(Name{
		Segments: append([]source.StringID(nil), segments...),
		Span:     span,
	}))
}

// Get returns the name for the given ID, or nil for NoNameID.
func (n *Names) Get(id NameID) *Name {
	return n.Arena.Get(uint32(id))
}

// Render joins the name's segments with '.' using the given interner.
func (n *Names) Render(id NameID, interner *source.Interner) string {
	name := n.Get(id)
	if name == nil || interner == nil {
		return ""
	}
	parts := make([]string, 0, len(name.Segments))
	for _, seg := range name.Segments {
		parts = append(parts, interner.MustLookup(seg))
	}
	return strings.Join(parts, ".")
}
