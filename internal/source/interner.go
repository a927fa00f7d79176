package source

import (
	"golang.org/x/text/unicode/norm"
)

// StringID is a dense handle into an Interner.
type StringID uint32

// NoStringID is the reserved "no string" handle; it maps to "".
const NoStringID StringID = 0

// Interner deduplicates identifier text into dense IDs so the tree
// stores uint32 handles instead of string headers.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns the ID for s, inserting it on first sight.
// Non-ASCII text is NFC-normalized first so visually identical
// identifiers intern to the same ID.
func (i *Interner) Intern(s string) StringID {
	if !isASCII(s) {
		s = norm.NFC.String(s)
	}
	if id, ok := i.index[s]; ok {
		return id
	}

	// Copy so the interner never aliases a caller's buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes interns the string form of b.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup returns the string for id, reporting whether id is valid.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string for id and panics on an invalid ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Has reports whether id is a valid handle in this interner.
func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

// Len returns the number of interned strings, counting NoStringID.
func (i *Interner) Len() int {
	return len(i.byID)
}

func isASCII(s string) bool {
	for idx := 0; idx < len(s); idx++ {
		if s[idx] >= 0x80 {
			return false
		}
	}
	return true
}
