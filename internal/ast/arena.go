package ast

// Arena is a flat, append-only store with 1-based uint32 handles.
// Index 0 is reserved as "none" so zero-valued IDs are always invalid.
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena whose backing slice is preallocated to capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data)) //nolint:gosec // arena growth is bounded by source size
}

// Get returns the element at index, or nil for the reserved zero index.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the backing storage. Read-only by convention.
func (a *Arena[T]) Slice() []T {
	return a.data
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data)) //nolint:gosec // see Allocate
}
