// Package collections implements a generic arena/typed-index/sorted-map
// substrate: a bump-allocated Arena[T], a newtype-indexed IndexVec[I,T],
// and a sorted-slice SortedMap[K,V], generalized with Go type parameters.
package collections

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is a bump allocator: it appends values and hands back a stable
// 1-based index, and never runs destructors. Values stored here must not
// own external resources that need explicit cleanup.
type Arena[T any] struct {
	data []*T
}

// NewArena creates an Arena with capHint pre-reserved slots.
func NewArena[T any](capHint int) *Arena[T] {
	return &Arena[T]{data: make([]*T, 0, capHint)}
}

// Alloc appends v and returns its 1-based index.
func (a *Arena[T]) Alloc(v T) uint32 {
	elem := new(T)
	*elem = v
	a.data = append(a.data, elem)
	return a.Len()
}

// AllocFromIter appends every element of vs in order and returns the index
// of the first one (indices are contiguous).
func (a *Arena[T]) AllocFromIter(vs []T) uint32 {
	first := a.Len() + 1
	for _, v := range vs {
		a.Alloc(v)
	}
	return first
}

// Get returns a pointer to the element at the given 1-based index, or nil
// for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return a.data[index-1]
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() uint32 {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("collections: arena length overflow: %w", err))
	}
	return n
}

// Slice returns a value copy of the arena's contents, read-only by
// convention.
func (a *Arena[T]) Slice() []T {
	out := make([]T, len(a.data))
	for i, p := range a.data {
		out[i] = *p
	}
	return out
}
