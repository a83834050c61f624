package collections

import (
	"fmt"

	"fortio.org/safecast"
)

// Index is the constraint satisfied by every newtype ID used to index an
// IndexVec: NodeId, DefIndex, ItemLocalId, TyVid, IntVid, FloatVid,
// SteloNum, and so on are all `type X uint32`.
type Index interface {
	~uint32
}

// IndexVec is a Vec<T> indexed by a newtype-wrapped uint32 instead of a
// plain int, so values of incompatible index kinds can't be mixed up at
// the call site.
type IndexVec[I Index, T any] struct {
	data []T
}

// NewIndexVec creates an empty IndexVec.
func NewIndexVec[I Index, T any]() *IndexVec[I, T] {
	return &IndexVec[I, T]{}
}

// Push appends v and returns the index it was stored at.
func (v *IndexVec[I, T]) Push(val T) I {
	idx := v.nextIndex()
	v.data = append(v.data, val)
	return idx
}

func (v *IndexVec[I, T]) nextIndex() I {
	n, err := safecast.Conv[uint32](len(v.data))
	if err != nil {
		panic(fmt.Errorf("collections: index_vec overflow: %w", err))
	}
	return I(n)
}

// Len returns the number of elements.
func (v *IndexVec[I, T]) Len() int { return len(v.data) }

// Get returns a pointer to the element at idx, panicking if out of range —
// callers are expected to only ever index with IDs this same vector handed
// out.
func (v *IndexVec[I, T]) Get(idx I) *T {
	return &v.data[uint32(idx)]
}

// Set overwrites the element at idx.
func (v *IndexVec[I, T]) Set(idx I, val T) {
	v.data[uint32(idx)] = val
}

// AsSlice exposes the backing storage as an IndexSlice (read-mostly view).
func (v *IndexVec[I, T]) AsSlice() IndexSlice[I, T] {
	return IndexSlice[I, T]{data: v.data}
}

// Raw returns the underlying slice, in index order.
func (v *IndexVec[I, T]) Raw() []T { return v.data }

// IndexSlice is a read-oriented view over a slice indexed by I, without the
// Push/grow machinery of IndexVec — the Go analogue of the original's
// IndexSlice<I, T> borrow type.
type IndexSlice[I Index, T any] struct {
	data []T
}

// Get returns a pointer to the element at idx.
func (s IndexSlice[I, T]) Get(idx I) *T {
	return &s.data[uint32(idx)]
}

// Len returns the number of elements.
func (s IndexSlice[I, T]) Len() int { return len(s.data) }

// Raw returns the underlying slice.
func (s IndexSlice[I, T]) Raw() []T { return s.data }
