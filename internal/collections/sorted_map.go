package collections

import "sort"

// ordered is satisfied by any key type with a natural < ordering; used
// instead of cmp.Ordered to keep this buildable with uint32-newtype keys
// (which satisfy ~uint32 but not cmp.Ordered directly in every Go version
// this module targets).
type ordered interface {
	~uint32 | ~int | ~int64 | ~string
}

// SortedMap is a sorted-by-key slice of pairs: O(log n) lookup, O(n)
// insert/remove, but cheap in-order iteration and a small memory footprint
// — intended for small (<50 entries) or mostly-contiguous domains, such as
// an owner's per-body map keyed by a dense local ID.
type SortedMap[K ordered, V any] struct {
	data []sortedEntry[K, V]
}

type sortedEntry[K ordered, V any] struct {
	key K
	val V
}

// NewSortedMap creates an empty SortedMap.
func NewSortedMap[K ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{}
}

func (m *SortedMap[K, V]) search(key K) (int, bool) {
	i := sort.Search(len(m.data), func(i int) bool { return m.data[i].key >= key })
	if i < len(m.data) && m.data[i].key == key {
		return i, true
	}
	return i, false
}

// Insert sets key to val, returning the previous value if any.
func (m *SortedMap[K, V]) Insert(key K, val V) (prev V, existed bool) {
	i, ok := m.search(key)
	if ok {
		prev = m.data[i].val
		m.data[i].val = val
		return prev, true
	}
	m.data = append(m.data, sortedEntry[K, V]{})
	copy(m.data[i+1:], m.data[i:])
	m.data[i] = sortedEntry[K, V]{key: key, val: val}
	var zero V
	return zero, false
}

// Get looks up key.
func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.data[i].val, true
}

// Remove deletes key if present.
func (m *SortedMap[K, V]) Remove(key K) bool {
	i, ok := m.search(key)
	if !ok {
		return false
	}
	m.data = append(m.data[:i], m.data[i+1:]...)
	return true
}

// Len returns the number of entries.
func (m *SortedMap[K, V]) Len() int { return len(m.data) }

// Keys returns keys in ascending order.
func (m *SortedMap[K, V]) Keys() []K {
	out := make([]K, len(m.data))
	for i, e := range m.data {
		out[i] = e.key
	}
	return out
}

// Range calls f for every entry in ascending key order, stopping early if f
// returns false.
func (m *SortedMap[K, V]) Range(f func(K, V) bool) {
	for _, e := range m.data {
		if !f(e.key, e.val) {
			return
		}
	}
}
