package infer

// dsu is a weighted-union, path-halving disjoint-set forest over a dense
// range of indices [0, n). value carries each representative's resolved
// payload (Unknown until a union gives it one). No library in the
// retrieval pack implements this (the original source leans on Rust's
// `ena` crate, which has no Go ecosystem counterpart here), so it is
// hand-rolled rather than imported — see DESIGN.md.
type dsu[V any] struct {
	parent []uint32
	rank   []uint8
	value  []V
}

func newDsu[V any]() *dsu[V] {
	return &dsu[V]{}
}

// fresh adds a new singleton set holding val and returns its index.
func (d *dsu[V]) fresh(val V) uint32 {
	id := uint32(len(d.parent))
	d.parent = append(d.parent, id)
	d.rank = append(d.rank, 0)
	d.value = append(d.value, val)
	return id
}

// find returns the representative of id's set, halving the path as it
// walks so repeated lookups flatten the tree over time.
func (d *dsu[V]) find(id uint32) uint32 {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}
	return id
}

// valueOf returns the payload stored at id's representative.
func (d *dsu[V]) valueOf(id uint32) V {
	return d.value[d.find(id)]
}

// setValue overwrites the payload stored at id's representative.
func (d *dsu[V]) setValue(id uint32, val V) {
	d.value[d.find(id)] = val
}

// union merges the sets containing a and b, combining their payloads with
// merge (called with the two representatives' current values; its result
// becomes the merged set's new payload). Returns the surviving
// representative.
func (d *dsu[V]) union(a, b uint32, merge func(a, b V) V) uint32 {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		d.value[ra] = merge(d.value[ra], d.value[rb])
		return ra
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	merged := merge(d.value[ra], d.value[rb])
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.value[ra] = merged
	return ra
}

// len reports how many sets have ever been created (unioned or not).
func (d *dsu[V]) len() int { return len(d.parent) }
