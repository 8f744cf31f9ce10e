// Package unionfind provides a disjoint-set forest keyed by arbitrary comparable ids.
//
// The forest stores a parent mapping and compresses paths on every [Forest.Find].
// [Forest.Union] has no rank or size heuristic: the first root is always
// attached beneath the second, which keeps the resulting structure a pure
// function of the order in which unions are requested.
package unionfind

// Forest is a union-find structure over ids of type K.
// The zero value is not usable; create one with [New].
type Forest[K comparable] struct {
	parent map[K]K
	roots  int
}

// New returns a forest in which every id is its own singleton set.
func New[K comparable](ids ...K) *Forest[K] {
	f := &Forest[K]{parent: make(map[K]K, len(ids))}
	for _, id := range ids {
		f.Add(id)
	}
	return f
}

// Add inserts id as a singleton set. Adding an existing id is a no-op.
func (f *Forest[K]) Add(id K) {
	if _, ok := f.parent[id]; ok {
		return
	}
	f.parent[id] = id
	f.roots++
}

// Find returns the root of the set containing id, pointing every node on the
// walked path directly at that root. It panics if id was never added.
func (f *Forest[K]) Find(id K) K {
	p, ok := f.parent[id]
	if !ok {
		panic("unionfind: unknown id")
	}
	if p == id {
		return id
	}
	root := f.Find(p)
	f.parent[id] = root
	return root
}

// Union merges the sets containing a and b by attaching a's root beneath b's
// root. It reports false, changing nothing, when both already share a root.
func (f *Forest[K]) Union(a, b K) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	f.parent[ra] = rb
	f.roots--
	return true
}

// Roots returns the number of distinct sets.
func (f *Forest[K]) Roots() int { return f.roots }
