// Package bimap provides a small generic two-way mapping, used for the
// name<->id tables the codec's static data relies on (species, abilities,
// moves, natures, items, the Gen-4 character map). No bidirectional-map
// package is available anywhere in the dependency set this module draws
// from, so tables are built from two parallel unidirectional maps
// constructed from one input slice.
package bimap

// Map is a bidirectional mapping between a comparable key type K and a
// comparable value type V. It is built once and treated as read-only
// afterwards; it is not safe for concurrent writes.
type Map[K comparable, V comparable] struct {
	forward  map[K]V
	backward map[V]K
}

// New builds an empty Map.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{
		forward:  make(map[K]V),
		backward: make(map[V]K),
	}
}

// FromSlice builds a Map whose keys are the slice indices (as K, via the
// supplied conversion) and whose values are the slice elements. This is
// the shape every id->name static table in this module uses.
func FromSlice[V comparable](values []V, index func(i int) int) *Map[int, V] {
	m := New[int, V]()
	for i, v := range values {
		m.Insert(index(i), v)
	}
	return m
}

// Insert associates k with v in both directions. A later insert of a
// duplicate value is treated as an alias: the forward lookup keeps the
// association, but the backward (value->key) entry keeps whichever key
// was inserted first, so that the first-seen id remains canonical.
func (m *Map[K, V]) Insert(k K, v V) {
	m.forward[k] = v
	if _, exists := m.backward[v]; !exists {
		m.backward[v] = k
	}
}

// Name returns the value for k and whether it was present.
func (m *Map[K, V]) Name(k K) (V, bool) {
	v, ok := m.forward[k]
	return v, ok
}

// ID returns the key for v and whether it was present.
func (m *Map[K, V]) ID(v V) (K, bool) {
	k, ok := m.backward[v]
	return k, ok
}

// Len reports the number of forward entries.
func (m *Map[K, V]) Len() int {
	return len(m.forward)
}
