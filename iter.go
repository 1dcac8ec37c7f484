package idmap

import "iter"

// Ids iterates over all occupied identifiers in increasing order.
func (m *IdMap[T]) Ids() iter.Seq[int] {
	return m.ids.All()
}

// Values iterates over all values in increasing identifier order.
func (m *IdMap[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := range m.ids.All() {
			if !yield(m.values[id]) {
				return
			}
		}
	}
}

// RefValues iterates over pointers to all values in increasing
// identifier order, allowing each value to be mutated in place. Within
// one traversal no two yielded pointers alias the same slot, because
// the occupancy set never repeats an identifier.
//
// The yielded pointers are invalidated by any subsequent growth of the
// map.
func (m *IdMap[T]) RefValues() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for id := range m.ids.All() {
			if !yield(&m.values[id]) {
				return
			}
		}
	}
}

// All iterates over identifier-value pairs in increasing identifier
// order.
func (m *IdMap[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for id := range m.ids.All() {
			if !yield(id, m.values[id]) {
				return
			}
		}
	}
}

// Refs iterates over identifier-pointer pairs in increasing identifier
// order. The aliasing and invalidation rules of RefValues apply.
func (m *IdMap[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for id := range m.ids.All() {
			if !yield(id, &m.values[id]) {
				return
			}
		}
	}
}

// Drain iterates over identifier-value pairs in increasing identifier
// order, removing each yielded pair from the map. Fully consumed, it
// leaves the map empty; stopping early leaves the remaining pairs in
// place with all invariants intact.
func (m *IdMap[T]) Drain() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var zero T
		// Walk a raw position cursor across the storage in lockstep
		// with the occupancy traversal. The gap between successive
		// occupied identifiers tells the cursor how many absent slots
		// to skip, so each step lands on exactly the slot for the
		// yielded identifier.
		pos, prev := 0, -1
		for id := range m.ids.Clone().All() {
			pos += id - prev - 1
			prev = id
			v := m.values[pos]
			m.values[pos] = zero
			pos++
			m.ids.Remove(id)
			m.lowerSpace(id)
			if !yield(id, v) {
				m.truncate()
				return
			}
		}
		m.values = m.values[:0]
		m.space = 0
	}
}
