package idmap

import (
	"fmt"
	"iter"
	"slices"

	"github.com/andrewhickman/id-map/idset"
)

// IdMap is a container that gives each value a unique dense identifier.
// The zero value is not usable; construct with New or WithCapacity.
type IdMap[T any] struct {
	// ids is the set of identifiers currently holding a value.
	ids *idset.Set
	// values is the backing storage. A slot is meaningful only if its
	// index is in ids; all other slots hold the zero value. len(values)
	// is the least upper bound on occupied identifiers.
	values []T
	// space is the smallest unoccupied identifier, or len(values) when
	// storage is fully occupied.
	space int
}

// New creates an empty IdMap.
func New[T any]() *IdMap[T] {
	return &IdMap[T]{ids: idset.New()}
}

// WithCapacity creates an empty IdMap with storage for n values.
func WithCapacity[T any](n int) *IdMap[T] {
	return &IdMap[T]{
		ids:    idset.WithCapacity(n),
		values: make([]T, 0, n),
	}
}

// Of creates an IdMap holding the given values at identifiers 0..len-1.
func Of[T any](vals ...T) *IdMap[T] {
	m := WithCapacity[T](len(vals))
	for _, v := range vals {
		m.Insert(v)
	}
	return m
}

// Collect creates an IdMap from a sequence, assigning identifiers in
// sequence order starting at 0.
func Collect[T any](seq iter.Seq[T]) *IdMap[T] {
	m := New[T]()
	for v := range seq {
		m.Insert(v)
	}
	return m
}

// lowerSpace lowers the free-slot cursor to id if id is below it.
// Every mutation that frees a slot goes through here.
func (m *IdMap[T]) lowerSpace(id int) {
	if id < m.space {
		m.space = id
	}
}

// advanceSpace moves the free-slot cursor past the slot it points at,
// which has just become occupied, and on past any further occupied
// slots. Amortized O(1): each occupied identifier is skipped at most
// once before it is freed again.
func (m *IdMap[T]) advanceSpace() {
	m.space++
	for m.ids.Contains(m.space) {
		m.space++
	}
}

// grow extends the storage with zeroed slots until len(values) >= n.
func (m *IdMap[T]) grow(n int) {
	if n > len(m.values) {
		m.values = append(m.values, make([]T, n-len(m.values))...)
	}
}

// truncate drops trailing unoccupied slots so len(values) stays the
// least upper bound on occupied identifiers. Dropped slots were zeroed
// by the removal that freed them.
func (m *IdMap[T]) truncate() {
	bound := 0
	if !m.ids.IsEmpty() {
		bound = m.ids.Max() + 1
	}
	m.values = m.values[:bound]
}

// Insert places v at the smallest free identifier and returns that
// identifier. May grow the backing storage by one slot.
func (m *IdMap[T]) Insert(v T) int {
	id := m.space
	if id == len(m.values) {
		m.values = append(m.values, v)
	} else {
		m.values[id] = v
	}
	m.ids.Insert(id)
	m.advanceSpace()
	return id
}

// InsertAt places v at a caller-chosen identifier. If id was occupied,
// the stored value is replaced in place and the previous value is
// returned with true. If id was free, v is stored (growing storage past
// the current bound if needed) and the zero value is returned with
// false.
//
// InsertAt panics if id is negative.
func (m *IdMap[T]) InsertAt(id int, v T) (T, bool) {
	if id < 0 {
		panic(fmt.Sprintf("id %d out of bounds", id))
	}
	if m.ids.Contains(id) {
		prev := m.values[id]
		m.values[id] = v
		return prev, true
	}
	m.grow(id + 1)
	m.values[id] = v
	m.ids.Insert(id)
	if id == m.space {
		m.advanceSpace()
	}
	var zero T
	return zero, false
}

// Remove takes the value at id out of the map, returning it with true.
// If id is not occupied, Remove returns the zero value and false with
// no side effect.
func (m *IdMap[T]) Remove(id int) (T, bool) {
	var zero T
	if !m.ids.Remove(id) {
		return zero, false
	}
	m.lowerSpace(id)
	v := m.values[id]
	m.values[id] = zero
	m.truncate()
	return v, true
}

// RemoveSet removes every identifier present in both ids and the map,
// in increasing order. The free-slot cursor is lowered once, to the
// smallest removed identifier.
func (m *IdMap[T]) RemoveSet(ids *idset.Set) {
	removed := m.ids.Intersection(ids)
	if removed.IsEmpty() {
		return
	}
	m.lowerSpace(removed.Min())
	var zero T
	for id := range removed.All() {
		m.values[id] = zero
	}
	m.ids.InplaceDifference(ids)
	m.truncate()
}

// Retain visits every occupied identifier exactly once, in increasing
// order, and removes those for which pred returns false. The predicate
// may mutate the value through its pointer.
func (m *IdMap[T]) Retain(pred func(id int, v *T) bool) {
	removed := idset.New()
	var zero T
	for id := range m.ids.All() {
		if !pred(id, &m.values[id]) {
			m.values[id] = zero
			removed.Insert(id)
		}
	}
	if removed.IsEmpty() {
		return
	}
	m.lowerSpace(removed.Min())
	m.ids.InplaceDifference(removed)
	m.truncate()
}

// GetOrInsert returns a pointer to the value at id, inserting v there
// first if the slot is free. The supplied value is unused when the slot
// is already occupied.
//
// The returned pointer is invalidated by any subsequent growth of the
// map.
func (m *IdMap[T]) GetOrInsert(id int, v T) *T {
	if !m.ids.Contains(id) {
		m.InsertAt(id, v)
	}
	return &m.values[id]
}

// GetOrInsertWith is GetOrInsert with a lazily produced value. The
// producer is called only when the slot is free.
func (m *IdMap[T]) GetOrInsertWith(id int, fn func() T) *T {
	if !m.ids.Contains(id) {
		m.InsertAt(id, fn())
	}
	return &m.values[id]
}

// Extend plain-inserts every value from the sequence.
func (m *IdMap[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		m.Insert(v)
	}
}

// Clear releases every value and empties the map. Storage capacity is
// retained.
func (m *IdMap[T]) Clear() {
	clear(m.values)
	m.values = m.values[:0]
	m.ids.Clear()
	m.space = 0
}

// ShrinkToFit reduces reserved backing capacity to the current storage
// bound. Advisory; it never changes identifiers or values.
func (m *IdMap[T]) ShrinkToFit() {
	if cap(m.values) > len(m.values) {
		m.values = slices.Clone(m.values)
	}
	m.ids.ShrinkToFit()
}

// Contains reports whether id currently holds a value.
func (m *IdMap[T]) Contains(id int) bool {
	return m.ids.Contains(id)
}

// Get returns the value at id, or the zero value and false if id is not
// occupied.
func (m *IdMap[T]) Get(id int) (T, bool) {
	if !m.ids.Contains(id) {
		var zero T
		return zero, false
	}
	return m.values[id], true
}

// GetRef returns a pointer to the value at id, or nil and false if id
// is not occupied. The pointer is invalidated by any subsequent growth
// of the map.
func (m *IdMap[T]) GetRef(id int) (*T, bool) {
	if !m.ids.Contains(id) {
		return nil, false
	}
	return &m.values[id], true
}

// At returns a pointer to the value at id, trusting that id is
// occupied. It panics if id is not. Callers needing a non-fatal path
// must use Get or GetRef.
func (m *IdMap[T]) At(id int) *T {
	if !m.ids.Contains(id) {
		panic(fmt.Sprintf("id %d out of bounds", id))
	}
	return &m.values[id]
}

// Len returns the number of occupied identifiers.
func (m *IdMap[T]) Len() int {
	return m.ids.Len()
}

// Capacity returns the number of values the map can hold before
// reallocating its storage.
func (m *IdMap[T]) Capacity() int {
	return cap(m.values)
}

// NextID returns the identifier the next plain Insert would produce.
func (m *IdMap[T]) NextID() int {
	return m.space
}

// Clone returns a copy of the map. Occupied slots are copied into
// freshly sized storage; free slots are not.
func (m *IdMap[T]) Clone() *IdMap[T] {
	values := make([]T, len(m.values))
	for id := range m.ids.All() {
		values[id] = m.values[id]
	}
	return &IdMap[T]{
		ids:    m.ids.Clone(),
		values: values,
		space:  m.space,
	}
}
