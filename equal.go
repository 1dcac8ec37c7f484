package idmap

import (
	"fmt"
	"strings"
)

// Equal reports whether two maps hold equal values at exactly the same
// identifiers. Identifier correspondence defines equality: maps built
// via different insert/remove histories are equal as long as their
// occupancy and per-identifier values coincide.
func Equal[T comparable](a, b *IdMap[T]) bool {
	if !a.ids.Equal(b.ids) {
		return false
	}
	for id := range a.ids.All() {
		if a.values[id] != b.values[id] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied comparison, allowing the
// two maps to hold different value types.
func EqualFunc[T1, T2 any](a *IdMap[T1], b *IdMap[T2], eq func(T1, T2) bool) bool {
	if !a.ids.Equal(b.ids) {
		return false
	}
	for id := range a.ids.All() {
		if !eq(a.values[id], b.values[id]) {
			return false
		}
	}
	return true
}

// String renders the map as {id: value, id: value} in increasing
// identifier order.
func (m *IdMap[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for id, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d: %v", id, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
