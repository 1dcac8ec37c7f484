// Package idmap provides a container that gives each inserted value a
// small dense integer identifier. Insertion, removal, and lookup by
// identifier are O(1).
//
// Identifiers are drawn from the smallest currently free slot, so storage
// stays dense under churn: removing an identifier makes it eligible for
// reuse by a later insertion. Slots whose identifier is not occupied hold
// no observable value; the occupancy set (package idset) is the sole
// source of truth for liveness.
//
// # Quick Start
//
//	m := idmap.New[string]()
//	blue := m.Insert("blue")   // id 0
//	red := m.Insert("red")     // id 1
//	m.Remove(blue)
//	m.Insert("yellow")         // reuses id 0
//
//	for id, v := range m.All() {
//	    fmt.Println(id, v) // increasing id order
//	}
//
// # Access forms
//
// Get, GetRef, and Remove report absence explicitly. At trusts the caller
// and panics on an unoccupied identifier; use it only where occupancy is
// already established.
//
// # Concurrency
//
// An IdMap assumes a single owner: no operation is safe for concurrent
// use, and mutating the map invalidates any outstanding iterators or
// references into its storage.
package idmap
