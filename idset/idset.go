package idset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an ordered set of non-negative integer identifiers.
// It wraps a 32-bit Roaring Bitmap.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// WithCapacity creates an empty set sized for roughly n identifiers.
// The hint is advisory: roaring allocates containers on demand.
func WithCapacity(n int) *Set {
	return New()
}

// Of creates a set containing the given identifiers.
func Of(ids ...int) *Set {
	s := New()
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
	return s
}

// Range creates a set containing every identifier in [lo, hi).
func Range(lo, hi int) *Set {
	s := New()
	if lo < hi {
		s.rb.AddRange(uint64(lo), uint64(hi))
	}
	return s
}

// Contains reports whether id is in the set.
func (s *Set) Contains(id int) bool {
	return id >= 0 && s.rb.Contains(uint32(id))
}

// Insert adds id to the set. It returns true if id was newly inserted.
func (s *Set) Insert(id int) bool {
	return s.rb.CheckedAdd(uint32(id))
}

// Remove deletes id from the set. It returns true if id was present.
func (s *Set) Remove(id int) bool {
	return id >= 0 && s.rb.CheckedRemove(uint32(id))
}

// Len returns the number of identifiers in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set contains no identifiers.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Min returns the smallest identifier in the set.
// The set must not be empty.
func (s *Set) Min() int {
	return int(s.rb.Minimum())
}

// Max returns the largest identifier in the set.
// The set must not be empty.
func (s *Set) Max() int {
	return int(s.rb.Maximum())
}

// Clear removes all identifiers from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Equal reports whether both sets contain exactly the same identifiers.
func (s *Set) Equal(other *Set) bool {
	return s.rb.Equals(other.rb)
}

// All iterates over the identifiers in increasing order.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Intersection returns a new set holding the identifiers present in both
// s and other. Neither input is modified.
func (s *Set) Intersection(other *Set) *Set {
	return &Set{rb: roaring.And(s.rb, other.rb)}
}

// InplaceDifference removes from s every identifier present in other.
func (s *Set) InplaceDifference(other *Set) {
	s.rb.AndNot(other.rb)
}

// Reserve hints that the set will grow to roughly n identifiers.
// Advisory: roaring allocates containers on demand, so no space is
// reserved up front.
func (s *Set) Reserve(n int) {}

// ShrinkToFit compacts the underlying bitmap containers. Advisory; it
// never changes set membership.
func (s *Set) ShrinkToFit() {
	s.rb.RunOptimize()
}
