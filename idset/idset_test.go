package idset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_InsertRemove(t *testing.T) {
	s := New()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Insert(3))
	assert.False(t, s.Insert(3), "second insert of same id")
	assert.True(t, s.Insert(0))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(1))
	assert.False(t, s.Contains(-1))

	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3), "second remove of same id")
	assert.False(t, s.Remove(7), "remove of absent id")
	assert.Equal(t, 1, s.Len())
}

func TestSet_AllIncreasing(t *testing.T) {
	s := Of(9, 2, 40, 0, 17)

	var got []int
	for id := range s.All() {
		got = append(got, id)
	}
	assert.Equal(t, []int{0, 2, 9, 17, 40}, got)
	assert.True(t, slices.IsSorted(got))

	// Early break must not panic or corrupt the set.
	for id := range s.All() {
		if id >= 9 {
			break
		}
	}
	assert.Equal(t, 5, s.Len())
}

func TestSet_MinMax(t *testing.T) {
	s := Of(5, 1, 12)
	assert.Equal(t, 1, s.Min())
	assert.Equal(t, 12, s.Max())
}

func TestSet_Range(t *testing.T) {
	s := Range(3, 7)
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(6))
	assert.False(t, s.Contains(7))

	assert.True(t, Range(5, 5).IsEmpty())
	assert.True(t, Range(5, 2).IsEmpty())
}

func TestSet_Intersection(t *testing.T) {
	a := Of(0, 1, 2, 3)
	b := Of(2, 3, 4, 5)

	inter := a.Intersection(b)
	require.Equal(t, 2, inter.Len())
	assert.True(t, inter.Contains(2))
	assert.True(t, inter.Contains(3))

	// Inputs untouched.
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 4, b.Len())
}

func TestSet_InplaceDifference(t *testing.T) {
	a := Of(0, 1, 2, 3)
	b := Of(1, 3, 9)

	a.InplaceDifference(b)
	assert.True(t, a.Equal(Of(0, 2)))
	assert.Equal(t, 3, b.Len(), "other set untouched")
}

func TestSet_CloneEqual(t *testing.T) {
	a := Of(1, 2, 3)
	b := a.Clone()

	assert.True(t, a.Equal(b))

	b.Remove(2)
	assert.False(t, a.Equal(b))
	assert.True(t, a.Contains(2), "clone is independent")
}

func TestSet_Clear(t *testing.T) {
	s := Of(1, 2, 3)
	s.Clear()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.Contains(1))
}

func TestSet_ShrinkToFit(t *testing.T) {
	s := Range(0, 10000)
	s.Reserve(20000)
	s.ShrinkToFit()
	assert.Equal(t, 10000, s.Len())
	assert.True(t, s.Contains(9999))
}
