package idmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	idmap "github.com/andrewhickman/id-map"
	"github.com/andrewhickman/id-map/idset"
)

// gappy builds {0: "a", 2: "c", 5: "f"} so traversals must skip absent
// slots.
func gappy(t *testing.T) *idmap.IdMap[string] {
	t.Helper()
	m := idmap.Of("a", "b", "c", "d", "e", "f")
	m.RemoveSet(idset.Of(1, 3, 4))
	require.Equal(t, 3, m.Len())
	return m
}

func TestIds(t *testing.T) {
	m := gappy(t)

	var got []int
	for id := range m.Ids() {
		got = append(got, id)
	}
	assert.Equal(t, []int{0, 2, 5}, got)
}

func TestValues(t *testing.T) {
	m := gappy(t)

	var got []string
	for v := range m.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "c", "f"}, got)

	// Immutable sequences are restartable.
	seq := m.Values()
	for range seq {
		break
	}
	got = got[:0]
	for v := range seq {
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "c", "f"}, got)
}

func TestAll(t *testing.T) {
	m := gappy(t)

	got := map[int]string{}
	var order []int
	for id, v := range m.All() {
		got[id] = v
		order = append(order, id)
	}
	assert.Equal(t, map[int]string{0: "a", 2: "c", 5: "f"}, got)
	assert.Equal(t, []int{0, 2, 5}, order)
}

func TestRefValuesAliasing(t *testing.T) {
	m := idmap.Of(10, 20, 30, 40, 50)

	var refs []*int
	for p := range m.RefValues() {
		refs = append(refs, p)
	}
	require.Len(t, refs, 5)

	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			assert.NotSame(t, refs[i], refs[j], "refs %d and %d alias", i, j)
		}
	}
}

func TestRefsMutate(t *testing.T) {
	m := gappy(t)

	for id, p := range m.Refs() {
		if id == 2 {
			*p = "C"
		}
	}
	assert.Equal(t, `{0: a, 2: C, 5: f}`, m.String())
}

func TestDrain(t *testing.T) {
	m := gappy(t)

	got := map[int]string{}
	for id, v := range m.Drain() {
		got[id] = v
	}
	assert.Equal(t, map[int]string{0: "a", 2: "c", 5: "f"}, got)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.NextID())

	// The drained map is reusable.
	assert.Equal(t, 0, m.Insert("x"))
}

func TestDrainEarlyBreak(t *testing.T) {
	m := gappy(t)

	for id := range m.Drain() {
		if id == 2 {
			break
		}
	}

	// Ids 0 and 2 were consumed; 5 survives.
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(5)
	require.True(t, ok)
	assert.Equal(t, "f", v)
	assert.Equal(t, 0, m.NextID())
}

func TestRetainFilter(t *testing.T) {
	m := idmap.New[int]()
	for i := 0; i < 100; i++ {
		m.Insert(i)
	}

	m.Retain(func(id int, v *int) bool { return *v%2 == 0 })

	var got []int
	for v := range m.Values() {
		got = append(got, v)
	}
	want := make([]int, 0, 50)
	for i := 0; i < 100; i += 2 {
		want = append(want, i)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 1, m.NextID(), "smallest rejected id")
}

func TestRetainIdempotent(t *testing.T) {
	pred := func(id int, v *int) bool { return *v%3 != 0 }

	m := idmap.New[int]()
	for i := 0; i < 30; i++ {
		m.Insert(i)
	}

	m.Retain(pred)
	once := m.Clone()
	m.Retain(pred)

	assert.True(t, idmap.Equal(once, m))
}

func TestRetainVisitsEachOnce(t *testing.T) {
	m := idmap.Of("a", "b", "c")

	visits := map[int]int{}
	m.Retain(func(id int, v *string) bool {
		visits[id]++
		return true
	})
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, visits)
}

func TestRetainMutates(t *testing.T) {
	m := idmap.Of(1, 2, 3, 4)

	m.Retain(func(id int, v *int) bool {
		*v *= 10
		return *v != 20
	})
	assert.Equal(t, `{0: 10, 2: 30, 3: 40}`, m.String())
}
