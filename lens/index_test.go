package lens_test

import (
	"testing"

	"github.com/katalvlaran/optics/core"
	"github.com/katalvlaran/optics/lens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndex_SliceLaws checks the lens laws on a slice element.
func TestIndex_SliceLaws(t *testing.T) {
	s := []int{10, 20, 30}
	at1 := lens.Index(1)

	set, err := core.Set(s, at1, 99)
	require.NoError(t, err, "set must succeed")
	got, err := core.Get(set, at1)
	require.NoError(t, err, "get must succeed")
	assert.Equal(t, 99, got, "get(set(o, v)) == v")

	cur, err := core.Get(s, at1)
	require.NoError(t, err, "get must succeed")
	same, err := core.Set(s, at1, cur)
	require.NoError(t, err, "set must succeed")
	assert.Equal(t, s, same, "set(o, get(o)) == o")

	v1, err := core.Set(s, at1, 1)
	require.NoError(t, err, "set must succeed")
	v2, err := core.Set(v1.([]int), at1, 2)
	require.NoError(t, err, "set must succeed")
	direct, err := core.Set(s, at1, 2)
	require.NoError(t, err, "set must succeed")
	assert.Equal(t, direct, v2, "set(set(o, v1), v2) == set(o, v2)")

	assert.Equal(t, []int{10, 20, 30}, s, "original slice untouched in immutable mode")
}

// TestIndex_MutableSlice verifies the in-place fast path writes the shared
// backing array and returns the same slice.
func TestIndex_MutableSlice(t *testing.T) {
	s := []int{1, 2, 3}
	out, err := core.Set(s, lens.Index(0), 7, core.WithMode(core.Mutable))
	require.NoError(t, err, "mutable set must succeed")
	assert.Equal(t, 7, s[0], "backing array written in place")
	assert.Equal(t, any(s), out, "same slice returned")
}

// TestIndex_ArrayAlwaysImmutable verifies fixed-size tuples take the
// immutable path regardless of the requested mode.
func TestIndex_ArrayAlwaysImmutable(t *testing.T) {
	a := [3]string{"x", "y", "z"}

	out, err := core.Set(a, lens.Index(2), "w", core.WithMode(core.Mutable))
	require.NoError(t, err, "array set must succeed")
	na, ok := out.([3]string)
	require.True(t, ok, "concrete array kind preserved")
	assert.Equal(t, [3]string{"x", "y", "w"}, na, "element replaced in the rebuilt array")
	assert.Equal(t, [3]string{"x", "y", "z"}, a, "original array untouched even in Mutable mode")
}

// TestIndex_MapKeys verifies keyed access with key-type conversion.
func TestIndex_MapKeys(t *testing.T) {
	m := map[string]float64{"pi": 3.14}

	got, err := core.Get(m, lens.Index("pi"))
	require.NoError(t, err, "map get must succeed")
	assert.Equal(t, 3.14, got, "keyed read")

	out, err := core.Set(m, lens.Index("pi"), 3.15)
	require.NoError(t, err, "map set must succeed")
	assert.Equal(t, map[string]float64{"pi": 3.15}, out, "copy-and-replace")
	assert.Equal(t, 3.14, m["pi"], "original untouched")

	_, err = core.Get(m, lens.Index("tau"))
	assert.ErrorIs(t, err, lens.ErrNoSuchKey, "absent key is a data error")
}

// TestIndex_MultiIndexTuple verifies successive indexing through nested
// containers, rebuilding the spine on set.
func TestIndex_MultiIndexTuple(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	at := lens.Index(1, 0)

	got, err := core.Get(grid, at)
	require.NoError(t, err, "nested get must succeed")
	assert.Equal(t, 3, got, "grid[1][0]")

	out, err := core.Set(grid, at, 33)
	require.NoError(t, err, "nested set must succeed")
	assert.Equal(t, [][]int{{1, 2}, {33, 4}}, out, "only the addressed element changed")
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, grid, "original untouched at every level")

	mixed := map[string][]int{"xs": {5, 6}}
	out, err = core.Set(mixed, lens.Index("xs", 1), 66)
	require.NoError(t, err, "map-then-slice set must succeed")
	assert.Equal(t, map[string][]int{"xs": {5, 66}}, out, "mixed container spine rebuilt")
}

// TestIndex_DataErrors covers the index-shaped data error taxonomy.
func TestIndex_DataErrors(t *testing.T) {
	s := []int{1, 2, 3}

	_, err := core.Get(s, lens.Index(5))
	assert.ErrorIs(t, err, lens.ErrIndexOutOfRange, "past-the-end read")

	_, err = core.Set(s, lens.Index(-1), 0)
	assert.ErrorIs(t, err, lens.ErrIndexOutOfRange, "negative index write")

	_, err = core.Get(s, lens.Index("zero"))
	assert.ErrorIs(t, err, lens.ErrBadIndexType, "string index into a slice")

	_, err = core.Get(42, lens.Index(0))
	assert.ErrorIs(t, err, lens.ErrNotIndexable, "scalar is not indexable")

	_, err = core.Set(s, lens.Index(0), "nope")
	assert.ErrorIs(t, err, lens.ErrBadValue, "element type mismatch on write")
}

// TestIndex_ConstructorValidation verifies the empty tuple panics.
func TestIndex_ConstructorValidation(t *testing.T) {
	assert.Panics(t, func() { lens.Index() }, "empty index tuple is a programmer error")
}

// TestIndex_Accessors covers the introspection helpers.
func TestIndex_Accessors(t *testing.T) {
	ix := lens.Index(1, "k")
	assert.Equal(t, []any{1, "k"}, ix.Indices(), "tuple round-trips")
	assert.Equal(t, `Index(1, "k")`, ix.String(), "shape naming")
}
