package sequence_test

import (
	"testing"

	"github.com/katalvlaran/seqmetric/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunes_SplitsCodePoints verifies that multi-byte characters become one element each.
func TestRunes_SplitsCodePoints(t *testing.T) {
	s := sequence.Runes("café")
	require.Equal(t, 4, s.Len(), "café has four code points")
	assert.Equal(t, 'é', s.At(3))
}

// TestLen_AbsentAndEmpty checks that Len treats absent and empty alike,
// while IsAbsent still distinguishes them.
func TestLen_AbsentAndEmpty(t *testing.T) {
	var absent sequence.Sequence[int]
	var empty sequence.Sequence[int] = sequence.Slice[int](nil)

	assert.Equal(t, 0, sequence.Len(absent))
	assert.Equal(t, 0, sequence.Len(empty))
	assert.True(t, sequence.IsAbsent(absent), "nil interface is absent")
	assert.False(t, sequence.IsAbsent(empty), "nil slice wrapped in the interface is empty, not absent")
}

// TestOf_AndBytes verifies the slice adapters index the underlying data.
func TestOf_AndBytes(t *testing.T) {
	s := sequence.Of("a", "b")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "b", s.At(1))

	b := sequence.Bytes([]byte{0x01, 0xff})
	assert.Equal(t, byte(0xff), b.At(1))
}

// TestComparators covers ==, DeepEqual and the nil fallback.
func TestComparators(t *testing.T) {
	eq := sequence.Equal[int]()
	assert.True(t, eq(3, 3))
	assert.False(t, eq(3, 4))

	deep := sequence.DeepEqual[[]int]()
	assert.True(t, deep([]int{1, 2}, []int{1, 2}), "slices compare by value")
	assert.False(t, deep([]int{1, 2}, []int{2, 1}))

	def := sequence.OrDefault[[]string](nil)
	require.NotNil(t, def)
	assert.True(t, def([]string{"x"}, []string{"x"}))

	custom := sequence.OrDefault(sequence.EqualFunc[int](func(x, y int) bool { return x%10 == y%10 }))
	assert.True(t, custom(13, 3), "non-nil comparator is returned unchanged")
}
