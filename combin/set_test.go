package combin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	s := NewSet(0, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(0))
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(2))
	assert.True(t, s.Has(3))
	assert.Equal(t, []int{0, 2, 3}, s.Indices())
}

func TestSetAddRemove(t *testing.T) {
	s := Empty
	s = s.Add(1).Add(4)
	assert.Equal(t, NewSet(1, 4), s)
	s = s.Remove(1)
	assert.Equal(t, NewSet(4), s)
}

func TestSetAlgebra(t *testing.T) {
	a := NewSet(0, 1, 2)
	b := NewSet(1, 2, 3)

	assert.Equal(t, NewSet(0, 1, 2, 3), a.Union(b))
	assert.Equal(t, NewSet(1, 2), a.Intersect(b))
	assert.Equal(t, NewSet(0), a.Diff(b))
	assert.True(t, NewSet(1, 2).IsSubsetOf(a))
	assert.False(t, a.IsSubsetOf(NewSet(1, 2)))
}

func TestFull(t *testing.T) {
	assert.Equal(t, Empty, Full(0))
	assert.Equal(t, NewSet(0, 1, 2, 3), Full(4))
	assert.Equal(t, 4, Full(4).Len())
}

func TestSubsetsAscendingAndComplete(t *testing.T) {
	s := NewSet(0, 1, 2)
	subs := s.Subsets()
	require.Len(t, subs, 8)
	assert.Equal(t, Empty, subs[0])
	assert.Equal(t, s, subs[len(subs)-1])

	for i := 1; i < len(subs); i++ {
		assert.Less(t, uint64(subs[i-1]), uint64(subs[i]), "Subsets must be strictly ascending")
	}

	seen := make(map[Set]bool)
	for _, sub := range subs {
		assert.True(t, sub.IsSubsetOf(s))
		seen[sub] = true
	}
	assert.Len(t, seen, 8)
}

func TestNonEmptySubsetsExcludesEmpty(t *testing.T) {
	s := NewSet(0, 1)
	subs := s.NonEmptySubsets()
	require.Len(t, subs, 3)
	for _, sub := range subs {
		assert.False(t, sub.Empty())
	}
}
