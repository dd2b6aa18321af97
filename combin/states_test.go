package combin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllStates(t *testing.T) {
	states, err := AllStates(3)
	require.NoError(t, err)
	require.Len(t, states, 8)
	for i, s := range states {
		assert.Equal(t, i, s)
	}
}

func TestAllStatesTooManyNodes(t *testing.T) {
	_, err := AllStates(MaxNodes + 1)
	assert.ErrorIs(t, err, ErrTooManyNodes)
}

func TestStateBit(t *testing.T) {
	state := 0b101 // node 0 = 1, node 1 = 0, node 2 = 1
	assert.Equal(t, 1, StateBit(state, 0))
	assert.Equal(t, 0, StateBit(state, 1))
	assert.Equal(t, 1, StateBit(state, 2))
}

func TestProjectStateFullMaskIsIdentity(t *testing.T) {
	state := 0b0110
	assert.Equal(t, state, ProjectState(state, Full(4)))
}

func TestProjectStatePacksSubsetBits(t *testing.T) {
	// state: node0=1, node1=0, node2=1, node3=1
	state := 0b1101
	// mask keeps nodes {0, 2}: projected bit0 <- node0, bit1 <- node2
	got := ProjectState(state, NewSet(0, 2))
	assert.Equal(t, 0b11, got)

	// mask keeps nodes {1, 3}: projected bit0 <- node1 (0), bit1 <- node3 (1)
	got = ProjectState(state, NewSet(1, 3))
	assert.Equal(t, 0b10, got)
}

func TestProjectStateEmptyMask(t *testing.T) {
	assert.Equal(t, 0, ProjectState(0b1111, Empty))
}

func TestExpandStateInvertsProjectState(t *testing.T) {
	mask := NewSet(1, 3)
	state := 0b1101
	local := ProjectState(state, mask)
	assert.Equal(t, ProjectState(state, mask), ProjectState(ExpandState(mask, local), mask))
	// Only bits within mask survive.
	assert.Equal(t, 0, ExpandState(mask, local)&^int(mask))
}

func TestExpandStateFullMaskIsIdentity(t *testing.T) {
	state := 0b0110
	assert.Equal(t, state, ExpandState(Full(4), state))
}
