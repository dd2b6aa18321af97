package subsystem

import (
	"testing"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeNodeNetwork(t *testing.T) *network.Network {
	t.Helper()
	// 3 nodes, 8 states x 3 columns; values don't matter for these tests,
	// only shape and connectivity do.
	tpm := make([]float64, 8*3)
	for i := range tpm {
		tpm[i] = 0.5
	}
	net, err := network.New(3, tpm)
	require.NoError(t, err)

	return net
}

func TestNewValidatesNodes(t *testing.T) {
	net := threeNodeNetwork(t)
	_, err := New(net, 0, combin.NewSet(5))
	assert.ErrorIs(t, err, ErrNodesNotInNetwork)

	_, err = New(net, 0, combin.Empty)
	assert.ErrorIs(t, err, ErrEmptyNodes)
}

func TestSubStateProjectsOntoSubsystemNodes(t *testing.T) {
	net := threeNodeNetwork(t)
	sub, err := New(net, 0b101, combin.NewSet(0, 2))
	require.NoError(t, err)
	assert.Equal(t, 0b11, sub.SubState())
}

func TestWithCutAppliesAndRestrictsToMembers(t *testing.T) {
	net := threeNodeNetwork(t)
	sub, err := New(net, 0, combin.NewSet(0, 1, 2))
	require.NoError(t, err)

	cut, err := NewCut(combin.NewSet(0), combin.NewSet(1))
	require.NoError(t, err)
	cutSub, err := sub.WithCut(cut)
	require.NoError(t, err)

	assert.True(t, cutSub.Connected(0, 2))
	assert.False(t, cutSub.Connected(0, 1))
	assert.True(t, sub.Connected(0, 1)) // original subsystem unaffected
}

func TestWithCutRejectsNodesOutsideSubsystem(t *testing.T) {
	net := threeNodeNetwork(t)
	sub, err := New(net, 0, combin.NewSet(0, 1))
	require.NoError(t, err)

	cut, err := NewCut(combin.NewSet(0), combin.NewSet(2))
	require.NoError(t, err)
	_, err = sub.WithCut(cut)
	assert.ErrorIs(t, err, ErrCutNotInSubsystem)
}

func TestIsStronglyConnectedFullyConnected(t *testing.T) {
	net := threeNodeNetwork(t)
	sub, err := New(net, 0, combin.NewSet(0, 1, 2))
	require.NoError(t, err)
	assert.True(t, sub.IsStronglyConnected())
}

func TestIsStronglyConnectedBrokenByCut(t *testing.T) {
	net := threeNodeNetwork(t)
	sub, err := New(net, 0, combin.NewSet(0, 1, 2))
	require.NoError(t, err)

	cut, err := NewCut(combin.NewSet(0, 1), combin.NewSet(2))
	require.NoError(t, err)
	cutSub, err := sub.WithCut(cut)
	require.NoError(t, err)
	assert.False(t, cutSub.IsStronglyConnected())
}

func TestInputsRespectsCurrentCut(t *testing.T) {
	net := threeNodeNetwork(t)
	sub, err := New(net, 0, combin.NewSet(0, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, combin.NewSet(0, 1, 2), sub.Inputs(1))

	cut, err := NewCut(combin.NewSet(0), combin.NewSet(1))
	require.NoError(t, err)
	cutSub, err := sub.WithCut(cut)
	require.NoError(t, err)
	assert.Equal(t, combin.NewSet(1, 2), cutSub.Inputs(1))
}
