package ces

import (
	"testing"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/mip"
	"github.com/ignaciobernardo/goiphi/network"
	"github.com/ignaciobernardo/goiphi/repertoire"
	"github.com/ignaciobernardo/goiphi/subsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyNetwork is the canonical 2-node "copy" network used throughout
// package mip's tests: node 0's next state copies node 1's current state
// and vice versa, so each node is a perfect (but lagged) mirror of the
// other.
func copyNetwork(t *testing.T) *network.Network {
	t.Helper()
	tpm := []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	}
	cm := []bool{false, true, true, false}
	net, err := network.New(2, tpm, network.WithConnectivity(cm))
	require.NoError(t, err)

	return net
}

func TestComputeFindsAtLeastOneConcept(t *testing.T) {
	net := copyNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)
	eng := repertoire.New(sub)

	c, err := Compute(Source{Repertoire: eng.Repertoire, Subsystem: eng.Subsystem()}, mip.BI)
	require.NoError(t, err)
	assert.NotEmpty(t, c)

	for i := 1; i < len(c); i++ {
		prev, cur := c[i-1], c[i]
		if prev.Mechanism.Len() != cur.Mechanism.Len() {
			assert.Less(t, prev.Mechanism.Len(), cur.Mechanism.Len())
		} else {
			assert.Less(t, prev.Mechanism, cur.Mechanism)
		}
	}
}

func TestComputeFiltersSubThresholdConcepts(t *testing.T) {
	// An isolated single node (no inputs, no outputs) can never validate a
	// mechanism and so contributes no concept at all.
	tpm := []float64{0.5, 0.5}
	cm := []bool{false}
	net, err := network.New(1, tpm, network.WithConnectivity(cm))
	require.NoError(t, err)
	sub, err := subsystem.New(net, 0, combin.NewSet(0))
	require.NoError(t, err)
	eng := repertoire.New(sub)

	c, err := Compute(Source{Repertoire: eng.Repertoire, Subsystem: eng.Subsystem()}, mip.BI)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestByMechanismFindsAndMisses(t *testing.T) {
	net := copyNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)
	eng := repertoire.New(sub)

	c, err := Compute(Source{Repertoire: eng.Repertoire, Subsystem: eng.Subsystem()}, mip.BI)
	require.NoError(t, err)
	require.NotEmpty(t, c)

	found, ok := c.ByMechanism(c[0].Mechanism)
	assert.True(t, ok)
	assert.Equal(t, c[0], found)

	_, ok = c.ByMechanism(combin.NewSet(0, 1, 2, 3, 4, 5))
	assert.False(t, ok)
}
