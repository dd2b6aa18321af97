package phi

import (
	"testing"

	"github.com/ignaciobernardo/goiphi/ces"
	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/mip"
	"github.com/ignaciobernardo/goiphi/network"
	"github.com/ignaciobernardo/goiphi/subsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyNetwork is the canonical 2-node "copy" network used throughout this
// module's tests: each node mirrors the other's prior state.
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

func TestComputeOfCopyNetworkIsIrreducible(t *testing.T) {
	net := copyNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)

	result, err := Compute(sub, mip.BI)
	require.NoError(t, err)
	assert.Greater(t, result.Phi, 0.0)
	assert.False(t, result.Cut.IsNull())
	assert.NotEmpty(t, result.UnpartitionedCES)
	assert.NotEmpty(t, result.PartitionedCES)
}

func TestComputeIsDeterministicAcrossParallelAndSequential(t *testing.T) {
	net := copyNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)

	parallel, err := Compute(sub, mip.BI, WithParallelCutEvaluation(true))
	require.NoError(t, err)
	sequential, err := Compute(sub, mip.BI, WithParallelCutEvaluation(false))
	require.NoError(t, err)

	assert.InDelta(t, sequential.Phi, parallel.Phi, 1e-9)
	assert.Equal(t, sequential.Cut, parallel.Cut)
}

func TestComputeOfDisconnectedPairIsZero(t *testing.T) {
	tpm := []float64{
		0, 0,
		0, 0,
		1, 1,
		1, 1,
	}
	cm := []bool{false, false, false, false}
	net, err := network.New(2, tpm, network.WithConnectivity(cm))
	require.NoError(t, err)
	sub, err := subsystem.New(net, 0, combin.NewSet(0, 1))
	require.NoError(t, err)

	result, err := Compute(sub, mip.BI)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Phi)
	assert.True(t, result.Cut.IsNull())
	assert.Nil(t, result.PartitionedCES)
}

func TestComputeOfSingleNodeWithoutSelfLoopIsNull(t *testing.T) {
	net := copyNetwork(t)
	sub, err := subsystem.New(net, 0, combin.NewSet(0))
	require.NoError(t, err)

	result, err := Compute(sub, mip.BI)
	require.NoError(t, err)
	// Node 0 alone has no self-loop in copyNetwork, so this is the
	// ordinary single-node-no-self-loop null case, not the convention one.
	assert.Equal(t, 0.0, result.Phi)
}

func TestComputeSingleNodeSelfLoopConvention(t *testing.T) {
	tpm := []float64{0, 1}
	cm := []bool{true}
	net, err := network.New(1, tpm, network.WithConnectivity(cm))
	require.NoError(t, err)
	sub, err := subsystem.New(net, 0, combin.NewSet(0))
	require.NoError(t, err)

	withoutConvention, err := Compute(sub, mip.BI)
	require.NoError(t, err)
	assert.Equal(t, 0.0, withoutConvention.Phi)

	withConvention, err := Compute(sub, mip.BI, WithSelfLoopConvention(true))
	require.NoError(t, err)
	assert.Equal(t, 0.5, withConvention.Phi)
}

// countingCESSource wraps the package's default behavior while counting
// how many times each method ran, standing in for the engine package's
// cache-backed CESSource without pulling a persistence dependency into
// this package's own tests.
type countingCESSource struct {
	computes, distances int
}

func (c *countingCESSource) Compute(src ces.Source, ptype mip.PartitionType) (ces.CES, error) {
	c.computes++

	return ces.Compute(src, ptype)
}

func (c *countingCESSource) Distance(home1 ces.Source, c1 ces.CES, home2 ces.Source, c2 ces.CES, cut ces.Source) (float64, error) {
	c.distances++

	return ces.Distance(home1, c1, home2, c2, cut)
}

func TestComputeUsesInjectedCESSource(t *testing.T) {
	net := copyNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)

	counting := &countingCESSource{}
	result, err := Compute(sub, mip.BI, WithCESSource(counting))
	require.NoError(t, err)
	assert.Greater(t, result.Phi, 0.0)
	// A 2-node subsystem has exactly one unordered bipartition, {0}|{1},
	// contributing exactly 2 directed cuts (0->1 and 1->0). Asserted as a
	// literal rather than derived from subsystem.AllDirectedCuts itself, so
	// this test actually catches a regression in that function's count
	// instead of trivially agreeing with whatever it returns.
	const wantCuts = 2
	assert.Equal(t, wantCuts+1, counting.computes) // one Compute call for the unpartitioned CES, one per cut
	assert.Equal(t, wantCuts, counting.distances)
}
