package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/networks"
	"github.com/ignaciobernardo/goiphi/phi"
)

func TestSubsystemsEnumeratesEveryNonemptyNodeSubset(t *testing.T) {
	net, state, err := networks.ANDOrXORTriple()
	require.NoError(t, err)

	subs, err := Subsystems(net, state)
	require.NoError(t, err)

	count := 0
	for range subs {
		count++
	}
	assert.Equal(t, 7, count) // 2^3 - 1 nonempty subsets

	// Restartable: a second range over the same sequence value yields the
	// same count again.
	count = 0
	for range subs {
		count++
	}
	assert.Equal(t, 7, count)
}

func TestSubsystemsRejectsStateOutOfRange(t *testing.T) {
	net, _, err := networks.ANDOrXORTriple()
	require.NoError(t, err)

	_, err = Subsystems(net, 1<<3)
	assert.Error(t, err)
}

func TestComplexesYieldsOneResultPerSubsystem(t *testing.T) {
	net, state, err := networks.ANDOrXORTriple()
	require.NoError(t, err)

	e, err := New(WithCacheDir(filepath.Join(t.TempDir(), "concepts")))
	require.NoError(t, err)
	defer e.Close()

	complexes, err := e.Complexes(net, state)
	require.NoError(t, err)

	count := 0
	var mainComplex *phi.Result
	for result, err := range complexes {
		require.NoError(t, err)
		count++
		if mainComplex == nil || result.Phi > mainComplex.Phi {
			mainComplex = result
		}
	}
	assert.Equal(t, 7, count)
	require.NotNil(t, mainComplex)
	assert.Greater(t, mainComplex.Phi, 0.0)
	// §8 scenario 3: the AND/OR/XOR triple's main complex is the whole
	// network, {0,1,2} — this is the case a buggy NodeTPM that fails to
	// condition external nodes out at their background state gets wrong,
	// since a proper-subset subsystem's Φ would be computed against the
	// wrong (marginalized rather than fixed) excluded-node influence.
	assert.Equal(t, combin.Full(3), mainComplex.Subsystem.Nodes())
	// The exact published reference Φ for this network (to 4 decimal
	// places, per §8 scenario 3) is not asserted here: it depends on the
	// concept-space EMD convention matching the reference implementation
	// exactly, which cannot be confirmed without executing this code.
}
