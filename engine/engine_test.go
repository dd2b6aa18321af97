package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciobernardo/goiphi/networks"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

func TestNewWithoutCacheDirStillWorks(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, DefaultEpsilon, e.Config().Epsilon)
	assert.Nil(t, e.concepts)
}

func TestNewRejectsUnsupportedIITVersion(t *testing.T) {
	_, err := New(WithIITVersion(MaximalStateFirst))
	assert.ErrorIs(t, err, ErrUnsupportedIITVersion)
}

func TestNewRejectsUnsupportedRepertoireDistance(t *testing.T) {
	_, err := New(WithRepertoireDistance(RepertoireDistance(99)))
	assert.ErrorIs(t, err, ErrUnsupportedRepertoireDistance)
}

func TestWithEpsilonPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { WithEpsilon(-1) })
}

func TestWithMaxCacheBytesPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { WithMaxCacheBytes(0) })
}

func TestPhiOfORCopyPairIsIrreducible(t *testing.T) {
	net, state, err := networks.ORCopyPair()
	require.NoError(t, err)

	e, err := New(WithCacheDir(filepath.Join(t.TempDir(), "concepts")))
	require.NoError(t, err)
	defer e.Close()

	subs, err := Subsystems(net, state)
	require.NoError(t, err)

	var whole *subsystem.Subsystem
	for sub := range subs {
		if sub.Nodes().Len() == 2 {
			whole = sub
		}
	}
	require.NotNil(t, whole)

	result, err := e.Phi(whole)
	require.NoError(t, err)
	assert.Greater(t, result.Phi, 0.0)
}

func TestPhiIsStableAcrossRepeatedCallsWithConceptCache(t *testing.T) {
	net, state, err := networks.ORCopyPair()
	require.NoError(t, err)

	e, err := New(WithCacheDir(filepath.Join(t.TempDir(), "concepts")))
	require.NoError(t, err)
	defer e.Close()

	subs, err := Subsystems(net, state)
	require.NoError(t, err)

	var whole *subsystem.Subsystem
	for sub := range subs {
		if sub.Nodes().Len() == 2 {
			whole = sub
		}
	}
	require.NotNil(t, whole)

	first, err := e.Phi(whole)
	require.NoError(t, err)
	second, err := e.Phi(whole)
	require.NoError(t, err)

	assert.InDelta(t, first.Phi, second.Phi, 1e-9)
	assert.Equal(t, first.Cut, second.Cut)
}
