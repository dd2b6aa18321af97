package mip

import (
	"testing"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/network"
	"github.com/ignaciobernardo/goiphi/repertoire"
	"github.com/ignaciobernardo/goiphi/subsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMICEFindsArgMaxPurview(t *testing.T) {
	net := copyNetwork(t)
	sub, err := subsystem.New(net, 0b01, combin.NewSet(0, 1))
	require.NoError(t, err)
	eng := repertoire.New(sub)

	result, err := MICE(eng.Repertoire, sub, repertoire.Effect, combin.NewSet(0), BI)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Purview.Len() > 0)
	assert.GreaterOrEqual(t, result.MIP.Phi, 0.0)
}

func TestMICENullConceptForIsolatedMechanism(t *testing.T) {
	// A single node with no connectivity at all (CM all-false) has no
	// inputs or outputs and should short-circuit to a null concept.
	tpm := []float64{0.5, 0.5}
	cm := []bool{false}
	net, err := network.New(1, tpm, network.WithConnectivity(cm))
	require.NoError(t, err)
	sub, err := subsystem.New(net, 0, combin.NewSet(0))
	require.NoError(t, err)
	eng := repertoire.New(sub)

	result, err := MICE(eng.Repertoire, sub, repertoire.Effect, combin.NewSet(0), BI)
	require.NoError(t, err)
	assert.Nil(t, result)
}
