package cache

import (
	"testing"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/network"
	"github.com/ignaciobernardo/goiphi/subsystem"
	"github.com/stretchr/testify/require"
)

// symmetricTriple is a 3-node network where nodes 0 and 1 are
// structurally interchangeable (each copies the other, both feed node 2
// identically) and node 2 is structurally distinct (it has two parents
// and no children).
func symmetricTriple(t *testing.T) *network.Network {
	t.Helper()
	n := 3
	tpm := make([]float64, (1<<uint(n))*n)
	for state := 0; state < 1<<uint(n); state++ {
		b0 := (state >> 0) & 1
		b1 := (state >> 1) & 1
		row := state * n
		tpm[row+0] = float64(b1) // node 0 copies node 1
		tpm[row+1] = float64(b0) // node 1 copies node 0
		tpm[row+2] = float64(b0 & b1)
	}
	cm := []bool{
		false, true, true,
		true, false, true,
		false, false, false,
	}
	net, err := network.New(n, tpm, network.WithConnectivity(cm))
	require.NoError(t, err)

	return net
}

func TestCanonicalFingerprintStableUnderNodeSwap(t *testing.T) {
	net := symmetricTriple(t)
	sub, err := subsystem.New(net, 0b000, combin.Full(3))
	require.NoError(t, err)

	fp01, err := CanonicalFingerprint(sub, combin.NewSet(0, 1))
	require.NoError(t, err)
	fp10, err := CanonicalFingerprint(sub, combin.NewSet(1, 0))
	require.NoError(t, err)
	require.Equal(t, fp01, fp10, "identical Set value regardless of construction order")

	fpWithNode2, err := CanonicalFingerprint(sub, combin.NewSet(0, 2))
	require.NoError(t, err)
	require.NotEqual(t, fp01, fpWithNode2, "node 2 has a different blanket shape than 0 or 1")
}

func TestCanonicalFingerprintDiffersAcrossCuts(t *testing.T) {
	net := symmetricTriple(t)
	sub, err := subsystem.New(net, 0b000, combin.Full(3))
	require.NoError(t, err)

	uncut, err := CanonicalFingerprint(sub, combin.NewSet(0, 1))
	require.NoError(t, err)

	cut, err := subsystem.NewCut(combin.NewSet(0), combin.NewSet(1))
	require.NoError(t, err)
	cutSub, err := sub.WithCut(cut)
	require.NoError(t, err)

	afterCut, err := CanonicalFingerprint(cutSub, combin.NewSet(0, 1))
	require.NoError(t, err)

	require.NotEqual(t, uncut, afterCut)
}

func TestFastFingerprintIsReproducibleForSameSet(t *testing.T) {
	net := symmetricTriple(t)
	sub, err := subsystem.New(net, 0b000, combin.Full(3))
	require.NoError(t, err)

	// Both calls enumerate mechanism.Indices() in the same ascending
	// order regardless of construction order, so the fast fingerprint of
	// a given Set is always reproducible.
	a, err := fastFingerprint(sub, combin.NewSet(0, 1))
	require.NoError(t, err)
	b, err := fastFingerprint(sub, combin.NewSet(1, 0))
	require.NoError(t, err)
	require.Equal(t, a, b)
}
