// topology.go — deterministic fixed-shape connectivity generators,
// adapted from the teacher's impl_complete.go / impl_cycle.go /
// impl_star.go: same parameter contracts and stable emission order, with
// core.Graph AddVertex/AddEdge calls replaced by direct writes into a flat
// n*n connectivity matrix, and the resulting CM fed through thresholdTPM
// to produce a full network.Network.
package networks

import (
	"github.com/ignaciobernardo/goiphi/network"
)

// Complete returns the complete network K_n (n >= 1): every node
// influences every other node, with no self-loops. Deterministic; no RNG
// involved.
func Complete(n int) (*network.Network, error) {
	if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
		return nil, err
	}

	cm := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				cm[i*n+j] = true
			}
		}
	}

	return network.New(n, thresholdTPM(cm, n), network.WithConnectivity(cm))
}

// Ring returns the n-node directed ring (n >= 3): node i influences node
// (i+1)%n only, closing into a single cycle. Deterministic; no RNG
// involved.
func Ring(n int) (*network.Network, error) {
	if err := validateMin(MethodRing, n, MinRingNodes); err != nil {
		return nil, err
	}

	cm := make([]bool, n*n)
	for i := 0; i < n; i++ {
		cm[i*n+(i+1)%n] = true
	}

	return network.New(n, thresholdTPM(cm, n), network.WithConnectivity(cm))
}

// Star returns an n-node star (n >= 2): node 0 is the hub, bidirectionally
// connected to every leaf 1..n-1; leaves have no edges between themselves.
// Deterministic; no RNG involved.
func Star(n int) (*network.Network, error) {
	if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
		return nil, err
	}

	const hub = 0
	cm := make([]bool, n*n)
	for leaf := 1; leaf < n; leaf++ {
		cm[hub*n+leaf] = true
		cm[leaf*n+hub] = true
	}

	return network.New(n, thresholdTPM(cm, n), network.WithConnectivity(cm))
}
