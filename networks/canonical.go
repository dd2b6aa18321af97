// canonical.go — the hand-specified networks of §8's testable-properties
// section and literal end-to-end scenarios: fixed CM and TPM, no RNG, no
// generator logic. Each constructor also returns the scenario's canonical
// background state, since §8 ties a specific state to each network.
package networks

import "github.com/ignaciobernardo/goiphi/network"

// ORCopyPair is §8 scenario 1: two nodes, Y(t+1) = X(t) OR Y(t) and
// X(t+1) = Y(t), background state (X=1, Y=0). Node 0 is X, node 1 is Y.
// Expected to be irreducible (Φ > 0) with main complex {0,1}.
func ORCopyPair() (*network.Network, int, error) {
	cm := []bool{false, true, true, false} // X->Y, Y->X
	tpm := []float64{
		0, 0, // state (x=0,y=0): X'=y=0, Y'=x|y=0
		0, 1, // state (x=1,y=0): X'=y=0, Y'=x|y=1
		1, 1, // state (x=0,y=1): X'=y=1, Y'=x|y=1
		1, 1, // state (x=1,y=1): X'=y=1, Y'=x|y=1
	}
	const state = 1 // x=1, y=0

	net, err := network.New(2, tpm, network.WithConnectivity(cm))

	return net, state, err
}

// DisconnectedPair is §8 scenario 2: two nodes with no connections at
// all, background state (0,0). Any TPM satisfies the scenario since it's
// never consulted — thresholdTPM's no-parents convention (each node's
// next state is a 50/50 coin flip) is used here. Expected Φ = 0 for the
// 2-node subsystem: it is not strongly connected.
func DisconnectedPair() (*network.Network, int, error) {
	cm := make([]bool, 4)
	const state = 0

	net, err := network.New(2, thresholdTPM(cm, 2), network.WithConnectivity(cm))

	return net, state, err
}

// ANDOrXORTriple is §8 scenario 3, the canonical IIT 3.0 worked example:
// node 0 = OR(1,2), node 1 = AND(0,2), node 2 = XOR(0,1), background
// state (1,0,0). Expected main complex {0,1,2}.
func ANDOrXORTriple() (*network.Network, int, error) {
	cm := []bool{
		false, true, true,
		true, false, true,
		true, true, false,
	}

	const n = 3
	numStates := 1 << uint(n)
	tpm := make([]float64, numStates*n)
	for state := 0; state < numStates; state++ {
		a := state & 1
		b := (state >> 1) & 1
		c := (state >> 2) & 1
		row := state * n
		tpm[row+0] = boolToFloat(b == 1 || c == 1)
		tpm[row+1] = boolToFloat(a == 1 && c == 1)
		tpm[row+2] = boolToFloat((a == 1) != (b == 1))
	}
	const state = 1 // a=1, b=0, c=0

	net, err := network.New(n, tpm, network.WithConnectivity(cm))

	return net, state, err
}

// SelfLoopNode is §8's single-node self-loop convention fixture: one
// node whose only input is itself, copying its own prior state
// (node(t+1) = node(t)), background state 1.
func SelfLoopNode() (*network.Network, int, error) {
	cm := []bool{true}
	tpm := []float64{0, 1}
	const state = 1

	net, err := network.New(1, tpm, network.WithConnectivity(cm))

	return net, state, err
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
