package network

import (
	"math"

	"github.com/ignaciobernardo/goiphi/combin"
)

// Network is an immutable binary network: a connectivity matrix recording
// which nodes can influence which, and a state-by-node transition
// probability matrix recording, for every joint system state, the
// probability each node turns on at the next time step.
type Network struct {
	n      int
	cm     []bool    // flat n*n
	tpm    []float64 // flat (2^n)*n, row-major: tpm[state*n+node]
	labels []string
}

// New builds a Network over n binary nodes from a state-by-node TPM. tpm
// must have exactly 2^n rows of n entries each, every entry in [0,1]; rows
// are indexed by packed joint state exactly as combin.AllStates enumerates
// them. Connectivity defaults to fully connected; see WithConnectivity.
func New(n int, tpm []float64, opts ...Option) (*Network, error) {
	if n <= 0 {
		return nil, ErrNoNodes
	}
	if n > combin.MaxNodes {
		return nil, ErrTooManyNodes
	}

	numStates := 1 << uint(n)
	if len(tpm) != numStates*n {
		return nil, ErrTPMSize
	}
	for _, p := range tpm {
		if p < -1e-9 || p > 1+1e-9 {
			return nil, ErrTPMRowRange
		}
	}

	o := gatherOptions(opts...)

	cm := o.cm
	if cm == nil {
		cm = make([]bool, n*n)
		for i := range cm {
			cm[i] = true
		}
	}
	if len(cm) != n*n {
		return nil, ErrCMSize
	}

	labels := o.labels
	if labels == nil {
		labels = defaultLabels(n)
	}
	if len(labels) != n {
		return nil, ErrLabelCount
	}
	seen := make(map[string]bool, n)
	for _, l := range labels {
		if seen[l] {
			return nil, ErrDuplicateLabel
		}
		seen[l] = true
	}

	tpmCopy := make([]float64, len(tpm))
	copy(tpmCopy, tpm)
	cmCopy := make([]bool, len(cm))
	copy(cmCopy, cm)
	labelsCopy := make([]string, len(labels))
	copy(labelsCopy, labels)

	return &Network{n: n, cm: cmCopy, tpm: tpmCopy, labels: labelsCopy}, nil
}

// NumNodes returns the number of nodes in the network.
func (net *Network) NumNodes() int { return net.n }

// Labels returns a defensive copy of the node labels.
func (net *Network) Labels() []string {
	out := make([]string, len(net.labels))
	copy(out, net.labels)

	return out
}

// Connected reports whether node from can influence node to, per the
// connectivity matrix.
func (net *Network) Connected(from, to int) bool {
	return net.cm[from*net.n+to]
}

// EffectProbability returns P(node = 1 | system state = state), the single
// entry of the TPM row for state at column node.
func (net *Network) EffectProbability(state, node int) (float64, error) {
	if state < 0 || state >= 1<<uint(net.n) {
		return 0, ErrTPMRowRange
	}
	if node < 0 || node >= net.n {
		return 0, ErrTPMRowRange
	}

	return net.tpm[state*net.n+node], nil
}

// NodeTPM builds the marginal transition distribution of a single node
// conditioned on only the nodes in inputs (typically node's Markov blanket
// within a subsystem), by averaging the full TPM's rows over every state
// that agrees on the bits in inputs. Per §3's "subsystem TPM ≡ network TPM
// conditioned on external-node state," every node outside subsystemNodes
// is held fixed at its background bit (from backgroundState) rather than
// averaged over: only nodes inside the subsystem but outside inputs are
// genuinely marginalized uniformly. Pass subsystemNodes = combin.Full(n)
// when there is no external conditioning to apply (e.g. the whole
// network is the subsystem). The returned table has length 2^|inputs|,
// indexed by combin.ProjectState(state, inputs).
func (net *Network) NodeTPM(node int, inputs, subsystemNodes combin.Set, backgroundState int) ([]float64, error) {
	if node < 0 || node >= net.n {
		return nil, ErrTPMRowRange
	}

	external := combin.Full(net.n).Diff(subsystemNodes)
	externalState := combin.ProjectState(backgroundState, external)

	numStates := 1 << uint(net.n)
	width := 1 << uint(inputs.Len())
	sums := make([]float64, width)
	counts := make([]int, width)

	for state := 0; state < numStates; state++ {
		if combin.ProjectState(state, external) != externalState {
			continue
		}

		idx := combin.ProjectState(state, inputs)
		p, err := net.EffectProbability(state, node)
		if err != nil {
			return nil, err
		}
		sums[idx] += p
		counts[idx]++
	}

	for i := range sums {
		if counts[i] > 0 {
			sums[i] /= float64(counts[i])
		}
	}

	return sums, nil
}

// IsDeterministic reports whether every TPM row places (within eps)
// probability 1 on a single joint next-state, i.e. the network's dynamics
// are a deterministic function of the current state.
func (net *Network) IsDeterministic(eps float64) bool {
	numStates := 1 << uint(net.n)
	for state := 0; state < numStates; state++ {
		for node := 0; node < net.n; node++ {
			p := net.tpm[state*net.n+node]
			if math.Abs(p) > eps && math.Abs(p-1) > eps {
				return false
			}
		}
	}

	return true
}
