// random.go — stochastic connectivity generators, adapted from the
// teacher's impl_random_regular.go (stub-matching with bounded retries)
// and impl_random_sparse.go (Erdős–Rényi independent-trial sampling).
// Both generators here produce an undirected (symmetric) connectivity
// matrix — edges are realized as a reciprocal pair of directed
// connections — then hand it to thresholdTPM for the TPM.
package networks

import (
	"github.com/ignaciobernardo/goiphi/network"
)

// RandomRegular returns an undirected d-regular network on n nodes (every
// node has exactly d neighbors), built via classic stub-matching: n*d
// stubs (node i repeated d times), shuffled and paired up, retried up to
// maxStubMatchingAttempts times whenever a shuffle produces a self-loop
// or a duplicate pair (this generator always builds a simple graph).
// Requires n*d even and a seeded RNG (via WithSeed/WithRand) whenever
// d > 0.
func RandomRegular(n, d int, opts ...Option) (*network.Network, error) {
	if err := validateMin(MethodRandomRegular, n, 1); err != nil {
		return nil, err
	}
	if err := validateDegree(MethodRandomRegular, n, d); err != nil {
		return nil, err
	}

	cm := make([]bool, n*n)
	if d == 0 {
		return network.New(n, thresholdTPM(cm, n), network.WithConnectivity(cm))
	}

	cfg := gatherConfig(opts...)
	if cfg.rng == nil {
		return nil, networksErrorf(MethodRandomRegular, ErrNeedRandSource, "rng is required when d > 0")
	}

	stubCount := n * d
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		seen := make(map[[2]int]struct{}, stubCount/2)
		valid := true
		for i := 0; i < stubCount && valid; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			cm[u*n+v] = true
			cm[v*n+u] = true
		}

		return network.New(n, thresholdTPM(cm, n), network.WithConnectivity(cm))
	}

	return nil, networksErrorf(MethodRandomRegular, ErrConstructFailed, "no valid pairing after %d attempts", maxStubMatchingAttempts)
}

// RandomSparse returns an Erdős–Rényi-like undirected network on n nodes:
// each unordered pair {i,j}, i<j, is connected independently with
// probability p, stable trial order i asc, j asc. Requires a seeded RNG
// (via WithSeed/WithRand) whenever 0 < p < 1; p in {0,1} is deterministic
// and needs none.
func RandomSparse(n int, p float64, opts ...Option) (*network.Network, error) {
	if err := validateMin(MethodRandomSparse, n, 1); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandomSparse, p); err != nil {
		return nil, err
	}

	cfg := gatherConfig(opts...)
	if cfg.rng == nil && p > 0.0 && p < 1.0 {
		return nil, networksErrorf(MethodRandomSparse, ErrNeedRandSource, "rng is required for 0<p<1")
	}

	cm := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1.0
			if cfg.rng != nil {
				include = cfg.rng.Float64() <= p
			}
			if include {
				cm[i*n+j] = true
				cm[j*n+i] = true
			}
		}
	}

	return network.New(n, thresholdTPM(cm, n), network.WithConnectivity(cm))
}
