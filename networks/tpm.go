package networks

import "github.com/ignaciobernardo/goiphi/combin"

// thresholdTPM derives a deterministic transition probability matrix from
// a connectivity matrix: node i's next-state probability is 1 if any of
// its parents (per cm) is currently on, 0 if it has parents and none are
// on, and 0.5 (maximum entropy) if it has no parents at all. This is the
// same OR-of-parents rule §8 scenario 1 specifies by hand for
// Y(t+1) = X(t) OR Y(t) — generators here apply it uniformly so that
// randomness governs only which connections a generated network has,
// never the update rule those connections obey.
func thresholdTPM(cm []bool, n int) []float64 {
	numStates := 1 << uint(n)
	tpm := make([]float64, numStates*n)
	for state := 0; state < numStates; state++ {
		for node := 0; node < n; node++ {
			hasParent, anyOn := false, false
			for parent := 0; parent < n; parent++ {
				if !cm[parent*n+node] {
					continue
				}
				hasParent = true
				if combin.StateBit(state, parent) == 1 {
					anyOn = true
					break
				}
			}

			switch {
			case !hasParent:
				tpm[state*n+node] = 0.5
			case anyOn:
				tpm[state*n+node] = 1
			default:
				tpm[state*n+node] = 0
			}
		}
	}

	return tpm
}
