package metric

import "math/bits"

// HammingDistance returns the number of purview-state bits in which a and
// b differ. It is the ground metric EMD transports mass across (see
// GroundCostMatrix).
func HammingDistance(a, b int) float64 {
	return float64(bits.OnesCount(uint(a ^ b)))
}
