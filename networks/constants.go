// Package networks defines shared constants used by network generators,
// ensuring consistent defaults and validation across all topology
// constructors.
package networks

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors with the generator name.
//-----------------------------------------------------------------------------

const (
	MethodComplete      = "Complete"
	MethodRing          = "Ring"
	MethodStar          = "Star"
	MethodRandomSparse  = "RandomSparse"
	MethodRandomRegular = "RandomRegular"
)

//-----------------------------------------------------------------------------
// Minimum node counts
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest meaningful size for Complete: a single
// node with no peers is still a valid (if trivial) network.
const MinCompleteNodes = 1

// MinRingNodes is the smallest size for which Ring forms an actual cycle
// rather than degenerating into a self-loop or a single back-and-forth
// edge.
const MinRingNodes = 3

// MinStarNodes is the smallest size for Star: one hub plus at least one
// leaf.
const MinStarNodes = 2

//-----------------------------------------------------------------------------
// Probability and degree bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for RandomSparse's edge probability,
// inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for RandomSparse's edge probability,
// inclusive.
const MaxProbability = 1.0

// maxStubMatchingAttempts bounds RandomRegular's retry budget: a fixed,
// small, documented limit keeps the generator's worst case cheap. A
// shuffled pairing is less often simple as d grows, so for larger degrees
// most seeds exhaust this budget and RandomRegular returns
// ErrConstructFailed.
const maxStubMatchingAttempts = 8
