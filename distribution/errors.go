package distribution

import "errors"

var (
	// ErrDataLength indicates that a backing slice's length does not match
	// 2^|purview|, the only valid length for that purview.
	ErrDataLength = errors.New("distribution: data length does not match 2^|purview|")

	// ErrNegativeProbability indicates a probability entry below zero.
	ErrNegativeProbability = errors.New("distribution: negative probability")

	// ErrNotNormalized indicates a distribution whose entries do not sum to
	// 1 within Epsilon.
	ErrNotNormalized = errors.New("distribution: probabilities do not sum to 1")

	// ErrNotSubPurview indicates a marginalization or conditioning target
	// that is not a subset of the source repertoire's purview.
	ErrNotSubPurview = errors.New("distribution: target is not a subset of the purview")

	// ErrOverlappingPurviews indicates a product of two repertoires whose
	// purviews share a node.
	ErrOverlappingPurviews = errors.New("distribution: purviews overlap")

	// ErrStateOutOfRange indicates a state index outside [0, 2^|purview|).
	ErrStateOutOfRange = errors.New("distribution: state out of range")
)

// Epsilon is the tolerance used when checking that probabilities sum to 1
// and when comparing repertoires for equality. Matches the numeric-policy
// tolerance katalvlaran/lvlath/matrix uses for its structural checks.
const Epsilon = 1e-9
