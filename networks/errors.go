// networks/errors.go — sentinel errors for the networks package.
//
// Error policy (carried over from the teacher's builder package):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; implementations attach context via %w (see networksErrorf).
//   - Generators never panic at runtime.

package networks

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a node count below the minimum a generator
// requires (Complete needs >= 1, Ring >= 3, Star >= 2, and so on).
var ErrTooFewNodes = errors.New("networks: node count too small")

// ErrInvalidProbability indicates a probability value outside [0,1], as
// used by RandomSparse(n, p).
var ErrInvalidProbability = errors.New("networks: probability out of range")

// ErrInvalidDegree indicates a RandomRegular(n, d) degree outside [0, n)
// or an (n, d) pair whose stub count is odd — no simple d-regular graph
// exists on an odd number of stubs.
var ErrInvalidDegree = errors.New("networks: degree out of range for node count")

// ErrNeedRandSource indicates a stochastic generator requires a non-nil
// *rand.Rand (supply one via WithSeed or WithRand).
var ErrNeedRandSource = errors.New("networks: rng is required")

// ErrConstructFailed indicates a generator exhausted its bounded retry
// budget (e.g. stub-matching for RandomRegular) without producing a
// connectivity matrix that satisfies its own invariants.
var ErrConstructFailed = errors.New("networks: construction failed")

// networksErrorf wraps an inner error message with the given method
// context, in the form "<Method>: <formatted message>: %w".
func networksErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
