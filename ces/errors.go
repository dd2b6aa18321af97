package ces

import "errors"

// ErrPurviewMismatch indicates a concept-distance calculation between two
// concepts whose MIC or MIE purviews could not be expanded into a common
// comparison space.
var ErrPurviewMismatch = errors.New("ces: concepts are not comparable")

// Epsilon is the φ threshold below which a mechanism's concept is
// considered absent, per specification §4.6.
const Epsilon = 1e-9
