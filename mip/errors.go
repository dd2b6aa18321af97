package mip

import "errors"

// ErrNoPartitions indicates a (mechanism, purview) pair with fewer than
// two total elements (for example an empty mechanism over a one-node
// purview), which has no nontrivial partition at all. Search reports this
// rather than silently returning a zero value; MICE skips such purviews.
var ErrNoPartitions = errors.New("mip: mechanism/purview pair admits no nontrivial partition")

// Epsilon is the tolerance used to decide whether a partition's φ ties the
// running minimum, and whether φ is close enough to zero to short-circuit
// the search.
const Epsilon = 1e-9
