package subsystem

import "github.com/ignaciobernardo/goiphi/combin"

// Cut is a unidirectional severance of a subsystem's connectivity: every
// connection from a node in From to a node in To is removed, while
// connections in the opposite direction (To -> From) and within a side
// survive untouched. NullCut (the zero value) severs nothing and is the
// baseline every candidate cut's Φ is compared against (§5).
type Cut struct {
	From combin.Set
	To   combin.Set
}

// NullCut is the cut that severs no connections.
var NullCut = Cut{}

// NewCut validates and builds a Cut. From and To must be disjoint; either
// may be empty (an empty From or empty To makes the cut a no-op, which is
// allowed; AllDirectedCuts never produces such a cut).
func NewCut(from, to combin.Set) (Cut, error) {
	if from.Intersect(to) != combin.Empty {
		return Cut{}, ErrCutSidesOverlap
	}

	return Cut{From: from, To: to}, nil
}

// IsNull reports whether the cut severs nothing.
func (c Cut) IsNull() bool {
	return c.From.Empty() || c.To.Empty()
}

// Severs reports whether the cut removes the connection from -> to.
func (c Cut) Severs(from, to int) bool {
	return c.From.Has(from) && c.To.Has(to)
}

// AllDirectedCuts enumerates every nontrivial unidirectional cut over a
// subsystem's node set: for every nonempty, proper bipartition of nodes
// into (A, B), both A-cuts-into-B and B-cuts-into-A are distinct
// candidates, since severing A->B is not the same perturbation as severing
// B->A. This matches the standard IIT convention that a cut is an ordered
// pair of sides, not an unordered partition. Each unordered {A, B} pair is
// visited once: nodes.NonEmptySubsets() visits both A and its complement B
// as candidates, so without a dedup guard the pair (A,B) contributes its
// two directed cuts twice, once keyed off A and again off B. Mirrors
// combin.MechanismPurviewBipartitions' part1.key() >= part2.key() dedup.
func AllDirectedCuts(nodes combin.Set) []Cut {
	subs := nodes.NonEmptySubsets()
	out := make([]Cut, 0, 2*len(subs))
	for _, a := range subs {
		b := nodes.Diff(a)
		if b.Empty() {
			continue // a == nodes: trivial, nothing on the other side
		}
		if a >= b {
			continue // dedup: keep only the lexicographically smaller side first
		}
		out = append(out, Cut{From: a, To: b})
		out = append(out, Cut{From: b, To: a})
	}

	return out
}
