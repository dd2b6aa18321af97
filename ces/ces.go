package ces

import (
	"sort"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/mip"
)

// CES is a cause-effect structure: the set of concepts a Subsystem
// specifies under its current cut, canonically sorted by (|mechanism|,
// mechanism) so that two CESes built from the same concept set always
// compare and hash identically regardless of discovery order.
type CES []Concept

// Compute assembles the CES of src.Subsystem: every non-empty subset of
// its nodes is tried as a candidate mechanism, and those whose concept
// survives the φ filter are kept, per specification §4.6. Pass
// {eng.Repertoire, eng.Subsystem()} for the CES under the Engine's
// current cut, or {eng.NonVirtualized, eng.UncutSubsystem()} for the
// uncut baseline CES.
func Compute(src Source, ptype mip.PartitionType) (CES, error) {
	mechanisms := src.Subsystem.Nodes().NonEmptySubsets()

	var out []Concept
	for _, mechanism := range mechanisms {
		concept, err := computeConcept(src, mechanism, ptype)
		if err != nil {
			return nil, err
		}
		if concept == nil {
			continue
		}
		out = append(out, *concept)
	}

	return NewCES(out), nil
}

// NewCES assembles concepts into the canonical CES ordering: by
// (|mechanism|, mechanism bitmask) ascending, so that two CESes built
// from the same concept set always compare and hash identically
// regardless of discovery order. Exposed for callers (the engine
// package's cache-aware CES assembly) that gather concepts themselves
// rather than going through Compute.
func NewCES(concepts []Concept) CES {
	out := make(CES, len(concepts))
	copy(out, concepts)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Mechanism.Len() != out[j].Mechanism.Len() {
			return out[i].Mechanism.Len() < out[j].Mechanism.Len()
		}
		return out[i].Mechanism < out[j].Mechanism
	})

	return out
}

// ByMechanism returns the concept for mechanism, if any, and whether one
// was found.
func (c CES) ByMechanism(mechanism combin.Set) (Concept, bool) {
	// A plain linear scan over every concept; CESes are small (at most
	// 2^n-1 concepts) so a binary search over the (len, bitmask) order buys
	// nothing here.
	for _, concept := range c {
		if concept.Mechanism == mechanism {
			return concept, true
		}
	}

	return Concept{}, false
}
