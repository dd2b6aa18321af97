package mip

import (
	"sort"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/repertoire"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

// MICEResult is the maximally-irreducible cause or effect for one
// mechanism in one direction: the purview that maximizes φ, and the MIP
// search result at that purview (specification §4.5).
type MICEResult struct {
	Purview combin.Set
	MIP     *Result
	Ties    []combin.Set // every purview that achieved the maximum φ within Epsilon, Purview first
}

// MICE searches every irreducible purview of mechanism in the given
// direction and returns the arg-max-φ one. Ties within Epsilon are broken
// by smallest purview size, then by ascending bitmask order — candidates
// are visited in exactly that order, so the first improvement found is
// already the correct tie-break winner.
//
// If mechanism fails the "connects to, and is connected from, some
// subsystem node" validity check (§4.5's "all connect to any AND any
// connect to all" short-circuit), MICE returns (nil, nil): a null concept,
// not an error.
//
// sub must be the topology repFn is actually evaluated against (the cut
// subsystem for an Engine's Repertoire method value, its UncutSubsystem
// for NonVirtualized) — MICE uses sub only for connectivity checks, never
// to fetch repertoires directly.
func MICE(repFn repertoire.Source, sub *subsystem.Subsystem, direction repertoire.Direction, mechanism combin.Set, ptype PartitionType) (*MICEResult, error) {
	if !mechanismIsValid(sub, mechanism) {
		return nil, nil
	}

	candidates := sub.Nodes().NonEmptySubsets()
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Len() != candidates[j].Len() {
			return candidates[i].Len() < candidates[j].Len()
		}
		return candidates[i] < candidates[j]
	})

	best := &MICEResult{}
	bestPhi := -1.0
	for _, purview := range candidates {
		if !irreduciblePurview(sub, direction, mechanism, purview) {
			continue
		}

		result, err := Search(repFn, direction, mechanism, purview, ptype)
		if err != nil {
			if err == ErrNoPartitions {
				continue
			}
			return nil, err
		}

		switch {
		case result.Phi > bestPhi+Epsilon:
			bestPhi = result.Phi
			best = &MICEResult{Purview: purview, MIP: result, Ties: []combin.Set{purview}}
		case result.Phi > bestPhi-Epsilon && best.MIP != nil:
			best.Ties = append(best.Ties, purview)
		}
	}

	if best.MIP == nil {
		return nil, nil
	}

	return best, nil
}

// mechanismIsValid implements the simplified reading of §4.5's "all
// connect to any AND any connect to all" short-circuit: the mechanism must
// have at least one input from, and at least one output to, some node of
// the subsystem (another mechanism member, or the node itself through a
// self-loop, counts). A mechanism failing this can never have a
// nontrivial cause or effect and is skipped before any repertoire work.
func mechanismIsValid(sub *subsystem.Subsystem, mechanism combin.Set) bool {
	hasInput, hasOutput := false, false
	for _, m := range mechanism.Indices() {
		for _, other := range sub.Nodes().Indices() {
			if sub.Connected(other, m) {
				hasInput = true
			}
			if sub.Connected(m, other) {
				hasOutput = true
			}
		}
	}

	return hasInput && hasOutput
}

// irreduciblePurview reports whether purview is wholly connected to
// mechanism under direction: every purview node must be reachable from (or
// reach, depending on direction) at least one mechanism node, and every
// mechanism node must likewise connect to at least one purview node. A
// purview failing this has a component causally isolated from the
// mechanism and is trivially reducible.
func irreduciblePurview(sub *subsystem.Subsystem, direction repertoire.Direction, mechanism, purview combin.Set) bool {
	edge := func(a, b int) bool { return sub.Connected(a, b) } // effect: mechanism -> purview
	if direction == repertoire.Cause {
		edge = func(a, b int) bool { return sub.Connected(b, a) } // cause: purview -> mechanism semantics, args flipped below
	}

	for _, p := range purview.Indices() {
		ok := false
		for _, m := range mechanism.Indices() {
			if edge(m, p) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, m := range mechanism.Indices() {
		ok := false
		for _, p := range purview.Indices() {
			if edge(m, p) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}
