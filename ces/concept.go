package ces

import (
	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/mip"
	"github.com/ignaciobernardo/goiphi/repertoire"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

// Source pairs a repertoire.Source evaluation function with the subsystem
// topology it is actually evaluated against (the cut subsystem for an
// Engine's Repertoire method value, its UncutSubsystem for
// NonVirtualized). CES assembly needs both: the function to compute
// repertoires, and the topology to run MICE's connectivity checks.
type Source struct {
	Repertoire repertoire.Source
	Subsystem  *subsystem.Subsystem
}

// Concept is a mechanism's irreducible cause-effect pair: the
// maximally-irreducible cause and effect found by MICE in each direction,
// and φ = min(cause.φ, effect.φ), per specification §4.6.
type Concept struct {
	Mechanism combin.Set
	Cause     *mip.MICEResult
	Effect    *mip.MICEResult
	Phi       float64
}

// ComputeConcept exposes the single-mechanism step Compute loops over, for
// callers (the engine package's cache-aware CES assembly) that need to
// resolve one mechanism at a time rather than a whole CES.
func ComputeConcept(src Source, mechanism combin.Set, ptype mip.PartitionType) (*Concept, error) {
	return computeConcept(src, mechanism, ptype)
}

// computeConcept runs MICE for mechanism in both directions and assembles
// the resulting Concept. It returns (nil, nil) — not an error — when
// either direction short-circuits to a null concept, or when the
// resulting φ falls below Epsilon; both are "this mechanism does not
// contribute a concept" outcomes, per §4.6.
func computeConcept(src Source, mechanism combin.Set, ptype mip.PartitionType) (*Concept, error) {
	cause, err := mip.MICE(src.Repertoire, src.Subsystem, repertoire.Cause, mechanism, ptype)
	if err != nil {
		return nil, err
	}
	if cause == nil {
		return nil, nil
	}

	effect, err := mip.MICE(src.Repertoire, src.Subsystem, repertoire.Effect, mechanism, ptype)
	if err != nil {
		return nil, err
	}
	if effect == nil {
		return nil, nil
	}

	phi := cause.MIP.Phi
	if effect.MIP.Phi < phi {
		phi = effect.MIP.Phi
	}
	if phi < Epsilon {
		return nil, nil
	}

	return &Concept{Mechanism: mechanism, Cause: cause, Effect: effect, Phi: phi}, nil
}
