package mip

import (
	"math"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/distribution"
	"github.com/ignaciobernardo/goiphi/metric"
	"github.com/ignaciobernardo/goiphi/repertoire"
)

// PartitionType selects which partition scheme the search enumerates, per
// DESIGN.md's resolution of the PARTITION_TYPE Open Question.
type PartitionType int

const (
	// BI searches only two-part (bipartition) schemes — the specification's
	// default MIP definition (§4.4).
	BI PartitionType = iota
	// TRI searches only three-part schemes.
	TRI
	// All searches both schemes and keeps the overall minimum.
	All
)

// Partitioner is anything that decomposes into parts whose independently
// computed repertoires, multiplied together, form a partitioned
// repertoire — satisfied by both combin.Bipartition and
// combin.Tripartition.
type Partitioner interface {
	Parts() []combin.Part
}

// Result is the outcome of a MIP search: the minimum φ found, the
// partition(s) that achieve it, and the partitioned repertoire of the
// winning partition (for callers, such as package ces, that need the
// actual distribution rather than just the distance).
type Result struct {
	Phi         float64
	Partition   Partitioner
	Partitioned *distribution.Repertoire
	Ties        []Partitioner
}

// Search finds the minimum information partition of mechanism over
// purview, in the given direction, evaluated via repFn (typically an
// Engine's Repertoire or NonVirtualized method value — see
// repertoire.Source). Candidate partitions are generated by ptype and
// walked in their enumerator's fixed ascending order, so ties are
// resolved deterministically by first occurrence regardless of
// scheduling.
func Search(repFn repertoire.Source, direction repertoire.Direction, mechanism, purview combin.Set, ptype PartitionType) (*Result, error) {
	if purview.Empty() {
		// §4.4: "If P = ∅, return a null RIA with φ=0." candidatePartitions
		// does not give that answer by itself: it offers no partition for a
		// one-node mechanism over an empty purview, but mechanism-only
		// partitions for a larger mechanism, so the empty purview is
		// special-cased here.
		return &Result{Phi: 0}, nil
	}

	unconstrained, err := repFn(direction, mechanism, purview)
	if err != nil {
		return nil, err
	}

	partitions := candidatePartitions(mechanism, purview, ptype)
	if len(partitions) == 0 {
		return nil, ErrNoPartitions
	}

	best := &Result{Phi: math.Inf(1)}
	for _, p := range partitions {
		partitioned, err := partitionedRepertoire(repFn, direction, p)
		if err != nil {
			return nil, err
		}

		phi, err := metric.EMD(unconstrained, partitioned)
		if err != nil {
			return nil, err
		}

		switch {
		case phi < best.Phi-Epsilon:
			best = &Result{Phi: phi, Partition: p, Partitioned: partitioned, Ties: []Partitioner{p}}
		case math.Abs(phi-best.Phi) <= Epsilon:
			best.Ties = append(best.Ties, p)
		}

		if best.Phi <= Epsilon {
			// Already provably reducible (no partition can score below 0);
			// further ties at phi=0 do not change that conclusion.
			break
		}
	}

	return best, nil
}

func candidatePartitions(mechanism, purview combin.Set, ptype PartitionType) []Partitioner {
	var out []Partitioner
	if ptype == BI || ptype == All {
		for _, b := range combin.MechanismPurviewBipartitions(mechanism, purview) {
			out = append(out, b)
		}
	}
	if ptype == TRI || ptype == All {
		for _, tp := range combin.Tripartitions(mechanism, purview) {
			out = append(out, tp)
		}
	}

	return out
}

// partitionedRepertoire computes the product of every part's independently
// evaluated repertoire, which is the definition of a partitioned
// repertoire (specification §4.4): each part behaves as if it were its own
// isolated mechanism/purview pair, and the parts' independence is the
// perturbation a partition represents.
func partitionedRepertoire(repFn repertoire.Source, direction repertoire.Direction, p Partitioner) (*distribution.Repertoire, error) {
	var joint *distribution.Repertoire
	for _, part := range p.Parts() {
		r, err := repFn(direction, part.M, part.P)
		if err != nil {
			return nil, err
		}
		if joint == nil {
			joint = r
			continue
		}
		var err2 error
		joint, err2 = joint.Product(r)
		if err2 != nil {
			return nil, err2
		}
	}

	return joint, nil
}
