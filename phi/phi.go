package phi

import (
	"golang.org/x/sync/errgroup"

	"github.com/ignaciobernardo/goiphi/ces"
	"github.com/ignaciobernardo/goiphi/mip"
	"github.com/ignaciobernardo/goiphi/repertoire"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

// Result is a subsystem's big-Φ analysis: its irreducibility (Phi), the
// cut that minimizes it (the MIP), and the unpartitioned/partitioned CES
// the distance was measured between. A Result with Phi == 0 is null: Cut
// is subsystem.NullCut and PartitionedCES is nil, meaning either the cut
// search ran and its best cut scored below ces.Epsilon, or the subsystem
// was never searched (too small, disconnected, or excluded by convention).
type Result struct {
	Subsystem        *subsystem.Subsystem
	Phi              float64
	Cut              subsystem.Cut
	UnpartitionedCES ces.CES
	PartitionedCES   ces.CES
}

func nullResult(sub *subsystem.Subsystem) *Result {
	return &Result{Subsystem: sub, Cut: subsystem.NullCut}
}

// Compute finds sub's minimum information partition and reports its Φ
// (§4.8). ptype selects which partition scheme mip.Search evaluates
// cause/effect repertoires with when assembling each candidate CES.
func Compute(sub *subsystem.Subsystem, ptype mip.PartitionType, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	nodes := sub.Nodes()

	if nodes.Empty() {
		return nullResult(sub), nil
	}

	if nodes.Len() == 1 {
		node := nodes.Indices()[0]
		if o.selfLoopPhi && sub.Connected(node, node) {
			return &Result{Subsystem: sub, Phi: 0.5, Cut: subsystem.NullCut}, nil
		}

		return nullResult(sub), nil
	}

	if !sub.IsStronglyConnected() {
		return nullResult(sub), nil
	}

	eng := repertoire.New(sub)
	uncut := ces.Source{Repertoire: eng.NonVirtualized, Subsystem: eng.UncutSubsystem()}
	unpartitioned, err := o.cesSource.Compute(uncut, ptype)
	if err != nil {
		return nil, err
	}

	cuts := subsystem.AllDirectedCuts(nodes)
	if len(cuts) == 0 {
		return nil, ErrNoCuts
	}

	evaluations := make([]cutEvaluation, len(cuts))
	evaluate := func(i int) error {
		cut := cuts[i]
		cutSub, err := sub.WithCut(cut)
		if err != nil {
			return err
		}
		cutEng := repertoire.New(cutSub)
		cutSrc := ces.Source{Repertoire: cutEng.Repertoire, Subsystem: cutEng.Subsystem()}

		partitioned, err := o.cesSource.Compute(cutSrc, ptype)
		if err != nil {
			return err
		}
		d, err := o.cesSource.Distance(uncut, unpartitioned, cutSrc, partitioned, cutSrc)
		if err != nil {
			return err
		}

		evaluations[i] = cutEvaluation{cut: cut, phi: d, ces: partitioned}

		return nil
	}

	if o.parallel {
		g := new(errgroup.Group)
		g.SetLimit(o.workers)
		for i := range cuts {
			i := i
			g.Go(func() error { return evaluate(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range cuts {
			if err := evaluate(i); err != nil {
				return nil, err
			}
		}
	}

	best := evaluations[0]
	for _, e := range evaluations[1:] {
		if e.lessThan(best) {
			best = e
		}
	}

	if best.phi < ces.Epsilon {
		return nullResult(sub), nil
	}

	return &Result{
		Subsystem:        sub,
		Phi:              best.phi,
		Cut:              best.cut,
		UnpartitionedCES: unpartitioned,
		PartitionedCES:   best.ces,
	}, nil
}

// cutEvaluation is a single candidate cut's measured Φ, held alongside
// its CES so the winner's CES can be returned without recomputing it.
type cutEvaluation struct {
	cut subsystem.Cut
	phi float64
	ces ces.CES
}

// lessThan reports whether e is a strictly better MIP candidate than
// other: lower Φ wins outright; a tie within Epsilon is broken by a
// fixed lexicographic order over (From, To), so the winner never depends
// on the order cuts happened to finish evaluating in.
func (e cutEvaluation) lessThan(other cutEvaluation) bool {
	if e.phi < other.phi-ces.Epsilon {
		return true
	}
	if other.phi < e.phi-ces.Epsilon {
		return false
	}
	if e.cut.From != other.cut.From {
		return e.cut.From < other.cut.From
	}

	return e.cut.To < other.cut.To
}
