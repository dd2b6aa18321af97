package ces

import (
	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/distribution"
	"github.com/ignaciobernardo/goiphi/metric"
	"github.com/ignaciobernardo/goiphi/repertoire"
)

// point is a Concept resolved down to the two repertoires its ground
// distance depends on, already expanded to the full subsystem state
// space, plus the φ-mass it contributes to a histogram.
type point struct {
	mechanism combin.Set
	cause     *distribution.Repertoire
	effect    *distribution.Repertoire
	phi       float64
}

// expand broadcasts r, defined over some purview of src.Subsystem, to the
// full subsystem state space by taking the independent product with the
// unconstrained repertoire over the nodes r does not cover (specification
// §4.7). src must be the *cut* subsystem's source regardless of which CES
// the concept being expanded came from — DESIGN.md resolves the
// cut-vs-uncut Open Question this way, matching the reference
// implementation.
func expand(src Source, direction repertoire.Direction, r *distribution.Repertoire) (*distribution.Repertoire, error) {
	missing := src.Subsystem.Nodes().Diff(r.Purview())
	if missing.Empty() {
		return r, nil
	}

	rest, err := src.Repertoire(direction, combin.Empty, missing)
	if err != nil {
		return nil, err
	}

	return r.Product(rest)
}

// nullPoint is the subsystem's unconstrained-cause/unconstrained-effect
// point, the reference every disappearing concept is measured against.
func nullPoint(cut Source) (point, error) {
	cause, err := cut.Repertoire(repertoire.Cause, combin.Empty, cut.Subsystem.Nodes())
	if err != nil {
		return point{}, err
	}
	effect, err := cut.Repertoire(repertoire.Effect, combin.Empty, cut.Subsystem.Nodes())
	if err != nil {
		return point{}, err
	}

	return point{mechanism: combin.Empty, cause: cause, effect: effect, phi: 0}, nil
}

// toPoint resolves a Concept (evaluated under home, its own CES's
// evaluation mode) into a point whose cause/effect repertoires are
// expanded to cut's full subsystem state space.
func toPoint(home, cut Source, c Concept) (point, error) {
	cause, err := home.Repertoire(repertoire.Cause, c.Mechanism, c.Cause.Purview)
	if err != nil {
		return point{}, err
	}
	effect, err := home.Repertoire(repertoire.Effect, c.Mechanism, c.Effect.Purview)
	if err != nil {
		return point{}, err
	}

	causeFull, err := expand(cut, repertoire.Cause, cause)
	if err != nil {
		return point{}, err
	}
	effectFull, err := expand(cut, repertoire.Effect, effect)
	if err != nil {
		return point{}, err
	}

	return point{mechanism: c.Mechanism, cause: causeFull, effect: effectFull, phi: c.Phi}, nil
}

// groundDistance is d_c(i, j): the sum of cause- and effect-repertoire EMD
// between two points already expanded to the same full state space. Both
// points are expanded against the same subsystem by construction, so a
// purview mismatch here means a caller error, not a data problem —
// reported as ErrPurviewMismatch rather than leaking package metric's
// sentinel.
func groundDistance(i, j point) (float64, error) {
	causeDist, err := metric.EMD(i.cause, j.cause)
	if err != nil {
		return 0, ErrPurviewMismatch
	}
	effectDist, err := metric.EMD(i.effect, j.effect)
	if err != nil {
		return 0, ErrPurviewMismatch
	}

	return causeDist + effectDist, nil
}

// equalConcept reports whether two concepts are the "same" concept for
// the purposes of the shared/unique partition in step 1 of §4.7: same
// mechanism, and the same MIC/MIE purview (a mechanism whose irreducible
// purview moved under a cut specifies a materially different concept
// even if it happens to share a mechanism identity).
func equalConcept(a, b Concept) bool {
	return a.Mechanism == b.Mechanism &&
		a.Cause.Purview == b.Cause.Purview &&
		a.Effect.Purview == b.Effect.Purview
}

// Distance computes the concept-space Earth Mover's Distance between two
// CESes of the same subsystem, per specification §4.7. home1 and home2
// are the Sources c1 and c2 were each computed against (so their
// concepts' raw repertoires can be refetched from the right cache); cut
// is the Source of the cut subsystem, used for every expand operation
// regardless of which CES a concept belongs to.
func Distance(home1 Source, c1 CES, home2 Source, c2 CES, cut Source) (float64, error) {
	var shared, unique1, unique2 []Concept
	matched := make([]bool, len(c2))
outer:
	for _, a := range c1 {
		for j, b := range c2 {
			if matched[j] {
				continue
			}
			if equalConcept(a, b) {
				shared = append(shared, a)
				matched[j] = true
				continue outer
			}
		}
		unique1 = append(unique1, a)
	}
	for j, b := range c2 {
		if !matched[j] {
			unique2 = append(unique2, b)
		}
	}

	null, err := nullPoint(cut)
	if err != nil {
		return 0, err
	}

	// Fast path: one CES is a subset of the other as concept sets. The
	// distance is the total φ-weighted distance of whatever disappeared.
	if len(unique1) == 0 || len(unique2) == 0 {
		disappeared, home := unique1, home1
		if len(unique1) == 0 {
			disappeared, home = unique2, home2
		}

		total := 0.0
		for _, c := range disappeared {
			p, err := toPoint(home, cut, c)
			if err != nil {
				return 0, err
			}
			d, err := groundDistance(p, null)
			if err != nil {
				return 0, err
			}
			total += c.Phi * d
		}

		return total, nil
	}

	// General path: histogram over shared ∪ unique(C1) ∪ unique(C2) ∪
	// {null}, ground cost between every pair computed via groundDistance,
	// solved by the same min-cost transportation solver package metric
	// uses for per-state EMD.
	type slot struct {
		p  point
		d1 float64
		d2 float64
	}
	var slots []slot

	for _, c := range shared {
		p, err := toPoint(home1, cut, c)
		if err != nil {
			return 0, err
		}
		slots = append(slots, slot{p: p, d1: c.Phi, d2: c.Phi})
	}
	for _, c := range unique1 {
		p, err := toPoint(home1, cut, c)
		if err != nil {
			return 0, err
		}
		slots = append(slots, slot{p: p, d1: c.Phi, d2: 0})
	}
	for _, c := range unique2 {
		p, err := toPoint(home2, cut, c)
		if err != nil {
			return 0, err
		}
		slots = append(slots, slot{p: p, d1: 0, d2: c.Phi})
	}

	sum1, sum2 := 0.0, 0.0
	for _, s := range slots {
		sum1 += s.d1
		sum2 += s.d2
	}

	nullD1, nullD2 := 0.0, 0.0
	if sum1 > sum2 {
		nullD2 = sum1 - sum2
	} else {
		nullD1 = sum2 - sum1
	}
	slots = append(slots, slot{p: null, d1: nullD1, d2: nullD2})

	points := make([]point, len(slots))
	d1 := make([]float64, len(slots))
	d2 := make([]float64, len(slots))
	for i, s := range slots {
		points[i] = s.p
		d1[i] = s.d1
		d2[i] = s.d2
	}

	cost := make([][]float64, len(points))
	for i := range points {
		cost[i] = make([]float64, len(points))
		for j := range points {
			if i == j {
				continue
			}
			d, err := groundDistance(points[i], points[j])
			if err != nil {
				return 0, err
			}
			cost[i][j] = d
		}
	}

	return metric.TransportCost(d1, d2, func(i, j int) float64 { return cost[i][j] })
}
