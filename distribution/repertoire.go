package distribution

import (
	"math"

	"github.com/ignaciobernardo/goiphi/combin"
)

// Repertoire is a probability distribution over the joint states of a node
// purview. States are packed per combin.ProjectState: bit i of a state
// index corresponds to the i-th member of purview in ascending node order.
type Repertoire struct {
	purview combin.Set
	data    []float64 // length 2^purview.Len()
}

// size returns 2^|purview|, the number of entries a purview's repertoire
// must have.
func size(purview combin.Set) int {
	return 1 << uint(purview.Len())
}

// NewFromData builds a Repertoire over purview from an explicit probability
// vector. data must have length 2^|purview|, every entry must be
// non-negative, and the entries must sum to 1 within Epsilon.
func NewFromData(purview combin.Set, data []float64) (*Repertoire, error) {
	want := size(purview)
	if len(data) != want {
		return nil, ErrDataLength
	}

	sum := 0.0
	for _, p := range data {
		if p < -Epsilon {
			return nil, ErrNegativeProbability
		}
		sum += p
	}
	if math.Abs(sum-1) > Epsilon {
		return nil, ErrNotNormalized
	}

	cp := make([]float64, want)
	copy(cp, data)

	return &Repertoire{purview: purview, data: cp}, nil
}

// Uniform builds the maximum-entropy repertoire over purview: every state
// equally likely. An empty purview yields the 1-element scalar repertoire
// [1.0], per §4.1's "empty purview is a scalar" invariant.
func Uniform(purview combin.Set) *Repertoire {
	n := size(purview)
	data := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range data {
		data[i] = p
	}

	return &Repertoire{purview: purview, data: data}
}

// PointMass builds the repertoire over purview that places all probability
// mass on a single joint state.
func PointMass(purview combin.Set, state int) (*Repertoire, error) {
	n := size(purview)
	if state < 0 || state >= n {
		return nil, ErrStateOutOfRange
	}

	data := make([]float64, n)
	data[state] = 1.0

	return &Repertoire{purview: purview, data: data}, nil
}

// Purview returns the node set this repertoire is defined over.
func (r *Repertoire) Purview() combin.Set { return r.purview }

// At returns the probability of the given packed purview state.
func (r *Repertoire) At(state int) (float64, error) {
	if state < 0 || state >= len(r.data) {
		return 0, ErrStateOutOfRange
	}

	return r.data[state], nil
}

// Data returns a defensive copy of the backing probability vector, indexed
// by packed purview state.
func (r *Repertoire) Data() []float64 {
	cp := make([]float64, len(r.data))
	copy(cp, r.data)

	return cp
}

// Marginalize sums out every node in r.Purview() that is not in target,
// returning the repertoire over target. target must be a subset of
// r.Purview().
func (r *Repertoire) Marginalize(target combin.Set) (*Repertoire, error) {
	if !target.IsSubsetOf(r.purview) {
		return nil, ErrNotSubPurview
	}
	if target == r.purview {
		return r.clone(), nil
	}

	out := make([]float64, size(target))
	for state, p := range r.data {
		global := combin.ExpandState(r.purview, state)
		out[combin.ProjectState(global, target)] += p
	}

	return &Repertoire{purview: target, data: out}, nil
}

// clone returns a deep copy of r.
func (r *Repertoire) clone() *Repertoire {
	data := make([]float64, len(r.data))
	copy(data, r.data)

	return &Repertoire{purview: r.purview, data: data}
}

// Condition fixes the nodes in mask to the values they hold in state
// (packed in the full system's node-index space) and renormalizes the
// remaining purview. mask must be a subset of r.Purview(); the result's
// purview is r.Purview() minus mask. If no states survive the fix (zero
// residual mass), Condition returns the uniform repertoire over the
// residual purview, matching the "no observation forces a max-entropy
// fallback" convention used elsewhere in the engine for degenerate TPM
// rows.
func (r *Repertoire) Condition(mask combin.Set, state int) (*Repertoire, error) {
	if !mask.IsSubsetOf(r.purview) {
		return nil, ErrNotSubPurview
	}

	residual := r.purview.Diff(mask)
	out := make([]float64, size(residual))
	total := 0.0

	for s, p := range r.data {
		global := combin.ExpandState(r.purview, s)
		if combin.ProjectState(global, mask) != combin.ProjectState(state, mask) {
			continue
		}
		idx := combin.ProjectState(global, residual)
		out[idx] += p
		total += p
	}

	if total <= Epsilon {
		return Uniform(residual), nil
	}
	for i := range out {
		out[i] /= total
	}

	return &Repertoire{purview: residual, data: out}, nil
}

// Product returns the joint distribution of two independent repertoires
// over disjoint purviews: the outer product of their probability vectors,
// defined over the union of the two purviews.
func (r *Repertoire) Product(other *Repertoire) (*Repertoire, error) {
	if r.purview.Intersect(other.purview) != combin.Empty {
		return nil, ErrOverlappingPurviews
	}

	joint := r.purview.Union(other.purview)
	out := make([]float64, size(joint))

	for s1, p1 := range r.data {
		g1 := combin.ExpandState(r.purview, s1)
		for s2, p2 := range other.data {
			g2 := combin.ExpandState(other.purview, s2)
			idx := combin.ProjectState(g1|g2, joint)
			out[idx] = p1 * p2
		}
	}

	return &Repertoire{purview: joint, data: out}, nil
}

// Equal reports whether r and o are defined over the same purview and
// agree entry-by-entry within Epsilon.
func (r *Repertoire) Equal(o *Repertoire) bool {
	if r.purview != o.purview || len(r.data) != len(o.data) {
		return false
	}
	for i := range r.data {
		if math.Abs(r.data[i]-o.data[i]) > Epsilon {
			return false
		}
	}

	return true
}
