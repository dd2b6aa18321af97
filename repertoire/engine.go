package repertoire

import (
	"sync"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/distribution"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

type key struct {
	direction Direction
	mechanism combin.Set
	purview   combin.Set
}

// Engine computes and caches cause/effect repertoires for a single
// Subsystem. Engines are not safe to share across different Subsystems
// (cache keys do not include a subsystem identity — callers are expected
// to own one Engine per Subsystem, per §4.9's "never cross subsystem
// boundaries").
type Engine struct {
	sub *subsystem.Subsystem

	mu    sync.RWMutex
	joint map[key]*distribution.Repertoire

	nvOnce sync.Once
	nvSub  *subsystem.Subsystem
	nvMu   sync.RWMutex
	nv     map[key]*distribution.Repertoire

	snMu       sync.RWMutex
	singleNode map[singleNodeKey]*distribution.Repertoire
}

type singleNodeKey struct {
	direction Direction
	node      int
	condition combin.Set // mechanism (effect) or purview parents (cause)
	cut       bool       // distinguishes cut vs uncut evaluation
}

// New builds a repertoire Engine bound to sub.
func New(sub *subsystem.Subsystem) *Engine {
	return &Engine{
		sub:        sub,
		joint:      make(map[key]*distribution.Repertoire),
		nv:         make(map[key]*distribution.Repertoire),
		singleNode: make(map[singleNodeKey]*distribution.Repertoire),
	}
}

// uncutSubsystem lazily builds and caches the NullCut view of the same
// subsystem, used by the non-virtualized repertoire cache.
func (e *Engine) uncutSubsystem() *subsystem.Subsystem {
	e.nvOnce.Do(func() {
		sub, err := e.sub.WithCut(subsystem.NullCut)
		if err != nil {
			// NullCut trivially satisfies WithCut's validation (empty From
			// and To are always subsets); this cannot fail.
			panic("repertoire: uncut view construction failed: " + err.Error())
		}
		e.nvSub = sub
	})

	return e.nvSub
}

// Subsystem returns the Subsystem this Engine is bound to (with whatever
// cut it currently carries) — the view Repertoire evaluates against.
func (e *Engine) Subsystem() *subsystem.Subsystem {
	return e.sub
}

// UncutSubsystem returns the NullCut view NonVirtualized evaluates
// against, exposed so callers (package ces's CES assembly) can pass the
// topology matching whichever Source they use.
func (e *Engine) UncutSubsystem() *subsystem.Subsystem {
	return e.uncutSubsystem()
}

// Repertoire returns the repertoire of mechanism over purview in the given
// direction, against the subsystem's current cut. Results are cached by
// (direction, mechanism, purview).
func (e *Engine) Repertoire(direction Direction, mechanism, purview combin.Set) (*distribution.Repertoire, error) {
	return e.repertoireFor(e.sub, &e.mu, e.joint, direction, mechanism, purview)
}

// NonVirtualized returns the same repertoire as Repertoire, but computed
// against the subsystem's uncut connectivity regardless of what cut the
// Engine's bound subsystem carries. This is the unpartitioned baseline the
// §5 cut search compares every candidate cut's result against.
func (e *Engine) NonVirtualized(direction Direction, mechanism, purview combin.Set) (*distribution.Repertoire, error) {
	return e.repertoireFor(e.uncutSubsystem(), &e.nvMu, e.nv, direction, mechanism, purview)
}

func (e *Engine) repertoireFor(
	sub *subsystem.Subsystem,
	mu *sync.RWMutex,
	cache map[key]*distribution.Repertoire,
	direction Direction,
	mechanism, purview combin.Set,
) (*distribution.Repertoire, error) {
	if !mechanism.IsSubsetOf(sub.Nodes()) {
		return nil, ErrMechanismNotInSubsystem
	}
	if !purview.IsSubsetOf(sub.Nodes()) {
		return nil, ErrPurviewNotInSubsystem
	}

	k := key{direction: direction, mechanism: mechanism, purview: purview}

	mu.RLock()
	if r, ok := cache[k]; ok {
		mu.RUnlock()
		return r, nil
	}
	mu.RUnlock()

	var r *distribution.Repertoire
	var err error
	switch direction {
	case Cause:
		r, err = e.causeRepertoire(sub, mechanism, purview)
	default:
		r, err = e.effectRepertoire(sub, mechanism, purview)
	}
	if err != nil {
		return nil, err
	}

	mu.Lock()
	cache[k] = r
	mu.Unlock()

	return r, nil
}

// effectRepertoire assembles the joint effect repertoire as the
// independent product of each purview node's single-node effect
// repertoire, per specification §4.9.
func (e *Engine) effectRepertoire(sub *subsystem.Subsystem, mechanism, purview combin.Set) (*distribution.Repertoire, error) {
	if purview.Empty() {
		return distribution.Uniform(combin.Empty), nil
	}

	var joint *distribution.Repertoire
	for _, node := range purview.Indices() {
		single, err := e.singleNodeEffect(sub, mechanism, node)
		if err != nil {
			return nil, err
		}
		if joint == nil {
			joint = single
			continue
		}
		var err2 error
		joint, err2 = joint.Product(single)
		if err2 != nil {
			return nil, err2
		}
	}

	return joint, nil
}

// singleNodeEffect returns node's distribution over its own next value,
// conditioned on the current state of mechanism nodes that are actually
// its parents within sub, marginalizing uniformly over its other parents.
func (e *Engine) singleNodeEffect(sub *subsystem.Subsystem, mechanism combin.Set, node int) (*distribution.Repertoire, error) {
	condition := sub.Inputs(node).Intersect(mechanism)

	k := singleNodeKey{direction: Effect, node: node, condition: condition, cut: !sub.Cut().IsNull()}
	e.snMu.RLock()
	if r, ok := e.singleNode[k]; ok {
		e.snMu.RUnlock()
		return r, nil
	}
	e.snMu.RUnlock()

	table, err := sub.Network().NodeTPM(node, condition, sub.Nodes(), sub.State())
	if err != nil {
		return nil, err
	}

	idx := combin.ProjectState(sub.State(), condition)
	p1 := table[idx]

	r, err := distribution.NewFromData(combin.NewSet(node), []float64{1 - p1, p1})
	if err != nil {
		return nil, err
	}

	e.snMu.Lock()
	e.singleNode[k] = r
	e.snMu.Unlock()

	return r, nil
}

// causeRepertoire computes the joint cause repertoire of mechanism over
// purview by Bayes' rule with a uniform prior: for every candidate past
// joint state of purview, the unnormalized likelihood is the product,
// over each mechanism node, of the probability that node's TPM assigns to
// its actual current value given that candidate past state (marginalizing
// uniformly over parents outside the purview), per specification §4.9.
func (e *Engine) causeRepertoire(sub *subsystem.Subsystem, mechanism, purview combin.Set) (*distribution.Repertoire, error) {
	if mechanism.Empty() {
		return distribution.Uniform(purview), nil
	}

	width := 1 << uint(purview.Len())
	likelihood := make([]float64, width)
	for i := range likelihood {
		likelihood[i] = 1
	}

	for _, m := range mechanism.Indices() {
		purviewParents := sub.Inputs(m).Intersect(purview)
		table, err := sub.Network().NodeTPM(m, purviewParents, sub.Nodes(), sub.State())
		if err != nil {
			return nil, err
		}

		actual := combin.StateBit(sub.State(), m)
		for s := 0; s < width; s++ {
			global := combin.ExpandState(purview, s)
			idx := combin.ProjectState(global, purviewParents)
			p1 := table[idx]
			p := p1
			if actual == 0 {
				p = 1 - p1
			}
			likelihood[s] *= p
		}
	}

	total := 0.0
	for _, p := range likelihood {
		total += p
	}
	if total <= distribution.Epsilon {
		return distribution.Uniform(purview), nil
	}
	for i := range likelihood {
		likelihood[i] /= total
	}

	return distribution.NewFromData(purview, likelihood)
}
