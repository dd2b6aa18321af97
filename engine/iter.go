package engine

import (
	"iter"

	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/network"
	"github.com/ignaciobernardo/goiphi/phi"
	"github.com/ignaciobernardo/goiphi/subsystem"
)

// Subsystems lazily enumerates every candidate subsystem of net frozen at
// state: every nonempty subset of its nodes, per §9's "subsystems(network)
// ... a lazy sequence of Subsystem values, produced on demand." The
// returned sequence is stateless — range over it as many times as needed,
// each pass redrives the enumeration from scratch.
func Subsystems(net *network.Network, state int) (iter.Seq[*subsystem.Subsystem], error) {
	if state < 0 || state >= 1<<uint(net.NumNodes()) {
		return nil, subsystem.ErrStateSize
	}

	nodes := combin.Full(net.NumNodes())

	return func(yield func(*subsystem.Subsystem) bool) {
		for _, candidate := range nodes.NonEmptySubsets() {
			sub, err := subsystem.New(net, state, candidate)
			if err != nil {
				// Unreachable given the validation above (every candidate
				// is a subset of net's own nodes, state already checked),
				// but stop rather than yield a value paired with a
				// swallowed error.
				return
			}
			if !yield(sub) {
				return
			}
		}
	}, nil
}

// Complexes is Subsystems' image under Engine.Phi, per §9's
// "complexes(network) is its image under big_mip." It does not pick the
// maximum-Φ result — the "main complex over all subsystems" selection is
// the thin CLI driver specification §1 scopes out; callers range over
// Complexes and reduce it themselves.
func (e *Engine) Complexes(net *network.Network, state int) (iter.Seq2[*phi.Result, error], error) {
	subs, err := Subsystems(net, state)
	if err != nil {
		return nil, err
	}

	return func(yield func(*phi.Result, error) bool) {
		for sub := range subs {
			result, err := e.Phi(sub)
			if !yield(result, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}, nil
}
