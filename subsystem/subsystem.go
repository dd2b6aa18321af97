package subsystem

import (
	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/network"
)

// Subsystem is a candidate system for Φ evaluation: a fixed subset of a
// Network's nodes, frozen at a background state, with an optional Cut
// applied to its connectivity. External nodes (network nodes outside the
// subsystem) are not stored explicitly — their influence is folded into
// each node's effective TPM at query time via network.Network.NodeTPM,
// which already marginalizes/conditions on exactly the inputs the caller
// asks for.
type Subsystem struct {
	net   *network.Network
	nodes combin.Set
	state int
	cut   Cut
}

// New builds a Subsystem over nodes within net, frozen at the network-wide
// background state. state is a full system state as combin.AllStates
// enumerates them (bit i is node i's value); nodes must be a nonempty
// subset of the network's node indices.
func New(net *network.Network, state int, nodes combin.Set) (*Subsystem, error) {
	if nodes.Empty() {
		return nil, ErrEmptyNodes
	}
	if !nodes.IsSubsetOf(combin.Full(net.NumNodes())) {
		return nil, ErrNodesNotInNetwork
	}
	if state < 0 || state >= 1<<uint(net.NumNodes()) {
		return nil, ErrStateSize
	}

	return &Subsystem{net: net, nodes: nodes, state: state, cut: NullCut}, nil
}

// Network returns the subsystem's parent network.
func (s *Subsystem) Network() *network.Network { return s.net }

// Nodes returns the subsystem's node set.
func (s *Subsystem) Nodes() combin.Set { return s.nodes }

// State returns the full system background state the subsystem is frozen
// at.
func (s *Subsystem) State() int { return s.state }

// SubState returns the background state restricted to the subsystem's own
// nodes, packed per combin.ProjectState.
func (s *Subsystem) SubState() int {
	return combin.ProjectState(s.state, s.nodes)
}

// Cut returns the cut currently applied to the subsystem.
func (s *Subsystem) Cut() Cut { return s.cut }

// WithCut returns a copy of the subsystem with cut applied in place of
// whatever cut it currently carries. cut's From and To sides must be
// subsets of the subsystem's own nodes.
func (s *Subsystem) WithCut(cut Cut) (*Subsystem, error) {
	if !cut.From.IsSubsetOf(s.nodes) || !cut.To.IsSubsetOf(s.nodes) {
		return nil, ErrCutNotInSubsystem
	}

	return &Subsystem{net: s.net, nodes: s.nodes, state: s.state, cut: cut}, nil
}

// Connected reports whether node from can influence node to within this
// subsystem: both must be subsystem members, the network must connect
// them, and the current cut must not sever that connection.
func (s *Subsystem) Connected(from, to int) bool {
	if !s.nodes.Has(from) || !s.nodes.Has(to) {
		return false
	}

	return s.net.Connected(from, to) && !s.cut.Severs(from, to)
}

// Inputs returns the subsystem members that influence node under the
// current cut — node's Markov blanket parents within this subsystem.
func (s *Subsystem) Inputs(node int) combin.Set {
	var in combin.Set
	for _, from := range s.nodes.Indices() {
		if s.Connected(from, node) {
			in = in.Add(from)
		}
	}

	return in
}

// NodeTPM returns node's transition distribution conditioned on exactly
// its current-cut inputs, with every node outside this subsystem held
// fixed at its background-state bit (§3's external-node conditioning),
// delegating to the underlying network's full TPM. The returned table is
// indexed by combin.ProjectState(state, inputs).
func (s *Subsystem) NodeTPM(node int) ([]float64, error) {
	return s.net.NodeTPM(node, s.Inputs(node), s.nodes, s.state)
}

// IsStronglyConnected reports whether, under the current cut, every pair
// of subsystem nodes can reach each other via directed Connected edges. A
// subsystem that fails this check is already reducible — any cut that
// disconnects it into separate components makes no causal difference to
// a part that could never affect the other — so Φ for it is trivially 0.
// Uses a double DFS (nodes reachable forward from an arbitrary start, and
// nodes from which the start is reachable) rather than full
// Tarjan/Kosaraju, since only "is the whole set one SCC" is asked, not the
// SCC partition itself.
func (s *Subsystem) IsStronglyConnected() bool {
	indices := s.nodes.Indices()
	if len(indices) <= 1 {
		return true
	}
	start := indices[0]

	forward := s.reachable(start, s.Connected)
	backward := s.reachable(start, func(a, b int) bool { return s.Connected(b, a) })

	return forward == s.nodes && backward == s.nodes
}

func (s *Subsystem) reachable(start int, edge func(a, b int) bool) combin.Set {
	visited := combin.NewSet(start)
	stack := []int{start}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		for _, next := range s.nodes.Indices() {
			if visited.Has(next) {
				continue
			}
			if edge(cur, next) {
				visited = visited.Add(next)
				stack = append(stack, next)
			}
		}
	}

	return visited
}
