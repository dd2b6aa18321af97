package subsystem

import "errors"

var (
	// ErrEmptyNodes indicates a subsystem requested with no nodes.
	ErrEmptyNodes = errors.New("subsystem: must contain at least one node")

	// ErrNodesNotInNetwork indicates a node index outside the network's
	// node range.
	ErrNodesNotInNetwork = errors.New("subsystem: node index out of range for network")

	// ErrStateSize indicates a background state whose bit width does not
	// match the network's node count.
	ErrStateSize = errors.New("subsystem: state does not match network node count")

	// ErrCutSidesOverlap indicates a Cut whose From and To sides share a
	// node; a cut severs connections *between* two disjoint sides.
	ErrCutSidesOverlap = errors.New("subsystem: cut sides overlap")

	// ErrCutNotInSubsystem indicates a Cut referencing nodes outside the
	// subsystem it is being applied to.
	ErrCutNotInSubsystem = errors.New("subsystem: cut references nodes outside the subsystem")
)
