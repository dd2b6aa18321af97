package repertoire

import (
	"github.com/ignaciobernardo/goiphi/combin"
	"github.com/ignaciobernardo/goiphi/distribution"
)

// Source is the signature shared by Engine.Repertoire and
// Engine.NonVirtualized: given a direction, mechanism and purview, produce
// a repertoire. Abstracted so callers outside this package (package mip's
// search, package ces's CES assembly) can be handed "evaluate against the
// current cut" or "evaluate against the uncut baseline" interchangeably,
// without depending on *Engine's concrete cache machinery.
type Source func(direction Direction, mechanism, purview combin.Set) (*distribution.Repertoire, error)

// Direction distinguishes a cause repertoire (what past states could have
// produced the mechanism's current state) from an effect repertoire (what
// future states the mechanism's current state constrains).
type Direction int

const (
	// Cause is the backward-looking direction.
	Cause Direction = iota
	// Effect is the forward-looking direction.
	Effect
)

// String implements fmt.Stringer for readable cache keys and test output.
func (d Direction) String() string {
	switch d {
	case Cause:
		return "cause"
	case Effect:
		return "effect"
	default:
		return "unknown"
	}
}
