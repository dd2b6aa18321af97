package network

import "errors"

var (
	// ErrNoNodes indicates a Network with zero nodes was requested.
	ErrNoNodes = errors.New("network: must have at least one node")

	// ErrTooManyNodes indicates a node count beyond combin.MaxNodes, the
	// widest node set representable by the engine's bitmask Set type.
	ErrTooManyNodes = errors.New("network: node count exceeds the supported maximum")

	// ErrTPMSize indicates a TPM whose row count does not equal 2^n or
	// whose row width does not equal n.
	ErrTPMSize = errors.New("network: TPM dimensions do not match node count")

	// ErrTPMRowRange indicates a TPM entry outside [0, 1]. EffectProbability
	// and NodeTPM also return it for a state or node index out of range.
	ErrTPMRowRange = errors.New("network: TPM entry outside [0,1]")

	// ErrCMSize indicates a connectivity matrix whose dimensions do not
	// equal n x n.
	ErrCMSize = errors.New("network: connectivity matrix dimensions do not match node count")

	// ErrLabelCount indicates a label slice whose length does not equal n.
	ErrLabelCount = errors.New("network: label count does not match node count")

	// ErrDuplicateLabel indicates two nodes sharing the same label.
	ErrDuplicateLabel = errors.New("network: duplicate node label")
)
