package combin

import "math/bits"

// AllStates enumerates every one of the 2^n joint states of an n-node binary
// system, in ascending integer order. A state is represented as an int whose
// bit i gives node i's value (0 or 1) — the same encoding purviews and
// repertoires index by, so a state can be used directly as an index into a
// Set-sized flat array.
func AllStates(n int) ([]int, error) {
	if n < 0 || n > MaxNodes {
		return nil, ErrTooManyNodes
	}

	total := 1 << uint(n)
	out := make([]int, total)
	for i := range out {
		out[i] = i
	}

	return out, nil
}

// StateBit reports the value of node i (0 or 1) in a joint state encoded as
// described by AllStates.
func StateBit(state, i int) int {
	return (state >> uint(i)) & 1
}

// ExpandState re-expresses a state packed over mask's local bit order (bit
// position i corresponds to the i-th member of mask in ascending node
// order — the packing ProjectState produces) back into a state over the
// full node-index space, with every bit outside mask cleared. It is the
// inverse of ProjectState restricted to mask: ExpandState(mask,
// ProjectState(s, mask)) reproduces s's bits within mask.
func ExpandState(mask Set, localState int) int {
	out := 0
	pos := 0
	for b := uint64(mask); b != 0; b &= b - 1 {
		i := bits.TrailingZeros64(b)
		if (localState>>uint(pos))&1 == 1 {
			out |= 1 << uint(i)
		}
		pos++
	}

	return out
}

// ProjectState restricts a joint state over Full(n) down to the sub-state
// over the members of mask, packing the surviving bits contiguously in
// ascending node-index order. This is how a system-wide state is turned into
// an index for a purview-sized repertoire array.
func ProjectState(state int, mask Set) int {
	out := 0
	pos := 0
	for b := uint64(mask); b != 0; b &= b - 1 {
		i := bits.TrailingZeros64(b)
		if StateBit(state, i) == 1 {
			out |= 1 << uint(pos)
		}
		pos++
	}

	return out
}
