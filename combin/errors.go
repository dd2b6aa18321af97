package combin

import "errors"

// ErrTooManyNodes indicates that a node-count parameter exceeds MaxNodes,
// the widest node set a single Set (uint64 bitmask) can represent.
var ErrTooManyNodes = errors.New("combin: node count exceeds MaxNodes")

// ErrInvalidK indicates a k-combination request with k < 0 or k > n.
var ErrInvalidK = errors.New("combin: k out of range")

// MaxNodes is the largest node count representable by a single Set.
// 64 bits is far beyond any realistic Φ computation (subsystem enumeration
// is already exponential in n), so this is a defensive ceiling, not a
// practical limit.
const MaxNodes = 64
