package combin

import "math/bits"

// Set is a bitmask over node indices 0..63: bit i set means node i is a
// member. All combin operations work in terms of Set rather than []int so
// that set algebra (union, intersection, difference, swap-dedup keys) is a
// handful of machine instructions instead of slice manipulation.
type Set uint64

// Empty is the empty node set.
const Empty Set = 0

// NewSet builds a Set from explicit member indices. Indices must be in
// [0, MaxNodes); out-of-range indices are silently ignored by the caller's
// contract — callers are expected to validate node indices against a
// concrete Network's node count before calling this.
func NewSet(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s |= 1 << uint(i)
	}

	return s
}

// Full returns the set of all n nodes {0, ..., n-1}.
func Full(n int) Set {
	if n <= 0 {
		return Empty
	}
	if n >= 64 {
		return Set(^uint64(0))
	}

	return Set(uint64(1)<<uint(n) - 1)
}

// Len reports the number of members (population count).
func (s Set) Len() int { return bits.OnesCount64(uint64(s)) }

// Has reports whether node i is a member of s.
func (s Set) Has(i int) bool { return s&(1<<uint(i)) != 0 }

// Add returns s with node i added.
func (s Set) Add(i int) Set { return s | (1 << uint(i)) }

// Remove returns s with node i removed.
func (s Set) Remove(i int) Set { return s &^ (1 << uint(i)) }

// Union returns the union of s and t.
func (s Set) Union(t Set) Set { return s | t }

// Intersect returns the intersection of s and t.
func (s Set) Intersect(t Set) Set { return s & t }

// Diff returns the members of s not in t.
func (s Set) Diff(t Set) Set { return s &^ t }

// IsSubsetOf reports whether every member of s is also a member of t.
func (s Set) IsSubsetOf(t Set) bool { return s&t == s }

// Empty reports whether the set has no members.
func (s Set) Empty() bool { return s == 0 }

// Indices materializes s as a sorted slice of member indices. Used at the
// boundary where a concrete index slice is needed (e.g., indexing into a
// Network's label list); hot paths should stay in bitmask form.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Len())
	for b := s; b != 0; b &= b - 1 {
		out = append(out, bits.TrailingZeros64(uint64(b)))
	}

	return out
}

// Subsets enumerates every subset of s (including Empty and s
// itself) in ascending bitmask order, via the standard "subset of subset"
// bit trick. The returned slice has length 2^|s|.
func (s Set) Subsets() []Set {
	n := s.Len()
	out := make([]Set, 0, 1<<uint(n))
	// Standard submask enumeration: iterate sub = (sub-1) & s starting
	// from s down to 0, collecting every submask including 0.
	for sub := uint64(s); ; sub = (sub - 1) & uint64(s) {
		out = append(out, Set(sub))
		if sub == 0 {
			break
		}
	}
	// The trick above yields descending order; reverse for determinism
	// (ascending bitmask order is the documented contract).
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// NonEmptySubsets enumerates every non-empty subset of s in ascending
// bitmask order.
func (s Set) NonEmptySubsets() []Set {
	all := s.Subsets()
	if len(all) == 0 {
		return all
	}

	return all[1:] // Subsets() returns Empty first (ascending order).
}
