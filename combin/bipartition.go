package combin

// Part is one side of a mechanism/purview partition: the mechanism nodes and
// purview nodes assigned to this side. Either half may be Empty, but not
// both — a part with an empty mechanism and an empty purview contributes
// nothing to the partitioned repertoire and is disallowed by Valid.
type Part struct {
	M Set
	P Set
}

// Valid reports whether the part is non-vacuous, i.e. it carries at least
// one mechanism node or one purview node.
func (p Part) Valid() bool { return !p.M.Empty() || !p.P.Empty() }

func (p Part) key() uint64 {
	// Mechanism in the high half, purview in the low half: distinct (M, P)
	// pairs get distinct keys as long as every node index is below 32. Sets
	// with members at index 32 or above (MaxNodes is 64) can collide.
	return uint64(p.M)<<32 | uint64(p.P)
}

// Bipartition is an unordered two-way partition of a (mechanism, purview)
// pair, as used by the MIP search of §4.4. Part1 and Part2 jointly cover M
// and P disjointly.
type Bipartition struct {
	Part1 Part
	Part2 Part
}

// Parts returns the bipartition's sides as a slice, for callers that treat
// bipartitions and tripartitions uniformly (see package mip).
func (b Bipartition) Parts() []Part { return []Part{b.Part1, b.Part2} }

// MechanismPurviewBipartitions enumerates every bipartition of (mechanism,
// purview) used by the MIP search: ordered pairs assigning each mechanism
// node and each purview node to exactly one of two sides, excluding the
// trivial identity partition (all of M and P on one side, nothing on the
// other) and deduplicated under swap of the two sides. A bipartition is also
// excluded if either side would be vacuous, which for two parts coincides
// exactly with the identity partition.
//
// Enumeration walks every subset of M as the first side's mechanism half and
// every subset of P as the first side's purview half — 2^|M| * 2^|P|
// combinations — which is acceptable since the subsystems a Φ engine
// evaluates are small (the search this feeds is already exponential in
// subsystem size, per §4.4/§4.8).
func MechanismPurviewBipartitions(mechanism, purview Set) []Bipartition {
	mSubs := mechanism.Subsets()
	pSubs := purview.Subsets()

	out := make([]Bipartition, 0, len(mSubs)*len(pSubs))
	for _, m1 := range mSubs {
		m2 := mechanism.Diff(m1)
		for _, p1 := range pSubs {
			p2 := purview.Diff(p1)

			part1 := Part{M: m1, P: p1}
			part2 := Part{M: m2, P: p2}
			if !part1.Valid() || !part2.Valid() {
				continue // identity partition: one side carries everything
			}
			if part1.key() >= part2.key() {
				continue // dedup: keep only the lexicographically smaller side first
			}

			out = append(out, Bipartition{Part1: part1, Part2: part2})
		}
	}

	return out
}

// Tripartition is an unordered three-way partition of a (mechanism,
// purview) pair, used when PARTITION_TYPE=TRI (see DESIGN.md's Open
// Question decisions).
type Tripartition struct {
	Part1 Part
	Part2 Part
	Part3 Part
}

// Parts returns the tripartition's sides as a slice.
func (t Tripartition) Parts() []Part { return []Part{t.Part1, t.Part2, t.Part3} }

// Tripartitions enumerates every tripartition of (mechanism, purview) with
// at least two non-vacuous parts. Each mechanism node and each purview node
// is assigned independently to one of three sides (base-3 counting over
// |M|+|P| elements), and results are deduplicated under permutation of the
// three (unlabeled) sides by keeping only assignments whose parts already
// appear in non-decreasing key order.
func Tripartitions(mechanism, purview Set) []Tripartition {
	mIdx := mechanism.Indices()
	pIdx := purview.Indices()
	total := len(mIdx) + len(pIdx)

	out := make([]Tripartition, 0)
	if total == 0 {
		return out
	}

	assign := make([]int, total) // assign[i] in {0,1,2}
	var recurse func(pos int)
	recurse = func(pos int) {
		if pos == total {
			var parts [3]Part
			for i, node := range mIdx {
				parts[assign[i]].M = parts[assign[i]].M.Add(node)
			}
			for j, node := range pIdx {
				parts[assign[len(mIdx)+j]].P = parts[assign[len(mIdx)+j]].P.Add(node)
			}

			nonVacuous := 0
			for _, part := range parts {
				if part.Valid() {
					nonVacuous++
				}
			}
			if nonVacuous < 2 {
				return
			}
			if parts[0].key() > parts[1].key() || parts[1].key() > parts[2].key() {
				return // not the canonical (sorted) representative of this unordered triple
			}

			out = append(out, Tripartition{Part1: parts[0], Part2: parts[1], Part3: parts[2]})
			return
		}

		for side := 0; side < 3; side++ {
			assign[pos] = side
			recurse(pos + 1)
		}
	}
	recurse(0)

	return out
}
