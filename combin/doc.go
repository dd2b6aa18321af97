// Package combin provides the combinatorial primitives the Φ engine builds
// on: subsets of a node index set represented as bitmasks, k-combinations,
// enumeration of system states, and the bipartitions (and, for
// PARTITION_TYPE=TRI, tripartitions) of a (mechanism, purview) pair used by
// the MIP search.
//
// Node sets are represented as Set, a bitmask over node indices 0..n-1.
// This mirrors how katalvlaran/lvlath/tsp's Held-Karp solver represents
// visited-vertex sets as bitmasks for subset DP, adapted here to enumerate
// node subsets instead of tour states.
//
// Every subset-producing function here returns subsets in ascending bitmask
// order, which gives deterministic, reproducible iteration order across
// runs — a requirement for the cut search in package phi (§5 of the
// specification: results must not depend on scheduling).
package combin
