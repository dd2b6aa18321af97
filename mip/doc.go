// Package mip searches, for a fixed (mechanism, purview) pair within a
// Subsystem, over every bipartition (or, under PARTITION_TYPE=TRI, every
// tripartition — see DESIGN.md's Open Question decisions) for the one that
// least changes the repertoire: the minimum information partition
// (specification §4.4). The partitioned repertoire is the product of each
// part's independently computed repertoire; distance from the
// unconstrained (unpartitioned) repertoire is small phi (φ) for that
// partition, via package metric's EMD. The minimum-φ partition is the MIP.
//
// The search follows the deterministic, early-exit-on-zero engine shape of
// katalvlaran/lvlath/tsp's branch-and-bound solver (tsp/bb.go): partitions
// are walked in the fixed ascending-bitmask order combin.*Bipartitions
// produces, a running minimum is tracked, and a φ of (approximately) zero
// short-circuits the remaining search since no partition can do better
// than "no difference at all." Ties are recorded (every partition whose φ
// matches the running minimum within Epsilon), restoring the tie-tracking
// that specification's source material performs via resolve_ties (see
// SPEC_FULL.md's "Supplemented features").
package mip
