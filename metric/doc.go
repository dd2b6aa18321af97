// Package metric computes the distance between two repertoires
// (specification §4.2, "repertoire distance"): the Earth Mover's Distance
// (EMD) under a Hamming ground metric between purview states, used to
// score how irreducible a mechanism's repertoire is under a partition.
//
// EMD is a min-cost transportation problem: move the probability mass of
// one repertoire onto the support of the other at minimum total
// cost-times-mass, where moving one unit of mass from state i to state j
// costs the Hamming distance between i and j. This package solves it with
// a successive-shortest-augmenting-path min-cost-flow algorithm, adapted
// from the layered BFS/augmenting-path shape of
// katalvlaran/lvlath/flow.Dinic — Dinic computes *max* flow along
// shortest-hop augmenting paths found by BFS; this solver computes *min
// cost* flow along shortest-cost augmenting paths found by Bellman-Ford
// (residual reverse edges carry negative cost, which rules out plain
// Dijkstra), using gonum's mat.Dense to hold the Hamming ground-cost
// matrix between the two repertoires' states.
package metric
