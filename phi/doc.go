// Package phi computes the big-Φ of a subsystem: its minimum
// information partition (MIP) and the irreducibility this MIP leaves
// behind (§4.8).
//
// Compute enumerates every non-trivial unidirectional cut of the
// subsystem's node set (subsystem.AllDirectedCuts — both directions of
// every bipartition are distinct candidates), evaluates each cut's Φ as
// the concept-space EMD between the subsystem's unpartitioned CES and
// the cut's CES, and reports the minimum-Φ cut as the MIP. A subsystem
// whose current-cut connectivity is not strongly connected is already
// reducible and short-circuits to Φ=0 without searching; an empty
// subsystem and (by default) a single node with a self-loop do too.
//
// Cut evaluation is independent per candidate, so it runs concurrently
// via golang.org/x/sync/errgroup bounded to a worker count — mirroring
// the goroutine-per-unit-of-work idiom the teacher exercises in
// core/concurrency_test.go, generalized here with errgroup's bounded
// concurrency and first-error propagation in place of a raw
// sync.WaitGroup, since a failed cut evaluation must abort the search
// rather than be silently dropped. Results land in a pre-sized slice
// indexed by cut position, so picking the minimum is a deterministic
// sequential scan afterward — the outcome never depends on goroutine
// scheduling order.
package phi
