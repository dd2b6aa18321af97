// Package repertoire computes cause and effect repertoires for a
// (mechanism, purview) pair within a Subsystem, and assembles them by
// product of single-node repertoires, per specification §4.1 (node
// repertoires) and §4.9 ("Repertoire engine ... joint cause/effect
// repertoires assembled by product of single-node repertoires").
//
// Engine owns three layered, per-subsystem caches. joint and
// nonVirtualized are content-addressed by (direction, mechanism, purview)
// as §4.9 requires; singleNode is keyed by (direction, node, conditioning
// set, cut or uncut):
//
//   - singleNode: each purview node's own conditional effect distribution,
//     the cheapest and most frequently recomputed unit of work (cause
//     repertoires do not use this cache);
//   - joint: the assembled product repertoire for a full (mechanism,
//     purview) pair, under the subsystem's current cut;
//   - nonVirtualized: the same joint repertoires, but always computed
//     against the subsystem's uncut (NullCut) connectivity — kept separate
//     because the unpartitioned baseline is recomputed against every
//     candidate cut during the §5 search and is worth caching once per
//     subsystem rather than once per cut.
//
// This follows katalvlaran/lvlath/core's RWMutex-guarded map idiom (see
// core/types.go's muVert/muEdgeAdj split) — one mutex per cache, since the
// three caches are populated independently and at different rates.
package repertoire
