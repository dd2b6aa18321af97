// Package cache implements the memoization substrate of specification
// §4.9: a persistent, disk-backed concept cache keyed by a canonical
// Markov-blanket fingerprint ("MarblSet"), and in-process, byte-budgeted
// LRU caches for pairwise concept and CES distances.
//
// The persistent cache (ConceptCache, backed by badger) and the
// in-process distance caches (DistanceCache) are independent: nothing in
// this package depends on a process-wide singleton, matching §9's
// "re-architect as injected cache handles owned by a top-level Engine
// value" redesign note. Callers construct and own their own handles.
package cache
