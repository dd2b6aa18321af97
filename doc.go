// Package goiphi computes integrated information (Φ) for discrete
// dynamical networks, per Integrated Information Theory 3.0.
//
// 🧠 What is goiphi?
//
//	A deterministic library that takes a network's transition probability
//	matrix and a background state, and tells you:
//
//	  • Cause-effect repertoires: how a mechanism constrains its inputs
//	    and outputs (package repertoire)
//	  • Maximally irreducible cause-effect search over candidate purviews
//	    and partitions (package mip)
//	  • A subsystem's cause-effect structure, its concepts (package ces)
//	  • Big Φ: the minimum-information-partition search over every
//	    directed cut of a subsystem (package phi)
//
// ✨ Why this shape?
//
//   - Deterministic    — every search is a minimum over a finite,
//     enumerable set of candidates; no sampling, no heuristics
//   - Cacheable        — concept-level results persist across runs via
//     package cache, content-addressed by mechanism; distance results are
//     cached in-process only
//   - Composable        — each layer accepts the layer below it as an
//     interface (repertoire.Source, ces.Source, phi.CESSource), so a
//     caller can substitute a cached or instrumented implementation
//     without touching the algorithms above it
//
// Under the hood, everything is organized under purpose-built packages:
//
//	network/      — the dynamical system: nodes, a TPM, connectivity
//	subsystem/    — a candidate system: a node subset, a state, a cut
//	combin/       — bitmask sets and subset/partition enumeration
//	distribution/ — probability distributions over a purview
//	repertoire/   — cause/effect repertoire computation and caching
//	metric/       — Earth Mover's Distance and min-cost transport
//	mip/          — MICE search: the minimum-information partition
//	ces/          — cause-effect structures and concept-space distance
//	phi/          — big-Φ: the minimum over every directed cut
//	cache/        — persistent concept cache and in-process LRUs
//	networks/     — canonical and generated example networks
//	engine/       — the top-level entry point: config, logging, caches
//
// A minimal example builds a network, picks a subsystem, and asks the
// engine for its Φ:
//
//	eng, err := engine.New(engine.WithCacheDir("concepts.db"))
//	...
//	result, err := eng.Phi(sub)
//	fmt.Println(result.Phi)
//
// See SPEC_FULL.md and DESIGN.md for the full specification this module
// implements and the design decisions behind it.
package goiphi
