// Package distribution implements Repertoire, the probability distribution
// over the states of a node purview that the Φ engine's cause/effect
// repertoires, MIP search, and concept-distance calculations all operate on
// (specification §4.1, "Repertoire").
//
// A repertoire would classically be described as an N-dimensional array
// with one axis per system node, singleton-broadcast over every node
// outside the purview. Go has no numpy-style broadcasting and no generic
// N-dimensional array type, so Repertoire instead stores a purview bitmask
// (combin.Set) plus a flat []float64 of length 2^|purview|, indexed by the
// packed sub-state of exactly the purview's nodes (see combin.ProjectState).
// This mirrors how katalvlaran/lvlath/matrix.Dense stores a 2-D matrix as a
// flat row-major slice with explicit shape bookkeeping rather than a nested
// structure, adapted here from two explicit dimensions to a bit-indexed
// probability vector. Every invariant the N-dimensional description implies
// — sum-to-1 over the purview's states, a 1-element scalar for an empty
// purview, marginalization by summing out axes, conditioning by selecting
// and renormalizing a slice — holds for this representation too.
package distribution
