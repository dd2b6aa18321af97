// Package networks provides binary network.Network fixtures for tests and
// the end-to-end scenarios of §8: canonical hand-specified topologies
// (ORCopyPair, DisconnectedPair, ANDOrXORTriple, SelfLoopNode) plus
// randomized and regular topology generators (Complete, Ring, Star,
// RandomRegular, RandomSparse).
//
// Adapted from the teacher's builder package: the same functional-option
// configuration shape (Option/gatherConfig mirroring BuilderOption/
// newBuilderConfig), the same deterministic-given-a-seed construction
// discipline, and the same stub-matching / Erdős–Rényi generation models —
// retargeted from building core.Graph edge sets to building a connectivity
// matrix and, from it, a transition probability matrix (network.New's two
// required inputs).
//
// A generated network's TPM is not itself randomized: every non-canonical
// generator here derives it deterministically from the generated CM via
// thresholdTPM, an OR-of-parents rule like §8 scenario 1's
// Y(t+1) = X(t) OR Y(t). Of the canonical fixtures only DisconnectedPair
// uses thresholdTPM; the others write their TPMs out by hand. So randomness governs only
// which connections exist, never the dynamics a fixed topology produces.
package networks
