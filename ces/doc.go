// Package ces assembles the cause-effect structure of a Subsystem — the
// unordered collection of concepts, one per non-empty mechanism with
// nonzero φ — and computes the Earth Mover's Distance between two CESes in
// concept space (specification §4.6-§4.7), the quantity that defines Φ for
// a candidate cut.
//
// A Concept is (mechanism, MIC, MIE, φ = min(MIC.φ, MIE.φ)); mechanisms
// whose φ falls below Epsilon are filtered out before assembly, per §4.6.
// Concepts are stored sorted by (|mechanism|, mechanism) for a canonical,
// deterministic order, following the same "stable order gives deterministic
// iteration" discipline package combin documents for its own enumerators.
package ces
