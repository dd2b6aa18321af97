// Package subsystem builds a Subsystem — a candidate system for Φ
// evaluation — from a network.Network, a fixed background state, and a
// node subset, per specification §3 ("Subsystem construction"). External
// nodes (network nodes outside the subsystem) are conditioned out of the
// TPM at their background-state value, exactly as pyphi's
// Subsystem.__init__ conditions the network TPM on the state of external
// nodes before storing it (see original_source/pyphi/subsystem.py).
//
// A Cut severs connections from one side of a node bipartition to the
// other in the subsystem's connectivity matrix, the unit of work the §5
// search iterates over. Cut follows the same
// construct-once/validate/immutable shape as network.Network, grounded on
// katalvlaran/lvlath/core's GraphOption-validated, immutable-after-build
// Graph.
package subsystem
