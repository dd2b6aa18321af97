// Package network defines Network, the immutable TPM+CM substrate the Φ
// engine evaluates: a set of binary nodes, a connectivity matrix recording
// which nodes can influence which, and a state-by-node transition
// probability matrix recording P(node_t+1 = 1 | system_t = state)
// (specification §2, "Network" and §3, "validation").
//
// Network follows katalvlaran/lvlath/core.Graph's construction shape: a
// functional-option constructor (Option/gatherOptions) validates inputs up
// front — dimensions agree, every TPM entry lies in [0, 1], labels are
// unique —and returns a value with no further mutation methods. Unlike
// core.Graph, nothing here mutates after construction, so there is no
// RWMutex to guard; a *Network can be shared across goroutines (the §5 cut
// search does exactly that) without any locking at all.
package network
