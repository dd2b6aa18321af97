package phi

import "errors"

// ErrNoCuts signals that AllDirectedCuts returned no candidates for a
// subsystem IsStronglyConnected already accepted as having >= 2 nodes —
// a contract violation between subsystem and phi, never expected in
// practice.
var ErrNoCuts = errors.New("phi: no candidate cuts for a multi-node subsystem")
