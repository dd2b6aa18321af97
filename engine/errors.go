package engine

import "errors"

var (
	// ErrUnsupportedIITVersion indicates an IITVersion other than Classic.
	// The "maximal-state-first" variant §6 names is not implemented here;
	// see DESIGN.md's Open Question decisions.
	ErrUnsupportedIITVersion = errors.New("engine: only the classic IIT_VERSION variant is implemented")

	// ErrUnsupportedRepertoireDistance indicates a RepertoireDistance other
	// than HammingEMD, the only distance function package metric provides.
	ErrUnsupportedRepertoireDistance = errors.New("engine: only the Hamming-EMD REPERTOIRE_DISTANCE is implemented")
)
