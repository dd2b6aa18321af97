package repertoire

import "errors"

var (
	// ErrMechanismNotInSubsystem indicates a mechanism referencing nodes
	// outside the subsystem it is being evaluated against.
	ErrMechanismNotInSubsystem = errors.New("repertoire: mechanism references nodes outside the subsystem")

	// ErrPurviewNotInSubsystem indicates a purview referencing nodes outside
	// the subsystem it is being evaluated against.
	ErrPurviewNotInSubsystem = errors.New("repertoire: purview references nodes outside the subsystem")
)
