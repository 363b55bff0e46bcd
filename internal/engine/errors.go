package engine

import "errors"

// Sentinel errors for the generation pipeline. Only input contract
// violations abort generation; data incompleteness (no protocol match, empty
// lookups, unclassifiable products) is always recovered locally.
var (
	// ErrProfileIncomplete means the profile is missing required normalized
	// fields. This is the caller's contract violation, not recoverable data
	// incompleteness.
	ErrProfileIncomplete = errors.New("profile missing required normalized fields")
)
