package operator

import "errors"

// Sentinel errors for operator preconditions and declared-unfinished
// operations.
var (
	// ErrNoMidsphere indicates a midsphere-based method applied to a
	// polytope whose edges share no common midsphere. Recoverable: retry
	// with ByMidpoint. The operator never substitutes a method silently.
	ErrNoMidsphere = errors.New("operator: polytope is not canonical; a midsphere is required")

	// ErrUnknownMethod indicates a Method value outside the declared set.
	ErrUnknownMethod = errors.New("operator: unknown method")

	// ErrStellationOrder indicates a requested stellation order with no
	// matching intersection-distance tier.
	ErrStellationOrder = errors.New("operator: stellation of that order does not exist")

	// ErrUnfinished marks operators declared unimplemented. Callers treat
	// it as an identity fallback with a diagnostic, never a failure of the
	// input polytope.
	ErrUnfinished = errors.New("operator: under development; input returned unchanged")
)
