package fakegen

import "errors"

// Sentinel errors for generation failures
var (
	// ErrInvalidInput is returned when a selection has nothing valid to choose from.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLookupFailure is returned when a keyed metadata lookup uses an absent key.
	ErrLookupFailure = errors.New("lookup failure")
)
