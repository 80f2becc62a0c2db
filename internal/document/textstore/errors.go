package textstore

import "errors"

// Errors returned by store operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRangeInvalid indicates an invalid range (end < begin).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrInvalidMarkingID indicates a marking ID outside [0, MaxMarkingIDs).
	ErrInvalidMarkingID = errors.New("invalid marking id")
)
