package types

import "errors"

// Domain errors for type validation
var (
	// Task errors
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrEmptyTitle    = errors.New("title cannot be empty")

	// Search match errors
	ErrNegativeScore  = errors.New("score must be >= 0")
	ErrUnknownField   = errors.New("unknown matched field")
	ErrDuplicateField = errors.New("matched fields must not repeat")
)
