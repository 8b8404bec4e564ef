package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidBoardValue is returned when a clue's point value does not map
	// to one of the canonical board values.
	ErrInvalidBoardValue = errors.New("invalid board value")

	// ErrInvalidCategory is returned when a board category is built from
	// clues that do not cover every board value exactly once.
	ErrInvalidCategory = errors.New("invalid board category")
)
