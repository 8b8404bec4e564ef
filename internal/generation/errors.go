package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidConfig is returned when a board shape is invalid, for example
	// when more daily doubles are requested than there are categories.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrUpstreamFetch is returned when the clue source fails to return a
	// category or a random clue. It always wraps the source's error.
	ErrUpstreamFetch = errors.New("failed to fetch from clue source")

	// ErrInvariantViolation is returned when generated data breaks a board
	// invariant, such as a daily-double count mismatch or a clue value that
	// cannot be normalized during assembly.
	ErrInvariantViolation = errors.New("board invariant violated")

	// ErrCategoriesExhausted is returned when every category identifier in the
	// configured range has already been drawn.
	ErrCategoriesExhausted = errors.New("no unused category identifiers left")
)
