package store

import (
	"context"

	"github.com/phrazzld/trivia-board/internal/domain"
	"github.com/phrazzld/trivia-board/internal/generation"
)

// ClueStore is a persistent mirror of upstream trivia data. It serves as a
// generation.ClueSource so boards can be generated without network access.
type ClueStore interface {
	generation.ClueSource

	// SaveCategory inserts or replaces a category together with all of its
	// clues. The operation is atomic.
	// Returns ErrInvalidEntity for categories without an identifier.
	SaveCategory(ctx context.Context, category domain.Category) error

	// CountCategories returns the number of mirrored categories.
	CountCategories(ctx context.Context) (int, error)

	// CategoryIDRange returns the smallest and largest mirrored category
	// identifiers. Returns ErrNotFound when the mirror is empty.
	CategoryIDRange(ctx context.Context) (lo, hi int, err error)
}
