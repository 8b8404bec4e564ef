package generation

import (
	"context"

	"github.com/phrazzld/trivia-board/internal/domain"
)

// ClueSource defines the capabilities generation needs from the upstream clue
// service. This interface is the boundary between board generation and the
// external data source, following the hexagonal architecture pattern.
type ClueSource interface {
	// FetchCategory returns the category with the given identifier, including
	// its full raw clue list. It returns an error for unknown identifiers or
	// transport failures.
	FetchCategory(ctx context.Context, id int) (domain.Category, error)

	// FetchRandomClues returns count clues sampled uniformly from the whole
	// upstream clue population.
	FetchRandomClues(ctx context.Context, count int) ([]domain.Clue, error)
}
