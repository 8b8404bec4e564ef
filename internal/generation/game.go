package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/trivia-board/internal/domain"
)

// GameAssembler generates complete games: a single board, a double board and
// a bonus clue.
type GameAssembler struct {
	boards *BoardGenerator
	source ClueSource
	logger *slog.Logger
	single BoardShape
	double BoardShape
}

// NewGameAssembler creates a GameAssembler. If logger is nil, the default
// logger is used.
func NewGameAssembler(source ClueSource, rng Random, opts Options, logger *slog.Logger) (*GameAssembler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	boards, err := NewBoardGenerator(source, rng, opts, logger)
	if err != nil {
		return nil, err
	}

	return &GameAssembler{
		boards: boards,
		source: source,
		logger: logger.With(slog.String("component", "game_assembler")),
		single: opts.Single,
		double: opts.Double,
	}, nil
}

// Generate builds a new game. Both boards draw from one UsedIDs registry so
// they never share a category. Any error aborts the whole game.
func (a *GameAssembler) Generate(ctx context.Context) (*domain.Game, error) {
	if err := a.single.Validate(); err != nil {
		return nil, fmt.Errorf("single board: %w", err)
	}
	if err := a.double.Validate(); err != nil {
		return nil, fmt.Errorf("double board: %w", err)
	}

	used := NewUsedIDs()

	single, err := a.boards.Generate(ctx, a.single.Categories, a.single.DailyDoubles, used)
	if err != nil {
		return nil, fmt.Errorf("single board: %w", err)
	}

	double, err := a.boards.Generate(ctx, a.double.Categories, a.double.DailyDoubles, used)
	if err != nil {
		return nil, fmt.Errorf("double board: %w", err)
	}

	bonus, err := a.pickBonusClue(ctx, single, double)
	if err != nil {
		return nil, fmt.Errorf("bonus clue: %w", err)
	}

	game := domain.NewGame(single, double, bonus)
	a.logger.InfoContext(ctx, "game generated",
		"game_id", game.ID.String(),
		"categories_drawn", used.Len(),
		"bonus_clue_id", bonus.ID)
	return game, nil
}

// pickBonusClue fetches a random clue and, if it is already on one of the
// boards, fetches a single replacement which is accepted as is.
func (a *GameAssembler) pickBonusClue(ctx context.Context, boards ...*domain.Board) (domain.Clue, error) {
	clue, err := a.fetchRandomClue(ctx)
	if err != nil {
		return domain.Clue{}, err
	}

	for _, board := range boards {
		if board.HasClue(clue.ID) {
			a.logger.DebugContext(ctx, "bonus clue already on a board, fetching a replacement",
				"clue_id", clue.ID)
			return a.fetchRandomClue(ctx)
		}
	}
	return clue, nil
}

func (a *GameAssembler) fetchRandomClue(ctx context.Context) (domain.Clue, error) {
	clues, err := a.source.FetchRandomClues(ctx, 1)
	if err != nil {
		return domain.Clue{}, fmt.Errorf("%w: random clue: %w", ErrUpstreamFetch, err)
	}
	if len(clues) == 0 {
		return domain.Clue{}, fmt.Errorf("%w: random clue: %w", ErrUpstreamFetch, errNoClues)
	}
	return clues[0], nil
}

var errNoClues = errors.New("source returned no clues")
