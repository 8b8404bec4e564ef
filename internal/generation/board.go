package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/trivia-board/internal/domain"
)

// BoardGenerator assembles boards from categories fetched from a ClueSource.
type BoardGenerator struct {
	source ClueSource
	rng    Random
	logger *slog.Logger
	idMin  int
	idMax  int
}

// NewBoardGenerator creates a BoardGenerator drawing category identifiers
// from the range in opts. If logger is nil, the default logger is used.
func NewBoardGenerator(source ClueSource, rng Random, opts Options, logger *slog.Logger) (*BoardGenerator, error) {
	if source == nil {
		return nil, errors.New("clue source cannot be nil")
	}
	if rng == nil {
		return nil, errors.New("random source cannot be nil")
	}
	if err := opts.validateRange(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BoardGenerator{
		source: source,
		rng:    rng,
		logger: logger.With(slog.String("component", "board_generator")),
		idMin:  opts.CategoryIDMin,
		idMax:  opts.CategoryIDMax,
	}, nil
}

// Generate builds a board with numCategories categories and numDailyDoubles
// daily doubles. Every drawn category identifier is added to used, and
// identifiers already in used are never drawn, so boards generated with the
// same registry share no categories. A nil registry is treated as empty.
//
// A failed fetch aborts generation. A fetched category that cannot fill all
// five board values is skipped and another identifier is drawn.
func (g *BoardGenerator) Generate(
	ctx context.Context,
	numCategories int,
	numDailyDoubles int,
	used *UsedIDs,
) (*domain.Board, error) {
	shape := BoardShape{Categories: numCategories, DailyDoubles: numDailyDoubles}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if used == nil {
		used = NewUsedIDs()
	}

	categories := make([]domain.Category, 0, numCategories)
	draws := 0
	for len(categories) < numCategories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, err := g.drawCategoryID(used)
		if err != nil {
			return nil, err
		}
		draws++

		category, err := g.source.FetchCategory(ctx, id)
		if err != nil {
			g.logger.ErrorContext(ctx, "failed to fetch category",
				"category_id", id,
				"error", err)
			return nil, fmt.Errorf("%w: category %d: %w", ErrUpstreamFetch, id, err)
		}

		shuffled, ok := ShuffleCategory(g.rng, category)
		if !ok {
			g.logger.DebugContext(ctx, "skipping category without a clue for every value",
				"category_id", id,
				"clue_count", len(category.Clues))
			continue
		}
		categories = append(categories, shuffled)
	}

	dailyDoubles, err := g.placeDailyDoubles(categories, numDailyDoubles)
	if err != nil {
		return nil, err
	}

	board, err := assembleBoard(categories, dailyDoubles)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "board generated",
		"categories", numCategories,
		"daily_doubles", numDailyDoubles,
		"draws", draws)
	return board, nil
}

// drawCategoryID draws an unused identifier from the configured range and
// records it in used.
func (g *BoardGenerator) drawCategoryID(used *UsedIDs) (int, error) {
	if used.CountInRange(g.idMin, g.idMax) >= g.idMax-g.idMin {
		return 0, fmt.Errorf("%w: range [%d, %d)", ErrCategoriesExhausted, g.idMin, g.idMax)
	}

	id := g.idMin + g.rng.Intn(g.idMax-g.idMin)
	for used.Contains(id) {
		id = g.idMin + g.rng.Intn(g.idMax-g.idMin)
	}
	used.Add(id)
	return id, nil
}

// placeDailyDoubles picks count distinct categories and one clue in each,
// returning the identifiers of the chosen clues.
func (g *BoardGenerator) placeDailyDoubles(categories []domain.Category, count int) ([]int, error) {
	var ids []int
	for _, i := range sample(g.rng, len(categories), count) {
		clues := categories[i].Clues
		ids = append(ids, clues[g.rng.Intn(len(clues))].ID)
	}

	if len(ids) != count {
		return nil, fmt.Errorf("%w: placed %d daily doubles, want %d",
			ErrInvariantViolation, len(ids), count)
	}
	return ids, nil
}

// assembleBoard converts shuffled categories into a board.
func assembleBoard(categories []domain.Category, dailyDoubles []int) (*domain.Board, error) {
	isDailyDouble := make(map[int]bool, len(dailyDoubles))
	for _, id := range dailyDoubles {
		isDailyDouble[id] = true
	}

	boardCategories := make([]domain.BoardCategory, 0, len(categories))
	for _, category := range categories {
		clues := make([]domain.BoardClue, 0, len(category.Clues))
		for _, clue := range category.Clues {
			value, err := domain.NormalizeValue(clue.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: clue %d in category %d: %w",
					ErrInvariantViolation, clue.ID, category.ID, err)
			}
			clues = append(clues, domain.NewBoardClue(value, isDailyDouble[clue.ID], clue))
		}

		boardCategory, err := domain.NewBoardCategory(category, clues)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		boardCategories = append(boardCategories, boardCategory)
	}

	return domain.NewBoard(boardCategories), nil
}
