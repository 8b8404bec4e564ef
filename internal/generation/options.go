package generation

import "fmt"

// Category identifier range of the upstream data set.
const (
	DefaultCategoryIDMin = 7000
	DefaultCategoryIDMax = 15000
)

// BoardShape describes how many categories and daily doubles a board has.
type BoardShape struct {
	Categories   int
	DailyDoubles int
}

// Validate returns an error wrapping ErrInvalidConfig if the shape cannot be
// generated.
func (s BoardShape) Validate() error {
	if s.Categories <= 0 {
		return fmt.Errorf("%w: number of categories must be positive, got %d",
			ErrInvalidConfig, s.Categories)
	}
	if s.DailyDoubles < 0 {
		return fmt.Errorf("%w: number of daily doubles cannot be negative, got %d",
			ErrInvalidConfig, s.DailyDoubles)
	}
	if s.DailyDoubles > s.Categories {
		return fmt.Errorf("%w: number of daily doubles (%d) cannot be greater than number of categories (%d)",
			ErrInvalidConfig, s.DailyDoubles, s.Categories)
	}
	return nil
}

// Options configures board and game generation.
type Options struct {
	// CategoryIDMin and CategoryIDMax bound the category identifiers drawn
	// from the clue source: [CategoryIDMin, CategoryIDMax).
	CategoryIDMin int
	CategoryIDMax int

	// Single and Double are the shapes of the two boards of a game.
	Single BoardShape
	Double BoardShape
}

// DefaultOptions returns the standard game layout: six categories per board,
// one daily double on the single board and two on the double board.
func DefaultOptions() Options {
	return Options{
		CategoryIDMin: DefaultCategoryIDMin,
		CategoryIDMax: DefaultCategoryIDMax,
		Single:        BoardShape{Categories: 6, DailyDoubles: 1},
		Double:        BoardShape{Categories: 6, DailyDoubles: 2},
	}
}

// validateRange checks the category identifier range.
func (o Options) validateRange() error {
	if o.CategoryIDMin < 0 || o.CategoryIDMax <= o.CategoryIDMin {
		return fmt.Errorf("%w: category id range [%d, %d) is empty",
			ErrInvalidConfig, o.CategoryIDMin, o.CategoryIDMax)
	}
	return nil
}
