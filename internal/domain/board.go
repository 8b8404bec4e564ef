package domain

import "fmt"

// BoardClue is a clue placed on a board. It owns a copy of the source clue
// together with its canonical value and daily-double flag. Only the active
// flag changes after creation; gameplay code clears it once a clue is played.
type BoardClue struct {
	value       BoardValue
	dailyDouble bool
	active      bool
	clue        Clue
}

// NewBoardClue creates an active board clue.
func NewBoardClue(value BoardValue, dailyDouble bool, clue Clue) BoardClue {
	return BoardClue{
		value:       value,
		dailyDouble: dailyDouble,
		active:      true,
		clue:        clue,
	}
}

// ID returns the identifier of the source clue.
func (c BoardClue) ID() int { return c.clue.ID }

// Value returns the canonical board value.
func (c BoardClue) Value() BoardValue { return c.value }

// DailyDouble reports whether the clue is a daily double.
func (c BoardClue) DailyDouble() bool { return c.dailyDouble }

// Active reports whether the clue is still available for play.
func (c BoardClue) Active() bool { return c.active }

// SetActive marks the clue as available (true) or played (false).
func (c *BoardClue) SetActive(active bool) { c.active = active }

// Clue returns the source clue.
func (c BoardClue) Clue() Clue { return c.clue }

// Points returns the clue's board value scaled by the board multiplier.
func (c BoardClue) Points(multiplier int) int {
	return c.value.Int() * multiplier
}

// BoardCategory is a category placed on a board: exactly one clue for every
// canonical board value, in ascending value order.
type BoardCategory struct {
	clues  []BoardClue
	source Category
}

// NewBoardCategory creates a board category from its source category and
// board clues. It returns an error wrapping ErrInvalidCategory unless the
// clues cover every board value exactly once.
func NewBoardCategory(source Category, clues []BoardClue) (BoardCategory, error) {
	if len(clues) != CluesPerCategory {
		return BoardCategory{}, fmt.Errorf("%w: category %d has %d clues, want %d",
			ErrInvalidCategory, source.ID, len(clues), CluesPerCategory)
	}

	seen := make(map[BoardValue]bool, CluesPerCategory)
	for _, clue := range clues {
		if seen[clue.value] {
			return BoardCategory{}, fmt.Errorf("%w: category %d has duplicate value %d",
				ErrInvalidCategory, source.ID, clue.value)
		}
		seen[clue.value] = true
	}

	owned := make([]BoardClue, len(clues))
	copy(owned, clues)
	return BoardCategory{clues: owned, source: source.Clone()}, nil
}

// ID returns the identifier of the source category.
func (c BoardCategory) ID() int { return c.source.ID }

// Title returns the category title.
func (c BoardCategory) Title() string { return c.source.Title }

// Source returns a copy of the source category.
func (c BoardCategory) Source() Category { return c.source.Clone() }

// Clues returns a copy of the category's clues in value order.
func (c BoardCategory) Clues() []BoardClue {
	clues := make([]BoardClue, len(c.clues))
	copy(clues, c.clues)
	return clues
}

// MutableClues returns pointers to the category's clues in value order.
func (c *BoardCategory) MutableClues() []*BoardClue {
	clues := make([]*BoardClue, len(c.clues))
	for i := range c.clues {
		clues[i] = &c.clues[i]
	}
	return clues
}

// Clue returns the clue with the given board value.
func (c BoardCategory) Clue(value BoardValue) (BoardClue, bool) {
	for _, clue := range c.clues {
		if clue.value == value {
			return clue, true
		}
	}
	return BoardClue{}, false
}

// MutableClue returns a pointer to the clue with the given board value.
func (c *BoardCategory) MutableClue(value BoardValue) (*BoardClue, bool) {
	for i := range c.clues {
		if c.clues[i].value == value {
			return &c.clues[i], true
		}
	}
	return nil, false
}

// clone returns a copy that shares no clue storage with c.
func (c BoardCategory) clone() BoardCategory {
	return BoardCategory{clues: c.Clues(), source: c.source.Clone()}
}

// Board is an ordered set of board categories.
type Board struct {
	categories []BoardCategory
}

// NewBoard creates a board from the given categories.
func NewBoard(categories []BoardCategory) *Board {
	owned := make([]BoardCategory, len(categories))
	for i, category := range categories {
		owned[i] = category.clone()
	}
	return &Board{categories: owned}
}

// Categories returns copies of the board's categories in board order.
// Changes to the copies do not affect the board.
func (b *Board) Categories() []BoardCategory {
	categories := make([]BoardCategory, len(b.categories))
	for i, category := range b.categories {
		categories[i] = category.clone()
	}
	return categories
}

// MutableCategories returns pointers to the board's categories.
func (b *Board) MutableCategories() []*BoardCategory {
	categories := make([]*BoardCategory, len(b.categories))
	for i := range b.categories {
		categories[i] = &b.categories[i]
	}
	return categories
}

// CategoryByID returns a copy of the category with the given identifier.
func (b *Board) CategoryByID(id int) (BoardCategory, bool) {
	for _, category := range b.categories {
		if category.ID() == id {
			return category.clone(), true
		}
	}
	return BoardCategory{}, false
}

// Clues returns every clue on the board, category by category.
func (b *Board) Clues() []BoardClue {
	clues := make([]BoardClue, 0, len(b.categories)*CluesPerCategory)
	for _, category := range b.categories {
		clues = append(clues, category.clues...)
	}
	return clues
}

// MutableClues returns pointers to every clue on the board.
func (b *Board) MutableClues() []*BoardClue {
	clues := make([]*BoardClue, 0, len(b.categories)*CluesPerCategory)
	for i := range b.categories {
		clues = append(clues, b.categories[i].MutableClues()...)
	}
	return clues
}

// ActiveClues returns the clues that have not been played yet.
func (b *Board) ActiveClues() []BoardClue {
	var clues []BoardClue
	for _, clue := range b.Clues() {
		if clue.active {
			clues = append(clues, clue)
		}
	}
	return clues
}

// MutableActiveClues returns pointers to the clues that have not been played yet.
func (b *Board) MutableActiveClues() []*BoardClue {
	var clues []*BoardClue
	for _, clue := range b.MutableClues() {
		if clue.active {
			clues = append(clues, clue)
		}
	}
	return clues
}

// ActiveClueCount returns the number of clues that have not been played yet.
func (b *Board) ActiveClueCount() int {
	count := 0
	for _, category := range b.categories {
		for _, clue := range category.clues {
			if clue.active {
				count++
			}
		}
	}
	return count
}

// HasClue reports whether any clue on the board has the given identifier.
func (b *Board) HasClue(id int) bool {
	for _, category := range b.categories {
		for _, clue := range category.clues {
			if clue.ID() == id {
				return true
			}
		}
	}
	return false
}
