package domain

import "fmt"

// BoardValue is one of the five canonical point values a board clue can have.
type BoardValue int

// Canonical board values in ascending order.
const (
	TwoHundred   BoardValue = 200
	FourHundred  BoardValue = 400
	SixHundred   BoardValue = 600
	EightHundred BoardValue = 800
	OneThousand  BoardValue = 1000
)

// Point multipliers for the two boards of a game.
const (
	SingleMultiplier = 1
	DoubleMultiplier = 2
)

// CluesPerCategory is the number of clues in every board category.
const CluesPerCategory = 5

// BoardValues returns the canonical board values in ascending order.
func BoardValues() []BoardValue {
	return []BoardValue{TwoHundred, FourHundred, SixHundred, EightHundred, OneThousand}
}

// NormalizeValue maps a raw clue value to its canonical board value.
// A nil value or any value outside the canonical set returns an error
// wrapping ErrInvalidBoardValue.
func NormalizeValue(value *int) (BoardValue, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: value is missing", ErrInvalidBoardValue)
	}

	switch v := BoardValue(*value); v {
	case TwoHundred, FourHundred, SixHundred, EightHundred, OneThousand:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidBoardValue, *value)
	}
}

// Int returns the board value as a plain integer.
func (v BoardValue) Int() int {
	return int(v)
}
