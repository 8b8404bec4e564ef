package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game holds everything generated for one session: the single-value board,
// the double-value board and the bonus clue played after both boards.
type Game struct {
	ID        uuid.UUID
	CreatedAt time.Time

	single *Board
	double *Board
	bonus  Clue
}

// NewGame creates a game from its two boards and the bonus clue.
func NewGame(single, double *Board, bonus Clue) *Game {
	return &Game{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		single:    single,
		double:    double,
		bonus:     bonus,
	}
}

// SingleBoard returns the board played at single value.
func (g *Game) SingleBoard() *Board { return g.single }

// DoubleBoard returns the board played at double value.
func (g *Game) DoubleBoard() *Board { return g.double }

// BonusClue returns the final clue played after both boards.
func (g *Game) BonusClue() Clue { return g.bonus }
