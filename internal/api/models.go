package api

import (
	"time"

	"github.com/phrazzld/trivia-board/internal/domain"
)

// GameResponse is the JSON representation of a generated game.
type GameResponse struct {
	ID        string        `json:"id" yaml:"id"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
	Single    BoardResponse `json:"single" yaml:"single"`
	Double    BoardResponse `json:"double" yaml:"double"`
	Bonus     ClueResponse  `json:"bonus" yaml:"bonus"`
}

// BoardResponse is the JSON representation of one board.
type BoardResponse struct {
	Multiplier int                `json:"multiplier" yaml:"multiplier"`
	Categories []CategoryResponse `json:"categories" yaml:"categories"`
}

// CategoryResponse is one board column.
type CategoryResponse struct {
	ID    int                 `json:"id" yaml:"id"`
	Title string              `json:"title" yaml:"title"`
	Clues []BoardClueResponse `json:"clues" yaml:"clues"`
}

// BoardClueResponse is one cell of a board.
type BoardClueResponse struct {
	ID          int    `json:"id" yaml:"id"`
	Value       int    `json:"value" yaml:"value"`
	Points      int    `json:"points" yaml:"points"`
	DailyDouble bool   `json:"daily_double" yaml:"daily_double"`
	Active      bool   `json:"active" yaml:"active"`
	Question    string `json:"question" yaml:"question"`
	Answer      string `json:"answer" yaml:"answer"`
}

// ClueResponse is a clue outside any board, used for the bonus clue.
type ClueResponse struct {
	ID         int    `json:"id" yaml:"id"`
	Value      *int   `json:"value" yaml:"value"`
	Question   string `json:"question" yaml:"question"`
	Answer     string `json:"answer" yaml:"answer"`
	CategoryID int    `json:"category_id" yaml:"category_id"`
}

// GameToResponse converts a domain game to its JSON representation.
func GameToResponse(game *domain.Game) GameResponse {
	bonus := game.BonusClue()
	return GameResponse{
		ID:        game.ID.String(),
		CreatedAt: game.CreatedAt,
		Single:    boardToResponse(game.SingleBoard(), domain.SingleMultiplier),
		Double:    boardToResponse(game.DoubleBoard(), domain.DoubleMultiplier),
		Bonus: ClueResponse{
			ID:         bonus.ID,
			Value:      bonus.Value,
			Question:   bonus.Question,
			Answer:     bonus.Answer,
			CategoryID: bonus.CategoryID,
		},
	}
}

func boardToResponse(board *domain.Board, multiplier int) BoardResponse {
	categories := board.Categories()
	resp := BoardResponse{
		Multiplier: multiplier,
		Categories: make([]CategoryResponse, 0, len(categories)),
	}

	for _, category := range categories {
		clues := category.Clues()
		cr := CategoryResponse{
			ID:    category.ID(),
			Title: category.Title(),
			Clues: make([]BoardClueResponse, 0, len(clues)),
		}
		for _, clue := range clues {
			source := clue.Clue()
			cr.Clues = append(cr.Clues, BoardClueResponse{
				ID:          clue.ID(),
				Value:       clue.Value().Int(),
				Points:      clue.Points(multiplier),
				DailyDouble: clue.DailyDouble(),
				Active:      clue.Active(),
				Question:    source.Question,
				Answer:      source.Answer,
			})
		}
		resp.Categories = append(resp.Categories, cr)
	}

	return resp
}
