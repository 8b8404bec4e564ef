package jservice

import "github.com/phrazzld/trivia-board/internal/domain"

// clueResponse mirrors a clue object as returned by the jService API.
// Fields the board generator does not use are omitted.
type clueResponse struct {
	ID         int    `json:"id"`
	Answer     string `json:"answer"`
	Question   string `json:"question"`
	Value      *int   `json:"value"`
	CategoryID int    `json:"category_id"`
}

// categoryResponse mirrors the /api/category payload.
type categoryResponse struct {
	ID         int            `json:"id"`
	Title      string         `json:"title"`
	CluesCount int            `json:"clues_count"`
	Clues      []clueResponse `json:"clues"`
}

func (c clueResponse) toDomain() domain.Clue {
	clue := domain.Clue{
		ID:         c.ID,
		Question:   c.Question,
		Answer:     c.Answer,
		CategoryID: c.CategoryID,
	}
	if c.Value != nil {
		clue.Value = domain.IntPtr(*c.Value)
	}
	return clue
}

func (c categoryResponse) toDomain() domain.Category {
	category := domain.Category{
		ID:    c.ID,
		Title: c.Title,
		Clues: make([]domain.Clue, 0, len(c.Clues)),
	}
	for _, clue := range c.Clues {
		category.Clues = append(category.Clues, clue.toDomain())
	}
	return category
}
