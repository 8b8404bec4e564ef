package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/trivia-board/internal/domain"
	"github.com/phrazzld/trivia-board/internal/generation"
)

// MockClueSource implements generation.ClueSource for testing
type MockClueSource struct {
	// FetchCategoryFn allows test cases to mock the FetchCategory behavior
	FetchCategoryFn func(ctx context.Context, id int) (domain.Category, error)

	// FetchRandomCluesFn allows test cases to mock the FetchRandomClues behavior
	FetchRandomCluesFn func(ctx context.Context, count int) ([]domain.Clue, error)

	// Categories are returned by FetchCategory when FetchCategoryFn is nil.
	// A missing identifier falls back to FixtureCategory.
	Categories map[int]domain.Category

	// RandomClues are returned one batch per FetchRandomClues call when
	// FetchRandomCluesFn is nil. Once exhausted, fresh fixture clues are returned.
	RandomClues [][]domain.Clue

	// Err is returned by every call when set
	Err error

	mu sync.Mutex

	// FetchCategoryCalls contains the identifiers passed to FetchCategory
	FetchCategoryCalls []int

	// FetchRandomCluesCalls contains the counts passed to FetchRandomClues
	FetchRandomCluesCalls []int
}

var _ generation.ClueSource = (*MockClueSource)(nil)

// FetchCategory implements the generation.ClueSource interface
func (m *MockClueSource) FetchCategory(ctx context.Context, id int) (domain.Category, error) {
	m.mu.Lock()
	m.FetchCategoryCalls = append(m.FetchCategoryCalls, id)
	category, ok := m.Categories[id]
	m.mu.Unlock()

	if m.FetchCategoryFn != nil {
		return m.FetchCategoryFn(ctx, id)
	}
	if m.Err != nil {
		return domain.Category{}, m.Err
	}
	if ok {
		return category, nil
	}
	return FixtureCategory(id), nil
}

// FetchRandomClues implements the generation.ClueSource interface
func (m *MockClueSource) FetchRandomClues(ctx context.Context, count int) ([]domain.Clue, error) {
	m.mu.Lock()
	m.FetchRandomCluesCalls = append(m.FetchRandomCluesCalls, count)
	call := len(m.FetchRandomCluesCalls)
	var batch []domain.Clue
	if len(m.RandomClues) > 0 {
		batch, m.RandomClues = m.RandomClues[0], m.RandomClues[1:]
	}
	m.mu.Unlock()

	if m.FetchRandomCluesFn != nil {
		return m.FetchRandomCluesFn(ctx, count)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if batch != nil {
		return batch, nil
	}

	clues := make([]domain.Clue, count)
	for i := range clues {
		id := 9_000_000 + call*100 + i
		clues[i] = domain.Clue{
			ID:       id,
			Value:    domain.IntPtr(400),
			Question: fmt.Sprintf("Random clue %d", id),
			Answer:   fmt.Sprintf("Answer %d", id),
		}
	}
	return clues, nil
}

// FetchCategoryCount returns how many times FetchCategory was called
func (m *MockClueSource) FetchCategoryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchCategoryCalls)
}

// FetchRandomCluesCount returns how many times FetchRandomClues was called
func (m *MockClueSource) FetchRandomCluesCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchRandomCluesCalls)
}

// Reset resets the call tracking state
func (m *MockClueSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCategoryCalls = nil
	m.FetchRandomCluesCalls = nil
}

// NewMockClueSourceWithError creates a MockClueSource that fails every call
func NewMockClueSourceWithError(err error) *MockClueSource {
	return &MockClueSource{Err: err}
}

// FixtureCategory builds a deterministic category for the given identifier.
// It holds two clues for every board value, so it always shuffles
// successfully. Clue identifiers are id*100 + n.
func FixtureCategory(id int) domain.Category {
	category := domain.Category{
		ID:    id,
		Title: fmt.Sprintf("Category %d", id),
	}
	n := 0
	for _, value := range domain.BoardValues() {
		for j := 0; j < 2; j++ {
			clueID := id*100 + n
			category.Clues = append(category.Clues, domain.Clue{
				ID:         clueID,
				Value:      domain.IntPtr(value.Int()),
				Question:   fmt.Sprintf("Clue %d for %d", clueID, value),
				Answer:     fmt.Sprintf("Answer %d", clueID),
				CategoryID: id,
			})
			n++
		}
	}
	return category
}

// IncompleteCategory builds a category that has no clue for the given value
// and no unvalued clues, so it can never be shuffled onto a board.
func IncompleteCategory(id int, missing domain.BoardValue) domain.Category {
	category := FixtureCategory(id)
	kept := category.Clues[:0]
	for _, clue := range category.Clues {
		if !clue.HasValue(missing.Int()) {
			kept = append(kept, clue)
		}
	}
	category.Clues = kept
	return category
}
