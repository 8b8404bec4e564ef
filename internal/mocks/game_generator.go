package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/trivia-board/internal/domain"
)

// MockGameGenerator produces games for HTTP handler tests.
type MockGameGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context) (*domain.Game, error)

	// Game is returned when GenerateFn is nil
	Game *domain.Game

	// Err is returned when GenerateFn is nil and Err is set
	Err error

	mu    sync.Mutex
	calls int
}

// Generate returns the configured game or error.
func (m *MockGameGenerator) Generate(ctx context.Context) (*domain.Game, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Game, nil
}

// Calls returns how many times Generate was called.
func (m *MockGameGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
