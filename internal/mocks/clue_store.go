package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/trivia-board/internal/domain"
	"github.com/phrazzld/trivia-board/internal/store"
)

// MockClueStore implements store.ClueStore in memory. Reads go through the
// embedded MockClueSource, whose Categories map is also where saved
// categories land.
type MockClueStore struct {
	MockClueSource

	// SaveCategoryFn allows test cases to mock the SaveCategory behavior
	SaveCategoryFn func(ctx context.Context, category domain.Category) error

	saveMu sync.Mutex

	// Saved contains every category passed to SaveCategory, in call order
	Saved []domain.Category
}

var _ store.ClueStore = (*MockClueStore)(nil)

// SaveCategory records the category and makes it available to FetchCategory.
func (m *MockClueStore) SaveCategory(ctx context.Context, category domain.Category) error {
	if m.SaveCategoryFn != nil {
		if err := m.SaveCategoryFn(ctx, category); err != nil {
			return err
		}
	}

	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.Saved = append(m.Saved, category)
	m.mu.Lock()
	if m.Categories == nil {
		m.Categories = make(map[int]domain.Category)
	}
	m.Categories[category.ID] = category
	m.mu.Unlock()
	return nil
}

// CountCategories returns the number of distinct saved categories.
func (m *MockClueStore) CountCategories(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Categories), nil
}

// CategoryIDRange returns the smallest and largest saved category IDs.
func (m *MockClueStore) CategoryIDRange(ctx context.Context) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Categories) == 0 {
		return 0, 0, store.ErrCategoryNotFound
	}
	ids := make([]int, 0, len(m.Categories))
	for id := range m.Categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids[0], ids[len(ids)-1], nil
}
