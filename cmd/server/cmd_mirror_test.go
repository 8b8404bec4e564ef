package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/trivia-board/internal/domain"
	"github.com/phrazzld/trivia-board/internal/generation"
	"github.com/phrazzld/trivia-board/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomCluesFrom returns a FetchRandomCluesFn that hands out one clue per
// requested count, cycling through the given category IDs.
func randomCluesFrom(categoryIDs ...int) func(ctx context.Context, count int) ([]domain.Clue, error) {
	next := 0
	return func(ctx context.Context, count int) ([]domain.Clue, error) {
		clues := make([]domain.Clue, 0, count)
		for i := 0; i < count; i++ {
			id := categoryIDs[next%len(categoryIDs)]
			next++
			clues = append(clues, domain.Clue{ID: id*100 + next, CategoryID: id})
		}
		return clues, nil
	}
}

func TestMirrorCategories(t *testing.T) {
	src := &mocks.MockClueSource{FetchRandomCluesFn: randomCluesFrom(11, 12, 12, 13, 14)}
	dst := &mocks.MockClueStore{}

	saved, err := mirrorCategories(context.Background(), src, dst, 4, 2, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, saved)

	count, err := dst.CountCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	lo, hi, err := dst.CategoryIDRange(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, lo)
	assert.Equal(t, 14, hi)

	for _, category := range dst.Saved {
		assert.Len(t, category.Clues, 10, "fixture categories carry every clue")
	}
}

func TestMirrorCategoriesSkipsEmptyCategories(t *testing.T) {
	src := &mocks.MockClueSource{
		FetchRandomCluesFn: randomCluesFrom(21, 22, 23),
		Categories: map[int]domain.Category{
			22: {ID: 22, Title: "empty"},
		},
	}
	dst := &mocks.MockClueStore{}

	saved, err := mirrorCategories(context.Background(), src, dst, 3, 1, testLogger())
	assert.ErrorIs(t, err, errMirrorIncomplete)
	assert.Equal(t, 2, saved)
	assert.Equal(t, 3, src.FetchCategoryCount(), "each category is fetched once")
}

func TestMirrorCategoriesUpstreamFailure(t *testing.T) {
	upstreamErr := errors.New("jservice down")

	t.Run("random clues", func(t *testing.T) {
		src := mocks.NewMockClueSourceWithError(upstreamErr)
		saved, err := mirrorCategories(context.Background(), src, &mocks.MockClueStore{}, 2, 1, testLogger())
		assert.ErrorIs(t, err, generation.ErrUpstreamFetch)
		assert.ErrorIs(t, err, upstreamErr)
		assert.Zero(t, saved)
	})

	t.Run("category", func(t *testing.T) {
		src := &mocks.MockClueSource{
			FetchRandomCluesFn: randomCluesFrom(31),
			FetchCategoryFn: func(ctx context.Context, id int) (domain.Category, error) {
				return domain.Category{}, upstreamErr
			},
		}
		_, err := mirrorCategories(context.Background(), src, &mocks.MockClueStore{}, 1, 1, testLogger())
		assert.ErrorIs(t, err, generation.ErrUpstreamFetch)
	})
}

func TestMirrorCategoriesSaveFailure(t *testing.T) {
	saveErr := errors.New("disk full")
	src := &mocks.MockClueSource{FetchRandomCluesFn: randomCluesFrom(41)}
	dst := &mocks.MockClueStore{
		SaveCategoryFn: func(ctx context.Context, category domain.Category) error {
			return saveErr
		},
	}

	saved, err := mirrorCategories(context.Background(), src, dst, 1, 1, testLogger())
	assert.ErrorIs(t, err, saveErr)
	assert.Zero(t, saved)
	assert.Empty(t, dst.Saved)
}

func TestMirrorCmdValidatesArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"non numeric count", []string{"mirror", "many"}, "positive integer"},
		{"zero count", []string{"mirror", "0"}, "positive integer"},
		{"bad concurrency", []string{"mirror", "3", "--concurrency", "0"}, "--concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
