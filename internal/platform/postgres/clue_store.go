package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/trivia-board/internal/domain"
	"github.com/phrazzld/trivia-board/internal/platform/logger"
	"github.com/phrazzld/trivia-board/internal/store"
)

// PostgresClueStore implements the store.ClueStore interface
// using a PostgreSQL database as the storage backend.
type PostgresClueStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClueStore creates a new PostgreSQL implementation of the ClueStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresClueStore(db store.DBTX, logger *slog.Logger) *PostgresClueStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClueStore{
		db:     db,
		logger: logger.With(slog.String("component", "clue_store")),
	}
}

var _ store.ClueStore = (*PostgresClueStore)(nil)

const (
	selectCategoryQuery = `
		SELECT id, title
		FROM categories
		WHERE id = $1
	`

	selectCategoryCluesQuery = `
		SELECT id, category_id, value, question, answer
		FROM clues
		WHERE category_id = $1
		ORDER BY id
	`

	selectRandomCluesQuery = `
		SELECT id, category_id, value, question, answer
		FROM clues
		ORDER BY random()
		LIMIT $1
	`

	upsertCategoryQuery = `
		INSERT INTO categories (id, title)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, updated_at = NOW()
	`

	deleteCategoryCluesQuery = `
		DELETE FROM clues
		WHERE category_id = $1
	`

	upsertClueQuery = `
		INSERT INTO clues (id, category_id, value, question, answer)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET category_id = EXCLUDED.category_id,
		    value = EXCLUDED.value,
		    question = EXCLUDED.question,
		    answer = EXCLUDED.answer
	`

	countCategoriesQuery = `SELECT COUNT(*) FROM categories`

	categoryIDRangeQuery = `SELECT MIN(id), MAX(id) FROM categories`
)

// FetchCategory implements generation.ClueSource.FetchCategory.
// A category that is not mirrored is returned with no clues, so the board
// generator discards it and draws another identifier.
func (s *PostgresClueStore) FetchCategory(ctx context.Context, id int) (domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category := domain.Category{ID: id}
	err := s.db.QueryRowContext(ctx, selectCategoryQuery, id).Scan(&category.ID, &category.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not mirrored", slog.Int("category_id", id))
			return domain.Category{ID: id}, nil
		}
		log.Error("failed to get category by ID",
			slog.String("error", err.Error()),
			slog.Int("category_id", id))
		return domain.Category{}, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx, selectCategoryCluesQuery, id)
	if err != nil {
		log.Error("failed to query category clues",
			slog.String("error", err.Error()),
			slog.Int("category_id", id))
		return domain.Category{}, MapError(err)
	}

	clues, err := s.scanClues(log, rows)
	if err != nil {
		return domain.Category{}, err
	}
	category.Clues = clues

	log.Debug("category retrieved",
		slog.Int("category_id", id),
		slog.Int("clue_count", len(clues)))
	return category, nil
}

// FetchRandomClues implements generation.ClueSource.FetchRandomClues.
func (s *PostgresClueStore) FetchRandomClues(ctx context.Context, count int) ([]domain.Clue, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if count <= 0 {
		return []domain.Clue{}, nil
	}

	rows, err := s.db.QueryContext(ctx, selectRandomCluesQuery, count)
	if err != nil {
		log.Error("failed to query random clues",
			slog.String("error", err.Error()),
			slog.Int("count", count))
		return nil, MapError(err)
	}

	clues, err := s.scanClues(log, rows)
	if err != nil {
		return nil, err
	}

	log.Debug("random clues retrieved",
		slog.Int("requested", count),
		slog.Int("returned", len(clues)))
	return clues, nil
}

// SaveCategory implements store.ClueStore.SaveCategory.
// When the store wraps a *sql.DB the writes run in their own transaction;
// otherwise they join the caller's transaction.
func (s *PostgresClueStore) SaveCategory(ctx context.Context, category domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if category.ID <= 0 {
		return fmt.Errorf("%w: category id must be positive, got %d", store.ErrInvalidEntity, category.ID)
	}

	write := func(ctx context.Context, db store.DBTX) error {
		return saveCategory(ctx, db, category)
	}

	var err error
	if sqlDB, ok := s.db.(*sql.DB); ok {
		err = store.RunInTransaction(ctx, sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return write(ctx, tx)
		})
	} else {
		err = write(ctx, s.db)
	}
	if err != nil {
		log.Error("failed to save category",
			slog.String("error", err.Error()),
			slog.Int("category_id", category.ID))
		return err
	}

	log.Info("category saved",
		slog.Int("category_id", category.ID),
		slog.Int("clue_count", len(category.Clues)))
	return nil
}

func saveCategory(ctx context.Context, db store.DBTX, category domain.Category) error {
	if _, err := db.ExecContext(ctx, upsertCategoryQuery, category.ID, category.Title); err != nil {
		return MapError(err)
	}

	if _, err := db.ExecContext(ctx, deleteCategoryCluesQuery, category.ID); err != nil {
		return MapError(err)
	}

	for _, clue := range category.Clues {
		var value sql.NullInt64
		if clue.Value != nil {
			value = sql.NullInt64{Int64: int64(*clue.Value), Valid: true}
		}
		_, err := db.ExecContext(ctx, upsertClueQuery,
			clue.ID,
			category.ID,
			value,
			clue.Question,
			clue.Answer,
		)
		if err != nil {
			return fmt.Errorf("clue %d: %w", clue.ID, MapError(err))
		}
	}

	return nil
}

// CountCategories implements store.ClueStore.CountCategories.
func (s *PostgresClueStore) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, countCategoriesQuery).Scan(&count); err != nil {
		s.logger.Error("failed to count categories", slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return count, nil
}

// CategoryIDRange implements store.ClueStore.CategoryIDRange.
func (s *PostgresClueStore) CategoryIDRange(ctx context.Context) (int, int, error) {
	var lo, hi sql.NullInt64
	if err := s.db.QueryRowContext(ctx, categoryIDRangeQuery).Scan(&lo, &hi); err != nil {
		s.logger.Error("failed to read category id range", slog.String("error", err.Error()))
		return 0, 0, MapError(err)
	}
	if !lo.Valid || !hi.Valid {
		return 0, 0, store.ErrCategoryNotFound
	}
	return int(lo.Int64), int(hi.Int64), nil
}

func (s *PostgresClueStore) scanClues(log *slog.Logger, rows *sql.Rows) ([]domain.Clue, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	clues := []domain.Clue{}
	for rows.Next() {
		var clue domain.Clue
		var value sql.NullInt64
		if err := rows.Scan(&clue.ID, &clue.CategoryID, &value, &clue.Question, &clue.Answer); err != nil {
			log.Error("failed to scan clue row", slog.String("error", err.Error()))
			return nil, err
		}
		if value.Valid {
			clue.Value = domain.IntPtr(int(value.Int64))
		}
		clues = append(clues, clue)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return clues, nil
}
