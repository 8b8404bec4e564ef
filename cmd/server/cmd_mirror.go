package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/phrazzld/trivia-board/internal/generation"
	"github.com/phrazzld/trivia-board/internal/platform/postgres"
	"github.com/phrazzld/trivia-board/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxMirrorRounds bounds how many random batches are requested per wanted
// category before the mirror gives up.
const maxMirrorRounds = 5

// errMirrorIncomplete is returned when fewer categories than requested could
// be copied.
var errMirrorIncomplete = errors.New("mirror incomplete")

func newMirrorCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "mirror COUNT",
		Short: "Copy random jService categories into the Postgres mirror",
		Long: `Copy COUNT categories chosen from random jService clues into the Postgres
mirror, so games can later be generated with TRIVIA_SOURCE_KIND=postgres.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count <= 0 {
				return fmt.Errorf("COUNT must be a positive integer, got %q", args[0])
			}
			if concurrency <= 0 {
				return fmt.Errorf("--concurrency must be positive, got %d", concurrency)
			}

			cfg, l, err := initializeApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			db, err := setupAppDatabase(cfg, l)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			client, err := newJServiceClient(cfg.Source, l)
			if err != nil {
				return err
			}

			saved, err := mirrorCategories(ctx, client, postgres.NewPostgresClueStore(db, l), count, concurrency, l)
			fmt.Fprintf(cmd.OutOrStdout(), "mirrored %d of %d categories\n", saved, count)
			return err
		},
	}

	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "Number of categories fetched in parallel")
	return cmd
}

// mirrorCategories copies count distinct categories from src into dst. The
// categories are discovered through random clues, so the mirror follows the
// upstream distribution. Categories without clues are skipped. It returns the
// number of categories saved.
func mirrorCategories(
	ctx context.Context,
	src generation.ClueSource,
	dst store.ClueStore,
	count int,
	concurrency int,
	logger *slog.Logger,
) (int, error) {
	logger = logger.With(slog.String("component", "mirror"))
	seen := generation.NewUsedIDs()
	saved := 0

	for round := 0; saved < count && round < count*maxMirrorRounds; round++ {
		need := count - saved
		clues, err := src.FetchRandomClues(ctx, need)
		if err != nil {
			return saved, fmt.Errorf("%w: random clues: %w", generation.ErrUpstreamFetch, err)
		}

		var ids []int
		for _, clue := range clues {
			if clue.CategoryID <= 0 || seen.Contains(clue.CategoryID) {
				continue
			}
			seen.Add(clue.CategoryID)
			ids = append(ids, clue.CategoryID)
			if len(ids) == need {
				break
			}
		}
		if len(ids) == 0 {
			continue
		}

		var mu sync.Mutex
		copied := 0

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for _, id := range ids {
			id := id
			g.Go(func() error {
				category, err := src.FetchCategory(gctx, id)
				if err != nil {
					return fmt.Errorf("%w: category %d: %w", generation.ErrUpstreamFetch, id, err)
				}
				if len(category.Clues) == 0 {
					logger.DebugContext(gctx, "skipping category without clues", "category_id", id)
					return nil
				}
				if err := dst.SaveCategory(gctx, category); err != nil {
					return fmt.Errorf("saving category %d: %w", id, err)
				}

				mu.Lock()
				copied++
				mu.Unlock()
				return nil
			})
		}

		err = g.Wait()
		saved += copied
		if err != nil {
			return saved, err
		}

		logger.InfoContext(ctx, "mirror progress", "saved", saved, "wanted", count)
	}

	if saved < count {
		return saved, fmt.Errorf("%w: saved %d of %d categories", errMirrorIncomplete, saved, count)
	}
	return saved, nil
}
