package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/trivia-board/internal/config"
	"github.com/phrazzld/trivia-board/internal/generation"
	"github.com/phrazzld/trivia-board/internal/platform/jservice"
	"github.com/phrazzld/trivia-board/internal/platform/postgres"
)

// application holds the shared dependencies and ensures proper cleanup on
// shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil unless the clue source is the Postgres mirror.
	db *sql.DB

	source generation.ClueSource
	games  *generation.GameAssembler
}

// newApplication resolves the configured clue source and builds the game
// assembler on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	opts := boardOptions(cfg.Board)

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := setupAppDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}

		mirror := postgres.NewPostgresClueStore(db, logger)
		lo, hi, err := mirror.CategoryIDRange(ctx)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("clue mirror is empty, run the mirror command first: %w", err)
		}
		opts.CategoryIDMin, opts.CategoryIDMax = lo, hi+1
		logger.Info("using postgres clue mirror",
			"category_id_min", opts.CategoryIDMin,
			"category_id_max", opts.CategoryIDMax)

		app, err := newApplicationWithSource(cfg, logger, mirror, opts)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		app.db = db
		return app, nil

	default:
		client, err := newJServiceClient(cfg.Source, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using jservice clue source", "base_url", cfg.Source.BaseURL)
		return newApplicationWithSource(cfg, logger, client, opts)
	}
}

// newApplicationWithSource builds an application around an already resolved
// clue source.
func newApplicationWithSource(
	cfg *config.Config,
	logger *slog.Logger,
	source generation.ClueSource,
	opts generation.Options,
) (*application, error) {
	seed := boardSeed(cfg.Board)
	games, err := generation.NewGameAssembler(source, generation.NewRandom(seed), opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create game assembler: %w", err)
	}
	logger.Debug("game assembler initialized", "seed", seed)

	return &application{
		config: cfg,
		logger: logger,
		source: source,
		games:  games,
	}, nil
}

// newJServiceClient creates the HTTP clue source from configuration.
func newJServiceClient(cfg config.SourceConfig, logger *slog.Logger) (*jservice.Client, error) {
	client, err := jservice.NewClient(jservice.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create jservice client: %w", err)
	}
	return client, nil
}

// boardOptions maps the board configuration onto generation options.
func boardOptions(cfg config.BoardConfig) generation.Options {
	return generation.Options{
		CategoryIDMin: cfg.CategoryIDMin,
		CategoryIDMax: cfg.CategoryIDMax,
		Single: generation.BoardShape{
			Categories:   cfg.SingleCategories,
			DailyDoubles: cfg.SingleDailyDoubles,
		},
		Double: generation.BoardShape{
			Categories:   cfg.DoubleCategories,
			DailyDoubles: cfg.DoubleDailyDoubles,
		},
	}
}

// boardSeed returns the configured seed, or a time-based one when unset.
func boardSeed(cfg config.BoardConfig) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
