// Package main implements the trivia-board command, which generates trivia
// game boards from jService data, serves them over HTTP, and maintains an
// optional Postgres mirror of the upstream clues.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/trivia-board/internal/config"
	"github.com/phrazzld/trivia-board/internal/platform/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trivia-board",
		Short: "Generate trivia game boards from jService clues",
		Long: `trivia-board assembles trivia games (a single board, a double board and a
bonus clue) from categories fetched from jService or from a Postgres mirror.

Configuration is read from config.yaml and TRIVIA_* environment variables.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newMirrorCmd())
	rootCmd.AddCommand(newMigrateCmd())

	return rootCmd
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"source", cfg.Source.Kind)
	if cfg.Database.URL != "" {
		l.Debug("database configuration", "url", maskDatabaseURL(cfg.Database.URL))
	}

	return cfg, l, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve generated games over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := initializeApp()
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), cfg, l)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return app.Run(cmd.Context())
		},
	}
}
