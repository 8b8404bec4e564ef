package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/trivia-board/internal/api"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by the game command.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newGameCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "game",
		Short: "Generate one game and print it",
		Long: `Generate a single game using the configured clue source and board layout,
print it to stdout and exit. Set TRIVIA_BOARD_SEED for a reproducible draw.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatJSON, formatYAML)
			}

			cfg, l, err := initializeApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newApplication(ctx, cfg, l)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer app.cleanup()

			return generateAndWrite(ctx, cmd.OutOrStdout(), app.games, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format: json or yaml")
	return cmd
}

// generateAndWrite generates one game and writes it in the given format.
func generateAndWrite(ctx context.Context, w io.Writer, generator api.GameGenerator, format string) error {
	game, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate game: %w", err)
	}

	resp := api.GameToResponse(game)

	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode game: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode game: %w", err)
		}
		return nil
	}
}
