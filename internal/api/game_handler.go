package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/trivia-board/internal/api/shared"
	"github.com/phrazzld/trivia-board/internal/domain"
	"github.com/phrazzld/trivia-board/internal/platform/logger"
)

// GameGenerator produces complete games. It is satisfied by
// *generation.GameAssembler.
type GameGenerator interface {
	Generate(ctx context.Context) (*domain.Game, error)
}

// GameHandler handles game-related HTTP requests.
type GameHandler struct {
	generator GameGenerator
	logger    *slog.Logger
}

// NewGameHandler creates a new GameHandler.
// If logger is nil, a default logger will be used.
func NewGameHandler(generator GameGenerator, logger *slog.Logger) *GameHandler {
	if generator == nil {
		panic("generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GameHandler{
		generator: generator,
		logger:    logger.With(slog.String("component", "game_handler")),
	}
}

// CreateGame handles POST /api/games requests.
// Every call generates a fresh game; nothing is stored.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	game, err := h.generator.Generate(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Info("game created",
		slog.String("game_id", game.ID.String()),
		slog.Int("single_categories", len(game.SingleBoard().Categories())),
		slog.Int("double_categories", len(game.DoubleBoard().Categories())))

	shared.RespondWithJSON(w, r, http.StatusCreated, GameToResponse(game))
}
