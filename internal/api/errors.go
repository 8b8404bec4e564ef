package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/trivia-board/internal/generation"
)

// MapErrorToStatusCode maps generation errors to HTTP status codes.
// This prevents leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrUpstreamFetch):
		return http.StatusBadGateway

	case errors.Is(err, generation.ErrCategoriesExhausted):
		return http.StatusServiceUnavailable

	// Board shapes come from server configuration, not from the request.
	case errors.Is(err, generation.ErrInvalidConfig),
		errors.Is(err, generation.ErrInvariantViolation):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, context.DeadlineExceeded):
		return "Game generation timed out"

	case errors.Is(err, context.Canceled):
		return "Game generation was cancelled"

	case errors.Is(err, generation.ErrUpstreamFetch):
		return "Trivia data source is unavailable"

	case errors.Is(err, generation.ErrCategoriesExhausted):
		return "No unused categories remain"

	default:
		return "Failed to generate game"
	}
}
