package jservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/trivia-board/internal/domain"
	"github.com/phrazzld/trivia-board/internal/generation"
	"golang.org/x/exp/rand"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 4 << 20

// Config holds the settings for a jService client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Client implements generation.ClueSource over HTTP.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

var _ generation.ClueSource = (*Client)(nil)

// NewClient creates a jService client. A nil httpClient is replaced by one
// using cfg.Timeout; a nil logger falls back to slog.Default().
func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base url %q", ErrInvalidConfig, cfg.BaseURL)
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: max retries must not be negative", ErrInvalidConfig)
	}
	if cfg.RetryDelay < 0 {
		return nil, fmt.Errorf("%w: retry delay must not be negative", ErrInvalidConfig)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger.With(slog.String("component", "jservice_client")),
	}, nil
}

// FetchCategory retrieves a category and all of its clues.
func (c *Client) FetchCategory(ctx context.Context, id int) (domain.Category, error) {
	query := url.Values{}
	query.Set("id", strconv.Itoa(id))

	var payload categoryResponse
	if err := c.getJSON(ctx, "/api/category", query, &payload); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return domain.Category{}, fmt.Errorf("%w: id %d", err, id)
		}
		return domain.Category{}, err
	}
	if payload.ID == 0 {
		return domain.Category{}, fmt.Errorf("%w: id %d", ErrCategoryNotFound, id)
	}

	return payload.toDomain(), nil
}

// FetchRandomClues retrieves count clues chosen by the upstream service.
func (c *Client) FetchRandomClues(ctx context.Context, count int) ([]domain.Clue, error) {
	if count <= 0 {
		return nil, nil
	}

	query := url.Values{}
	query.Set("count", strconv.Itoa(count))

	var payload []clueResponse
	if err := c.getJSON(ctx, "/api/random", query, &payload); err != nil {
		return nil, err
	}

	clues := make([]domain.Clue, 0, len(payload))
	for _, clue := range payload {
		clues = append(clues, clue.toDomain())
	}
	return clues, nil
}

// getJSON issues a GET request with retry and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = query.Encode()
	target := endpoint.String()

	attempt := 0
	for {
		attemptNum := attempt + 1
		c.logger.DebugContext(ctx, "calling jservice",
			"path", path,
			"attempt", attemptNum,
			"max_attempts", c.maxRetries+1)

		body, transient, err := c.do(ctx, target)
		if err == nil {
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, path, err)
			}
			return nil
		}

		if !transient {
			c.logger.WarnContext(ctx, "permanent jservice error, not retrying",
				"path", path,
				"error", err)
			return err
		}

		if attempt >= c.maxRetries {
			c.logger.WarnContext(ctx, "maximum retry attempts reached",
				"path", path,
				"max_retries", c.maxRetries,
				"error", err)
			return fmt.Errorf("%w: exceeded maximum retry attempts (%d): %w",
				ErrTransientFailure, c.maxRetries, err)
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoff := float64(c.retryDelay) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rand.Float64()*0.5))

		c.logger.InfoContext(ctx, "retrying jservice call after delay",
			"path", path,
			"attempt", attemptNum,
			"delay", delay,
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrTransientFailure, ctx.Err())
		}

		attempt++
	}
}

// do performs one request. The boolean result reports whether a failure is
// worth retrying.
func (c *Client) do(ctx context.Context, target string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrTransientFailure, ctx.Err())
		}
		return nil, true, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, true, fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, false, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrCategoryNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}
