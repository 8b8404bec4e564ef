package jservice

import "errors"

// Error definitions for the jservice package.
var (
	// ErrCategoryNotFound is returned when the upstream API has no category
	// with the requested identifier.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrUnexpectedStatus is returned for non-retryable HTTP status codes.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrInvalidResponse is returned when the response body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response from jservice")

	// ErrTransientFailure is returned when retries are exhausted or cancelled.
	ErrTransientFailure = errors.New("transient failure calling jservice")

	// ErrInvalidConfig is returned by NewClient for unusable settings.
	ErrInvalidConfig = errors.New("invalid jservice client configuration")
)
