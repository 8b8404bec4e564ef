// Package jservice implements the generation.ClueSource port against the
// jService trivia HTTP API.
//
// The client fetches categories by identifier from /api/category and random
// clues from /api/random, translating the upstream JSON into domain types.
// Transient failures (network errors, 5xx and 429 responses) are retried with
// exponential backoff and jitter; permanent failures are returned immediately.
package jservice
