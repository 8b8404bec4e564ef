// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the server, clue source, database and board settings while keeping
// configuration details separate from board generation.
package config
