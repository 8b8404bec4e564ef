// Package postgres provides the PostgreSQL implementation of the clue mirror
// defined in the internal/store package.
//
// The mirror holds categories and clues copied from the upstream trivia
// service so boards can be generated offline. The schema is managed by goose
// migrations embedded in this package.
package postgres
