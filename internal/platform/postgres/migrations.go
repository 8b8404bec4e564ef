package postgres

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose SQL files.
const MigrationsDir = "migrations"

// Migrations holds the goose SQL migrations for the clue mirror schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
