// Package schema embeds the goose migrations for the teambuilder database.
package schema

import "embed"

// Migrations holds the SQL files under migrations/
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that goose reads
const MigrationsDir = "migrations"
