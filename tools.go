//go:build tools

package tools

// Tracks the goose CLI in go.mod so `go run github.com/pressly/goose/v3/cmd/goose`
// can create new migration files under internal/database/schema.
import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
