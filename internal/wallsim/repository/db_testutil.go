package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// WithTestRepository spins up an in-memory SQLite database, migrates the wall
// schema and hands a repository to the action callback. Used by tests
// throughout the module.
func WithTestRepository(action func(r *SQLRepository) error) error {
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return errors.WithStack(err)
	}
	defer db.Close()

	// Every pooled connection would otherwise see its own ":memory:" database.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		return err
	}

	r, err := NewSQLRepository(ctx, db, "sqlite3")
	if err != nil {
		return err
	}
	return action(r)
}
