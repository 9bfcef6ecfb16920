package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// Decimal columns are stored as TEXT and summed in Go so values stay exact;
// SQLite would otherwise coerce NUMERIC sums to binary floating point.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id         INTEGER PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		team_lead  TEXT NOT NULL,
		created_at TEXT NOT NULL,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS wall_sections (
		id             INTEGER PRIMARY KEY,
		profile_id     INTEGER NOT NULL REFERENCES profiles (id),
		section_name   TEXT NOT NULL,
		initial_height INTEGER NOT NULL,
		current_height INTEGER NOT NULL,
		created_at     TEXT NOT NULL,
		UNIQUE (profile_id, section_name)
	)`,
	`CREATE TABLE IF NOT EXISTS daily_progress (
		wall_section_id   INTEGER NOT NULL REFERENCES wall_sections (id),
		date              TEXT NOT NULL,
		feet_built        TEXT NOT NULL,
		ice_cubic_yards   TEXT NOT NULL,
		cost_gold_dragons TEXT NOT NULL,
		notes             TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (wall_section_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_progress_date ON daily_progress (date)`,
	`CREATE INDEX IF NOT EXISTS idx_wall_sections_profile ON wall_sections (profile_id)`,
}

// Migrate creates the wall schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, statement := range schema {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
