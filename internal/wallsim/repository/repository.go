// Package repository persists profiles, wall sections and daily progress
// records, and serves the reporting queries over them. Progress records are
// append-only facts; section heights are the only mutable state.
package repository

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
)

// DayUsage is the per-day ice report for one profile: totals plus a
// per-section breakdown.
type DayUsage struct {
	Date      time.Time
	TotalFeet decimal.Decimal
	TotalIce  decimal.Decimal
	Sections  []SectionUsage
}

type SectionUsage struct {
	SectionName string
	FeetBuilt   decimal.Decimal
	Ice         decimal.Decimal
}

type Repository interface {
	CreateProfile(ctx context.Context, name string, teamLead string) (int64, error)
	CreateSection(ctx context.Context, profileID int64, sectionName string, initialHeight int) (int64, error)
	UpdateSectionHeight(ctx context.Context, sectionID int64, height int) error
	// SaveDayBatch persists one day's progress records in a single
	// transaction. All-or-nothing: a failed day leaves no partial rows.
	SaveDayBatch(ctx context.Context, records []*model.ProgressRecord) error

	// FirstProgressDate returns the date of the earliest progress record,
	// scoped to one profile when profileID is non-nil. ok is false when no
	// records exist. Day N for a profile is FirstProgressDate + (N-1) days.
	FirstProgressDate(ctx context.Context, profileID *int64) (date time.Time, ok bool, err error)
	IceUsageForDay(ctx context.Context, profileID int64, day int) (*DayUsage, error)
	CostOverview(ctx context.Context, profileID *int64, day *int) (decimal.Decimal, error)
	TotalDays(ctx context.Context, profileID *int64) (int, error)
	AggregatesForProfile(ctx context.Context, profileID int64, start time.Time, end time.Time) (*model.ProfileCost, error)
	TotalsForProfiles(ctx context.Context, profileIDs []int64) (ice decimal.Decimal, cost decimal.Decimal, err error)
	ProfileExists(ctx context.Context, profileID int64) (bool, error)
	// SectionHeights returns current heights by section name for one profile.
	SectionHeights(ctx context.Context, profileID int64) (map[string]int, error)
}

// SQLRepository implements Repository over database/sql via goqu. It assumes a
// single writer (the simulation driver), which is what lets it allocate row
// ids from in-process counters and stay portable across sqlite and postgres.
type SQLRepository struct {
	db     *sql.DB
	goquDb *goqu.Database

	mu            sync.Mutex
	nextProfileId int64
	nextSectionId int64
}

// NewSQLRepository wraps db with the given goqu dialect ("sqlite3" or
// "postgres") and seeds the id counters from the existing rows.
func NewSQLRepository(ctx context.Context, db *sql.DB, dialect string) (*SQLRepository, error) {
	r := &SQLRepository{
		db:     db,
		goquDb: goqu.New(dialect, db),
	}

	var err error
	if r.nextProfileId, err = r.maxId(ctx, "profiles"); err != nil {
		return nil, err
	}
	if r.nextSectionId, err = r.maxId(ctx, "wall_sections"); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SQLRepository) maxId(ctx context.Context, table string) (int64, error) {
	var max sql.NullInt64
	row := r.db.QueryRowContext(ctx, "SELECT MAX(id) FROM "+table)
	if err := row.Scan(&max); err != nil {
		return 0, errors.WithStack(err)
	}
	return max.Int64, nil
}

func (r *SQLRepository) newProfileId() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextProfileId++
	return r.nextProfileId
}

func (r *SQLRepository) newSectionId() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSectionId++
	return r.nextSectionId
}

const dateFormat = "2006-01-02"

// Dates are stored as ISO-8601 TEXT so lexicographic comparison matches
// chronological order on both supported dialects.
func formatDate(t time.Time) string {
	return t.Format(dateFormat)
}

func parseStoredDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	return t, errors.WithStack(err)
}
