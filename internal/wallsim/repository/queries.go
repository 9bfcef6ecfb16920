package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
)

func (r *SQLRepository) FirstProgressDate(ctx context.Context, profileID *int64) (time.Time, bool, error) {
	return r.boundaryDate(ctx, profileID, goqu.MIN(progress_date))
}

func (r *SQLRepository) lastProgressDate(ctx context.Context, profileID *int64) (time.Time, bool, error) {
	return r.boundaryDate(ctx, profileID, goqu.MAX(progress_date))
}

func (r *SQLRepository) boundaryDate(ctx context.Context, profileID *int64, selection interface{}) (time.Time, bool, error) {
	ds := r.goquDb.From(progressTable)
	if profileID != nil {
		ds = ds.
			Join(sectionTable, goqu.On(progress_sectionId.Eq(section_id))).
			Where(section_profileId.Eq(*profileID))
	}

	var stored sql.NullString
	found, err := ds.Select(selection).ScanValContext(ctx, &stored)
	if err != nil {
		return time.Time{}, false, errors.WithStack(err)
	}
	if !found || !stored.Valid {
		return time.Time{}, false, nil
	}
	date, err := parseStoredDate(stored.String)
	if err != nil {
		return time.Time{}, false, err
	}
	return date, true, nil
}

func (r *SQLRepository) IceUsageForDay(ctx context.Context, profileID int64, day int) (*DayUsage, error) {
	usage := &DayUsage{
		TotalFeet: decimal.Zero,
		TotalIce:  decimal.Zero,
		Sections:  []SectionUsage{},
	}

	first, ok, err := r.FirstProgressDate(ctx, &profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return usage, nil
	}
	usage.Date = first.AddDate(0, 0, day-1)

	var rows []sectionUsageRow
	err = r.goquDb.From(progressTable).
		Join(sectionTable, goqu.On(progress_sectionId.Eq(section_id))).
		Where(
			section_profileId.Eq(profileID),
			progress_date.Eq(formatDate(usage.Date)),
		).
		Select(section_sectionName, progress_feetBuilt, progress_ice).
		Order(section_id.Asc()).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, row := range rows {
		usage.TotalFeet = usage.TotalFeet.Add(row.FeetBuilt)
		usage.TotalIce = usage.TotalIce.Add(row.Ice)
		usage.Sections = append(usage.Sections, SectionUsage{
			SectionName: row.SectionName,
			FeetBuilt:   row.FeetBuilt,
			Ice:         row.Ice,
		})
	}
	return usage, nil
}

func (r *SQLRepository) CostOverview(ctx context.Context, profileID *int64, day *int) (decimal.Decimal, error) {
	first, ok, err := r.FirstProgressDate(ctx, profileID)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, nil
	}

	ds := r.goquDb.From(progressTable)
	if profileID != nil {
		ds = ds.
			Join(sectionTable, goqu.On(progress_sectionId.Eq(section_id))).
			Where(section_profileId.Eq(*profileID))
	}
	if day != nil {
		endDate := first.AddDate(0, 0, *day-1)
		ds = ds.Where(progress_date.Lte(formatDate(endDate)))
	}

	var costs []decimal.Decimal
	if err := ds.Select(progress_cost).ScanValsContext(ctx, &costs); err != nil {
		return decimal.Zero, errors.WithStack(err)
	}

	total := decimal.Zero
	for _, cost := range costs {
		total = total.Add(cost)
	}
	return total, nil
}

func (r *SQLRepository) TotalDays(ctx context.Context, profileID *int64) (int, error) {
	first, ok, err := r.FirstProgressDate(ctx, profileID)
	if err != nil || !ok {
		return 0, err
	}
	last, ok, err := r.lastProgressDate(ctx, profileID)
	if err != nil || !ok {
		return 0, err
	}
	return int(last.Sub(first).Hours()/24) + 1, nil
}

func (r *SQLRepository) AggregatesForProfile(ctx context.Context, profileID int64, start time.Time, end time.Time) (*model.ProfileCost, error) {
	var rows []progressAmountsRow
	err := r.goquDb.From(progressTable).
		Join(sectionTable, goqu.On(progress_sectionId.Eq(section_id))).
		Where(
			section_profileId.Eq(profileID),
			progress_date.Gte(formatDate(start)),
			progress_date.Lte(formatDate(end)),
		).
		Select(progress_feetBuilt, progress_ice, progress_cost).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, errors.Wrapf(err, "aggregating progress for profile %d", profileID)
	}

	cost := &model.ProfileCost{
		ProfileID: profileID,
		TotalFeet: decimal.Zero,
		TotalIce:  decimal.Zero,
		TotalCost: decimal.Zero,
	}
	for _, row := range rows {
		cost.TotalFeet = cost.TotalFeet.Add(row.FeetBuilt)
		cost.TotalIce = cost.TotalIce.Add(row.Ice)
		cost.TotalCost = cost.TotalCost.Add(row.Cost)
	}
	return cost, nil
}

func (r *SQLRepository) TotalsForProfiles(ctx context.Context, profileIDs []int64) (decimal.Decimal, decimal.Decimal, error) {
	ice := decimal.Zero
	cost := decimal.Zero
	if len(profileIDs) == 0 {
		return ice, cost, nil
	}

	var rows []progressAmountsRow
	err := r.goquDb.From(progressTable).
		Join(sectionTable, goqu.On(progress_sectionId.Eq(section_id))).
		Where(section_profileId.In(profileIDs)).
		Select(progress_feetBuilt, progress_ice, progress_cost).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return ice, cost, errors.WithStack(err)
	}

	for _, row := range rows {
		ice = ice.Add(row.Ice)
		cost = cost.Add(row.Cost)
	}
	return ice, cost, nil
}

func (r *SQLRepository) SectionHeights(ctx context.Context, profileID int64) (map[string]int, error) {
	var rows []sectionHeightRow
	err := r.goquDb.From(sectionTable).
		Where(section_profileId.Eq(profileID)).
		Select(section_sectionName, section_currentHeight).
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	heights := make(map[string]int, len(rows))
	for _, row := range rows {
		heights[row.SectionName] = row.CurrentHeight
	}
	return heights, nil
}

func (r *SQLRepository) ProfileExists(ctx context.Context, profileID int64) (bool, error) {
	var row profileRow
	found, err := r.goquDb.From(profileTable).
		Where(profile_id.Eq(profileID)).
		Select(profile_id, profile_name, profile_teamLead).
		ScanStructContext(ctx, &row)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return found, nil
}
