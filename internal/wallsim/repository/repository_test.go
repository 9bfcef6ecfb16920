package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
)

var (
	feetOne = decimal.NewFromInt(1)
	iceOne  = decimal.NewFromInt(195)
	costOne = decimal.NewFromInt(370500)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(sectionID int64, day time.Time) *model.ProgressRecord {
	return &model.ProgressRecord{
		SectionID: sectionID,
		Date:      day,
		FeetBuilt: feetOne,
		Ice:       iceOne,
		Cost:      costOne,
		Notes:     "Simulated construction",
	}
}

func TestCreateProfileAndSections(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		profileID, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), profileID)

		sectionID, err := r.CreateSection(ctx, profileID, "Section 1", 21)
		require.NoError(t, err)
		assert.Equal(t, int64(1), sectionID)

		exists, err := r.ProfileExists(ctx, profileID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = r.ProfileExists(ctx, 99)
		require.NoError(t, err)
		assert.False(t, exists)

		// Duplicate section name within a profile violates the schema.
		_, err = r.CreateSection(ctx, profileID, "Section 1", 5)
		assert.Error(t, err)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateSectionHeight(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		profileID, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		sectionID, err := r.CreateSection(ctx, profileID, "Section 1", 21)
		require.NoError(t, err)

		require.NoError(t, r.UpdateSectionHeight(ctx, sectionID, 22))
		assert.Error(t, r.UpdateSectionHeight(ctx, 99, 22))
		return nil
	})
	require.NoError(t, err)
}

func TestSaveDayBatchIsAtomic(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		profileID, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		s1, err := r.CreateSection(ctx, profileID, "Section 1", 21)
		require.NoError(t, err)
		s2, err := r.CreateSection(ctx, profileID, "Section 2", 25)
		require.NoError(t, err)

		day1 := date(2025, 10, 20)
		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, day1), record(s2, day1)}))

		// A batch containing a (section, date) duplicate must fail and leave
		// nothing behind.
		day2 := date(2025, 10, 21)
		err = r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, day2), record(s2, day1)})
		require.Error(t, err)

		total, err := r.TotalDays(ctx, &profileID)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		return nil
	})
	require.NoError(t, err)
}

func TestSaveDayBatchEmpty(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		return r.SaveDayBatch(context.Background(), nil)
	})
	require.NoError(t, err)
}

func TestFirstProgressDate(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		_, ok, err := r.FirstProgressDate(ctx, nil)
		require.NoError(t, err)
		assert.False(t, ok)

		p1, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		p2, err := r.CreateProfile(ctx, "Profile 2", "Team Lead 2")
		require.NoError(t, err)
		s1, err := r.CreateSection(ctx, p1, "Section 1", 21)
		require.NoError(t, err)
		s2, err := r.CreateSection(ctx, p2, "Section 1", 25)
		require.NoError(t, err)

		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, date(2025, 10, 22))}))
		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s2, date(2025, 10, 20))}))

		// Global anchor is the earliest record overall; per-profile anchors
		// are scoped to that profile's sections.
		first, ok, err := r.FirstProgressDate(ctx, nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, 10, 20), first)

		first, ok, err = r.FirstProgressDate(ctx, &p1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, date(2025, 10, 22), first)
		return nil
	})
	require.NoError(t, err)
}

func TestIceUsageForDay(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		profileID, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		s1, err := r.CreateSection(ctx, profileID, "Section 1", 21)
		require.NoError(t, err)
		s2, err := r.CreateSection(ctx, profileID, "Section 2", 25)
		require.NoError(t, err)

		day1 := date(2025, 10, 20)
		day2 := date(2025, 10, 21)
		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, day1), record(s2, day1)}))
		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, day2)}))

		usage, err := r.IceUsageForDay(ctx, profileID, 1)
		require.NoError(t, err)
		assert.Equal(t, day1, usage.Date)
		assert.True(t, usage.TotalFeet.Equal(decimal.NewFromInt(2)), "got %s", usage.TotalFeet)
		assert.True(t, usage.TotalIce.Equal(decimal.NewFromInt(390)), "got %s", usage.TotalIce)
		require.Len(t, usage.Sections, 2)
		assert.Equal(t, "Section 1", usage.Sections[0].SectionName)
		assert.Equal(t, "Section 2", usage.Sections[1].SectionName)

		usage, err = r.IceUsageForDay(ctx, profileID, 2)
		require.NoError(t, err)
		require.Len(t, usage.Sections, 1)
		assert.True(t, usage.TotalIce.Equal(iceOne))

		// Day without records.
		usage, err = r.IceUsageForDay(ctx, profileID, 10)
		require.NoError(t, err)
		assert.Empty(t, usage.Sections)
		assert.True(t, usage.TotalIce.IsZero())
		return nil
	})
	require.NoError(t, err)
}

func TestIceUsageForDayNoData(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()
		profileID, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)

		usage, err := r.IceUsageForDay(ctx, profileID, 1)
		require.NoError(t, err)
		assert.True(t, usage.TotalFeet.IsZero())
		assert.True(t, usage.TotalIce.IsZero())
		assert.Empty(t, usage.Sections)
		return nil
	})
	require.NoError(t, err)
}

func TestCostOverview(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		p1, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		p2, err := r.CreateProfile(ctx, "Profile 2", "Team Lead 2")
		require.NoError(t, err)
		s1, err := r.CreateSection(ctx, p1, "Section 1", 21)
		require.NoError(t, err)
		s2, err := r.CreateSection(ctx, p2, "Section 1", 25)
		require.NoError(t, err)

		day1 := date(2025, 10, 20)
		day2 := date(2025, 10, 21)
		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, day1), record(s2, day1)}))
		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, day2)}))

		// All profiles, all days.
		total, err := r.CostOverview(ctx, nil, nil)
		require.NoError(t, err)
		assert.True(t, total.Equal(costOne.Mul(decimal.NewFromInt(3))), "got %s", total)

		// One profile, all days.
		total, err = r.CostOverview(ctx, &p2, nil)
		require.NoError(t, err)
		assert.True(t, total.Equal(costOne))

		// One profile, capped at day 1.
		day := 1
		total, err = r.CostOverview(ctx, &p1, &day)
		require.NoError(t, err)
		assert.True(t, total.Equal(costOne))

		// All profiles, capped at day 1.
		total, err = r.CostOverview(ctx, nil, &day)
		require.NoError(t, err)
		assert.True(t, total.Equal(costOne.Mul(decimal.NewFromInt(2))))

		// No data at all.
		missing := int64(99)
		empty, err := r.CostOverview(ctx, &missing, nil)
		require.NoError(t, err)
		assert.True(t, empty.IsZero())
		return nil
	})
	require.NoError(t, err)
}

func TestTotalDays(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		total, err := r.TotalDays(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, total)

		profileID, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		sectionID, err := r.CreateSection(ctx, profileID, "Section 1", 21)
		require.NoError(t, err)

		for _, d := range []time.Time{date(2025, 10, 20), date(2025, 10, 21), date(2025, 10, 22)} {
			require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(sectionID, d)}))
		}

		total, err = r.TotalDays(ctx, &profileID)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		return nil
	})
	require.NoError(t, err)
}

func TestAggregatesForProfile(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		profileID, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		sectionID, err := r.CreateSection(ctx, profileID, "Section 1", 20)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			d := date(2025, 10, 20).AddDate(0, 0, i)
			require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(sectionID, d)}))
		}

		cost, err := r.AggregatesForProfile(ctx, profileID, date(2025, 10, 20), date(2025, 10, 29))
		require.NoError(t, err)
		assert.True(t, cost.TotalFeet.Equal(decimal.NewFromInt(10)), "got %s", cost.TotalFeet)
		assert.True(t, cost.TotalIce.Equal(decimal.NewFromInt(1950)), "got %s", cost.TotalIce)
		assert.True(t, cost.TotalCost.Equal(decimal.NewFromInt(3705000)), "got %s", cost.TotalCost)

		// Range restriction.
		cost, err = r.AggregatesForProfile(ctx, profileID, date(2025, 10, 20), date(2025, 10, 24))
		require.NoError(t, err)
		assert.True(t, cost.TotalFeet.Equal(decimal.NewFromInt(5)))

		// Re-querying with no new writes yields identical totals.
		again, err := r.AggregatesForProfile(ctx, profileID, date(2025, 10, 20), date(2025, 10, 24))
		require.NoError(t, err)
		assert.True(t, cost.TotalCost.Equal(again.TotalCost))

		// No data in range.
		cost, err = r.AggregatesForProfile(ctx, profileID, date(2026, 1, 1), date(2026, 1, 31))
		require.NoError(t, err)
		assert.True(t, cost.TotalFeet.IsZero())
		assert.True(t, cost.TotalCost.IsZero())
		return nil
	})
	require.NoError(t, err)
}

func TestTotalsForProfiles(t *testing.T) {
	err := WithTestRepository(func(r *SQLRepository) error {
		ctx := context.Background()

		p1, err := r.CreateProfile(ctx, "Profile 1", "Team Lead 1")
		require.NoError(t, err)
		p2, err := r.CreateProfile(ctx, "Profile 2", "Team Lead 2")
		require.NoError(t, err)
		s1, err := r.CreateSection(ctx, p1, "Section 1", 21)
		require.NoError(t, err)
		s2, err := r.CreateSection(ctx, p2, "Section 1", 25)
		require.NoError(t, err)

		day1 := date(2025, 10, 20)
		require.NoError(t, r.SaveDayBatch(ctx, []*model.ProgressRecord{record(s1, day1), record(s2, day1)}))

		ice, cost, err := r.TotalsForProfiles(ctx, []int64{p1, p2})
		require.NoError(t, err)
		assert.True(t, ice.Equal(decimal.NewFromInt(390)), "got %s", ice)
		assert.True(t, cost.Equal(decimal.NewFromInt(741000)), "got %s", cost)

		ice, cost, err = r.TotalsForProfiles(ctx, []int64{p1})
		require.NoError(t, err)
		assert.True(t, ice.Equal(iceOne))
		assert.True(t, cost.Equal(costOne))

		ice, cost, err = r.TotalsForProfiles(ctx, nil)
		require.NoError(t, err)
		assert.True(t, ice.IsZero())
		assert.True(t, cost.IsZero())
		return nil
	})
	require.NoError(t, err)
}
