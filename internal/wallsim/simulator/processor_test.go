package simulator

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/configuration"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/repository"
)

func TestProcessDayProducesOneResultPerSection(t *testing.T) {
	err := repository.WithTestRepository(func(r *repository.SQLRepository) error {
		s, err := New(r, 2, t.TempDir(), configuration.DefaultLimits())
		require.NoError(t, err)
		defer s.Close()

		assigned := []*model.SectionState{
			{ID: 1, ProfileName: "Profile 1", SectionName: "Section 1", CurrentHeight: 21},
			{ID: 2, ProfileName: "Profile 1", SectionName: "Section 2", CurrentHeight: 29},
		}
		results, err := s.processDay(assigned, 1)
		require.NoError(t, err)
		require.Len(t, results, 2)

		ids := []int64{results[0].SectionID, results[1].SectionID}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		assert.Equal(t, []int64{1, 2}, ids)

		for _, result := range results {
			assert.True(t, result.FeetBuilt.Equal(decimal.NewFromInt(1)))
			assert.True(t, result.Ice.Equal(decimal.NewFromInt(195)))
			assert.True(t, result.Cost.Equal(decimal.NewFromInt(370500)))
		}
		return nil
	})
	require.NoError(t, err)
}

func TestProcessDayDoesNotMutateSectionState(t *testing.T) {
	err := repository.WithTestRepository(func(r *repository.SQLRepository) error {
		s, err := New(r, 1, t.TempDir(), configuration.DefaultLimits())
		require.NoError(t, err)
		defer s.Close()

		section := &model.SectionState{ID: 1, SectionName: "Section 1", ProfileName: "Profile 1", CurrentHeight: 21}
		_, err = s.processDay([]*model.SectionState{section}, 1)
		require.NoError(t, err)

		// State mutation is the driver's job, after the join.
		assert.Equal(t, 21, section.CurrentHeight)
		return nil
	})
	require.NoError(t, err)
}
