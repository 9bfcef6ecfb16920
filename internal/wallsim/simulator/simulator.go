// Package simulator owns the day-by-day wall construction loop: it
// materializes section state from parsed profile specs, assigns work to a
// bounded pool of teams each day, persists the day's progress batch, and
// produces a summary once every section reaches the target height.
package simulator

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdonchev/wall-construction-demo/internal/common/util"
	"github.com/vladislavdonchev/wall-construction-demo/internal/common/wallerrors"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/configuration"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/metrics"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/repository"
)

const progressNotes = "Simulated construction"

type Simulator struct {
	repo  repository.Repository
	clock util.Clock
	teams int
	logs  *TeamLogs
	runID string
}

// New validates the team count against limits and prepares per-team log files
// under logDir. Callers must Close the simulator when done with it.
func New(repo repository.Repository, teams int, logDir string, limits configuration.LimitsConfig) (*Simulator, error) {
	if teams < limits.MinTeams || teams > limits.MaxTeams {
		return nil, &wallerrors.ErrInvalidArgument{
			Name:    "teams",
			Value:   teams,
			Message: fmt.Sprintf("team count must be between %d and %d", limits.MinTeams, limits.MaxTeams),
		}
	}

	logs, err := NewTeamLogs(logDir, teams)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		repo:  repo,
		clock: &util.DefaultClock{},
		teams: teams,
		logs:  logs,
		runID: util.NewULID(),
	}, nil
}

func (s *Simulator) Close() {
	s.logs.Close()
}

// WithClock overrides the clock used to default the start date. For tests.
func (s *Simulator) WithClock(clock util.Clock) *Simulator {
	s.clock = clock
	return s
}

// Simulate runs the whole construction simulation and returns its summary.
// A zero startDate defaults to today. The driver exclusively owns the mutable
// section state; workers only ever receive read-only copies, and all
// persistence happens here, once per day, after the day's workers have joined.
func (s *Simulator) Simulate(ctx context.Context, profiles []*model.ProfileSpec, startDate time.Time) (*model.SimulationSummary, error) {
	if startDate.IsZero() {
		startDate = s.clock.Now()
	}
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	entry := log.WithField("runId", s.runID)
	entry.Infof("initializing %d profiles", len(profiles))

	states, profileIDs, err := s.initializeProfiles(ctx, profiles)
	if err != nil {
		return nil, err
	}
	statesById := make(map[int64]*model.SectionState, len(states))
	for _, state := range states {
		statesById[state.ID] = state
	}

	currentDate := startDate
	day := 1

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		assigned := assignWork(states, s.teams)
		if len(assigned) == 0 {
			break
		}

		results, err := s.processDay(assigned, day)
		if err != nil {
			return nil, err
		}

		if err := s.saveResults(ctx, results, currentDate); err != nil {
			return nil, err
		}
		if err := s.applyResults(ctx, statesById, results); err != nil {
			return nil, err
		}

		entry.Debugf("day %d: %d sections processed", day, len(results))
		metrics.RecordDay(len(results))

		currentDate = currentDate.AddDate(0, 0, 1)
		day++
	}

	if err := s.logs.Relieve(); err != nil {
		return nil, err
	}

	totalIce, totalCost, err := s.repo.TotalsForProfiles(ctx, profileIDs)
	if err != nil {
		return nil, err
	}

	summary := &model.SimulationSummary{
		RunID:         s.runID,
		TotalDays:     day - 1,
		TotalSections: len(states),
		TotalIce:      totalIce,
		TotalCost:     totalCost,
	}
	metrics.RecordSimulation()
	entry.Infof("simulation complete: %d sections in %d days, %s cubic yards, %s dragons",
		summary.TotalSections, summary.TotalDays, summary.TotalIce, summary.TotalCost)
	return summary, nil
}

// initializeProfiles persists profiles and sections and returns the in-memory
// working set, in creation order.
func (s *Simulator) initializeProfiles(ctx context.Context, profiles []*model.ProfileSpec) ([]*model.SectionState, []int64, error) {
	var states []*model.SectionState
	profileIDs := make([]int64, 0, len(profiles))

	for i, spec := range profiles {
		profileName := spec.Name
		if profileName == "" {
			profileName = fmt.Sprintf("Profile %d", i+1)
		}
		teamLead := spec.TeamLead
		if teamLead == "" {
			teamLead = fmt.Sprintf("Team Lead %d", i+1)
		}

		profileID, err := s.repo.CreateProfile(ctx, profileName, teamLead)
		if err != nil {
			return nil, nil, err
		}
		profileIDs = append(profileIDs, profileID)

		for j, height := range spec.Heights {
			sectionName := fmt.Sprintf("Section %d", j+1)
			sectionID, err := s.repo.CreateSection(ctx, profileID, sectionName, height)
			if err != nil {
				return nil, nil, err
			}
			states = append(states, &model.SectionState{
				ID:            sectionID,
				ProfileID:     profileID,
				ProfileName:   profileName,
				SectionName:   sectionName,
				CurrentHeight: height,
			})
		}
	}
	return states, profileIDs, nil
}

// saveResults persists one day's progress records as a single atomic batch.
func (s *Simulator) saveResults(ctx context.Context, results []*model.ProcessingResult, date time.Time) error {
	records := make([]*model.ProgressRecord, 0, len(results))
	for _, result := range results {
		records = append(records, &model.ProgressRecord{
			SectionID: result.SectionID,
			Date:      date,
			FeetBuilt: result.FeetBuilt,
			Ice:       result.Ice,
			Cost:      result.Cost,
			Notes:     progressNotes,
		})
	}
	if err := s.repo.SaveDayBatch(ctx, records); err != nil {
		return err
	}
	metrics.RecordProgressRecords(len(records))
	return nil
}

// applyResults advances section heights according to the day's results. A
// result referencing an unknown section is a corruption signal and aborts the
// run.
func (s *Simulator) applyResults(ctx context.Context, statesById map[int64]*model.SectionState, results []*model.ProcessingResult) error {
	for _, result := range results {
		state, ok := statesById[result.SectionID]
		if !ok {
			return &wallerrors.ErrUnknownSection{SectionID: result.SectionID}
		}
		state.CurrentHeight++
		if err := s.repo.UpdateSectionHeight(ctx, state.ID, state.CurrentHeight); err != nil {
			return err
		}
	}
	return nil
}
