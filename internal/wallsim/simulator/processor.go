package simulator

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/calculator"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
)

// feetPerDay is the fixed progress each assigned section makes per day.
var feetPerDay = decimal.NewFromInt(1)

type taskResult struct {
	result *model.ProcessingResult
	err    error
}

// processDay runs one simulated day: every assigned section is processed by
// exactly one of `teams` worker goroutines. Workers receive read-only section
// copies and share nothing except the task and result channels; worker i
// writes only to team_i.log. Returns once every worker has finished, so day
// N+1 never overlaps day N. Correct for any team count >= 1.
func (s *Simulator) processDay(sections []*model.SectionState, day int) ([]*model.ProcessingResult, error) {
	tasks := make(chan model.SectionState)
	results := make(chan taskResult, len(sections))

	var wg sync.WaitGroup
	for teamID := 0; teamID < s.teams; teamID++ {
		wg.Add(1)
		go func(teamID int) {
			defer wg.Done()
			for section := range tasks {
				results <- s.processSection(&section, day, teamID)
			}
		}(teamID)
	}

	for _, section := range sections {
		tasks <- *section
	}
	close(tasks)
	wg.Wait()
	close(results)

	collected := make([]*model.ProcessingResult, 0, len(sections))
	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		collected = append(collected, r.result)
	}
	return collected, nil
}

// processSection performs one section-day of work. No shared mutable state is
// touched here; persistence and state updates happen on the coordinating
// goroutine after the day's join.
func (s *Simulator) processSection(section *model.SectionState, day int, teamID int) taskResult {
	ice, cost := calculator.ForFeet(feetPerDay)
	newHeight := section.CurrentHeight + 1

	if err := s.logs.LogWork(teamID, day, section, newHeight); err != nil {
		return taskResult{err: err}
	}

	return taskResult{result: &model.ProcessingResult{
		SectionID: section.ID,
		FeetBuilt: feetPerDay,
		Ice:       ice,
		Cost:      cost,
	}}
}
