package simulator

import "github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"

// assignWork selects the sections that receive a team today: the incomplete
// sections in creation order, truncated to the team count. Deterministic;
// returns an empty slice when the simulation should terminate.
func assignWork(sections []*model.SectionState, teams int) []*model.SectionState {
	assigned := make([]*model.SectionState, 0, teams)
	for _, section := range sections {
		if section.Complete() {
			continue
		}
		assigned = append(assigned, section)
		if len(assigned) == teams {
			break
		}
	}
	return assigned
}
