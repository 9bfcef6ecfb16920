package simulator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
)

// TeamLogs owns one append-only log file per team slot. Each file is written
// by exactly one worker goroutine, so no locking is needed.
type TeamLogs struct {
	files []*os.File
}

// NewTeamLogs creates (truncating if present) dir/team_<id>.log for each of
// the given team slots.
func NewTeamLogs(dir string, teams int) (*TeamLogs, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating team log directory %q", dir)
	}

	logs := &TeamLogs{files: make([]*os.File, teams)}
	for teamID := 0; teamID < teams; teamID++ {
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("team_%d.log", teamID)))
		if err != nil {
			logs.Close()
			return nil, errors.Wrapf(err, "creating log for team %d", teamID)
		}
		logs.files[teamID] = f
	}
	return logs, nil
}

// LogWork records one day of work by teamID on a section. newHeight is the
// section height after the day's work.
func (l *TeamLogs) LogWork(teamID int, day int, section *model.SectionState, newHeight int) error {
	var err error
	if newHeight >= model.TargetHeight {
		_, err = fmt.Fprintf(l.files[teamID], "Day %d: Team %d completed %s (%s)\n",
			day, teamID, section.SectionName, section.ProfileName)
	} else {
		_, err = fmt.Fprintf(l.files[teamID], "Day %d: Team %d worked on %s (%s) - %d/%d ft\n",
			day, teamID, section.SectionName, section.ProfileName, newHeight, model.TargetHeight)
	}
	return errors.Wrapf(err, "writing log for team %d", teamID)
}

// Relieve writes the final relief line to every team log.
func (l *TeamLogs) Relieve() error {
	for teamID, f := range l.files {
		if _, err := fmt.Fprintf(f, "Team %d: relieved\n", teamID); err != nil {
			return errors.Wrapf(err, "relieving team %d", teamID)
		}
	}
	return nil
}

func (l *TeamLogs) Close() {
	for _, f := range l.files {
		if f != nil {
			f.Close()
		}
	}
}
