// Package model contains the domain types shared between the parser, the
// simulator, the repository, and the aggregator.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TargetHeight is the height, in feet, every wall section must reach.
const TargetHeight = 30

// ProfileSpec is one parsed line of the profile configuration: the initial
// heights of the sections belonging to one profile. Immutable once a
// simulation has started.
type ProfileSpec struct {
	// Initial heights in section order, each in [0, TargetHeight].
	Heights []int
	// Optional display name. Defaults to "Profile N" when empty.
	Name string
	// Optional team lead. Defaults to "Team Lead N" when empty.
	TeamLead string
}

// SectionState is the in-memory state of one wall section during a run.
// Owned exclusively by the simulation driver; workers only ever see a copy.
type SectionState struct {
	ID            int64
	ProfileID     int64
	ProfileName   string
	SectionName   string
	CurrentHeight int
}

// Complete reports whether the section has reached the target height.
func (s *SectionState) Complete() bool {
	return s.CurrentHeight >= TargetHeight
}

// ProcessingResult is the outcome of one section receiving one day of work.
type ProcessingResult struct {
	SectionID int64
	FeetBuilt decimal.Decimal
	Ice       decimal.Decimal
	Cost      decimal.Decimal
}

// ProgressRecord is the durable fact of one section's work on one day.
// Append-only; unique per (section, date).
type ProgressRecord struct {
	SectionID int64
	Date      time.Time
	FeetBuilt decimal.Decimal
	Ice       decimal.Decimal
	Cost      decimal.Decimal
	Notes     string
}

// SimulationSummary is produced once the simulation loop terminates.
type SimulationSummary struct {
	RunID         string
	TotalDays     int
	TotalSections int
	TotalIce      decimal.Decimal
	TotalCost     decimal.Decimal
}

// ProfileCost is one profile's aggregate over a date range, as returned by the
// multi-profile cost aggregator.
type ProfileCost struct {
	ProfileID int64
	TotalFeet decimal.Decimal
	TotalIce  decimal.Decimal
	TotalCost decimal.Decimal
}
