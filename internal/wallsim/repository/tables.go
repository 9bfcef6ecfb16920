package repository

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/shopspring/decimal"
)

var (
	// Tables
	profileTable  = goqu.T("profiles")
	sectionTable  = goqu.T("wall_sections")
	progressTable = goqu.T("daily_progress")

	// Columns: profiles table
	profile_id       = goqu.I("profiles.id")
	profile_name     = goqu.I("profiles.name")
	profile_teamLead = goqu.I("profiles.team_lead")

	// Columns: wall_sections table
	section_id            = goqu.I("wall_sections.id")
	section_profileId     = goqu.I("wall_sections.profile_id")
	section_sectionName   = goqu.I("wall_sections.section_name")
	section_currentHeight = goqu.I("wall_sections.current_height")

	// Columns: daily_progress table
	progress_sectionId = goqu.I("daily_progress.wall_section_id")
	progress_date      = goqu.I("daily_progress.date")
	progress_feetBuilt = goqu.I("daily_progress.feet_built")
	progress_ice       = goqu.I("daily_progress.ice_cubic_yards")
	progress_cost      = goqu.I("daily_progress.cost_gold_dragons")
)

type profileRow struct {
	Id       int64  `db:"id"`
	Name     string `db:"name"`
	TeamLead string `db:"team_lead"`
}

type progressAmountsRow struct {
	FeetBuilt decimal.Decimal `db:"feet_built"`
	Ice       decimal.Decimal `db:"ice_cubic_yards"`
	Cost      decimal.Decimal `db:"cost_gold_dragons"`
}

type sectionHeightRow struct {
	SectionName   string `db:"section_name"`
	CurrentHeight int    `db:"current_height"`
}

type sectionUsageRow struct {
	SectionName string          `db:"section_name"`
	FeetBuilt   decimal.Decimal `db:"feet_built"`
	Ice         decimal.Decimal `db:"ice_cubic_yards"`
}
