package configuration

import "github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"

type WallsimConfig struct {
	// Directory the per-team construction logs are written to.
	LogDir string
	// Port the prometheus metrics endpoint is served on during a run.
	// Disabled when zero.
	MetricsPort uint16
	// Worker pool size for multi-profile cost aggregation.
	AggregatorPoolSize int

	Database DatabaseConfig
	Limits   LimitsConfig
}

type DatabaseConfig struct {
	// Driver name registered with database/sql: "sqlite" or "postgres".
	Driver string
	// Driver-specific connection string, e.g. a file path for sqlite.
	ConnectionString string
}

// LimitsConfig bounds the profile config parser and the run parameters.
type LimitsConfig struct {
	MinHeight             int
	MaxHeight             int
	MaxSectionsPerProfile int
	MaxProfiles           int
	MaxTotalSections      int
	MinTeams              int
	MaxTeams              int
	// When true, a profile line whose every height already equals the target
	// is rejected as having nothing to build.
	RejectCompletedProfiles bool
}

// DefaultLimits are the bounds applied when no config overrides them.
func DefaultLimits() LimitsConfig {
	return LimitsConfig{
		MinHeight:               0,
		MaxHeight:               model.TargetHeight,
		MaxSectionsPerProfile:   2000,
		MaxProfiles:             100,
		MaxTotalSections:        10000,
		MinTeams:                1,
		MaxTeams:                100,
		RejectCompletedProfiles: false,
	}
}
