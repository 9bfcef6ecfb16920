package cmd

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vladislavdonchev/wall-construction-demo/internal/common"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/configuration"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/repository"
)

type app struct {
	config configuration.WallsimConfig
	db     *sql.DB
	repo   *repository.SQLRepository
}

// loadApp reads the application config, opens the database and migrates the
// schema. Callers must Close the returned app.
func loadApp(cmd *cobra.Command) (*app, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var config configuration.WallsimConfig
	common.LoadConfig(&config, "./config/wallsim", configPath)
	config.Limits = withDefaults(config.Limits)

	db, err := sql.Open(config.Database.Driver, config.Database.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if config.Database.Driver == "sqlite" {
		// modernc sqlite serves one connection at a time; more would only
		// contend on the file lock.
		db.SetMaxOpenConns(1)
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	repo, err := repository.NewSQLRepository(ctx, db, dialectFor(config.Database.Driver))
	if err != nil {
		db.Close()
		return nil, err
	}

	return &app{config: config, db: db, repo: repo}, nil
}

func (a *app) Close() {
	a.db.Close()
}

func dialectFor(driver string) string {
	if driver == "sqlite" {
		return "sqlite3"
	}
	return driver
}

// withDefaults fills zero-valued limits so a sparse config file still yields
// sane bounds.
func withDefaults(limits configuration.LimitsConfig) configuration.LimitsConfig {
	defaults := configuration.DefaultLimits()
	if limits.MaxHeight == 0 {
		limits.MaxHeight = defaults.MaxHeight
	}
	if limits.MaxSectionsPerProfile == 0 {
		limits.MaxSectionsPerProfile = defaults.MaxSectionsPerProfile
	}
	if limits.MaxProfiles == 0 {
		limits.MaxProfiles = defaults.MaxProfiles
	}
	if limits.MaxTotalSections == 0 {
		limits.MaxTotalSections = defaults.MaxTotalSections
	}
	if limits.MinTeams == 0 {
		limits.MinTeams = defaults.MinTeams
	}
	if limits.MaxTeams == 0 {
		limits.MaxTeams = defaults.MaxTeams
	}
	return limits
}
