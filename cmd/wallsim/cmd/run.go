package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vladislavdonchev/wall-construction-demo/internal/common"
	"github.com/vladislavdonchev/wall-construction-demo/internal/common/wallerrors"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/parser"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/simulator"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a wall construction simulation from a profile config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			profilesPath, _ := cmd.Flags().GetString("profiles")
			teams, _ := cmd.Flags().GetInt("teams")
			startDateArg, _ := cmd.Flags().GetString("start-date")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			content, err := os.ReadFile(profilesPath)
			if err != nil {
				return errors.Wrapf(err, "reading profile config %q", profilesPath)
			}
			profiles, err := parser.Parse(string(content), a.config.Limits)
			if err != nil {
				return err
			}

			var startDate time.Time
			if startDateArg != "" {
				startDate, err = time.Parse("2006-01-02", startDateArg)
				if err != nil {
					return &wallerrors.ErrInvalidArgument{
						Name:    "start-date",
						Value:   startDateArg,
						Message: "dates must be formatted YYYY-MM-DD",
					}
				}
			}

			if a.config.MetricsPort > 0 {
				shutdownMetricServer := common.ServeMetrics(a.config.MetricsPort)
				defer shutdownMetricServer()
			}

			sim, err := simulator.New(a.repo, teams, a.config.LogDir, a.config.Limits)
			if err != nil {
				return err
			}
			defer sim.Close()

			log.Infof("simulating %d profiles with %d teams", len(profiles), teams)
			summary, err := sim.Simulate(cmd.Context(), profiles, startDate)
			if err != nil {
				return err
			}

			fmt.Printf("Run:            %s\n", summary.RunID)
			fmt.Printf("Total days:     %d\n", summary.TotalDays)
			fmt.Printf("Total sections: %d\n", summary.TotalSections)
			fmt.Printf("Total ice:      %s cubic yards\n", summary.TotalIce.StringFixed(2))
			fmt.Printf("Total cost:     %s Gold Dragons\n", summary.TotalCost.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().String("profiles", "", "Path to the profile config file (one profile per line)")
	cmd.Flags().Int("teams", 1, "Number of construction teams working in parallel")
	cmd.Flags().String("start-date", "", "Simulation start date (YYYY-MM-DD), defaults to today")
	if err := cmd.MarkFlagRequired("profiles"); err != nil {
		panic(err)
	}
	return cmd
}
