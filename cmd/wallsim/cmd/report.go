package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vladislavdonchev/wall-construction-demo/internal/common/wallerrors"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting queries over recorded construction progress",
	}
	cmd.AddCommand(
		reportIceCmd(),
		reportCostCmd(),
		reportDaysCmd(),
	)
	return cmd
}

func reportIceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ice",
		Short: "Ice usage for one profile on a given construction day",
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID, _ := cmd.Flags().GetInt64("profile")
			day, _ := cmd.Flags().GetInt("day")
			if day < 1 {
				return &wallerrors.ErrInvalidArgument{Name: "day", Value: day, Message: "day numbers start at 1"}
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			exists, err := a.repo.ProfileExists(ctx, profileID)
			if err != nil {
				return err
			}
			if !exists {
				return &wallerrors.ErrNotFound{Type: "profile", Value: profileID}
			}

			usage, err := a.repo.IceUsageForDay(ctx, profileID, day)
			if err != nil {
				return err
			}

			fmt.Printf("Profile %d, day %d (%s)\n", profileID, day, usage.Date.Format("2006-01-02"))
			fmt.Printf("Total feet built: %s\n", usage.TotalFeet.StringFixed(2))
			fmt.Printf("Total ice:        %s cubic yards\n", usage.TotalIce.StringFixed(2))
			for _, section := range usage.Sections {
				fmt.Printf("  %s: %s ft, %s cubic yards\n",
					section.SectionName, section.FeetBuilt.StringFixed(2), section.Ice.StringFixed(2))
			}
			return nil
		},
	}
	cmd.Flags().Int64("profile", 0, "Profile id to report on")
	cmd.Flags().Int("day", 0, "Construction day, counted from the profile's first progress record")
	for _, flag := range []string{"profile", "day"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
	return cmd
}

func reportCostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Total cost, optionally scoped to one profile and capped at a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID, _ := cmd.Flags().GetInt64("profile")
			day, _ := cmd.Flags().GetInt("day")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			var profileFilter *int64
			if profileID > 0 {
				profileFilter = &profileID
			}
			var dayFilter *int
			if day > 0 {
				dayFilter = &day
			}

			total, err := a.repo.CostOverview(cmd.Context(), profileFilter, dayFilter)
			if err != nil {
				return err
			}
			fmt.Printf("Total cost: %s Gold Dragons\n", total.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().Int64("profile", 0, "Profile id to scope to (0 for all profiles)")
	cmd.Flags().Int("day", 0, "Cap at this construction day (0 for all days)")
	return cmd
}

func reportDaysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "Total construction days, optionally scoped to one profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID, _ := cmd.Flags().GetInt64("profile")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			var profileFilter *int64
			if profileID > 0 {
				profileFilter = &profileID
			}
			total, err := a.repo.TotalDays(cmd.Context(), profileFilter)
			if err != nil {
				return err
			}
			fmt.Printf("Total days: %d\n", total)
			return nil
		},
	}
	cmd.Flags().Int64("profile", 0, "Profile id to scope to (0 for all profiles)")
	return cmd
}
