package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/aggregator"
)

func aggregateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate feet, ice and cost per profile over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			profileIDs, _ := cmd.Flags().GetInt64Slice("profiles")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			service := aggregator.New(a.repo, a.config.AggregatorPoolSize)
			results, err := service.CalculateMultiProfileCosts(cmd.Context(), profileIDs, from, to)
			if err != nil {
				return err
			}

			// Results arrive in completion order; sort for display.
			sort.Slice(results, func(i, j int) bool { return results[i].ProfileID < results[j].ProfileID })
			for _, result := range results {
				fmt.Printf("Profile %d: %s ft, %s cubic yards, %s Gold Dragons\n",
					result.ProfileID,
					result.TotalFeet.StringFixed(2),
					result.TotalIce.StringFixed(2),
					result.TotalCost.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().Int64Slice("profiles", nil, "Profile ids to aggregate, e.g. 1,2,3")
	cmd.Flags().String("from", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Range end date (YYYY-MM-DD)")
	for _, flag := range []string{"profiles", "from", "to"} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
	return cmd
}
