package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallsim",
		Short: "wallsim simulates multi-team construction of a thirty-foot ice wall.",
	}

	cmd.PersistentFlags().String("config", "", "Fully qualified path to application configuration file")

	cmd.AddCommand(
		runCmd(),
		reportCmd(),
		aggregateCmd(),
	)

	return cmd
}
