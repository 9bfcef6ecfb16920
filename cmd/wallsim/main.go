package main

import (
	"os"

	"github.com/vladislavdonchev/wall-construction-demo/cmd/wallsim/cmd"
	"github.com/vladislavdonchev/wall-construction-demo/internal/common"
	"github.com/vladislavdonchev/wall-construction-demo/internal/common/wallerrors"
)

// Exit code 2 marks "fix your input" failures, 1 everything else.
func main() {
	common.ConfigureLogging()
	if err := cmd.RootCmd().Execute(); err != nil {
		if wallerrors.IsValidationError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
