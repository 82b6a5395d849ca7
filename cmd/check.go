package cmd

import (
	"github.com/spf13/cobra"
	"github.com/worldsys/worldsys/core"
	"github.com/worldsys/worldsys/internal/contract"
)

// checkCmd validates a dataset file.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a dataset and print its health report (fails on issues)",
	Long: `Read a dataset without ranking it and report every problem found:
empty or duplicate identifiers and names, negative or non-finite values.

Also prints the value range of each indicator and how many values are tied,
since ties share a rank. Exits non-zero when any issue is found, which makes it
usable as a gate before publishing a new dataset.

Examples:
  # Check the embedded dataset
  worldsys check

  # Check a new dataset before using it
  worldsys check --dataset world-2025.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg); err != nil {
			contract.LogFatal("Dataset check failed", err)
		}
	},
}
