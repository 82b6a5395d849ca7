package cmd

import (
	"github.com/spf13/cobra"
	"github.com/worldsys/worldsys/core"
)

// classifyCmd ranks every country and prints the classification table.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Rank countries and assign Core, Semi-Periphery or Periphery.",
	Long: `Rank every country by each active indicator, sum the ranks into a composite
score, rank the composite and split the final rank into thirds.

Ties share the best rank (1, 2, 2, 4). Only active indicators get value and
rank columns. The table is sorted by final rank.

Examples:
  # Classify with all three indicators
  worldsys classify

  # Economic and diplomatic reach only
  worldsys classify --metrics economic,diplomatic

  # Treat a lower militarization score as more core-like
  worldsys classify --direction military=asc

  # Show the ten highest ranked semi-peripheral countries
  worldsys classify --category semi-periphery --limit 10

  # Export the full classification
  worldsys classify --output csv --output-file world.csv
  worldsys classify --output parquet --output-file world.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteClassify, "Cannot classify countries")
	},
}
