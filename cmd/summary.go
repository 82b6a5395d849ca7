package cmd

import (
	"github.com/spf13/cobra"
	"github.com/worldsys/worldsys/core"
)

// summaryCmd prints category counts and per-metric distributions.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show how many countries fall in each category and how the indicators spread.",
	Long: `Classify the dataset, then print the size of each category and, for every
indicator, its min, quartiles, max and mean within each category.

Examples:
  # Headline counts for the default selection
  worldsys summary

  # See how the tiers look on GDP per capita alone
  worldsys summary --metrics economic --output json`,
	Args:    cobra.NoArgs,
	PreRunE: datasetSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor(core.ExecuteSummary, "Cannot summarize classification")
	},
}
