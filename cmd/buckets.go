package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// bucketsCmd shows the classifier tables or classifies projects.
var bucketsCmd = &cobra.Command{
	Use:   "buckets [projects.json]",
	Short: "Show the score and retention classifier tables.",
	Long: `Display how continuous values map to labeled color buckets.

Without arguments, prints both classifier tables:
- Score buckets: health scores in [0,1] from Excellent down to Limited
- Retention buckets: percentages in [0,100] from Complete down to Critical

With a projects file, classifies each project's health score and ranks
the projects from best to worst.

The optional input file is a JSON array of {name, score, series}
objects.

Examples:
  # Show the bucket thresholds
  pulseboard buckets

  # Rank projects by health
  pulseboard buckets projects.json

  # Machine-readable thresholds for a rendering host
  pulseboard buckets --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBuckets(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot run bucket classification", err)
		}
	},
}
