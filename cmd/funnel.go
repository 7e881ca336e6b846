package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// funnelCmd enriches a conversion funnel.
var funnelCmd = &cobra.Command{
	Use:   "funnel <data.json>",
	Short: "Compute conversion rates and drop-off for an ordered funnel.",
	Long: `Enrich an ordered conversion funnel with per-stage statistics.

For each stage the command computes:
- Conversion rate into the next stage (1 decimal place)
- Drop-off, the complement of the conversion rate
- Percent of the top stage, for proportional bar widths
- Overall conversion from first to last stage

Stages with a value of zero report no conversion rate rather than
dividing by zero, and the terminal stage has no next-stage rate.

The input file is a JSON array of {name, value} objects ordered from the
top of the funnel to the bottom.

Examples:
  # Human-readable funnel table
  pulseboard funnel signups.json

  # Export the enriched funnel for a dashboard
  pulseboard funnel signups.json --output json

  # Track conversion in a spreadsheet
  pulseboard funnel signups.json --output csv --output-file funnel.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFunnel(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot run funnel formatting", err)
		}
	},
}
