package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// quarterlyCmd rolls a monthly series into quarters.
var quarterlyCmd = &cobra.Command{
	Use:   "quarterly <data.json>",
	Short: "Roll a monthly series into quarterly totals.",
	Long: `Aggregate a monthly metric series into quarters.

Consecutive groups of three points become one quarter labeled Q1, Q2,
and so on, with each requested field summed across the group. A
trailing group with fewer than three months still produces a quarter
from the months present.

The input file is a JSON array of {label, values} objects in month
order.

Examples:
  # Quarterly revenue and cost totals
  pulseboard quarterly monthly.json --keys revenue,cost

  # Export rollups for a report
  pulseboard quarterly monthly.json --keys revenue --output csv --output-file quarters.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuarterly(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot run quarterly formatting", err)
		}
	},
}
