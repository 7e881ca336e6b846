package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// cohortCmd computes cohort retention.
var cohortCmd = &cobra.Command{
	Use:   "cohort <data.json>",
	Short: "Compute cohort retention rates and the aggregate curve.",
	Long: `Analyze user retention by cohort.

For each cohort the command computes:
- Retention rate per period offset (active / initial users * 100)
- Average retention, excluding the formation period itself
- Churn rate, the complement of average retention

Across cohorts it also reports the aggregate retention curve (mean
retention per offset over cohorts with data at that offset) and which
cohorts retained best and worst.

Cohorts with zero initial users report no rates rather than dividing by
zero.

The input file is a JSON array of {label, initial_users, active_counts}
objects, where active_counts[0] is the formation period.

Examples:
  # Weekly signup cohorts
  pulseboard cohort weekly_cohorts.json

  # Feed the retention grid into a dashboard
  pulseboard cohort weekly_cohorts.json --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCohort(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot run cohort formatting", err)
		}
	},
}
