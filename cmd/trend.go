package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// trendCmd runs the trend formatters over a metric series.
var trendCmd = &cobra.Command{
	Use:   "trend <data.json>",
	Short: "Compute cumulative sum, growth and moving average for a series.",
	Long: `Run the trend formatters over one value field of a metric series.

For each point the command computes:
- Cumulative: the running sum from the start of the series
- Growth: percentage change versus the previous point
- Moving average: the mean of the last N points (--window)

The first point has no growth rate, and the moving average only appears
once the window is full. Those cells render as n/a in tables, empty in
CSV and null in JSON so charting layers can leave gaps instead of
plotting zeros.

The input file is a JSON array of {label, values} objects, where values
maps field names to numbers.

Examples:
  # Revenue trend with a 3-point moving average
  pulseboard trend monthly.json --key revenue

  # Wider smoothing window
  pulseboard trend monthly.json --key requests --window 6

  # Feed a dashboard or notebook
  pulseboard trend monthly.json --key revenue --output json

  # Columnar export for offline analysis
  pulseboard trend monthly.json --key revenue --output parquet --output-file trend.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrend(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot run trend formatting", err)
		}
	},
}
