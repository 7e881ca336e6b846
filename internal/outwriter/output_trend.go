package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/parquet"
	"github.com/pulseboard/pulseboard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTrendResults outputs formatted trend data, dispatching based on the
// output format configured.
func WriteTrendResults(data []schema.FormattedDatum, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, fmtNullable := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForTrend(w, data)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, trendCSVHeader(cfg.Key), func(cw *csv.Writer) error {
				return writeCSVResultsForTrend(cw, data, cfg.Key, fmtFloat, fmtNullable)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteTrendFile(cfg.OutputFile, data, cfg.Key); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(data, cfg, fmtFloat, fmtNullable, duration, w)
		}, "Wrote table")
	}
}

func trendCSVHeader(key string) []string {
	return []string{"rank", "label", key, "cumulative", "growth_pct", "moving_avg"}
}

// writeTrendTable generates and writes the human-readable table.
func writeTrendTable(data []schema.FormattedDatum, cfg *contract.Config, fmtFloat func(float64) string, fmtNullable func(*float64, string) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Label", "Value", "Cumulative", "Growth %", "Moving Avg"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxLabel := getMaxTableLabelWidth(cfg, len(headers)-2)
	var rows [][]string
	for i, d := range data {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),                         // Rank
			contract.TruncateLabel(d.Label, maxLabel),   // Label
			fmtFloat(d.Values[cfg.Key]),                 // Raw value
			fmtNullable(d.Derived[schema.DerivedCumulative], tablePlaceholder),
			fmtNullable(d.Derived[schema.DerivedGrowth], tablePlaceholder),
			fmtNullable(d.Derived[schema.DerivedMovingAvg], tablePlaceholder),
		})
	}

	// 4. Render the table
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	total := 0.0
	for _, d := range data {
		total += d.Values[cfg.Key]
	}
	if _, err := fmt.Fprintf(writer, "Showing %d points of %q (total: %s)\n", len(data), cfg.Key, fmtFloat(total)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Formatting completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForTrend writes formatted trend data in CSV format.
func writeCSVResultsForTrend(w *csv.Writer, data []schema.FormattedDatum, key string, fmtFloat func(float64) string, fmtNullable func(*float64, string) string) error {
	for i, d := range data {
		rec := []string{
			strconv.Itoa(i + 1),                                                // Rank
			d.Label,                                                            // Label
			fmtFloat(d.Values[key]),                                            // Raw value
			fmtNullable(d.Derived[schema.DerivedCumulative], csvPlaceholder),   // Running sum
			fmtNullable(d.Derived[schema.DerivedGrowth], csvPlaceholder),       // Growth pct
			fmtNullable(d.Derived[schema.DerivedMovingAvg], csvPlaceholder),    // Windowed mean
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForTrend writes formatted trend data in JSON format.
// Derived nil cells marshal as null, which rendering hosts read as gaps.
func writeJSONResultsForTrend(w io.Writer, data []schema.FormattedDatum) error {
	// 1. Prepare the data structure for JSON with rank added
	type JSONTrendResult struct {
		Rank int `json:"rank"`
		schema.FormattedDatum
	}

	output := make([]JSONTrendResult, len(data))
	for i, d := range data {
		output[i] = JSONTrendResult{Rank: i + 1, FormattedDatum: d}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
