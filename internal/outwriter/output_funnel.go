package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteFunnelResults outputs an enriched funnel, dispatching based on the
// output format configured.
func WriteFunnelResults(result schema.FunnelResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtNullable := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		header := []string{"rank", "stage", "value", "conversion_rate", "dropoff", "percent_of_top"}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return writeCSVResultsForFunnel(cw, result, fmtFloat, fmtNullable)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for funnels")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFunnelTable(result, cfg, fmtFloat, fmtNullable, duration, w)
		}, "Wrote table")
	}
}

// writeFunnelTable generates and writes the human-readable table.
func writeFunnelTable(result schema.FunnelResult, cfg *contract.Config, fmtFloat func(float64) string, fmtNullable func(*float64, string) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Stage", "Value", "Conv %", "Drop %", "Of Top %"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := getMaxTableLabelWidth(cfg, len(headers)-2)
	var rows [][]string
	for i, s := range result.Steps {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			contract.TruncateLabel(s.Name, maxLabel),
			fmtFloat(s.Value),
			fmtNullable(s.ConversionRate, tablePlaceholder),
			fmtNullable(s.Dropoff, tablePlaceholder),
			fmtFloat(s.PercentOfTop),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Overall conversion: %s\n", fmtNullable(result.Overall, tablePlaceholder)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Formatting completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForFunnel writes the enriched funnel in CSV format.
func writeCSVResultsForFunnel(w *csv.Writer, result schema.FunnelResult, fmtFloat func(float64) string, fmtNullable func(*float64, string) string) error {
	for i, s := range result.Steps {
		rec := []string{
			strconv.Itoa(i + 1),
			s.Name,
			fmtFloat(s.Value),
			fmtNullable(s.ConversionRate, csvPlaceholder),
			fmtNullable(s.Dropoff, csvPlaceholder),
			fmtFloat(s.PercentOfTop),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
