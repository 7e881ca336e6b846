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

// WriteQuarterlyResults outputs quarterly rollups, dispatching based on the
// output format configured. Column order follows cfg.Keys so the table and
// CSV stay stable across runs.
func WriteQuarterlyResults(quarters []schema.MetricPoint, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, quarters)
		}, "Wrote JSON")
	case schema.CSVOut:
		header := append([]string{"rank", "quarter"}, cfg.Keys...)
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return writeCSVResultsForQuarterly(cw, quarters, cfg.Keys, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for quarterly rollups")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQuarterlyTable(quarters, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeQuarterlyTable generates and writes the human-readable table.
func writeQuarterlyTable(quarters []schema.MetricPoint, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Quarter"}
	headers = append(headers, cfg.Keys...)
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for i, q := range quarters {
		row := []string{strconv.Itoa(i + 1), q.Label}
		for _, key := range cfg.Keys {
			row = append(row, fmtFloat(q.Values[key]))
		}
		rows = append(rows, row)
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d quarters across %d fields\n", len(quarters), len(cfg.Keys)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Formatting completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForQuarterly writes quarterly rollups in CSV format.
func writeCSVResultsForQuarterly(w *csv.Writer, quarters []schema.MetricPoint, keys []string, fmtFloat func(float64) string) error {
	for i, q := range quarters {
		rec := []string{strconv.Itoa(i + 1), q.Label}
		for _, key := range keys {
			rec = append(rec, fmtFloat(q.Values[key]))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
