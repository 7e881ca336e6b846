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

// WriteCohortResults outputs a cohort retention analysis, dispatching based
// on the output format configured.
func WriteCohortResults(result schema.CohortResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtNullable := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		// Long format: one row per retention cell, easiest to pivot downstream.
		header := []string{"cohort", "initial_users", "offset", "active", "retention_rate"}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return writeCSVResultsForCohort(cw, result, fmtNullable)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for cohorts")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCohortTable(result, cfg, fmtFloat, fmtNullable, duration, w)
		}, "Wrote table")
	}
}

// maxCohortOffsets returns the widest retention row, which sets the table
// column count.
func maxCohortOffsets(result schema.CohortResult) int {
	maxLen := 0
	for _, row := range result.Rows {
		if len(row.Retention) > maxLen {
			maxLen = len(row.Retention)
		}
	}
	return maxLen
}

// writeCohortTable generates and writes the human-readable retention grid.
func writeCohortTable(result schema.CohortResult, cfg *contract.Config, fmtFloat func(float64) string, fmtNullable func(*float64, string) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	offsets := maxCohortOffsets(result)
	headers := []string{"Cohort", "Users"}
	for i := range offsets {
		headers = append(headers, "P"+strconv.Itoa(i))
	}
	headers = append(headers, "Avg %", "Churn %")
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := getMaxTableLabelWidth(cfg, len(headers)-1)
	var rows [][]string
	for _, row := range result.Rows {
		rec := []string{
			contract.TruncateLabel(row.Label, maxLabel),
			strconv.Itoa(row.InitialUsers),
		}
		for i := range offsets {
			if i < len(row.Retention) {
				rec = append(rec, fmtNullable(row.Retention[i].Rate, tablePlaceholder))
			} else {
				rec = append(rec, tablePlaceholder)
			}
		}
		rec = append(rec,
			fmtNullable(row.AverageRetention, tablePlaceholder),
			fmtNullable(row.ChurnRate, tablePlaceholder),
		)
		rows = append(rows, rec)
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	if _, err := fmt.Fprintf(writer, "Cohorts: %d, users: %d, best: %s, worst: %s\n", s.TotalCohorts, s.TotalUsers, s.BestCohort, s.WorstCohort); err != nil {
		return err
	}
	if len(result.Curve) > 0 {
		if _, err := fmt.Fprint(writer, "Retention curve:"); err != nil {
			return err
		}
		for _, p := range result.Curve {
			if _, err := fmt.Fprintf(writer, " P%d=%s", p.Offset, fmtFloat(p.Rate)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Formatting completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForCohort writes retention cells in long CSV format.
func writeCSVResultsForCohort(w *csv.Writer, result schema.CohortResult, fmtNullable func(*float64, string) string) error {
	for _, row := range result.Rows {
		for _, cell := range row.Retention {
			rec := []string{
				row.Label,
				strconv.Itoa(row.InitialUsers),
				strconv.Itoa(cell.Offset),
				strconv.Itoa(cell.Active),
				fmtNullable(cell.Rate, csvPlaceholder),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
