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

// WriteClassifiedProjects outputs projects with their health buckets,
// dispatching based on the output format configured. Table output colors
// the bucket label; CSV and JSON always carry the plain label plus the
// bucket's hex color.
func WriteClassifiedProjects(projects []schema.ClassifiedProject, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForProjects(w, projects)
		}, "Wrote JSON")
	case schema.CSVOut:
		header := []string{"rank", "project", "score", "label", "color"}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return writeCSVResultsForProjects(cw, projects, fmtFloat)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for classified projects")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProjectsTable(projects, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeProjectsTable generates and writes the human-readable table.
func writeProjectsTable(projects []schema.ClassifiedProject, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Project", "Score", "Label"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxLabel := getMaxTableLabelWidth(cfg, len(headers)-2)
	var rows [][]string
	for i, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			contract.TruncateLabel(p.Name, maxLabel),
			fmtFloat(p.Score),
			contract.ColorBucketLabel(p.Bucket, cfg.UseColors),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d projects\n", len(projects)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Formatting completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForProjects writes classified projects in CSV format.
func writeCSVResultsForProjects(w *csv.Writer, projects []schema.ClassifiedProject, fmtFloat func(float64) string) error {
	for i, p := range projects {
		rec := []string{
			strconv.Itoa(i + 1),
			p.Name,
			fmtFloat(p.Score),
			p.Bucket.Label,
			p.Bucket.Color,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForProjects writes classified projects in JSON format.
func writeJSONResultsForProjects(w io.Writer, projects []schema.ClassifiedProject) error {
	type JSONProjectResult struct {
		Rank int `json:"rank"`
		schema.ClassifiedProject
	}

	output := make([]JSONProjectResult, len(projects))
	for i, p := range projects {
		output[i] = JSONProjectResult{Rank: i + 1, ClassifiedProject: p}
	}
	return writeJSON(w, output)
}

// WriteBucketTables prints the classifier threshold tables themselves:
// which score or retention ranges map to which label and color. Used when
// the buckets command runs without an input file.
func WriteBucketTables(score, retention []schema.BucketRow, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string][]schema.BucketRow{
				"score":     score,
				"retention": retention,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		header := []string{"table", "min", "label", "color"}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				if err := writeCSVBucketRows(cw, "score", score); err != nil {
					return err
				}
				return writeCSVBucketRows(cw, "retention", retention)
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for bucket tables")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeBucketTable(w, "Score buckets", score, cfg); err != nil {
				return err
			}
			return writeBucketTable(w, "Retention buckets", retention, cfg)
		}, "Wrote table")
	}
}

func writeCSVBucketRows(w *csv.Writer, name string, rows []schema.BucketRow) error {
	for _, r := range rows {
		rec := []string{name, strconv.FormatFloat(r.Min, 'f', -1, 64), r.Label, r.Color}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeBucketTable(writer io.Writer, title string, rows []schema.BucketRow, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(writer, "%s:\n", title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Min", "Label", "Color"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		label := contract.ColorBucketLabel(schema.ScoreBucket{Label: r.Label, Color: r.Color}, cfg.UseColors)
		data = append(data, []string{
			strconv.FormatFloat(r.Min, 'f', -1, 64),
			label,
			r.Color,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
