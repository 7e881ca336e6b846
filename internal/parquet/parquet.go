// Package parquet provides data structures and functions for exporting
// formatted metric data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pulseboard/pulseboard/schema"
)

// TrendRow represents one formatted trend sample. Derived fields are
// nullable: a nil value marks a sample that is not plottable, such as the
// first growth rate or a moving average before the window fills.
type TrendRow struct {
	// Rank is the 1-based position of the sample in the series
	Rank int32 `parquet:"rank,snappy"`

	// Label is the x-axis label for the sample
	Label string `parquet:"label,snappy"`

	// Key is the value field the trend was computed over
	Key string `parquet:"key,snappy"`

	// Value is the raw value of the field at this sample
	Value float64 `parquet:"value,snappy"`

	// Cumulative is the running sum up to this sample
	Cumulative *float64 `parquet:"cumulative,optional,snappy"`

	// Growth is the period-over-period growth percentage (nullable)
	Growth *float64 `parquet:"growth_pct,optional,snappy"`

	// MovingAvg is the windowed mean at this sample (nullable)
	MovingAvg *float64 `parquet:"moving_avg,optional,snappy"`
}

// SnapshotRow represents one cached metric point from the snapshot store.
// This struct maps to the pulseboard_snapshots database table, flattened to
// one row per point.
type SnapshotRow struct {
	// Source is where the series came from (API URL or file path)
	Source string `parquet:"source,snappy"`

	// Series is the series name within the source
	Series string `parquet:"series,snappy"`

	// FetchedAt is when the upstream fetch happened
	FetchedAt time.Time `parquet:"fetched_at,snappy"`

	// Label is the x-axis label of the point
	Label string `parquet:"label,snappy"`

	// Field is the named numeric field within the point
	Field string `parquet:"field,snappy"`

	// Value is the numeric value of the field
	Value float64 `parquet:"value,snappy"`
}

// WriteTrendFile writes formatted trend data to a Parquet file.
func WriteTrendFile(outputPath string, data []schema.FormattedDatum, key string) error {
	rows := make([]TrendRow, len(data))
	for i, d := range data {
		rows[i] = TrendRow{
			Rank:       int32(i + 1),
			Label:      d.Label,
			Key:        key,
			Value:      d.Values[key],
			Cumulative: d.Derived[schema.DerivedCumulative],
			Growth:     d.Derived[schema.DerivedGrowth],
			MovingAvg:  d.Derived[schema.DerivedMovingAvg],
		}
	}
	return writeRows(outputPath, rows)
}

// ConvertSnapshotRecords flattens snapshot records to one SnapshotRow per
// named field per point for Parquet export.
func ConvertSnapshotRecords(records []schema.SnapshotRecord) []SnapshotRow {
	var rows []SnapshotRow
	for _, rec := range records {
		for _, p := range rec.Points {
			fields := make([]string, 0, len(p.Values))
			for field := range p.Values {
				fields = append(fields, field)
			}
			sort.Strings(fields) // deterministic row order per point
			for _, field := range fields {
				rows = append(rows, SnapshotRow{
					Source:    rec.Source,
					Series:    rec.Series,
					FetchedAt: rec.FetchedAt,
					Label:     p.Label,
					Field:     field,
					Value:     p.Values[field],
				})
			}
		}
	}
	return rows
}

// WriteSnapshotsParquet writes a slice of SnapshotRow structs to a Parquet file.
func WriteSnapshotsParquet(rows []SnapshotRow, outputPath string) error {
	return writeRows(outputPath, rows)
}

// writeRows creates the output file and writes all records through a
// generic Parquet writer. The schema is derived from the row struct tags.
func writeRows[T any](outputPath string, rows []T) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
