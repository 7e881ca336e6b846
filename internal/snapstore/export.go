package snapstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/pulseboard/pulseboard/internal/parquet"
	"github.com/pulseboard/pulseboard/schema"
)

// ExecuteSnapshotExport performs the actual export of cached snapshots to a Parquet file.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the snapshot store
	store := Manager.GetSnapshotStore()
	if store == nil {
		return errors.New("snapshot store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}

	if status.TotalEntries == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total snapshots: %d\n", status.TotalEntries)

	// Retrieve and decode all snapshots
	payloads, err := store.GetAll()
	if err != nil {
		return fmt.Errorf("failed to retrieve snapshots: %w", err)
	}

	keys := make([]string, 0, len(payloads))
	for key := range payloads {
		keys = append(keys, key)
	}
	sort.Strings(keys) // stable export order

	var records []schema.SnapshotRecord
	for _, key := range keys {
		var rec schema.SnapshotRecord
		if err := json.Unmarshal(payloads[key], &rec); err != nil {
			return fmt.Errorf("failed to decode snapshot %q: %w", key, err)
		}
		records = append(records, rec)
	}

	// Convert to Parquet format and write
	rows := parquet.ConvertSnapshotRecords(records)
	outputPath := outputFile + ".snapshots.parquet"
	if err := parquet.WriteSnapshotsParquet(rows, outputPath); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	fmt.Printf("Exported %d snapshot rows to: %s\n", len(rows), outputPath)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
