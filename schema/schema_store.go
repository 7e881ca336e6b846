package schema

import "time"

// SnapshotStatus represents the status of the snapshot store.
type SnapshotStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// SnapshotRecord is one cached upstream fetch: a named metric series frozen
// at fetch time, keyed by source and series name.
type SnapshotRecord struct {
	Source    string        `json:"source"`     // Where the series came from (API URL or file path)
	Series    string        `json:"series"`     // Series name within the source
	FetchedAt time.Time     `json:"fetched_at"` // When the upstream fetch happened
	Points    []MetricPoint `json:"points"`
}
