package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/source"
	"github.com/pulseboard/pulseboard/schema"
)

// currentSnapshotVersion defines the version of the snapshot payload schema
const currentSnapshotVersion = 1

// snapshotMaxAge bounds how long a cached series is served before refetch
const snapshotMaxAge = 7 * 24 * time.Hour

// cachedLoadSeries loads a metric series through the snapshot store. On a
// miss the series is read from disk and frozen into the store so later runs
// and the parquet export see the same data.
func cachedLoadSeries(cfg *contract.Config, mgr contract.SnapshotManager) ([]schema.MetricPoint, error) {
	var store contract.SnapshotStore
	if mgr != nil {
		store = mgr.GetSnapshotStore()
	}
	if store == nil {
		// Fallback to direct load
		return source.LoadSeries(cfg.InputFile)
	}

	key := generateSnapshotKey(cfg)

	// Check for snapshot hit
	if points := checkSnapshotHit(store, key); points != nil {
		return points, nil
	}

	// Snapshot miss: load and store
	return loadAndStore(cfg, store, key)
}

// checkSnapshotHit attempts to retrieve and validate a cached series
func checkSnapshotHit(store contract.SnapshotStore, key string) []schema.MetricPoint {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Snapshot miss
	}

	// Validate version and staleness
	if version == currentSnapshotVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= snapshotMaxAge {
			var rec schema.SnapshotRecord
			if err := json.Unmarshal(data, &rec); err == nil {
				return rec.Points // Snapshot hit
			}
		}
	}

	return nil // Snapshot miss (stale or version mismatch)
}

// loadAndStore loads the series from disk and freezes it in the store
func loadAndStore(cfg *contract.Config, store contract.SnapshotStore, key string) ([]schema.MetricPoint, error) {
	points, err := source.LoadSeries(cfg.InputFile)
	if err != nil {
		return nil, err
	}

	rec := schema.SnapshotRecord{
		Source:    cfg.InputFile,
		Series:    cfg.Key,
		FetchedAt: time.Now(),
		Points:    points,
	}
	if data, err := json.Marshal(rec); err == nil {
		_ = store.Set(key, data, currentSnapshotVersion, time.Now().Unix())
	}

	return points, nil
}

// generateSnapshotKey creates a unique key based on the source and series
func generateSnapshotKey(cfg *contract.Config) string {
	return fmt.Sprintf("%s:%s", cfg.InputFile, cfg.Key)
}
