package core

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/outwriter"
	"github.com/pulseboard/pulseboard/internal/source"
	"github.com/pulseboard/pulseboard/schema"
)

// ExecutorFunc defines the function signature for executing different formatting modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error

// ExecuteTrend runs the trend formatters over a metric series and prints
// results to stdout. It serves as the main entry point for the 'trend' mode.
func ExecuteTrend(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := GetTrendResults(cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteTrendResults(data, cfg, duration)
}

// GetTrendResults loads a metric series through the snapshot store and runs
// the trend formatters over it. Shared by the CLI and MCP entry points.
func GetTrendResults(cfg *contract.Config, mgr contract.SnapshotManager) ([]schema.FormattedDatum, error) {
	if cfg.Key == "" {
		return nil, errors.New("--key is required")
	}
	points, err := cachedLoadSeries(cfg, mgr)
	if err != nil {
		return nil, err
	}
	return limitData(Trend(points, cfg.Key, cfg.Window), cfg.ResultLimit), nil
}

// ExecuteQuarterly rolls a monthly series into quarters and prints results
// to stdout. It serves as the main entry point for the 'quarterly' mode.
func ExecuteQuarterly(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(cfg.Keys) == 0 {
		return errors.New("--keys is required")
	}
	points, err := cachedLoadSeries(cfg, mgr)
	if err != nil {
		return err
	}
	quarters := Quarterly(points, cfg.Keys)
	if len(quarters) > cfg.ResultLimit {
		quarters = quarters[:cfg.ResultLimit]
	}
	duration := time.Since(start)
	return outwriter.WriteQuarterlyResults(quarters, cfg, duration)
}

// ExecuteFunnel enriches a conversion funnel and prints results to stdout.
// It serves as the main entry point for the 'funnel' mode.
func ExecuteFunnel(ctx context.Context, cfg *contract.Config, _ contract.SnapshotManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	stages, err := source.LoadFunnel(cfg.InputFile)
	if err != nil {
		return err
	}
	result := BuildFunnel(stages)
	duration := time.Since(start)
	return outwriter.WriteFunnelResults(result, cfg, duration)
}

// ExecuteCohort computes cohort retention and prints results to stdout.
// It serves as the main entry point for the 'cohort' mode.
func ExecuteCohort(ctx context.Context, cfg *contract.Config, _ contract.SnapshotManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	rows, err := source.LoadCohort(cfg.InputFile)
	if err != nil {
		return err
	}
	result := BuildCohort(rows)
	if len(result.Rows) > cfg.ResultLimit {
		result.Rows = result.Rows[:cfg.ResultLimit]
	}
	duration := time.Since(start)
	return outwriter.WriteCohortResults(result, cfg, duration)
}

// ExecuteBuckets prints the classifier threshold tables, or classifies a
// set of projects when an input file is given.
func ExecuteBuckets(ctx context.Context, cfg *contract.Config, _ contract.SnapshotManager) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg.InputFile == "" {
		return outwriter.WriteBucketTables(ScoreBucketTable(), RetentionBucketTable(), cfg)
	}

	projects, err := source.LoadProjects(cfg.InputFile)
	if err != nil {
		return err
	}
	classified := ClassifyProjects(projects)
	sort.SliceStable(classified, func(i, j int) bool {
		return classified[i].Score > classified[j].Score
	})
	if len(classified) > cfg.ResultLimit {
		classified = classified[:cfg.ResultLimit]
	}
	duration := time.Since(start)
	return outwriter.WriteClassifiedProjects(classified, cfg, duration)
}

// limitData truncates formatted data to the configured result limit.
func limitData(data []schema.FormattedDatum, limit int) []schema.FormattedDatum {
	if limit > 0 && len(data) > limit {
		return data[:limit]
	}
	return data
}
