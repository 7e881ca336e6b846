// Package source loads raw metric data for the formatters. Inputs are
// treated as already-validated upstream data: decoding errors surface, but
// no semantic validation happens here.
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pulseboard/pulseboard/schema"
)

// LoadSeries reads a JSON array of metric points from path.
func LoadSeries(path string) ([]schema.MetricPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read series file: %w", err)
	}
	var points []schema.MetricPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to parse series file %q: %w", path, err)
	}
	return points, nil
}

// LoadFunnel reads a JSON array of funnel stages from path.
func LoadFunnel(path string) ([]schema.FunnelStage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read funnel file: %w", err)
	}
	var stages []schema.FunnelStage
	if err := json.Unmarshal(data, &stages); err != nil {
		return nil, fmt.Errorf("failed to parse funnel file %q: %w", path, err)
	}
	return stages, nil
}

// LoadProjects reads a JSON array of project metrics from path.
func LoadProjects(path string) ([]schema.ProjectMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects file: %w", err)
	}
	var projects []schema.ProjectMetrics
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects file %q: %w", path, err)
	}
	return projects, nil
}

// LoadCohort reads a JSON array of cohort rows from path.
func LoadCohort(path string) ([]schema.CohortRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cohort file: %w", err)
	}
	var rows []schema.CohortRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse cohort file %q: %w", path, err)
	}
	return rows, nil
}
