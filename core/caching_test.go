package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/snapstore"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeSeriesFile(t *testing.T, points []schema.MetricPoint) string {
	t.Helper()
	data, err := json.Marshal(points)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func snapshotPayload(t *testing.T, points []schema.MetricPoint) []byte {
	t.Helper()
	data, err := json.Marshal(schema.SnapshotRecord{
		Source:    "cached",
		Series:    "revenue",
		FetchedAt: time.Now(),
		Points:    points,
	})
	require.NoError(t, err)
	return data
}

func managerWithStore(store contract.SnapshotStore) *snapstore.MockSnapshotManager {
	mgr := &snapstore.MockSnapshotManager{}
	mgr.On("GetSnapshotStore").Return(store)
	return mgr
}

func TestCachedLoadSeriesHit(t *testing.T) {
	cached := []schema.MetricPoint{{Label: "Jan", Values: map[string]float64{"revenue": 1}}}
	store := &snapstore.MockSnapshotStore{}
	store.On("Get", "absent.json:revenue").
		Return(snapshotPayload(t, cached), currentSnapshotVersion, time.Now().Unix(), nil)

	// The input file does not exist, so a hit is the only way this succeeds.
	cfg := &contract.Config{InputFile: "absent.json", Key: "revenue"}
	points, err := cachedLoadSeries(cfg, managerWithStore(store))
	require.NoError(t, err)
	assert.Equal(t, cached, points)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedLoadSeriesMissStoresSnapshot(t *testing.T) {
	onDisk := []schema.MetricPoint{{Label: "Jan", Values: map[string]float64{"revenue": 1000}}}
	path := writeSeriesFile(t, onDisk)

	store := &snapstore.MockSnapshotStore{}
	key := path + ":revenue"
	store.On("Get", key).Return([]byte(nil), 0, int64(0), assert.AnError)
	store.On("Set", key, mock.Anything, currentSnapshotVersion, mock.Anything).Return(nil)

	cfg := &contract.Config{InputFile: path, Key: "revenue"}
	points, err := cachedLoadSeries(cfg, managerWithStore(store))
	require.NoError(t, err)
	assert.Equal(t, onDisk, points)
	store.AssertExpectations(t)
}

func TestCachedLoadSeriesStaleFallsBack(t *testing.T) {
	onDisk := []schema.MetricPoint{{Label: "Feb", Values: map[string]float64{"revenue": 2}}}
	path := writeSeriesFile(t, onDisk)

	stale := time.Now().Add(-snapshotMaxAge - time.Hour).Unix()
	store := &snapstore.MockSnapshotStore{}
	store.On("Get", mock.Anything).
		Return(snapshotPayload(t, []schema.MetricPoint{{Label: "old"}}), currentSnapshotVersion, stale, nil)
	store.On("Set", mock.Anything, mock.Anything, currentSnapshotVersion, mock.Anything).Return(nil)

	cfg := &contract.Config{InputFile: path, Key: "revenue"}
	points, err := cachedLoadSeries(cfg, managerWithStore(store))
	require.NoError(t, err)
	assert.Equal(t, onDisk, points, "stale entries are refetched")
}

func TestCachedLoadSeriesVersionMismatchFallsBack(t *testing.T) {
	onDisk := []schema.MetricPoint{{Label: "Mar", Values: map[string]float64{"revenue": 3}}}
	path := writeSeriesFile(t, onDisk)

	store := &snapstore.MockSnapshotStore{}
	store.On("Get", mock.Anything).
		Return(snapshotPayload(t, []schema.MetricPoint{{Label: "old"}}), currentSnapshotVersion+1, time.Now().Unix(), nil)
	store.On("Set", mock.Anything, mock.Anything, currentSnapshotVersion, mock.Anything).Return(nil)

	cfg := &contract.Config{InputFile: path, Key: "revenue"}
	points, err := cachedLoadSeries(cfg, managerWithStore(store))
	require.NoError(t, err)
	assert.Equal(t, onDisk, points)
}

func TestCachedLoadSeriesWithoutManager(t *testing.T) {
	onDisk := []schema.MetricPoint{{Label: "Apr", Values: map[string]float64{"revenue": 4}}}
	path := writeSeriesFile(t, onDisk)

	cfg := &contract.Config{InputFile: path, Key: "revenue"}
	points, err := cachedLoadSeries(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, onDisk, points)
}

func TestCachedLoadSeriesSetFailureIsIgnored(t *testing.T) {
	onDisk := []schema.MetricPoint{{Label: "May", Values: map[string]float64{"revenue": 5}}}
	path := writeSeriesFile(t, onDisk)

	store := &snapstore.MockSnapshotStore{}
	store.On("Get", mock.Anything).Return([]byte(nil), 0, int64(0), assert.AnError)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	cfg := &contract.Config{InputFile: path, Key: "revenue"}
	points, err := cachedLoadSeries(cfg, managerWithStore(store))
	require.NoError(t, err, "a failed freeze must not fail the read")
	assert.Equal(t, onDisk, points)
}

func TestGetTrendResults(t *testing.T) {
	path := writeSeriesFile(t, []schema.MetricPoint{
		{Label: "Jan", Values: map[string]float64{"revenue": 100}},
		{Label: "Feb", Values: map[string]float64{"revenue": 150}},
		{Label: "Mar", Values: map[string]float64{"revenue": 225}},
	})

	cfg := &contract.Config{InputFile: path, Key: "revenue", Window: 2, ResultLimit: 2}
	data, err := GetTrendResults(cfg, nil)
	require.NoError(t, err)
	require.Len(t, data, 2, "result limit truncates the output")

	cum, ok := data[1].DerivedValue(schema.DerivedCumulative)
	require.True(t, ok)
	assert.InDelta(t, 250.0, cum, 0.001)
	gro, ok := data[1].DerivedValue(schema.DerivedGrowth)
	require.True(t, ok)
	assert.InDelta(t, 50.0, gro, 0.001)
}

func TestGetTrendResultsRequiresKey(t *testing.T) {
	_, err := GetTrendResults(&contract.Config{InputFile: "x.json"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--key is required")
}
