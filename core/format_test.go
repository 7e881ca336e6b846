package core

import (
	"testing"

	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seriesOf(key string, values ...float64) []schema.MetricPoint {
	points := make([]schema.MetricPoint, 0, len(values))
	for i, v := range values {
		points = append(points, schema.MetricPoint{
			Label:  "P" + string(rune('1'+i)),
			Values: map[string]float64{key: v},
		})
	}
	return points
}

// TestCumulative tests the running-sum enrichment.
func TestCumulative(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected []float64
	}{
		{
			name:     "two points",
			values:   []float64{1000, 1200},
			expected: []float64{1000, 2200},
		},
		{
			name:     "single point",
			values:   []float64{42},
			expected: []float64{42},
		},
		{
			name:     "negative values allowed",
			values:   []float64{10, -4, 2},
			expected: []float64{10, 6, 8},
		},
		{
			name:     "empty series",
			values:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Cumulative(seriesOf("revenue", tt.values...), "revenue")
			require.Len(t, out, len(tt.expected))
			for i, want := range tt.expected {
				got, ok := out[i].DerivedValue(schema.DerivedCumulative)
				require.True(t, ok, "point %d should be plottable", i)
				assert.InDelta(t, want, got, 0.001)
			}
		})
	}
}

// TestCumulativeDoesNotMutateInput ensures formatters return fresh slices.
func TestCumulativeDoesNotMutateInput(t *testing.T) {
	points := seriesOf("revenue", 1, 2, 3)
	out := Cumulative(points, "revenue")

	out[0].Values["revenue"] = 999
	assert.Equal(t, 1.0, points[0].Values["revenue"], "input values must stay untouched")
}

// TestGrowth tests period-over-period growth, including its nil cells.
func TestGrowth(t *testing.T) {
	out := Growth(seriesOf("requests", 100, 150, 0, 60), "requests")
	require.Len(t, out, 4)

	_, ok := out[0].DerivedValue(schema.DerivedGrowth)
	assert.False(t, ok, "first point has no prior value")

	got, ok := out[1].DerivedValue(schema.DerivedGrowth)
	require.True(t, ok)
	assert.InDelta(t, 50.0, got, 0.001)

	got, ok = out[2].DerivedValue(schema.DerivedGrowth)
	require.True(t, ok)
	assert.InDelta(t, -100.0, got, 0.001)

	_, ok = out[3].DerivedValue(schema.DerivedGrowth)
	assert.False(t, ok, "zero prior value cannot be divided")
}

// TestMovingAverage tests window fill behavior and the nil warmup cells.
func TestMovingAverage(t *testing.T) {
	out := MovingAverage(seriesOf("score", 1, 2, 3, 4), "score", 3)
	require.Len(t, out, 4)

	for i := range 2 {
		_, ok := out[i].DerivedValue(schema.DerivedMovingAvg)
		assert.False(t, ok, "point %d precedes a full window", i)
	}

	got, ok := out[2].DerivedValue(schema.DerivedMovingAvg)
	require.True(t, ok)
	assert.InDelta(t, 2.0, got, 0.001)

	got, ok = out[3].DerivedValue(schema.DerivedMovingAvg)
	require.True(t, ok)
	assert.InDelta(t, 3.0, got, 0.001)
}

// TestMovingAveragePeriodFloor treats a period below 1 as 1.
func TestMovingAveragePeriodFloor(t *testing.T) {
	out := MovingAverage(seriesOf("score", 5, 7), "score", 0)
	require.Len(t, out, 2)

	got, ok := out[0].DerivedValue(schema.DerivedMovingAvg)
	require.True(t, ok)
	assert.InDelta(t, 5.0, got, 0.001)

	got, ok = out[1].DerivedValue(schema.DerivedMovingAvg)
	require.True(t, ok)
	assert.InDelta(t, 7.0, got, 0.001)
}

// TestTrend verifies that the composed enrichment carries all three fields.
func TestTrend(t *testing.T) {
	out := Trend(seriesOf("revenue", 100, 200, 300), "revenue", 2)
	require.Len(t, out, 3)

	cum, ok := out[2].DerivedValue(schema.DerivedCumulative)
	require.True(t, ok)
	assert.InDelta(t, 600.0, cum, 0.001)

	gro, ok := out[2].DerivedValue(schema.DerivedGrowth)
	require.True(t, ok)
	assert.InDelta(t, 50.0, gro, 0.001)

	avg, ok := out[2].DerivedValue(schema.DerivedMovingAvg)
	require.True(t, ok)
	assert.InDelta(t, 250.0, avg, 0.001)

	_, ok = out[0].DerivedValue(schema.DerivedGrowth)
	assert.False(t, ok)
}

// TestSortByValueDesc checks ordering, stability and input preservation.
func TestSortByValueDesc(t *testing.T) {
	points := []schema.MetricPoint{
		{Label: "a", Values: map[string]float64{"v": 2}},
		{Label: "b", Values: map[string]float64{"v": 5}},
		{Label: "c", Values: map[string]float64{"v": 2}},
		{Label: "d", Values: map[string]float64{}},
	}

	out := SortByValueDesc(points, "v")
	require.Len(t, out, 4)
	assert.Equal(t, "b", out[0].Label)
	assert.Equal(t, "a", out[1].Label, "ties keep insertion order")
	assert.Equal(t, "c", out[2].Label)
	assert.Equal(t, "d", out[3].Label, "missing field sorts as zero")

	assert.Equal(t, "a", points[0].Label, "input order must stay untouched")
}

// TestQuarterly tests the fixed three-period rollup.
func TestQuarterly(t *testing.T) {
	points := []schema.MetricPoint{
		{Label: "Jan", Values: map[string]float64{"revenue": 10, "cost": 1}},
		{Label: "Feb", Values: map[string]float64{"revenue": 20, "cost": 2}},
		{Label: "Mar", Values: map[string]float64{"revenue": 30, "cost": 3}},
		{Label: "Apr", Values: map[string]float64{"revenue": 40, "cost": 4}},
		{Label: "May", Values: map[string]float64{"revenue": 50, "cost": 5}},
	}

	out := Quarterly(points, []string{"revenue", "cost"})
	require.Len(t, out, 2)

	assert.Equal(t, "Q1", out[0].Label)
	assert.InDelta(t, 60.0, out[0].Values["revenue"], 0.001)
	assert.InDelta(t, 6.0, out[0].Values["cost"], 0.001)

	assert.Equal(t, "Q2", out[1].Label, "trailing short window still rolls up")
	assert.InDelta(t, 90.0, out[1].Values["revenue"], 0.001)
	assert.InDelta(t, 9.0, out[1].Values["cost"], 0.001)
}

// TestQuarterlyEmpty returns an empty slice, never an error.
func TestQuarterlyEmpty(t *testing.T) {
	out := Quarterly(nil, []string{"revenue"})
	assert.Empty(t, out)
}
