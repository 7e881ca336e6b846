package core

import (
	"testing"

	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartData(t *testing.T) []schema.FormattedDatum {
	t.Helper()
	data := Trend([]schema.MetricPoint{
		{Label: "Jan", Values: map[string]float64{"revenue": 100}},
		{Label: "Feb", Values: map[string]float64{"revenue": 150}},
	}, "revenue", 2)
	require.Len(t, data, 2)
	return data
}

// TestBuildChartEmpty returns nil so the host can show its placeholder.
func TestBuildChartEmpty(t *testing.T) {
	assert.Nil(t, BuildChart(nil, []schema.SeriesDescriptor{{Key: "revenue"}}, ChartOptions{}))
	assert.Nil(t, BuildChart(chartData(t), nil, ChartOptions{}))
}

// TestBuildChartDefaults covers name, color and kind defaulting.
func TestBuildChartDefaults(t *testing.T) {
	config := BuildChart(chartData(t), []schema.SeriesDescriptor{
		{Key: "revenue"},
		{Key: string(schema.DerivedCumulative), Name: "Running total", Color: "#112233", Kind: schema.BarChart},
	}, ChartOptions{Title: "Monthly Revenue", XAxis: "Month", YAxis: "USD"})
	require.NotNil(t, config)

	assert.Equal(t, "Monthly Revenue", config.Title)
	assert.True(t, config.ShowLegend)
	assert.True(t, config.ShowGrid)
	require.Len(t, config.Series, 2)

	first := config.Series[0]
	assert.Equal(t, "revenue", first.Name, "name defaults to the key")
	assert.Equal(t, defaultPalette[0], first.Color)
	assert.Equal(t, schema.LineChart, first.Kind, "unset kind defaults to line")

	second := config.Series[1]
	assert.Equal(t, "Running total", second.Name)
	assert.Equal(t, "#112233", second.Color)
	assert.Equal(t, schema.BarChart, second.Kind)
}

// TestBuildChartGapPoints maps nil derived cells to nil chart points.
func TestBuildChartGapPoints(t *testing.T) {
	config := BuildChart(chartData(t), []schema.SeriesDescriptor{
		{Key: string(schema.DerivedGrowth)},
	}, ChartOptions{})
	require.NotNil(t, config)
	require.Len(t, config.Series, 1)
	require.Len(t, config.Series[0].Points, 2)

	assert.Nil(t, config.Series[0].Points[0].Value, "first growth cell is a gap")
	require.NotNil(t, config.Series[0].Points[1].Value)
	assert.InDelta(t, 50.0, *config.Series[0].Points[1].Value, 0.001)
}

// TestBuildChartDerivedWins plots the derived field when a raw value shares
// its key.
func TestBuildChartDerivedWins(t *testing.T) {
	data := []schema.FormattedDatum{
		{
			Label:   "Jan",
			Values:  map[string]float64{string(schema.DerivedCumulative): 1},
			Derived: map[schema.DerivedKey]*float64{schema.DerivedCumulative: schema.Ptr(7.0)},
		},
	}
	config := BuildChart(data, []schema.SeriesDescriptor{
		{Key: string(schema.DerivedCumulative)},
	}, ChartOptions{})
	require.NotNil(t, config)
	require.NotNil(t, config.Series[0].Points[0].Value)
	assert.InDelta(t, 7.0, *config.Series[0].Points[0].Value, 0.001)
}

// TestBuildChartAnnotations passes reference annotations through untouched.
func TestBuildChartAnnotations(t *testing.T) {
	lines := []schema.ReferenceLine{{Value: 120, Label: "Target", Orientation: "horizontal"}}
	areas := []schema.ReferenceArea{{Start: 0, End: 100, Label: "Ramp"}}
	config := BuildChart(chartData(t), []schema.SeriesDescriptor{{Key: "revenue"}}, ChartOptions{
		ReferenceLines: lines,
		ReferenceAreas: areas,
	})
	require.NotNil(t, config)
	assert.Equal(t, lines, config.ReferenceLines)
	assert.Equal(t, areas, config.ReferenceAreas)
}
