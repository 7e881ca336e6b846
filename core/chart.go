package core

import "github.com/pulseboard/pulseboard/schema"

// defaultPalette supplies series colors when a descriptor leaves Color
// empty. Assignment cycles through the palette in descriptor order.
var defaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartOptions carries the caller-owned presentation state bound into a
// ChartConfig: title, axis labels and user-added annotations.
type ChartOptions struct {
	Title          string
	XAxis          string
	YAxis          string
	ReferenceLines []schema.ReferenceLine
	ReferenceAreas []schema.ReferenceArea
}

// BuildChart binds formatted data to series descriptors, producing the
// declarative config a rendering host hands to its charting library.
// Returns nil for empty data; the host renders schema.NoDataPlaceholder in
// that case. Each descriptor key is looked up first among derived fields,
// then among raw values; a missing or nil derived field leaves a gap point.
func BuildChart(data []schema.FormattedDatum, descriptors []schema.SeriesDescriptor, opts ChartOptions) *schema.ChartConfig {
	if len(data) == 0 || len(descriptors) == 0 {
		return nil
	}

	config := &schema.ChartConfig{
		Title:          opts.Title,
		XAxis:          opts.XAxis,
		YAxis:          opts.YAxis,
		ShowLegend:     true,
		ShowGrid:       true,
		Series:         make([]schema.ChartSeries, 0, len(descriptors)),
		ReferenceLines: opts.ReferenceLines,
		ReferenceAreas: opts.ReferenceAreas,
	}

	for i, desc := range descriptors {
		series := schema.ChartSeries{
			Name:   desc.Name,
			Color:  desc.Color,
			Kind:   desc.Kind,
			Points: make([]schema.ChartPoint, 0, len(data)),
		}
		if series.Name == "" {
			series.Name = desc.Key
		}
		if series.Color == "" {
			series.Color = defaultPalette[i%len(defaultPalette)]
		}
		if _, ok := schema.ValidChartKinds[series.Kind]; !ok {
			series.Kind = schema.LineChart
		}
		for _, d := range data {
			series.Points = append(series.Points, schema.ChartPoint{
				Label: d.Label,
				Value: lookupSeriesValue(d, desc.Key),
			})
		}
		config.Series = append(config.Series, series)
	}

	return config
}

// lookupSeriesValue resolves a descriptor key against a datum. Derived
// fields win over raw values so a descriptor can plot "growth" even when a
// raw field of the same name exists.
func lookupSeriesValue(d schema.FormattedDatum, key string) *float64 {
	if ptr, ok := d.Derived[schema.DerivedKey(key)]; ok {
		if ptr == nil {
			return nil
		}
		v := *ptr
		return &v
	}
	if v, ok := d.Values[key]; ok {
		return &v
	}
	return nil
}
