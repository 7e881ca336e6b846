package schema

// SeriesDescriptor describes one plotted series: which value field it reads,
// how it is titled in legends and tooltips, and how it is drawn.
type SeriesDescriptor struct {
	Key   string    `json:"key"`   // Value field the series reads from each datum
	Name  string    `json:"name"`  // Display name in legend and tooltips
	Color string    `json:"color"` // Hex color; defaulted from the palette when empty
	Kind  ChartKind `json:"kind"`  // line, bar or area
}

// ChartPoint is a single (label, value) pair of a rendered series. A nil
// value means the point is not plottable and should leave a gap rather than
// render as zero.
type ChartPoint struct {
	Label string   `json:"label"`
	Value *float64 `json:"value"`
}

// ChartSeries is one named, colored series across the shared x-axis.
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Kind   ChartKind    `json:"kind"`
	Points []ChartPoint `json:"points"`
}

// ReferenceLine is a user-added horizontal or vertical annotation.
type ReferenceLine struct {
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Color       string  `json:"color"`
	Orientation string  `json:"orientation"` // "horizontal" or "vertical"
}

// ReferenceArea is a user-added shaded band annotation.
type ReferenceArea struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// ChartConfig is the declarative description a rendering host binds to its
// charting library. It is a pure function of the formatted data plus the
// caller's series descriptors and annotations.
type ChartConfig struct {
	Title          string          `json:"title"`
	XAxis          string          `json:"x_axis"`
	YAxis          string          `json:"y_axis"`
	ShowLegend     bool            `json:"show_legend"`
	ShowGrid       bool            `json:"show_grid"`
	Series         []ChartSeries   `json:"series"`
	ReferenceLines []ReferenceLine `json:"reference_lines,omitempty"`
	ReferenceAreas []ReferenceArea `json:"reference_areas,omitempty"`
}

// NoDataPlaceholder is what a rendering host shows instead of a chart when
// the source series is empty. Formatters return empty output for empty
// input; detecting that state is the component layer's job.
const NoDataPlaceholder = "No data available"
