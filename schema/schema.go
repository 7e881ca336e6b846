// Package schema has configs, models and shared constants for all parts of pulseboard.
package schema

// MetricPoint represents one x-axis sample of a metric series, e.g. a month,
// a date or a funnel stage. Each point carries one or more named numeric
// fields such as "revenue", "requests" or "retention". Points arrive from an
// upstream data source and are treated as read-only by all formatters.
type MetricPoint struct {
	Label  string             `json:"label"`  // X-axis label for this sample
	Values map[string]float64 `json:"values"` // Named numeric fields for this sample
}

// CloneValues returns a fresh copy of the point's value map.
// Formatters use this so derived output never aliases caller memory.
func (p MetricPoint) CloneValues() map[string]float64 {
	out := make(map[string]float64, len(p.Values))
	for k, v := range p.Values {
		out[k] = v
	}
	return out
}

// FormattedDatum is a MetricPoint enriched with derived display fields.
// Derived values are keyed by DerivedKey. A nil pointer means the field is
// not plottable for this sample (e.g. a moving average before the window is
// full, or a growth rate whose previous value was zero). Formatters always
// return fresh FormattedDatum slices and never mutate their input.
type FormattedDatum struct {
	Label   string                  `json:"label"`
	Values  map[string]float64      `json:"values"`
	Derived map[DerivedKey]*float64 `json:"derived"`
}

// NewFormattedDatum builds a FormattedDatum from a MetricPoint with copied
// values and an empty derived map.
func NewFormattedDatum(p MetricPoint) FormattedDatum {
	return FormattedDatum{
		Label:   p.Label,
		Values:  p.CloneValues(),
		Derived: make(map[DerivedKey]*float64),
	}
}

// DerivedValue returns the derived field for key, or (0, false) when the
// field is absent or marked not-plottable.
func (d FormattedDatum) DerivedValue(key DerivedKey) (float64, bool) {
	v, ok := d.Derived[key]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// SetDerived stores a plottable derived value under key.
func (d FormattedDatum) SetDerived(key DerivedKey, v float64) {
	val := v
	d.Derived[key] = &val
}

// SetDerivedNil marks the derived field under key as not plottable.
func (d FormattedDatum) SetDerivedNil(key DerivedKey) {
	d.Derived[key] = nil
}
