package schema

// FunnelStage is one raw step of a conversion funnel, ordered top to bottom.
type FunnelStage struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FunnelStep is a FunnelStage enriched with conversion fields. ConversionRate
// and Dropoff are nil on the terminal step (there is no next stage) and on
// any step whose value is zero (division by zero yields the nil sentinel).
type FunnelStep struct {
	Name           string   `json:"name"`
	Value          float64  `json:"value"`
	ConversionRate *float64 `json:"conversion_rate"` // value[i+1] / value[i] * 100, 1 decimal
	Dropoff        *float64 `json:"dropoff"`         // 100 - conversion_rate, 1 decimal
	PercentOfTop   float64  `json:"percent_of_top"`  // value[i] / value[0] * 100
}

// FunnelResult holds the enriched funnel plus aggregate conversion. Overall
// is nil when the funnel has fewer than two stages or the top stage is zero.
type FunnelResult struct {
	Steps   []FunnelStep `json:"steps"`
	Overall *float64     `json:"overall_conversion"` // last value / first value * 100
}
