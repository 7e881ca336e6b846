package core

import (
	"sort"
	"strconv"

	"github.com/pulseboard/pulseboard/schema"
)

// SortByValueDesc returns the points ordered by the named field, highest
// first. The sort is stable: ties keep their insertion order. Points missing
// the field sort as zero.
func SortByValueDesc(points []schema.MetricPoint, key string) []schema.MetricPoint {
	out := make([]schema.MetricPoint, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Values[key] > out[j].Values[key]
	})
	return out
}

// Cumulative enriches each point with the running sum of the named field
// over the ordered sequence. Points missing the field contribute zero.
func Cumulative(points []schema.MetricPoint, key string) []schema.FormattedDatum {
	out := make([]schema.FormattedDatum, 0, len(points))
	var sum float64
	for _, p := range points {
		sum += p.Values[key]
		d := schema.NewFormattedDatum(p)
		d.SetDerived(schema.DerivedCumulative, sum)
		out = append(out, d)
	}
	return out
}

// Growth enriches each point with period-over-period growth of the named
// field: (value[i] / value[i-1] - 1) * 100. The first point has no prior
// value and a zero prior value cannot be divided, so both yield the nil
// sentinel.
func Growth(points []schema.MetricPoint, key string) []schema.FormattedDatum {
	out := make([]schema.FormattedDatum, 0, len(points))
	for i, p := range points {
		d := schema.NewFormattedDatum(p)
		if i == 0 {
			d.SetDerivedNil(schema.DerivedGrowth)
		} else if prev := points[i-1].Values[key]; prev == 0 {
			d.SetDerivedNil(schema.DerivedGrowth)
		} else {
			d.SetDerived(schema.DerivedGrowth, (p.Values[key]/prev-1)*100)
		}
		out = append(out, d)
	}
	return out
}

// MovingAverage enriches each point with the simple windowed mean of the
// named field over the trailing period. The first period-1 points have no
// full window yet and carry the nil sentinel, not zero. A period below 1 is
// treated as 1.
func MovingAverage(points []schema.MetricPoint, key string, period int) []schema.FormattedDatum {
	if period < 1 {
		period = 1
	}
	out := make([]schema.FormattedDatum, 0, len(points))
	var window float64
	for i, p := range points {
		window += p.Values[key]
		if i >= period {
			window -= points[i-period].Values[key]
		}
		d := schema.NewFormattedDatum(p)
		if i < period-1 {
			d.SetDerivedNil(schema.DerivedMovingAvg)
		} else {
			d.SetDerived(schema.DerivedMovingAvg, window/float64(period))
		}
		out = append(out, d)
	}
	return out
}

// Trend composes the revenue-style enrichments on one pass: cumulative sum,
// period-over-period growth and a trailing moving average of the named
// field.
func Trend(points []schema.MetricPoint, key string, period int) []schema.FormattedDatum {
	cum := Cumulative(points, key)
	gro := Growth(points, key)
	avg := MovingAverage(points, key, period)
	for i := range cum {
		cum[i].Derived[schema.DerivedGrowth] = gro[i].Derived[schema.DerivedGrowth]
		cum[i].Derived[schema.DerivedMovingAvg] = avg[i].Derived[schema.DerivedMovingAvg]
	}
	return cum
}

// quarterSize is the number of consecutive periods folded into one rollup.
const quarterSize = 3

// Quarterly groups consecutive points into fixed windows of three, summing
// each of the named fields. The last window may cover fewer than three
// periods when the source length is not a multiple of three. Window labels
// are "Q1", "Q2", ... in source order.
func Quarterly(points []schema.MetricPoint, keys []string) []schema.MetricPoint {
	if len(points) == 0 {
		return []schema.MetricPoint{}
	}
	numQuarters := (len(points) + quarterSize - 1) / quarterSize
	out := make([]schema.MetricPoint, 0, numQuarters)
	for q := range numQuarters {
		start := q * quarterSize
		end := min(start+quarterSize, len(points))
		values := make(map[string]float64, len(keys))
		for _, key := range keys {
			var sum float64
			for _, p := range points[start:end] {
				sum += p.Values[key]
			}
			values[key] = sum
		}
		out = append(out, schema.MetricPoint{
			Label:  "Q" + strconv.Itoa(q+1),
			Values: values,
		})
	}
	return out
}
