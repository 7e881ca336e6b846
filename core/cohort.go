package core

import "github.com/pulseboard/pulseboard/schema"

// BuildCohort computes retention percentages for each cohort, per-cohort
// averages and churn, the aggregate retention curve, and summary stats.
// A cohort with zero initial users produces nil retention cells rather than
// dividing by zero; such cohorts are excluded from the curve and from the
// best/worst rankings.
func BuildCohort(rows []schema.CohortRow) schema.CohortResult {
	resultRows := make([]schema.CohortResultRow, 0, len(rows))

	// curve accumulators indexed by period offset
	curveSums := map[int]float64{}
	curveCounts := map[int]int{}
	maxOffset := -1

	summary := schema.CohortSummary{TotalCohorts: len(rows)}
	bestAvg, worstAvg := -1.0, -1.0

	for _, row := range rows {
		rr := schema.CohortResultRow{
			Label:        row.Label,
			InitialUsers: row.InitialUsers,
			Retention:    make([]schema.CohortRetention, 0, len(row.ActiveCounts)),
		}
		summary.TotalUsers += row.InitialUsers

		var sum float64
		var tracked int
		for offset, active := range row.ActiveCounts {
			cell := schema.CohortRetention{Offset: offset, Active: active}
			if row.InitialUsers > 0 {
				rate := float64(active) / float64(row.InitialUsers) * 100
				cell.Rate = schema.Ptr(rate)
				if offset > maxOffset {
					maxOffset = offset
				}
				curveSums[offset] += rate
				curveCounts[offset]++
				if offset > 0 {
					// Offset 0 is the formation period and is 100 by
					// definition, so it is excluded from the average.
					sum += rate
					tracked++
				}
			}
			rr.Retention = append(rr.Retention, cell)
		}

		if tracked > 0 {
			avg := sum / float64(tracked)
			rr.AverageRetention = schema.Ptr(avg)
			rr.ChurnRate = schema.Ptr(100 - avg)
			if bestAvg < 0 || avg > bestAvg {
				bestAvg = avg
				summary.BestCohort = row.Label
			}
			if worstAvg < 0 || avg < worstAvg {
				worstAvg = avg
				summary.WorstCohort = row.Label
			}
		}
		resultRows = append(resultRows, rr)
	}

	curve := make([]schema.RetentionPoint, 0, maxOffset+1)
	for offset := 0; offset <= maxOffset; offset++ {
		if curveCounts[offset] == 0 {
			continue
		}
		curve = append(curve, schema.RetentionPoint{
			Offset:  offset,
			Rate:    curveSums[offset] / float64(curveCounts[offset]),
			Cohorts: curveCounts[offset],
		})
	}

	return schema.CohortResult{Rows: resultRows, Curve: curve, Summary: summary}
}
