package schema

// CohortRow is the raw input for one cohort: the users who started in a
// given period, plus their active counts per period offset. ActiveCounts[0]
// is the formation period itself.
type CohortRow struct {
	Label        string `json:"label"`         // Cohort period label, e.g. "2026-W21"
	InitialUsers int    `json:"initial_users"` // Unique users who started in this period
	ActiveCounts []int  `json:"active_counts"` // Active users per period offset
}

// CohortRetention is one computed retention cell of a cohort.
type CohortRetention struct {
	Offset int      `json:"offset"`         // Periods since cohort formation
	Active int      `json:"active"`         // Users from this cohort active at this offset
	Rate   *float64 `json:"retention_rate"` // active / initial * 100; nil when initial is 0
}

// CohortResultRow is a CohortRow enriched with retention percentages and
// per-cohort aggregates. AverageRetention excludes offset 0 (the formation
// period, which is 100 by definition) and skips nil cells.
type CohortResultRow struct {
	Label            string            `json:"label"`
	InitialUsers     int               `json:"initial_users"`
	Retention        []CohortRetention `json:"retention"`
	AverageRetention *float64          `json:"average_retention"`
	ChurnRate        *float64          `json:"churn_rate"` // 100 - average retention
}

// RetentionPoint is one point of the aggregate retention curve: the mean
// retention across all cohorts that have data at the given offset.
type RetentionPoint struct {
	Offset  int     `json:"offset"`
	Rate    float64 `json:"rate"`
	Cohorts int     `json:"cohorts"` // Number of cohorts contributing to this point
}

// CohortSummary provides aggregate statistics across all cohorts.
type CohortSummary struct {
	TotalCohorts int    `json:"total_cohorts"`
	TotalUsers   int    `json:"total_users"`
	BestCohort   string `json:"best_cohort"`  // Label with the highest average retention
	WorstCohort  string `json:"worst_cohort"` // Label with the lowest average retention
}

// CohortResult is the complete cohort retention analysis.
type CohortResult struct {
	Rows    []CohortResultRow `json:"rows"`
	Curve   []RetentionPoint  `json:"retention_curve"`
	Summary CohortSummary     `json:"summary"`
}
