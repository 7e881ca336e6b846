package core

import "github.com/pulseboard/pulseboard/schema"

// Score buckets for values in [0,1], lower bounds inclusive. The ranges are
// contiguous and cover the whole interval.
var scoreBuckets = []struct {
	min    float64
	bucket schema.ScoreBucket
}{
	{0.8, schema.ScoreBucket{Label: "Excellent", Color: "#4CAF50"}},
	{0.6, schema.ScoreBucket{Label: "Very Good", Color: "#8BC34A"}},
	{0.4, schema.ScoreBucket{Label: "Good", Color: "#FFEB3B"}},
	{0.2, schema.ScoreBucket{Label: "Fair", Color: "#FF9800"}},
	{0.0, schema.ScoreBucket{Label: "Limited", Color: "#F44336"}},
}

// Retention buckets keyed on a percentage in [0,100]. An exact 100 gets its
// own bucket. Kept separate from the score table since the boundary counts
// differ.
var retentionBuckets = []struct {
	min    float64
	bucket schema.ScoreBucket
}{
	{100, schema.ScoreBucket{Label: "Complete", Color: "#1A237E"}},
	{80, schema.ScoreBucket{Label: "Outstanding", Color: "#2196F3"}},
	{60, schema.ScoreBucket{Label: "Strong", Color: "#4CAF50"}},
	{40, schema.ScoreBucket{Label: "Healthy", Color: "#8BC34A"}},
	{20, schema.ScoreBucket{Label: "Moderate", Color: "#FFEB3B"}},
	{10, schema.ScoreBucket{Label: "Weak", Color: "#FF9800"}},
	{0, schema.ScoreBucket{Label: "Critical", Color: "#F44336"}},
}

// ClassifyScore maps a score in [0,1] to its labeled color bucket.
// Out-of-range input clamps to the nearest bucket; the mapping is monotonic
// and never panics.
func ClassifyScore(score float64) schema.ScoreBucket {
	for _, b := range scoreBuckets {
		if score >= b.min {
			return b.bucket
		}
	}
	return scoreBuckets[len(scoreBuckets)-1].bucket
}

// ClassifyRetention maps a retention percentage in [0,100] to its labeled
// color bucket. Out-of-range input clamps; never panics.
func ClassifyRetention(pct float64) schema.ScoreBucket {
	for _, b := range retentionBuckets {
		if pct >= b.min {
			return b.bucket
		}
	}
	return retentionBuckets[len(retentionBuckets)-1].bucket
}

// ScoreBucketTable returns the score bucket table in descending order with
// each bucket's inclusive lower bound. Used by informational output.
func ScoreBucketTable() []schema.BucketRow {
	rows := make([]schema.BucketRow, 0, len(scoreBuckets))
	for _, b := range scoreBuckets {
		rows = append(rows, schema.BucketRow{Min: b.min, Label: b.bucket.Label, Color: b.bucket.Color})
	}
	return rows
}

// RetentionBucketTable returns the retention bucket table in descending
// order with each bucket's inclusive lower bound.
func RetentionBucketTable() []schema.BucketRow {
	rows := make([]schema.BucketRow, 0, len(retentionBuckets))
	for _, b := range retentionBuckets {
		rows = append(rows, schema.BucketRow{Min: b.min, Label: b.bucket.Label, Color: b.bucket.Color})
	}
	return rows
}

// ClassifyProjects attaches a score bucket to each project in an overview.
func ClassifyProjects(projects []schema.ProjectMetrics) []schema.ClassifiedProject {
	out := make([]schema.ClassifiedProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, schema.ClassifiedProject{
			ProjectMetrics: p,
			Bucket:         ClassifyScore(p.Score),
		})
	}
	return out
}
