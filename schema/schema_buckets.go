package schema

// ScoreBucket is the classification of a continuous score into one of a
// fixed set of ordered, labeled color ranges.
type ScoreBucket struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// BucketRow is one row of a classifier table for display purposes.
type BucketRow struct {
	Min   float64 `json:"min"` // Inclusive lower bound
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// ClassifiedProject pairs a project with its health bucket.
type ClassifiedProject struct {
	ProjectMetrics
	Bucket ScoreBucket `json:"bucket"`
}
