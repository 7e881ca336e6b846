package core

import (
	"testing"

	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassifyScore walks the score table including its lower bounds.
func TestClassifyScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
		color    string
	}{
		{"high score", 0.85, "Excellent", "#4CAF50"},
		{"excellent boundary", 0.8, "Excellent", "#4CAF50"},
		{"very good", 0.7, "Very Good", "#8BC34A"},
		{"very good boundary", 0.6, "Very Good", "#8BC34A"},
		{"good boundary", 0.4, "Good", "#FFEB3B"},
		{"fair boundary", 0.2, "Fair", "#FF9800"},
		{"low score", 0.15, "Limited", "#F44336"},
		{"zero", 0.0, "Limited", "#F44336"},
		{"above range clamps", 1.4, "Excellent", "#4CAF50"},
		{"below range clamps", -0.3, "Limited", "#F44336"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := ClassifyScore(tt.score)
			assert.Equal(t, tt.expected, bucket.Label)
			assert.Equal(t, tt.color, bucket.Color)
		})
	}
}

// TestClassifyRetention walks the retention table, where an exact 100 has
// its own bucket.
func TestClassifyRetention(t *testing.T) {
	tests := []struct {
		name     string
		pct      float64
		expected string
	}{
		{"complete", 100, "Complete"},
		{"just under complete", 99.9, "Outstanding"},
		{"outstanding boundary", 80, "Outstanding"},
		{"strong boundary", 60, "Strong"},
		{"healthy boundary", 40, "Healthy"},
		{"moderate boundary", 20, "Moderate"},
		{"weak boundary", 10, "Weak"},
		{"critical", 3, "Critical"},
		{"zero", 0, "Critical"},
		{"below range clamps", -5, "Critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRetention(tt.pct).Label)
		})
	}
}

// TestBucketTables checks ordering and bounds of the informational tables.
func TestBucketTables(t *testing.T) {
	score := ScoreBucketTable()
	require.Len(t, score, 5)
	assert.Equal(t, schema.BucketRow{Min: 0.8, Label: "Excellent", Color: "#4CAF50"}, score[0])
	assert.Equal(t, schema.BucketRow{Min: 0.0, Label: "Limited", Color: "#F44336"}, score[4])

	retention := RetentionBucketTable()
	require.Len(t, retention, 7)
	assert.Equal(t, schema.BucketRow{Min: 100, Label: "Complete", Color: "#1A237E"}, retention[0])
	assert.Equal(t, schema.BucketRow{Min: 10, Label: "Weak", Color: "#FF9800"}, retention[5])
	assert.Equal(t, schema.BucketRow{Min: 0, Label: "Critical", Color: "#F44336"}, retention[6])
}

// TestClassifyProjects preserves input order and attaches the right bucket.
func TestClassifyProjects(t *testing.T) {
	out := ClassifyProjects([]schema.ProjectMetrics{
		{Name: "alpha", Score: 0.9},
		{Name: "beta", Score: 0.35},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "alpha", out[0].Name)
	assert.Equal(t, "Excellent", out[0].Bucket.Label)
	assert.Equal(t, "beta", out[1].Name)
	assert.Equal(t, "Fair", out[1].Bucket.Label)
}
