package schema

import (
	"math"
	"strings"
)

// Round1 rounds to one decimal place. Conversion and drop-off percentages
// are reported at this precision.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ExportBaseName converts a chart title into the base of a download
// filename: whitespace runs collapse to single underscores, e.g.
// "Monthly Revenue" becomes "Monthly_Revenue". Callers append
// "_data.csv" or "_data.json".
func ExportBaseName(title string) string {
	fields := strings.Fields(strings.TrimSpace(title))
	if len(fields) == 0 {
		return "chart"
	}
	return strings.Join(fields, "_")
}

// Ptr returns a pointer to v. Used to build nullable derived fields.
func Ptr(v float64) *float64 {
	return &v
}
