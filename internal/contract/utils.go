package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pulseboard/pulseboard/schema"
)

// Color variables for console output, keyed by score bucket label.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	VeryGoodColor  = color.New(color.FgGreen)
	GoodColor      = color.New(color.FgYellow)
	FairColor      = color.New(color.FgMagenta)
	LimitedColor   = color.New(color.FgRed, color.Bold)
)

// ColorBucketLabel returns the bucket label for console output, colored to
// match its severity when useColors is set. CSV and JSON output always use
// the plain label.
func ColorBucketLabel(bucket schema.ScoreBucket, useColors bool) string {
	if !useColors {
		return bucket.Label
	}
	switch bucket.Label {
	case "Excellent", "Outstanding", "Complete", "Strong":
		return ExcellentColor.Sprint(bucket.Label)
	case "Very Good", "Healthy":
		return VeryGoodColor.Sprint(bucket.Label)
	case "Good", "Moderate":
		return GoodColor.Sprint(bucket.Label)
	case "Fair", "Weak":
		return FairColor.Sprint(bucket.Label)
	default: // "Limited", "Critical"
		return LimitedColor.Sprint(bucket.Label)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pulseboard_snapshots.db"
	}
	return filepath.Join(homeDir, ".pulseboard_snapshots.db")
}

// TruncateLabel truncates an x-axis label to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both the
// ellipsis and at least one character of content.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
