// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pulseboard/pulseboard/internal/contract"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
// fmtNullable renders a nil derived field as the given placeholder; non-nil
// values render at the configured precision.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtNullable func(*float64, string) string) {
	numFmt := "%.*f"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	fmtNullable = func(v *float64, placeholder string) string {
		if v == nil {
			return placeholder
		}
		return fmtFloat(*v)
	}
	return fmtFloat, fmtNullable
}

// Placeholders for not-plottable derived cells.
const (
	tablePlaceholder = "n/a"
	csvPlaceholder   = "" // empty cells keep CSV columns machine-friendly
)

// getMaxTableLabelWidth calculates the maximum width for x-axis labels in
// table output based on terminal width and table configuration.
func getMaxTableLabelWidth(cfg *contract.Config, valueColumns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for each numeric column with borders/padding
	baseWidth := valueColumns * 14

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 10

	// Calculate available space for the label
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable label width
		return 12
	}
	if available > 40 {
		// Maximum label width to keep rows compact
		return 40
	}
	return available
}
