package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pulseboard/pulseboard/schema"
)

// DownloadPayload is a browser-style chart export: the file contents plus
// the suggested filename and a data URI a rendering host can attach to a
// download link.
type DownloadPayload struct {
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Content  []byte `json:"content"`
	DataURI  string `json:"data_uri"`
}

// BuildCSVDownload serializes a chart's visible series to CSV: a label
// column followed by one column per series. Gap points (nil values) become
// empty cells. The filename derives from the chart title with whitespace
// collapsed to underscores.
func BuildCSVDownload(chart *schema.ChartConfig) (DownloadPayload, error) {
	if chart == nil {
		return DownloadPayload{}, fmt.Errorf("no chart to export")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"label"}
	for _, s := range chart.Series {
		header = append(header, s.Name)
	}
	if err := w.Write(header); err != nil {
		return DownloadPayload{}, err
	}

	// All series share the x-axis of the first one.
	rowCount := 0
	if len(chart.Series) > 0 {
		rowCount = len(chart.Series[0].Points)
	}
	for i := range rowCount {
		rec := []string{chart.Series[0].Points[i].Label}
		for _, s := range chart.Series {
			if i < len(s.Points) && s.Points[i].Value != nil {
				rec = append(rec, fmt.Sprintf("%g", *s.Points[i].Value))
			} else {
				rec = append(rec, "")
			}
		}
		if err := w.Write(rec); err != nil {
			return DownloadPayload{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return DownloadPayload{}, err
	}

	content := buf.Bytes()
	return DownloadPayload{
		Filename: schema.ExportBaseName(chart.Title) + "_data.csv",
		MIME:     "text/csv;charset=utf-8",
		Content:  content,
		DataURI:  "data:text/csv;charset=utf-8," + url.PathEscape(string(content)),
	}, nil
}

// BuildJSONDownload serializes a chart's series to indented JSON. Gap
// points marshal as null.
func BuildJSONDownload(chart *schema.ChartConfig) (DownloadPayload, error) {
	if chart == nil {
		return DownloadPayload{}, fmt.Errorf("no chart to export")
	}

	content, err := json.MarshalIndent(chart.Series, "", "  ")
	if err != nil {
		return DownloadPayload{}, fmt.Errorf("failed to encode JSON: %w", err)
	}

	return DownloadPayload{
		Filename: schema.ExportBaseName(chart.Title) + "_data.json",
		MIME:     "application/json;charset=utf-8",
		Content:  content,
		DataURI:  "data:application/json;charset=utf-8," + url.PathEscape(string(content)),
	}, nil
}
