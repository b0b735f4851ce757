// Package telemetry replays recorded telemetry ticks.
package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"trackmap/models"
)

// Required columns; track_id and track_config are optional.
var required = []string{"session_time", "yaw", "speed", "lap_dist_pct"}

// LoadSamplesFromCSV reads every tick from the CSV file at path.
func LoadSamplesFromCSV(path string) ([]models.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := ReadSamples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// ReadSamples parses CSV telemetry with a header row. Header names are
// matched case-insensitively; unparsable numbers read as 0.
func ReadSamples(r io.Reader) ([]models.Sample, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	// Lowercase column mapping
	cols := make(map[string]int)
	for i, h := range headers {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column: %s", name)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	parseOrZero := func(s string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		return v
	}

	samples := make([]models.Sample, 0, len(rows))
	for _, row := range rows {
		trackID, _ := strconv.Atoi(strings.TrimSpace(field(row, "track_id")))
		samples = append(samples, models.Sample{
			SessionTime: parseOrZero(field(row, "session_time")),
			Yaw:         float32(parseOrZero(field(row, "yaw"))),
			Speed:       float32(parseOrZero(field(row, "speed"))),
			LapDistPct:  float32(parseOrZero(field(row, "lap_dist_pct"))),
			TrackID:     trackID,
			TrackConfig: field(row, "track_config"),
		})
	}
	return samples, nil
}
