package track

import (
	"math"

	"trackmap/models"
)

// TraceStats summarises a finished map.
type TraceStats struct {
	Points   int     `json:"points"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Duration float64 `json:"duration"` // seconds spent tracing, 0 for loaded maps
}

// ComputeTraceStats measures p. duration is passed through as-is.
func ComputeTraceStats(p models.Path, duration float64) TraceStats {
	st := TraceStats{Points: len(p), Duration: duration}
	st.Length = ArcLength(p)
	if box, ok := Bounds(p); ok {
		size := box.Size()
		st.Width = size.X
		st.Height = size.Y
	}
	return st
}

// ArcLength is the summed segment length along p.
func ArcLength(p models.Path) float64 {
	var dist float64
	for i := 1; i < len(p); i++ {
		dx := float64(p[i].X - p[i-1].X)
		dy := float64(p[i].Y - p[i-1].Y)
		dist += math.Hypot(dx, dy)
	}
	return dist
}
