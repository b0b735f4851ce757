package models

import (
	"fmt"
	"strings"
)

// Sample is one telemetry tick as delivered by the sim once per rendered frame.
type Sample struct {
	SessionTime float64 // seconds, monotonically non-decreasing
	Yaw         float32 // heading in radians
	Speed       float32
	LapDistPct  float32 // lap-distance fraction in [0,1)

	TrackID     int
	TrackConfig string
}

// Identity returns the track identity the sample was recorded on.
func (s Sample) Identity() TrackIdentity {
	return TrackIdentity{ID: s.TrackID, Config: s.TrackConfig}
}

// Point is a position in the local, unit-less frame of the path that holds it.
type Point struct {
	X float32
	Y float32
}

// Path is an ordered sequence of points in driving order.
type Path []Point

// Last returns the most recent point, or the origin for an empty path.
func (p Path) Last() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1]
}

// Clone returns a copy that shares no backing storage with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

// TrackIdentity names one physical track layout.
type TrackIdentity struct {
	ID     int
	Config string
}

// SanitizedConfig replaces every rune that is not an ASCII letter or digit with '_'.
func (t TrackIdentity) SanitizedConfig() string {
	var b strings.Builder
	b.Grow(len(t.Config))
	for _, r := range t.Config {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// DocumentName is the file/record name the map for this layout is stored under.
func (t TrackIdentity) DocumentName() string {
	return fmt.Sprintf("trackmap_%d_%s.json", t.ID, t.SanitizedConfig())
}

func (t TrackIdentity) String() string {
	if t.Config == "" {
		return fmt.Sprintf("track %d", t.ID)
	}
	return fmt.Sprintf("track %d (%s)", t.ID, t.Config)
}

// Color is RGBA with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// White is opaque white, the default line colour.
var White = Color{R: 1, G: 1, B: 1, A: 1}
