package track

import (
	"math"

	"trackmap/models"
)

// Advance dead-reckons one step from prev using heading (radians), speed and dt.
// dt is taken as-is: zero yields prev, negative steps backwards.
func Advance(prev models.Point, heading, speed, dt float32) models.Point {
	sin, cos := math.Sincos(float64(heading))
	step := speed * dt
	return models.Point{
		X: prev.X + float32(cos)*step,
		Y: prev.Y + float32(sin)*step,
	}
}

// Accumulator grows a path one dead-reckoned point per sample until frozen.
type Accumulator struct {
	points models.Path
	frozen bool
}

// Add appends exactly one point, measured from the last point or the origin.
// It reports false and leaves the path untouched once the accumulator is frozen.
func (a *Accumulator) Add(heading, speed, dt float32) bool {
	if a.frozen {
		return false
	}
	a.points = append(a.points, Advance(a.points.Last(), heading, speed, dt))
	return true
}

// Freeze stops accumulation. The path is final from here on.
func (a *Accumulator) Freeze() { a.frozen = true }

func (a *Accumulator) Frozen() bool { return a.frozen }

func (a *Accumulator) Len() int { return len(a.points) }

// Path returns the accumulated points. Callers must not append to it.
func (a *Accumulator) Path() models.Path { return a.points }

// Replace swaps in a transformed path, e.g. after orientation normalization.
func (a *Accumulator) Replace(p models.Path) { a.points = p }

// Reset clears the path and unfreezes the accumulator.
func (a *Accumulator) Reset() {
	a.points = nil
	a.frozen = false
}
