package track

import "trackmap/models"

// Normalize turns a finished path so its long axis is horizontal. A path
// taller than it is wide is rotated 90° with (x, y) -> (-y, x); anything else,
// including a square box, is returned unchanged. rotated reports which case ran.
//
// The input is never modified.
func Normalize(p models.Path) (out models.Path, rotated bool) {
	box, ok := Bounds(p)
	if !ok || len(p) < 2 {
		return p, false
	}
	if size := box.Size(); size.Y <= size.X {
		return p, false
	}
	out = make(models.Path, len(p))
	for i, pt := range p {
		out[i] = models.Point{X: -pt.Y, Y: pt.X}
	}
	return out, true
}
