package track

import (
	"trackmap/models"
)

const (
	// FitMargin leaves 5% of the viewport free on each side of the long axis.
	FitMargin float32 = 0.9
	// fitEpsilon keeps the scale finite for paths with a zero-width or zero-height box.
	fitEpsilon float32 = 1e-3
)

// Fitting maps path coordinates into a viewport.
type Fitting struct {
	Scale   float32
	OffsetX float32
	OffsetY float32
}

// Apply returns pt in viewport coordinates.
func (f Fitting) Apply(pt models.Point) models.Point {
	return models.Point{
		X: pt.X*f.Scale + f.OffsetX,
		Y: pt.Y*f.Scale + f.OffsetY,
	}
}

// Fit centres the bounding box of p in a w×h viewport, preserving aspect ratio.
// ok is false for an empty path.
func Fit(p models.Path, w, h float32) (Fitting, bool) {
	box, ok := Bounds(p)
	if !ok {
		return Fitting{}, false
	}
	size, centre := box.Size(), box.Center()

	scale := FitMargin * min(w/(float32(size.X)+fitEpsilon), h/(float32(size.Y)+fitEpsilon))
	return Fitting{
		Scale:   scale,
		OffsetX: w*0.5 - float32(centre.X)*scale,
		OffsetY: h*0.5 - float32(centre.Y)*scale,
	}, true
}

// LineStrip is an open polyline in viewport coordinates.
type LineStrip []models.Point

// FitLineStrip fits p into a w×h viewport and returns the polyline to draw.
// Paths with fewer than two points produce an empty strip.
func FitLineStrip(p models.Path, w, h float32) LineStrip {
	if len(p) < 2 {
		return nil
	}
	f, _ := Fit(p, w, h)
	strip := make(LineStrip, len(p))
	for i, pt := range p {
		strip[i] = f.Apply(pt)
	}
	return strip
}
