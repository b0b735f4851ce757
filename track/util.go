package track

import (
	"gonum.org/v1/gonum/spatial/r2"

	"trackmap/models"
)

// Bounds returns the axis-aligned bounding box of p. ok is false for an empty path.
func Bounds(p models.Path) (box r2.Box, ok bool) {
	if len(p) == 0 {
		return r2.Box{}, false
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return r2.Box{
		Min: r2.Vec{X: float64(minX), Y: float64(minY)},
		Max: r2.Vec{X: float64(maxX), Y: float64(maxY)},
	}, true
}
