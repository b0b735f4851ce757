// Package render provides line-strip sinks for the track map overlay.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"trackmap/models"
	"trackmap/track"
)

// ErrNoFrame is returned when a snapshot is requested before anything was drawn.
var ErrNoFrame = errors.New("render: nothing drawn yet")

// pixelsPerInch converts viewport pixels to plot lengths.
const pixelsPerInch = 96

// PlotRenderer keeps the most recently drawn strip and renders it to an image
// on demand with gonum/plot. Viewport y grows downward, as on screen.
type PlotRenderer struct {
	Width      float32
	Height     float32
	Background color.Color

	frames    int
	strip     track.LineStrip
	thickness float32
	col       models.Color
}

// NewPlotRenderer returns a renderer for a w×h pixel viewport on black.
func NewPlotRenderer(w, h float32) *PlotRenderer {
	return &PlotRenderer{Width: w, Height: h, Background: color.Black}
}

// DrawLineStrip records strip as the current frame.
func (r *PlotRenderer) DrawLineStrip(strip track.LineStrip, thickness float32, col models.Color) error {
	if len(strip) < 2 {
		return fmt.Errorf("render: line strip needs 2 points, got %d", len(strip))
	}
	r.strip = append(r.strip[:0], strip...)
	r.thickness = thickness
	r.col = col
	r.frames++
	return nil
}

// Frames counts DrawLineStrip calls.
func (r *PlotRenderer) Frames() int { return r.frames }

// Plot builds a plot of the current frame.
func (r *PlotRenderer) Plot() (*plot.Plot, error) {
	if len(r.strip) < 2 {
		return nil, ErrNoFrame
	}
	xys := make(plotter.XYs, len(r.strip))
	for i, pt := range r.strip {
		xys[i] = plotter.XY{X: float64(pt.X), Y: float64(r.Height - pt.Y)}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("render: build line: %w", err)
	}
	line.Width = r.lineWidth()
	line.Color = NRGBA(r.col)

	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = r.Background
	p.Add(line)
	p.X.Min, p.X.Max = 0, float64(r.Width)
	p.Y.Min, p.Y.Max = 0, float64(r.Height)
	return p, nil
}

// WritePNG encodes the current frame as a PNG.
func (r *PlotRenderer) WritePNG(w io.Writer) error {
	p, err := r.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(pixels(r.Width), pixels(r.Height), "png")
	if err != nil {
		return fmt.Errorf("render: png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path.
func (r *PlotRenderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// lineWidth is the configured thickness in the same pixel units as the viewport.
func (r *PlotRenderer) lineWidth() vg.Length { return pixels(r.thickness) }

func pixels(px float32) vg.Length {
	return vg.Length(px) * vg.Inch / pixelsPerInch
}

// NRGBA converts a [0,1] colour to 8-bit non-premultiplied RGBA.
func NRGBA(c models.Color) color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
