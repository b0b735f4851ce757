package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"trackmap/models"
	"trackmap/track"
)

func TestPlotRendererKeepsLatestFrame(t *testing.T) {
	t.Parallel()

	r := NewPlotRenderer(200, 200)
	_, err := r.Plot()
	require.ErrorIs(t, err, ErrNoFrame)

	require.NoError(t, r.DrawLineStrip(track.LineStrip{{X: 10, Y: 10}, {X: 190, Y: 100}}, 2, models.White))
	require.NoError(t, r.DrawLineStrip(track.LineStrip{{X: 20, Y: 20}, {X: 180, Y: 180}, {X: 20, Y: 180}}, 4, models.White))
	assert.Equal(t, 2, r.Frames())

	p, err := r.Plot()
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 200.0, p.X.Max)
	assert.Equal(t, 200.0, p.Y.Max)
}

func TestPlotRendererRejectsShortStrip(t *testing.T) {
	t.Parallel()

	r := NewPlotRenderer(200, 200)
	assert.Error(t, r.DrawLineStrip(track.LineStrip{{X: 1, Y: 1}}, 2, models.White))
	assert.Zero(t, r.Frames())
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	r := NewPlotRenderer(200, 150)
	var empty bytes.Buffer
	require.ErrorIs(t, r.WritePNG(&empty), ErrNoFrame)

	strip := track.FitLineStrip(models.Path{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}, {X: 0, Y: 50}, {X: 0, Y: 0}}, 200, 150)
	require.NoError(t, r.DrawLineStrip(strip, 2, models.Color{R: 1, G: 0.5, B: 0, A: 1}))

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.InDelta(t, 200, img.Bounds().Dx(), 1)
	assert.InDelta(t, 150, img.Bounds().Dy(), 1)
}

func TestSavePNG(t *testing.T) {
	t.Parallel()

	r := NewPlotRenderer(100, 100)
	require.NoError(t, r.DrawLineStrip(track.LineStrip{{X: 5, Y: 5}, {X: 95, Y: 95}}, 1, models.White))
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, r.SavePNG(path))
	assert.FileExists(t, path)
}

func TestLineWidthIsInViewportPixels(t *testing.T) {
	t.Parallel()

	r := NewPlotRenderer(200, 200)
	require.NoError(t, r.DrawLineStrip(track.LineStrip{{X: 0, Y: 0}, {X: 96, Y: 0}}, 2, models.White))
	assert.InDelta(t, 1.5, r.lineWidth().Points(), 1e-9, "2px at 96 ppi")

	require.NoError(t, r.DrawLineStrip(track.LineStrip{{X: 0, Y: 0}, {X: 96, Y: 0}}, 4, models.White))
	assert.Equal(t, vg.Inch/24, r.lineWidth())
}

func TestNRGBA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, NRGBA(models.White))
	assert.Equal(t, color.NRGBA{R: 0, G: 128, B: 255, A: 0}, NRGBA(models.Color{R: -1, G: 0.5, B: 2, A: 0}))
}
