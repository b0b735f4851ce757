package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackmap/config"
	"trackmap/models"
	"trackmap/overlay"
	"trackmap/render"
)

// ovalSession drives an ellipse twice as tall as it is wide, starting a
// quarter of the way round the lap.
func ovalSession(ticks int) []models.Sample {
	const perLap = 120
	samples := make([]models.Sample, 0, ticks+1)
	for i := 0; i <= ticks; i++ {
		a := 2 * math.Pi * float64(i) / perLap
		// velocity of (cos a, 2 sin a) is (-sin a, 2 cos a)
		vx, vy := -math.Sin(a), 2*math.Cos(a)
		samples = append(samples, models.Sample{
			SessionTime: float64(i) / 60,
			Yaw:         float32(math.Atan2(vy, vx)),
			Speed:       float32(math.Hypot(vx, vy) * 60 * 2 * math.Pi / perLap),
			LapDistPct:  float32(math.Mod(0.25+float64(i)/perLap, 1)),
			TrackID:     18,
			TrackConfig: "Oval",
		})
	}
	return samples
}

func TestReplayTracesThenLoads(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "maps")
	store, closeStore, err := openStore(cfg.Storage, nil)
	require.NoError(t, err)
	defer closeStore()

	r := render.NewPlotRenderer(cfg.Viewport.Width, cfg.Viewport.Height)
	ov := overlay.New(overlay.Options{Store: store, Renderer: r, Config: cfg.Section(overlay.Name)})

	first := replay(ov, ovalSession(200), 200, 200)
	assert.Equal(t, overlay.Finalized, first.Phase)
	assert.Equal(t, 200, first.Ticks)
	assert.Positive(t, first.Drawn)
	assert.Greater(t, first.Points, 10)
	assert.Less(t, first.Points, 200, "tracing stops at lap closure")

	box := ovalBounds(t, ov.Path())
	assert.GreaterOrEqual(t, box[0], box[1], "oval is laid out wide")
	ov.Disable()

	second := replay(ov, ovalSession(30), 200, 200)
	assert.Equal(t, overlay.Loaded, second.Phase)
	assert.Equal(t, 30, second.Drawn)
	assert.Equal(t, first.Points, second.Points)
}

func ovalBounds(t *testing.T, p models.Path) [2]float32 {
	t.Helper()
	require.NotEmpty(t, p)
	minX, maxX, minY, maxY := p[0].X, p[0].X, p[0].Y, p[0].Y
	for _, pt := range p {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	return [2]float32{maxX - minX, maxY - minY}
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, closeStore, err := openStore(config.StorageConfig{Backend: "sqlite", DSN: filepath.Join(dir, "maps.db")}, nil)
	require.NoError(t, err)
	p := models.Path{{X: 1, Y: 2}, {X: 3, Y: 4}}
	id := models.TrackIdentity{ID: 1, Config: "x"}
	require.NoError(t, s.Save(id, p))
	got, ok := s.Load(id)
	require.True(t, ok)
	assert.Equal(t, p, got)
	closeStore()

	_, closeStore, err = openStore(config.StorageConfig{Backend: "file", Dir: dir}, nil)
	require.NoError(t, err)
	closeStore()

	_, _, err = openStore(config.StorageConfig{Backend: "s3"}, nil)
	assert.Error(t, err)
}

func TestMultiFlag(t *testing.T) {
	t.Parallel()

	var m multiFlag
	require.NoError(t, m.Set("a.csv"))
	require.NoError(t, m.Set("b.csv"))
	assert.Equal(t, "a.csv,b.csv", m.String())
}
