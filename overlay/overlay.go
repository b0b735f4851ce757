// Package overlay drives the track map through one activation: trace a lap
// from telemetry (or load a stored map), normalize it once, persist it, and
// draw it fitted to the viewport every frame.
//
// An Overlay is owned by a single frame loop and is not safe for concurrent use.
package overlay

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"trackmap/config"
	"trackmap/mapstore"
	"trackmap/models"
	"trackmap/track"
)

// Name is the config section the overlay reads its values from.
const Name = "OverlayTrackMap"

// Phase is where an activation is in building its map.
type Phase int

const (
	Inactive Phase = iota
	// Tracing accumulates dead-reckoned points until the lap closes.
	Tracing
	// Closing has seen the lap close and waits to normalize the path.
	Closing
	// Finalized holds a traced, normalized and frozen map.
	Finalized
	// Loaded holds a map read from the store at activation.
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Inactive:
		return "inactive"
	case Tracing:
		return "tracing"
	case Closing:
		return "closing"
	case Finalized:
		return "finalized"
	case Loaded:
		return "loaded"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Renderer draws an open polyline in viewport coordinates.
type Renderer interface {
	DrawLineStrip(strip track.LineStrip, thickness float32, col models.Color) error
}

// Options wires an Overlay to its collaborators. Store and Renderer may be
// nil: without a store maps are never loaded or saved, without a renderer
// nothing is drawn.
type Options struct {
	Store    mapstore.Store
	Renderer Renderer
	Config   config.Values
	Logger   *log.Logger
}

// Overlay holds the session state of one activation.
type Overlay struct {
	store    mapstore.Store
	renderer Renderer
	cfg      config.Values
	logger   *log.Logger

	phase     Phase
	sessionID string
	id        models.TrackIdentity
	startTime float64
	lastTime  float64
	acc       track.Accumulator
	laps      track.LapDetector
}

func New(opts Options) *Overlay {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Overlay{
		store:    opts.Store,
		renderer: opts.Renderer,
		cfg:      opts.Config,
		logger:   logger,
	}
}

func (o *Overlay) Phase() Phase { return o.phase }

// Path returns the current map. Callers must not modify it.
func (o *Overlay) Path() models.Path { return o.acc.Path() }

// SessionID identifies the current activation in log output.
func (o *Overlay) SessionID() string { return o.sessionID }

// Identity is the track layout the current activation is mapping.
func (o *Overlay) Identity() models.TrackIdentity { return o.id }

// Enable starts an activation from the first telemetry sample. A stored map
// for the sample's track skips tracing entirely.
func (o *Overlay) Enable(first models.Sample) {
	o.acc.Reset()
	o.laps.Reset(first.LapDistPct)
	o.sessionID = uuid.NewString()
	o.id = first.Identity()
	o.startTime = first.SessionTime
	o.lastTime = first.SessionTime

	if o.store != nil {
		if p, ok := o.store.Load(o.id); ok {
			o.acc.Replace(p.Clone())
			o.acc.Freeze()
			o.setPhase(Loaded)
			o.logf("loaded map for %s (%d points)", o.id, len(p))
			return
		}
	}
	o.setPhase(Tracing)
}

// Disable ends the activation and drops all in-memory state.
func (o *Overlay) Disable() {
	o.acc.Reset()
	o.laps.Reset(0)
	o.setPhase(Inactive)
}

// Update advances the overlay by one frame and draws into a w×h viewport.
// It reports whether a line strip was drawn.
func (o *Overlay) Update(s models.Sample, w, h float32) bool {
	if o.phase == Inactive {
		return false
	}
	if o.phase == Tracing {
		o.trace(s)
	}
	if o.phase == Closing {
		o.finalize(s)
	}
	return o.draw(w, h)
}

func (o *Overlay) trace(s models.Sample) {
	dt := float32(s.SessionTime - o.lastTime)
	o.lastTime = s.SessionTime
	o.acc.Add(s.Yaw, s.Speed, dt)

	if o.laps.Observe(s.LapDistPct, o.acc.Len()) {
		o.setPhase(Closing)
	}
}

// finalize normalizes the complete lap exactly once and freezes it. Points
// appended after this would be in the pre-rotation frame.
func (o *Overlay) finalize(s models.Sample) {
	if o.acc.Len() < 2 {
		return
	}
	p, rotated := track.Normalize(o.acc.Path())
	o.acc.Replace(p)
	o.acc.Freeze()
	o.setPhase(Finalized)

	st := track.ComputeTraceStats(p, s.SessionTime-o.startTime)
	o.logf("lap closed on %s: %d points, length %.1f, box %.1fx%.1f, %.1fs, rotated=%t",
		o.id, st.Points, st.Length, st.Width, st.Height, st.Duration, rotated)

	if o.store == nil {
		return
	}
	if err := o.store.Save(o.id, p); err != nil {
		o.logf("save map for %s failed, keeping it for this session: %v", o.id, err)
		return
	}
	o.logf("saved map for %s", o.id)
}

func (o *Overlay) draw(w, h float32) bool {
	switch o.phase {
	case Finalized, Loaded:
	case Tracing:
		if !o.cfg.Bool("show_partial", false) {
			return false
		}
	default:
		return false
	}
	if o.renderer == nil {
		return false
	}
	strip := track.FitLineStrip(o.acc.Path(), w, h)
	if len(strip) < 2 {
		return false
	}
	thickness := o.cfg.Float("line_thickness", 2)
	col := o.cfg.Color("line_col", models.White)
	if err := o.renderer.DrawLineStrip(strip, thickness, col); err != nil {
		o.logf("draw failed: %v", err)
		return false
	}
	return true
}

func (o *Overlay) setPhase(p Phase) {
	if o.phase != p {
		o.logf("%s -> %s", o.phase, p)
	}
	o.phase = p
}

func (o *Overlay) logf(format string, args ...any) {
	o.logger.Printf("trackmap[%.8s]: "+format, append([]any{o.sessionID}, args...)...)
}
