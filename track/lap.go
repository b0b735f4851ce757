package track

// MinClosurePoints is how many points a path must already hold before a
// lap-distance wraparound counts as closure. Wraps seen earlier come from the
// car starting mid-lap.
const MinClosurePoints = 10

// LapDetector latches once the lap-distance fraction wraps from ~1 back to ~0.
type LapDetector struct {
	lastPct float32
	closed  bool
}

// NewLapDetector seeds the detector with the fraction seen at activation.
func NewLapDetector(pct float32) *LapDetector {
	return &LapDetector{lastPct: pct}
}

// Observe records pct and reports whether the lap is closed. points is the
// current path length. Once closed the detector stays closed until Reset.
func (d *LapDetector) Observe(pct float32, points int) bool {
	if pct < d.lastPct && points > MinClosurePoints {
		d.closed = true
	}
	d.lastPct = pct
	return d.closed
}

func (d *LapDetector) Closed() bool { return d.closed }

func (d *LapDetector) LastPct() float32 { return d.lastPct }

// Reset starts a new session from pct.
func (d *LapDetector) Reset(pct float32) {
	d.lastPct = pct
	d.closed = false
}
