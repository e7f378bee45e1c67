package telemetry

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rbafna6507/fluid-microbit/sim"
)

// Collector accumulates per-frame observations over a fixed frame window
// and produces WindowStats rows. Distribution fields are sampled from the
// solver at flush time; tilt is averaged over the whole window.
type Collector struct {
	windowFrames int

	windowStart     int
	windowStartTime time.Time

	tiltXSum float64
	tiltYSum float64
	observed int

	speeds [sim.NumParticles]float64
}

// NewCollector creates a stats collector flushing every windowFrames
// frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		windowFrames:    windowFrames,
		windowStartTime: time.Now(),
	}
}

// Observe records one frame's tilt input.
func (c *Collector) Observe(ax, ay int32) {
	c.tiltXSum += float64(ax)
	c.tiltYSum += float64(ay)
	c.observed++
}

// ShouldFlush reports whether the window ending at frame is complete.
func (c *Collector) ShouldFlush(frame int) bool {
	return frame-c.windowStart >= c.windowFrames
}

// Flush samples the solver, produces the window row, and resets for the
// next window.
func (c *Collector) Flush(frame int, s *sim.Sim) WindowStats {
	now := time.Now()
	wall := now.Sub(c.windowStartTime)

	stats := WindowStats{
		WindowStartFrame: c.windowStart,
		WindowEndFrame:   frame,
		WallMS:           float64(wall.Milliseconds()),
		KineticEnergy:    s.KineticEnergy(),
		Divergence:       s.Divergence(),
		OccupiedCells:    s.OccupiedCells(),
		WallContacts:     s.WallContacts(),
		Overlaps:         s.Overlaps(),
	}

	if wall > 0 {
		stats.EffectiveHz = float64(frame-c.windowStart) / wall.Seconds()
	}
	if c.observed > 0 {
		stats.TiltXMean = c.tiltXSum / float64(c.observed)
		stats.TiltYMean = c.tiltYSum / float64(c.observed)
	}

	s.Speeds(&c.speeds)
	speeds := c.speeds[:]
	stats.SpeedMean = stat.Mean(speeds, nil)
	stats.SpeedMax = floats.Max(speeds)
	sorted := append([]float64(nil), speeds...)
	sort.Float64s(sorted)
	stats.SpeedP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	c.windowStart = frame
	c.windowStartTime = now
	c.tiltXSum = 0
	c.tiltYSum = 0
	c.observed = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int {
	return c.windowFrames
}
