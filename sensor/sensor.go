// Package sensor provides tilt sources for the frame driver. A Source
// stands in for the accelerometer: Next blocks until a fresh sample is
// available, which is what gates the frame rate. Samples carry raw signed
// counts in the device's axis convention; the solver applies its own sign
// and scale normalization.
package sensor

import "time"

// Sample is one two-axis tilt reading in raw accelerometer counts.
type Sample struct {
	X int32
	Y int32
}

// Source produces tilt samples, one per frame.
type Source interface {
	// Next blocks until a new sample is available and returns it. A
	// finite source returns io.EOF when exhausted.
	Next() (Sample, error)
	Close() error
}

// pacer gates sample delivery to a fixed rate. A zero or negative rate
// disables pacing, which the offline tools and tests use to run flat out.
type pacer struct {
	ticker *time.Ticker
}

func newPacer(rateHz float64) pacer {
	if rateHz <= 0 {
		return pacer{}
	}
	return pacer{ticker: time.NewTicker(time.Duration(float64(time.Second) / rateHz))}
}

func (p pacer) wait() {
	if p.ticker != nil {
		<-p.ticker.C
	}
}

func (p pacer) stop() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}
