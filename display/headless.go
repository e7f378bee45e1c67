package display

import (
	"log/slog"
	"time"
)

// Headless discards frames, optionally logging a progress line every N
// frames. It is the renderer for scripted and benchmark runs.
type Headless struct {
	logEvery int
	frames   int
}

// NewHeadless builds a no-output renderer. logEvery > 0 enables a slog
// progress line at that frame interval.
func NewHeadless(logEvery int) *Headless {
	return &Headless{logEvery: logEvery}
}

// Draw counts the frame and returns immediately; the hold duration is
// ignored since there is nothing to present.
func (h *Headless) Draw(f Frame, hold time.Duration) error {
	h.frames++
	if h.logEvery > 0 && h.frames%h.logEvery == 0 {
		lit := 0
		for j := range f {
			for i := range f[j] {
				if f[j][i] != Off {
					lit++
				}
			}
		}
		slog.Info("frame", "n", h.frames, "lit", lit)
	}
	return nil
}

// Frames returns the number of frames drawn.
func (h *Headless) Frames() int {
	return h.frames
}

func (h *Headless) Close() error {
	return nil
}
