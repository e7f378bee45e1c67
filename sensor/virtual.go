package sensor

import "sync"

// Virtual is a UI-settable tilt source. The renderers feed it from arrow
// keys or sliders while the driver blocks on Next; SetTilt and Tilt are
// safe to call concurrently with Next.
type Virtual struct {
	mu   sync.Mutex
	x, y int32
	pace pacer
}

// NewVirtual builds a virtual source at the given rate. rateHz paces
// delivery; 0 disables pacing.
func NewVirtual(rateHz float64) *Virtual {
	return &Virtual{pace: newPacer(rateHz)}
}

// SetTilt replaces the current tilt in raw counts.
func (v *Virtual) SetTilt(x, y int32) {
	v.mu.Lock()
	v.x, v.y = x, y
	v.mu.Unlock()
}

// Tilt returns the current tilt.
func (v *Virtual) Tilt() (x, y int32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.x, v.y
}

// Next returns the current tilt, blocking for pacing.
func (v *Virtual) Next() (Sample, error) {
	v.pace.wait()
	v.mu.Lock()
	s := Sample{X: v.x, Y: v.y}
	v.mu.Unlock()
	return s, nil
}

// Close stops the pacing ticker.
func (v *Virtual) Close() error {
	v.pace.stop()
	return nil
}
