package sensor

// Fixed emits the same tilt every sample, for scripted scenarios and
// tests.
type Fixed struct {
	sample Sample
	pace   pacer
}

// NewFixed builds a constant source. rateHz paces delivery; 0 disables
// pacing.
func NewFixed(x, y int32, rateHz float64) *Fixed {
	return &Fixed{
		sample: Sample{X: x, Y: y},
		pace:   newPacer(rateHz),
	}
}

// Next returns the constant sample, blocking for pacing.
func (f *Fixed) Next() (Sample, error) {
	f.pace.wait()
	return f.sample, nil
}

// Close stops the pacing ticker.
func (f *Fixed) Close() error {
	f.pace.stop()
	return nil
}
