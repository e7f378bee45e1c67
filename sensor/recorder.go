package sensor

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// Recorder tees every sample from a wrapped source into an in-memory
// trace, flushed to CSV on Close. The written trace is loadable by
// NewReplay.
type Recorder struct {
	src  Source
	path string
	rows []TraceRow
}

// NewRecorder wraps src, recording into path.
func NewRecorder(src Source, path string) *Recorder {
	return &Recorder{src: src, path: path}
}

// Next forwards to the wrapped source and records the result. Errors,
// including io.EOF, pass through unrecorded.
func (r *Recorder) Next() (Sample, error) {
	s, err := r.src.Next()
	if err != nil {
		return s, err
	}
	r.rows = append(r.rows, TraceRow{Frame: len(r.rows), AX: s.X, AY: s.Y})
	return s, nil
}

// Close flushes the trace to CSV and closes the wrapped source.
func (r *Recorder) Close() error {
	srcErr := r.src.Close()

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("creating trace %s: %w", r.path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&r.rows, f); err != nil {
		return fmt.Errorf("writing trace %s: %w", r.path, err)
	}
	return srcErr
}
