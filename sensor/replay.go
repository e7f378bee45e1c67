package sensor

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// TraceRow is one recorded sample in a tilt trace CSV.
type TraceRow struct {
	Frame int   `csv:"frame"`
	AX    int32 `csv:"ax"`
	AY    int32 `csv:"ay"`
}

// Replay plays back a recorded tilt trace. Next returns io.EOF once the
// trace is exhausted, which the driver treats as a clean stop.
type Replay struct {
	rows []TraceRow
	next int
	pace pacer
}

// NewReplay loads a trace CSV and builds a source over it. rateHz paces
// delivery; 0 disables pacing.
func NewReplay(path string, rateHz float64) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()

	var rows []TraceRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing trace %s: %w", path, err)
	}

	return &Replay{rows: rows, pace: newPacer(rateHz)}, nil
}

// Next returns the next recorded sample, blocking for pacing.
func (r *Replay) Next() (Sample, error) {
	if r.next >= len(r.rows) {
		return Sample{}, io.EOF
	}
	r.pace.wait()
	row := r.rows[r.next]
	r.next++
	return Sample{X: row.AX, Y: row.AY}, nil
}

// Len returns the number of samples in the trace.
func (r *Replay) Len() int {
	return len(r.rows)
}

// Close stops the pacing ticker.
func (r *Replay) Close() error {
	r.pace.stop()
	return nil
}
