// Package display provides renderers for the 5x5 LED matrix frame. A
// Renderer stands in for the physical display: Draw accepts a full frame
// plus a hold duration and owns whatever windowing or terminal state the
// backend needs.
package display

import (
	"errors"
	"time"

	"github.com/rbafna6507/fluid-microbit/sim"
)

// LED intensity levels. On matches the firmware's brightness setting.
const (
	Off uint8 = 0
	On  uint8 = 9
)

// Frame is one LED matrix refresh in row-major matrix order: Frame[j][i]
// is the LED at column i, row j.
type Frame [sim.SimHeight][sim.SimWidth]uint8

// ErrClosed reports that the user closed the renderer. The driver treats
// it as a clean stop, not a failure.
var ErrClosed = errors.New("display: renderer closed")

// Renderer consumes frames. Draw blocks no longer than the backend needs
// to present; pacing comes from the sensor, not the display.
type Renderer interface {
	Draw(f Frame, hold time.Duration) error
	Close() error
}

// FromSim maps the simulation's interior density field onto a frame.
func FromSim(s *sim.Sim) Frame {
	return Frame(s.Frame())
}
