package sim

// LED intensity levels produced by Frame.
const (
	LedOff uint8 = 0
	LedOn  uint8 = 9
)

// UpdateDensity rebuilds the display occupancy field from scratch: every
// cell holding at least one particle is marked, all others cleared. The
// mark saturates, so extra particles in a cell change nothing.
func (s *Sim) UpdateDensity() {
	for i := range s.density {
		s.density[i] = 0
	}

	for k := range s.particles {
		ci := int(floorf(s.particles[k].X))
		cj := int(floorf(s.particles[k].Y))
		if ci < 0 || ci >= GridWidth || cj < 0 || cj >= GridHeight {
			continue
		}
		s.density[idx(ci, cj)] = 1
	}
}

// Frame maps the interior density field onto the LED matrix: row j, column
// i reads interior cell (i+1, j+1) and lights at LedOn when occupied. The
// frame is rebuilt whole every call; nothing persists between refreshes.
func (s *Sim) Frame() [SimHeight][SimWidth]uint8 {
	var leds [SimHeight][SimWidth]uint8
	for j := 0; j < SimHeight; j++ {
		for i := 0; i < SimWidth; i++ {
			if s.density[idx(i+1, j+1)] > 0 {
				leds[j][i] = LedOn
			}
		}
	}
	return leds
}
