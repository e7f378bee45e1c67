package sim

import "math"

// Read-only diagnostics for telemetry and the analysis tools. None of
// these mutate solver state, and the step pipeline never calls them.

// Divergence sums the absolute velocity divergence over the interior cells
// currently classified as fluid. Zero means the last projection fully
// converged for the current configuration.
func (s *Sim) Divergence() float64 {
	var sum float64
	for j := 1; j < GridHeight-1; j++ {
		for i := 1; i < GridWidth-1; i++ {
			n := idx(i, j)
			if s.cellTypes[n] != Fluid {
				continue
			}
			div := s.u[n+1] - s.u[n] + s.v[n+GridWidth] - s.v[n]
			sum += float64(absf(div))
		}
	}
	return sum
}

// KineticEnergy sums the particle kinetic energy (unit mass).
func (s *Sim) KineticEnergy() float64 {
	var sum float64
	for k := range s.particles {
		p := &s.particles[k]
		sum += 0.5 * float64(p.VX*p.VX+p.VY*p.VY)
	}
	return sum
}

// Speeds writes each particle's speed into dst.
func (s *Sim) Speeds(dst *[NumParticles]float64) {
	for k := range s.particles {
		p := &s.particles[k]
		dst[k] = math.Sqrt(float64(p.VX*p.VX + p.VY*p.VY))
	}
}

// MaxSpeed returns the fastest particle's speed.
func (s *Sim) MaxSpeed() float64 {
	var maxSq float32
	for k := range s.particles {
		p := &s.particles[k]
		sq := p.VX*p.VX + p.VY*p.VY
		if sq > maxSq {
			maxSq = sq
		}
	}
	return math.Sqrt(float64(maxSq))
}

// OccupiedCells counts cells marked in the display density field.
func (s *Sim) OccupiedCells() int {
	n := 0
	for i := range s.density {
		if s.density[i] > 0 {
			n++
		}
	}
	return n
}

// WallContacts counts particles currently resting on a clamp limit. Wall
// clamping assigns the limit exactly, so equality is the contact test.
func (s *Sim) WallContacts() int {
	const minCoord = 1 + ParticleRadius
	const maxX = GridWidth - 1 - ParticleRadius
	const maxY = GridHeight - 1 - ParticleRadius

	n := 0
	for k := range s.particles {
		p := &s.particles[k]
		if p.X == minCoord || p.X == maxX || p.Y == minCoord || p.Y == maxY {
			n++
		}
	}
	return n
}

// Overlaps counts particle pairs still closer than twice the particle
// radius, less a small tolerance for float round-off. After the collision
// relaxation this is usually zero but not guaranteed to be: the pass count
// is fixed.
func (s *Sim) Overlaps() int {
	const minDist = 2*ParticleRadius - 1e-4
	const minDistSq = minDist * minDist

	n := 0
	for i := 0; i < NumParticles; i++ {
		for j := i + 1; j < NumParticles; j++ {
			dx := s.particles[j].X - s.particles[i].X
			dy := s.particles[j].Y - s.particles[i].Y
			if dx*dx+dy*dy < minDistSq {
				n++
			}
		}
	}
	return n
}
