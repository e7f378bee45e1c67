package sim

// Advect moves every particle along its velocity for one time step, then
// relaxes particle-particle overlaps and resolves wall contact.
func (s *Sim) Advect() {
	for k := range s.particles {
		p := &s.particles[k]
		p.X += p.VX * Dt
		p.Y += p.VY * Dt
	}
	s.separateParticles()
	s.collideWalls()
}

// separateParticles runs the pairwise decollision relaxation. Each pass
// visits every unordered pair once; a pair closer than twice the particle
// radius is pushed symmetrically apart along its connecting line to exactly
// that distance. Pushes land immediately, so later pairs in the same pass
// see them. Near-coincident pairs are left alone to keep the division by
// distance finite. Quadratic in the particle count, which is fine at this
// fixed capacity.
func (s *Sim) separateParticles() {
	const minDist = 2 * ParticleRadius
	const minDistSq = minDist * minDist

	for it := 0; it < CollisionIters; it++ {
		for i := 0; i < NumParticles; i++ {
			for j := i + 1; j < NumParticles; j++ {
				p1 := &s.particles[i]
				p2 := &s.particles[j]

				dx := p2.X - p1.X
				dy := p2.Y - p1.Y
				distSq := dx*dx + dy*dy
				if distSq <= 1e-6 || distSq >= minDistSq {
					continue
				}

				dist := sqrtf(distSq)
				push := 0.5 * (minDist - dist) / dist
				pushX := dx * push
				pushY := dy * push

				p1.X -= pushX
				p1.Y -= pushY
				p2.X += pushX
				p2.Y += pushY
			}
		}
	}
}

// collideWalls clamps every particle into the open interior, keeping the
// particle radius clear of the solid ring. A clamped axis has its velocity
// zeroed: wall hits are inelastic.
func (s *Sim) collideWalls() {
	const minCoord = 1 + ParticleRadius
	const maxX = GridWidth - 1 - ParticleRadius
	const maxY = GridHeight - 1 - ParticleRadius

	for k := range s.particles {
		p := &s.particles[k]
		if p.X < minCoord {
			p.X = minCoord
			p.VX = 0
		}
		if p.X > maxX {
			p.X = maxX
			p.VX = 0
		}
		if p.Y < minCoord {
			p.Y = minCoord
			p.VY = 0
		}
		if p.Y > maxY {
			p.Y = maxY
			p.VY = 0
		}
	}
}
