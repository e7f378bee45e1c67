package sim

import "testing"

func TestSeparateParticlesResolvesSinglePair(t *testing.T) {
	s := New()
	place(s, Particle{X: 3.0, Y: 3.0})
	s.particles[1] = Particle{X: 3.1, Y: 3.0}

	// Move the rest well away so only pair (0,1) interacts.
	for k := 2; k < NumParticles; k++ {
		s.particles[k].X = float32((k-2)%SimWidth)*0.9 + 1.3
		s.particles[k].Y = float32((k-2)/SimWidth)*0.9 + 4.6
	}
	// Pull the pad rows clear of the pair's neighborhood.
	s.particles[1].Y = 3.0

	s.separateParticles()

	dx := s.particles[1].X - s.particles[0].X
	dy := s.particles[1].Y - s.particles[0].Y
	dist := sqrtf(dx*dx + dy*dy)
	want := 2 * ParticleRadius
	if absf(dist-want) > 1e-5 {
		t.Errorf("pair distance %v after separation, want %v", dist, want)
	}

	// The push is symmetric along the connecting line.
	if absf((s.particles[0].X+s.particles[1].X)/2-3.05) > 1e-5 {
		t.Errorf("pair midpoint moved: %v and %v", s.particles[0].X, s.particles[1].X)
	}
}

func TestSeparateParticlesLeavesCoincidentPairsAlone(t *testing.T) {
	s := New()
	place(s, Particle{X: 3.0, Y: 3.0})
	s.particles[1] = Particle{X: 3.0, Y: 3.0}
	for k := 2; k < NumParticles; k++ {
		s.particles[k].X = float32((k-2)%SimWidth)*0.9 + 1.3
		s.particles[k].Y = float32((k-2)/SimWidth)*0.9 + 4.6
	}

	s.separateParticles()

	// No separating direction exists for a coincident pair; the epsilon
	// guard keeps the division finite by skipping it.
	if s.particles[0].X != 3.0 || s.particles[0].Y != 3.0 ||
		s.particles[1].X != 3.0 || s.particles[1].Y != 3.0 {
		t.Errorf("coincident pair moved: %+v, %+v", s.particles[0], s.particles[1])
	}
}

func TestSeparateParticlesImprovesCluster(t *testing.T) {
	s := New()

	// Jam everything into a 1x1 box around the center.
	for k := range s.particles {
		s.particles[k] = Particle{
			X: 3.0 + float32(k%SimWidth)*0.2,
			Y: 3.0 + float32(k/SimWidth)*0.2,
		}
	}

	penetration := func() float64 {
		const minDist = 2 * ParticleRadius
		var sum float64
		for i := 0; i < NumParticles; i++ {
			for j := i + 1; j < NumParticles; j++ {
				dx := s.particles[j].X - s.particles[i].X
				dy := s.particles[j].Y - s.particles[i].Y
				d := sqrtf(dx*dx + dy*dy)
				if d < minDist {
					sum += float64(minDist - d)
				}
			}
		}
		return sum
	}

	before := penetration()
	overlapsBefore := s.Overlaps()
	if overlapsBefore < 10 {
		t.Fatalf("setup produced only %d overlapping pairs", overlapsBefore)
	}

	s.separateParticles()

	if after := penetration(); after >= before {
		t.Errorf("total penetration %v after relaxation, want below %v", after, before)
	}
	if got := s.Overlaps(); got > overlapsBefore {
		t.Errorf("overlapping pairs rose from %d to %d", overlapsBefore, got)
	}
}

func TestCollideWallsClampsAndZeroesVelocity(t *testing.T) {
	s := New()
	const minCoord = 1 + ParticleRadius
	const maxX = GridWidth - 1 - ParticleRadius
	const maxY = GridHeight - 1 - ParticleRadius

	place(s, Particle{X: 0.3, Y: 6.9, VX: -2, VY: 3})
	s.particles[1] = Particle{X: 6.6, Y: 3.0, VX: 4, VY: -1}

	s.collideWalls()

	p0 := s.particles[0]
	if p0.X != minCoord || p0.VX != 0 {
		t.Errorf("left clamp: x=%v vx=%v, want x=%v vx=0", p0.X, p0.VX, minCoord)
	}
	if p0.Y != maxY || p0.VY != 0 {
		t.Errorf("top clamp: y=%v vy=%v, want y=%v vy=0", p0.Y, p0.VY, maxY)
	}

	p1 := s.particles[1]
	if p1.X != maxX || p1.VX != 0 {
		t.Errorf("right clamp: x=%v vx=%v, want x=%v vx=0", p1.X, p1.VX, maxX)
	}
	if p1.VY != -1 {
		t.Errorf("unclamped axis velocity changed: vy=%v, want -1", p1.VY)
	}
}

func TestAdvectMovesAlongVelocity(t *testing.T) {
	s := New()
	place(s, Particle{X: 3.0, Y: 3.0, VX: 0.5, VY: -0.25})

	s.Advect()

	p := s.particles[0]
	wantX := 3.0 + 0.5*Dt
	wantY := 3.0 - 0.25*Dt
	if absf(p.X-wantX) > 1e-6 || absf(p.Y-wantY) > 1e-6 {
		t.Errorf("advected to (%v, %v), want (%v, %v)", p.X, p.Y, wantX, wantY)
	}
}
