package sim

// Project drives each fluid cell's velocity divergence toward zero with a
// fixed number of Gauss-Seidel relaxation sweeps. Every sweep visits the
// interior in row-major order; for each fluid cell the local divergence is
// converted into an over-relaxed correction, accumulated into the pressure
// field, and redistributed onto the four face velocities weighted by each
// neighbor's open mask, so solid faces receive nothing. The result depends
// on sweep order and count; the sweep count is the latency/quality
// trade-off, not an exact solve.
func (s *Sim) Project() {
	for i := range s.p {
		s.p[i] = 0
	}

	for it := 0; it < ProjectIters; it++ {
		for j := 1; j < GridHeight-1; j++ {
			for i := 1; i < GridWidth-1; i++ {
				n := idx(i, j)
				if s.cellTypes[n] != Fluid {
					continue
				}

				sLeft := s.s[n-1]
				sRight := s.s[n+1]
				sDown := s.s[n-GridWidth]
				sUp := s.s[n+GridWidth]
				sSum := sLeft + sRight + sDown + sUp

				// A fluid cell enclosed on all four sides has no face to
				// correct through.
				if sSum == 0 {
					continue
				}

				div := s.u[n+1] - s.u[n] + s.v[n+GridWidth] - s.v[n]

				corr := -div / sSum
				corr *= OverRelaxation

				s.p[n] += corr
				s.u[n] -= corr * sLeft
				s.u[n+1] += corr * sRight
				s.v[n] -= corr * sDown
				s.v[n+GridWidth] += corr * sUp
			}
		}
	}
}
