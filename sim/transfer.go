package sim

// The particle/grid transfers work on two independently staggered
// sub-grids: horizontal velocity is sampled at (x, y-0.5), vertical at
// (x-0.5, y), each interpolated bilinearly over the four surrounding
// lattice nodes.

// TransferToGrid scatters particle velocities onto the grid (P2G). It
// snapshots the grid velocities for the later FLIP delta, reclassifies
// every cell, accumulates bilinear-weighted velocity and weight at the
// surrounding nodes of each staggered sample, normalizes nodes by their
// accumulated weight, and finally zeroes every velocity sample on a solid
// cell face so no flow crosses the border.
func (s *Sim) TransferToGrid() {
	s.prevU = s.u
	s.prevV = s.v

	for i := range s.u {
		s.u[i] = 0
		s.v[i] = 0
	}
	var uWeights, vWeights [NumCells]float32

	s.classifyCells()

	for k := range s.particles {
		p := &s.particles[k]
		scatter(p.X, p.Y-0.5, p.VX, &s.u, &uWeights)
		scatter(p.X-0.5, p.Y, p.VY, &s.v, &vWeights)
	}

	for i := range s.u {
		if uWeights[i] > 0 {
			s.u[i] /= uWeights[i]
		}
		if vWeights[i] > 0 {
			s.v[i] /= vWeights[i]
		}
	}

	for j := 0; j < GridHeight; j++ {
		for i := 0; i < GridWidth; i++ {
			n := idx(i, j)
			if s.cellTypes[n] != Solid {
				continue
			}
			s.u[n] = 0
			s.v[n] = 0
			if i < GridWidth-1 {
				s.u[n+1] = 0
			}
			if j < GridHeight-1 {
				s.v[n+GridWidth] = 0
			}
		}
	}
}

// TransferFromGrid interpolates grid velocities back onto the particles
// (G2P). Per axis it blends the interpolated grid velocity (PIC) with the
// particle's own velocity plus the interpolated grid change since the
// pre-projection snapshot (FLIP). A particle whose staggered sampling cell
// falls outside the lattice keeps its velocity for the frame; when only
// the vertical sample is out of bounds, the already-gathered horizontal
// result is dropped with it.
func (s *Sim) TransferFromGrid() {
	for k := range s.particles {
		p := &s.particles[k]

		picX, du, ok := gather(p.X, p.Y-0.5, &s.u, &s.prevU)
		if !ok {
			continue
		}
		picY, dv, ok := gather(p.X-0.5, p.Y, &s.v, &s.prevV)
		if !ok {
			continue
		}

		flipX := p.VX + du
		flipY := p.VY + dv

		p.VX = (1-FlipRatio)*picX + FlipRatio*flipX
		p.VY = (1-FlipRatio)*picY + FlipRatio*flipY
	}
}

// classifyCells rederives the per-frame classification: solid cells come
// from the static mask, any open cell holding a particle is fluid, the
// rest are air. Nothing persists across frames except through particle
// positions.
func (s *Sim) classifyCells() {
	for i := range s.cellTypes {
		if s.s[i] == 0 {
			s.cellTypes[i] = Solid
		} else {
			s.cellTypes[i] = Air
		}
	}

	for k := range s.particles {
		ci := int(floorf(s.particles[k].X))
		cj := int(floorf(s.particles[k].Y))
		if ci < 0 || ci >= GridWidth || cj < 0 || cj >= GridHeight {
			continue
		}
		n := idx(ci, cj)
		if s.cellTypes[n] != Solid {
			s.cellTypes[n] = Fluid
		}
	}
}

// corners resolves a staggered sample position to its bottom-left node and
// bilinear weights. ok is false when the four-node stencil would leave the
// lattice; such samples are skipped by the callers.
func corners(sx, sy float32) (bl int, w [4]float32, ok bool) {
	cxf := floorf(sx)
	cyf := floorf(sy)
	dx := sx - cxf
	dy := sy - cyf

	cx := int(cxf)
	cy := int(cyf)
	if cx < 0 || cy < 0 || cx+1 >= GridWidth || cy+1 >= GridHeight {
		return 0, w, false
	}

	w[0] = (1 - dx) * (1 - dy) // bottom left
	w[1] = dx * (1 - dy)       // bottom right
	w[2] = (1 - dx) * dy       // top left
	w[3] = dx * dy             // top right
	return idx(cx, cy), w, true
}

// scatter accumulates weighted val and the weights themselves at the four
// nodes around the staggered sample (sx, sy).
func scatter(sx, sy, val float32, field, weights *[NumCells]float32) {
	bl, w, ok := corners(sx, sy)
	if !ok {
		return
	}
	br := bl + 1
	tl := bl + GridWidth
	tr := tl + 1

	field[bl] += val * w[0]
	weights[bl] += w[0]
	field[br] += val * w[1]
	weights[br] += w[1]
	field[tl] += val * w[2]
	weights[tl] += w[2]
	field[tr] += val * w[3]
	weights[tr] += w[3]
}

// gather interpolates the current field value and its change against the
// snapshot at the staggered sample (sx, sy).
func gather(sx, sy float32, field, prev *[NumCells]float32) (pic, delta float32, ok bool) {
	bl, w, ok := corners(sx, sy)
	if !ok {
		return 0, 0, false
	}
	br := bl + 1
	tl := bl + GridWidth
	tr := tl + 1

	delta = (field[bl]-prev[bl])*w[0] +
		(field[br]-prev[br])*w[1] +
		(field[tl]-prev[tl])*w[2] +
		(field[tr]-prev[tr])*w[3]
	pic = field[bl]*w[0] + field[br]*w[1] + field[tl]*w[2] + field[tr]*w[3]
	return pic, delta, true
}
