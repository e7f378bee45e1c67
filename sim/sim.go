// Package sim implements a FLIP/PIC fluid solver sized for a 5x5 LED
// matrix: a 7x7 staggered velocity grid (one-cell solid border around the
// displayable interior) coupled to 25 particles. Every container is a
// fixed-length array owned by one Sim value; stepping allocates nothing,
// so the per-frame cost is bounded and steady.
package sim

// Grid and particle capacities. The interior is the displayable region;
// the border ring is permanently solid.
const (
	SimWidth  = 5
	SimHeight = 5

	GridWidth  = SimWidth + 2
	GridHeight = SimHeight + 2
	NumCells   = GridWidth * GridHeight

	NumParticles = 25
)

// Solver tuning. These are build-time constants: the solver is a
// fixed-function core and retuning it is a rebuild, not a config load.
const (
	Dt             float32 = 0.6
	ParticleRadius float32 = 0.2
	CollisionIters         = 8
	ProjectIters           = 10
	OverRelaxation float32 = 1.9 // between 1 and 2, higher converges faster but can overshoot
	FlipRatio      float32 = 0.8
	Damping        float32 = 0.99
	AccelScale     float32 = -1024.0 // raw accelerometer counts per unit force, sign-folding
)

// CellType is the per-frame classification of a grid cell.
type CellType uint8

const (
	Fluid CellType = iota
	Air
	Solid
)

// Particle is one fluid particle in grid-cell units.
type Particle struct {
	X  float32 `json:"x"`
	Y  float32 `json:"y"`
	VX float32 `json:"vx"`
	VY float32 `json:"vy"`
}

// Sim holds the complete solver state. Horizontal velocity samples sit on
// left cell faces, vertical samples on bottom faces (MAC layout); all
// fields are indexed row-major, idx = j*GridWidth + i.
type Sim struct {
	particles [NumParticles]Particle

	u     [NumCells]float32 // horizontal velocity, left-face samples
	v     [NumCells]float32 // vertical velocity, bottom-face samples
	prevU [NumCells]float32 // pre-transfer snapshot for the FLIP delta
	prevV [NumCells]float32

	p [NumCells]float32 // pressure correction accumulator
	s [NumCells]float32 // solid mask: 0 solid, 1 open; fixed at construction

	cellTypes [NumCells]CellType
	density   [NumCells]float32
}

// New builds a simulation with the border ring solid and all particles
// packed into a block covering the interior, at rest.
func New() *Sim {
	sim := &Sim{}

	for k := range sim.particles {
		sim.particles[k] = Particle{
			X: float32(k%SimWidth) + 1.5,
			Y: float32(k/SimWidth) + 1.5,
		}
	}

	for j := 0; j < GridHeight; j++ {
		for i := 0; i < GridWidth; i++ {
			open := float32(1)
			if i == 0 || i == GridWidth-1 || j == 0 || j == GridHeight-1 {
				open = 0
			}
			sim.s[idx(i, j)] = open
		}
	}

	return sim
}

// Step advances one frame: force integration, particle-to-grid transfer,
// incompressibility projection, grid-to-particle transfer, advection with
// collision resolution, then the display density rebuild. ax and ay are
// raw accelerometer counts in the device's axis convention; AccelScale
// normalizes them.
func (s *Sim) Step(ax, ay int32) {
	s.ApplyForces(ax, ay)
	s.TransferToGrid()
	s.Project()
	s.TransferFromGrid()
	s.Advect()
	s.UpdateDensity()
}

// ApplyForces adds the tilt-derived force to every particle velocity and
// applies isotropic damping to bound energy growth.
func (s *Sim) ApplyForces(ax, ay int32) {
	fx := float32(ax) / AccelScale
	fy := float32(ay) / AccelScale

	for k := range s.particles {
		p := &s.particles[k]
		p.VX += fx * Dt
		p.VY += fy * Dt
		p.VX *= Damping
		p.VY *= Damping
	}
}

// Particles returns a copy of the particle store.
func (s *Sim) Particles() [NumParticles]Particle {
	return s.particles
}

// State is the restartable portion of a simulation: the particle store
// plus the grid velocities that seed the next frame's FLIP delta. All
// other fields are rederived every frame.
type State struct {
	Particles [NumParticles]Particle `json:"particles"`
	U         [NumCells]float32      `json:"u"`
	V         [NumCells]float32      `json:"v"`
}

// State captures the current simulation state.
func (s *Sim) State() State {
	return State{Particles: s.particles, U: s.u, V: s.v}
}

// Restore overwrites the simulation with a captured state. The solid mask
// and classification are untouched; the classification is rebuilt on the
// next transfer.
func (s *Sim) Restore(st State) {
	s.particles = st.Particles
	s.u = st.U
	s.v = st.V
}

func idx(i, j int) int {
	return j*GridWidth + i
}
