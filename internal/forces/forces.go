package forces

import (
	"math"
	"math/rand"

	"github.com/san-kum/mindgraph/internal/graph"
)

const (
	// Epsilon floors the squared pairwise distance before dividing, so
	// coincident nodes never produce an infinite repulsion.
	Epsilon = 1e-4

	// BasePadding is the fixed part of the viewport clamp margin; each
	// node adds half its size on top.
	BasePadding = 16.0

	// BaseDistance is the link spring rest length before node radii are
	// added.
	BaseDistance = 60.0

	// DefaultWarmStart is the number of synchronous ticks run before the
	// first frame is shown.
	DefaultWarmStart = 100

	// repelScale folds the per-tick step into the repulsion term so the
	// published Repel coefficient stays in a readable range.
	repelScale = 0.001
)

// Coefficients are the per-tick force tunables. The simulation is fixed
// step: none of these scale with wall-clock time, so visual speed is tied
// to invocation rate.
type Coefficients struct {
	Repel   float64
	Center  float64
	Link    float64
	Damping float64
}

// Defaults returns the tuned coefficient set.
func Defaults() Coefficients {
	return Coefficients{Repel: 400, Center: 0.002, Link: 0.04, Damping: 0.85}
}

// PinOwner identifies who holds a pin on a body. Dragging and the
// declutter layout pin independently; a body is held while any owner's
// pin remains.
type PinOwner uint8

const (
	PinDrag PinOwner = 1 << iota
	PinLayout
)

// Body is the mutable kinematic state of one node.
type Body struct {
	X, Y   float64
	VX, VY float64

	pinX, pinY float64
	pins       PinOwner
}

// Simulator advances a snapshot's bodies by one fixed step per Tick.
// It is not safe for concurrent use; the engine serializes all access on
// its frame loop.
type Simulator struct {
	snap   *graph.Snapshot
	bodies []Body
	co     Coefficients

	width, height float64

	accX, accY []float64
}

// New seeds every body at a random position inside the padded viewport.
// The same seed always produces the same initial placement.
func New(snap *graph.Snapshot, co Coefficients, width, height float64, seed int64) *Simulator {
	s := &Simulator{
		snap:   snap,
		bodies: make([]Body, snap.Len()),
		co:     co,
		width:  width,
		height: height,
		accX:   make([]float64, snap.Len()),
		accY:   make([]float64, snap.Len()),
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range s.bodies {
		pad := BasePadding + snap.Node(i).Size/2
		s.bodies[i].X = randomIn(rng, pad, width-pad)
		s.bodies[i].Y = randomIn(rng, pad, height-pad)
	}
	return s
}

func randomIn(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + rng.Float64()*(hi-lo)
}

// Len returns the body count.
func (s *Simulator) Len() int { return len(s.bodies) }

// Position returns the current position of body i.
func (s *Simulator) Position(i int) (x, y float64) {
	return s.bodies[i].X, s.bodies[i].Y
}

// Velocity returns the current velocity of body i.
func (s *Simulator) Velocity(i int) (vx, vy float64) {
	return s.bodies[i].VX, s.bodies[i].VY
}

// Pin holds body i exactly at (x, y) on behalf of owner, moving it there
// immediately. A pinned body accumulates no forces but still repels and
// attracts its neighbors.
func (s *Simulator) Pin(i int, owner PinOwner, x, y float64) {
	b := &s.bodies[i]
	b.pins |= owner
	b.pinX, b.pinY = x, y
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
}

// Unpin releases owner's pin on body i. The body resumes simulation from
// rest once no owner holds it.
func (s *Simulator) Unpin(i int, owner PinOwner) {
	s.bodies[i].pins &^= owner
}

// UnpinAll releases owner's pins on every body.
func (s *Simulator) UnpinAll(owner PinOwner) {
	for i := range s.bodies {
		s.bodies[i].pins &^= owner
	}
}

// Pinned reports whether any owner holds body i.
func (s *Simulator) Pinned(i int) bool { return s.bodies[i].pins != 0 }

// PinnedBy reports whether owner holds body i.
func (s *Simulator) PinnedBy(i int, owner PinOwner) bool {
	return s.bodies[i].pins&owner != 0
}

// Tick advances every unpinned body by one fixed step. All forces are
// computed from the pre-tick positions before any body moves, so the
// result does not depend on node order.
func (s *Simulator) Tick() {
	n := len(s.bodies)
	if n == 0 {
		return
	}

	for i := 0; i < n; i++ {
		s.accX[i], s.accY[i] = 0, 0
	}

	cx, cy := s.width/2, s.height/2

	// Pairwise repulsion, O(n²) with a softening floor.
	for i := 0; i < n; i++ {
		bi := &s.bodies[i]
		szi := s.snap.Node(i).Size
		for j := i + 1; j < n; j++ {
			bj := &s.bodies[j]
			dx := bj.X - bi.X
			dy := bj.Y - bi.Y
			d2 := dx*dx + dy*dy
			if d2 < Epsilon {
				d2 = Epsilon
				dx = math.Sqrt(Epsilon) // deterministic push for coincident bodies
				dy = 0
			}
			d := math.Sqrt(d2)
			f := s.co.Repel * szi * s.snap.Node(j).Size / d2 * repelScale
			ux, uy := dx/d, dy/d
			s.accX[i] -= ux * f
			s.accY[i] -= uy * f
			s.accX[j] += ux * f
			s.accY[j] += uy * f
		}
	}

	// Weak centering spring keeps the cloud on screen.
	for i := 0; i < n; i++ {
		s.accX[i] += (cx - s.bodies[i].X) * s.co.Center
		s.accY[i] += (cy - s.bodies[i].Y) * s.co.Center
	}

	// Link springs toward per-edge rest length.
	for _, e := range s.snap.Edges() {
		ba, bb := &s.bodies[e.A], &s.bodies[e.B]
		dx := bb.X - ba.X
		dy := bb.Y - ba.Y
		d := math.Sqrt(dx*dx + dy*dy)
		if d*d < Epsilon {
			continue
		}
		target := BaseDistance + s.snap.Node(e.A).Size/2 + s.snap.Node(e.B).Size/2
		f := (d - target) * e.Strength * s.co.Link
		ux, uy := dx/d, dy/d
		s.accX[e.A] += ux * f
		s.accY[e.A] += uy * f
		s.accX[e.B] -= ux * f
		s.accY[e.B] -= uy * f
	}

	// Integrate and clamp. Pinned bodies hold their pin exactly.
	for i := 0; i < n; i++ {
		b := &s.bodies[i]
		if b.pins != 0 {
			b.X, b.Y = b.pinX, b.pinY
			b.VX, b.VY = 0, 0
			continue
		}
		b.VX = (b.VX + s.accX[i]) * s.co.Damping
		b.VY = (b.VY + s.accY[i]) * s.co.Damping
		b.X += b.VX
		b.Y += b.VY

		pad := BasePadding + s.snap.Node(i).Size/2
		b.X = clamp(b.X, pad, s.width-pad)
		b.Y = clamp(b.Y, pad, s.height-pad)
	}
}

// WarmStart runs n ticks synchronously so the first visible frame shows a
// settled layout instead of an unfolding one.
func (s *Simulator) WarmStart(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// KineticEnergy returns the mean squared speed across all bodies, a cheap
// settledness signal.
func (s *Simulator) KineticEnergy() float64 {
	if len(s.bodies) == 0 {
		return 0
	}
	sum := 0.0
	for i := range s.bodies {
		b := &s.bodies[i]
		sum += b.VX*b.VX + b.VY*b.VY
	}
	return sum / float64(len(s.bodies))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
