package metrics

import (
	"math"

	"github.com/san-kum/mindgraph/internal/forces"
	"github.com/san-kum/mindgraph/internal/graph"
)

// Metric observes the simulator once per tick and reduces what it saw to
// a single value.
type Metric interface {
	Name() string
	Observe(s *forces.Simulator)
	Value() float64
	Reset()
}

// KineticEnergy tracks mean squared node speed, the layout's settledness
// signal.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
	last    float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(s *forces.Simulator) {
	k.last = s.KineticEnergy()
	k.total += k.last
	k.samples++
}

// Value returns the most recent observation.
func (k *KineticEnergy) Value() float64 { return k.last }

// Mean returns the average over all observations.
func (k *KineticEnergy) Mean() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.samples = 0
	k.total = 0
	k.last = 0
}

// MaxSpeed tracks the fastest node speed seen across all observations.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{name: "max_speed"} }

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(s *forces.Simulator) {
	for i := 0; i < s.Len(); i++ {
		vx, vy := s.Velocity(i)
		if v := math.Hypot(vx, vy); v > m.max {
			m.max = v
		}
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }

// DroppedLinks surfaces the ingestion-time dangling-link counter as a
// metric so it is never silently swallowed.
type DroppedLinks struct {
	name string
	snap *graph.Snapshot
}

func NewDroppedLinks(snap *graph.Snapshot) *DroppedLinks {
	return &DroppedLinks{name: "dropped_links", snap: snap}
}

func (d *DroppedLinks) Name() string                { return d.name }
func (d *DroppedLinks) Observe(_ *forces.Simulator) {}
func (d *DroppedLinks) Value() float64              { return float64(d.snap.Dropped()) }
func (d *DroppedLinks) Reset()                      {}
