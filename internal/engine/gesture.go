package engine

import (
	"math"
	"time"

	"github.com/san-kum/mindgraph/internal/forces"
)

// Mode is the externally observable interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModeDragging
	ModeReorganizing
)

func (m Mode) String() string {
	switch m {
	case ModePanning:
		return "panning"
	case ModeDragging:
		return "dragging"
	case ModeReorganizing:
		return "reorganizing"
	default:
		return "idle"
	}
}

// gesture is the transient per-gesture state, written only by discrete
// pointer events. The gesture's starting target fixes its mode; it never
// switches between panning and dragging mid-flight.
type gesture struct {
	mode Mode

	startX, startY     float64
	baseOffX, baseOffY float64

	node  int
	moved bool
}

// Mode returns the current interaction state. An active pointer gesture
// wins; otherwise a pending settle deadline reports Reorganizing.
func (e *Engine) Mode() Mode {
	if e.g.mode != ModeIdle {
		return e.g.mode
	}
	if !e.settleAt.IsZero() {
		return ModeReorganizing
	}
	return ModeIdle
}

// SettleDeadline returns the pending declutter deadline, zero if none.
func (e *Engine) SettleDeadline() time.Time { return e.settleAt }

// PointerDown starts a gesture at screen point (sx, sy). Over a node it
// begins a drag and pins the node; over empty canvas it begins a pan.
// Dragging is allowed while declutter pins are settling; the drag pin is
// added alongside the layout pin and moves the shared hold point.
func (e *Engine) PointerDown(sx, sy float64) {
	if e.closed || e.g.mode != ModeIdle {
		return
	}
	if i, ok := e.hit(sx, sy); ok {
		e.g = gesture{mode: ModeDragging, node: i, startX: sx, startY: sy}
		wx, wy := e.cam.ToWorld(sx, sy)
		e.sim.Pin(i, forces.PinDrag, wx, wy)
		return
	}
	e.g = gesture{
		mode:   ModePanning,
		startX: sx, startY: sy,
		baseOffX: e.cam.OffsetX, baseOffY: e.cam.OffsetY,
	}
}

// PointerMove updates the active gesture, or hover tracking when idle.
func (e *Engine) PointerMove(sx, sy float64) {
	if e.closed {
		return
	}
	switch e.g.mode {
	case ModePanning:
		e.cam.OffsetX = e.g.baseOffX + (sx-e.g.startX)/e.cam.Scale
		e.cam.OffsetY = e.g.baseOffY + (sy-e.g.startY)/e.cam.Scale
	case ModeDragging:
		if math.Hypot(sx-e.g.startX, sy-e.g.startY) > clickSlop {
			e.g.moved = true
		}
		wx, wy := e.cam.ToWorld(sx, sy)
		e.sim.Pin(e.g.node, forces.PinDrag, wx, wy)
	default:
		if i, ok := e.hit(sx, sy); ok {
			e.hovered = i
		} else {
			e.hovered = -1
		}
	}
}

// PointerUp finishes the gesture. Releasing a drag clears only the drag
// pin; a press and release within the click slop selects the node.
// Releasing a pan on empty canvas changes nothing else: it does not
// clear the selection.
func (e *Engine) PointerUp() {
	if e.closed {
		return
	}
	if e.g.mode == ModeDragging {
		e.sim.Unpin(e.g.node, forces.PinDrag)
		if !e.g.moved {
			e.selectNode(e.g.node)
		}
	}
	e.g = gesture{}
}

// PointerLeave aborts the gesture without selecting.
func (e *Engine) PointerLeave() {
	if e.closed {
		return
	}
	if e.g.mode == ModeDragging {
		e.sim.Unpin(e.g.node, forces.PinDrag)
	}
	e.g = gesture{}
	e.hovered = -1
}

// hit returns the topmost visible node under a screen point.
func (e *Engine) hit(sx, sy float64) (int, bool) {
	wx, wy := e.cam.ToWorld(sx, sy)
	for i := e.snap.Len() - 1; i >= 0; i-- {
		if !e.NodeVisible(i) {
			continue
		}
		x, y := e.sim.Position(i)
		r := e.snap.Node(i).Size/2 + hitSlop
		if math.Hypot(wx-x, wy-y) <= r {
			return i, true
		}
	}
	return -1, false
}
