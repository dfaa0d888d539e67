package engine

import (
	"time"

	"github.com/san-kum/mindgraph/internal/declutter"
	"github.com/san-kum/mindgraph/internal/forces"
	"github.com/san-kum/mindgraph/internal/graph"
	"github.com/san-kum/mindgraph/internal/view"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0

	// DefaultSettle is how long declutter pins are held before the force
	// layout resumes.
	DefaultSettle = 800 * time.Millisecond

	// clickSlop is the screen-space movement threshold separating a
	// click from a drag.
	clickSlop = 3.0

	// hitSlop widens node hit targets in world units.
	hitSlop = 4.0
)

// Options configures an engine instance. Zero values fall back to
// defaults.
type Options struct {
	Width, Height  float64
	Coefficients   forces.Coefficients
	SettleDuration time.Duration
	WarmStartTicks int
	Seed           int64
	Filters        []graph.NodeType

	// OnSelect is invoked with the full node record each time a node is
	// selected.
	OnSelect func(graph.Node)
}

// Engine owns the simulator, the camera, and all interaction state. It is
// single threaded: every mutation happens on the caller's frame loop, and
// no goroutine or timer outlives Close.
type Engine struct {
	snap *graph.Snapshot
	sim  *forces.Simulator
	cam  view.Camera

	filters  map[graph.NodeType]bool
	selected int
	hovered  int

	g        gesture
	settleAt time.Time

	onSelect func(graph.Node)
	settle   time.Duration
	warm     int
	width    float64
	height   float64
	closed   bool
}

// New builds an engine over a snapshot. Call WarmStart before the first
// Frame to avoid showing the random seed positions.
func New(snap *graph.Snapshot, opts Options) *Engine {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Coefficients == (forces.Coefficients{}) {
		opts.Coefficients = forces.Defaults()
	}
	if opts.SettleDuration <= 0 {
		opts.SettleDuration = DefaultSettle
	}
	if opts.WarmStartTicks <= 0 {
		opts.WarmStartTicks = forces.DefaultWarmStart
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		snap:     snap,
		sim:      forces.New(snap, opts.Coefficients, opts.Width, opts.Height, opts.Seed),
		cam:      view.NewCamera(),
		filters:  make(map[graph.NodeType]bool),
		selected: -1,
		hovered:  -1,
		onSelect: opts.OnSelect,
		settle:   opts.SettleDuration,
		warm:     opts.WarmStartTicks,
		width:    opts.Width,
		height:   opts.Height,
	}
	for _, t := range opts.Filters {
		e.filters[t] = true
	}
	return e
}

// WarmStart runs the configured number of synchronous ticks.
func (e *Engine) WarmStart() { e.sim.WarmStart(e.warm) }

// Step advances the engine one frame: expire the declutter settle
// deadline if due, then run one simulation tick. After Close it does
// nothing.
func (e *Engine) Step(now time.Time) {
	if e.closed {
		return
	}
	if !e.settleAt.IsZero() && !now.Before(e.settleAt) {
		e.sim.UnpinAll(forces.PinLayout)
		e.settleAt = time.Time{}
	}
	e.sim.Tick()
}

// Close tears the engine down. The pending settle deadline is discarded,
// so the delayed unpin can never run against a torn-down engine.
func (e *Engine) Close() {
	e.closed = true
	e.settleAt = time.Time{}
	e.g = gesture{}
}

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool { return e.closed }

// Snapshot returns the underlying graph model.
func (e *Engine) Snapshot() *graph.Snapshot { return e.snap }

// Simulator exposes the force simulator for metrics.
func (e *Engine) Simulator() *forces.Simulator { return e.sim }

// Camera returns the current viewport transform.
func (e *Engine) Camera() view.Camera { return e.cam }

// ZoomBy adjusts the camera scale within its clamp range.
func (e *Engine) ZoomBy(delta float64) { e.cam.ZoomBy(delta) }

// ResetView restores the identity transform.
func (e *Engine) ResetView() { e.cam.Reset() }

// ToggleFilter flips a node type in the active filter set. An empty set
// shows everything.
func (e *Engine) ToggleFilter(t graph.NodeType) {
	if e.filters[t] {
		delete(e.filters, t)
	} else {
		e.filters[t] = true
	}
}

// FilterActive reports whether t is in the active filter set.
func (e *Engine) FilterActive(t graph.NodeType) bool { return e.filters[t] }

// NodeVisible reports whether node i passes the active filters.
func (e *Engine) NodeVisible(i int) bool {
	if len(e.filters) == 0 {
		return true
	}
	return e.filters[e.snap.Node(i).Type]
}

// EdgeVisible reports whether both endpoints of an edge are visible.
func (e *Engine) EdgeVisible(edge graph.Edge) bool {
	return e.NodeVisible(edge.A) && e.NodeVisible(edge.B)
}

// Selected returns the selected node record, if any.
func (e *Engine) Selected() (graph.Node, bool) {
	if e.selected < 0 {
		return graph.Node{}, false
	}
	return e.snap.Node(e.selected), true
}

// ClearSelection drops the selection. This is the only way to deselect;
// clicking empty canvas deliberately does not.
func (e *Engine) ClearSelection() { e.selected = -1 }

func (e *Engine) selectNode(i int) {
	e.selected = i
	if e.onSelect != nil {
		e.onSelect(e.snap.Node(i))
	}
}

// Reorganize pins every visible node to a decluttered target and starts
// the settle countdown. With fewer than two visible nodes it completes
// immediately without pinning anything.
func (e *Engine) Reorganize(now time.Time) {
	if e.closed {
		return
	}

	var nodes []declutter.Node
	for i := 0; i < e.snap.Len(); i++ {
		if !e.NodeVisible(i) {
			continue
		}
		x, y := e.sim.Position(i)
		n := e.snap.Node(i)
		nodes = append(nodes, declutter.Node{ID: n.ID, Size: n.Size, X: x, Y: y})
	}
	if len(nodes) < 2 {
		return
	}

	var edges []declutter.Edge
	for _, edge := range e.snap.Edges() {
		if e.EdgeVisible(edge) {
			edges = append(edges, declutter.Edge{
				Source: e.snap.Node(edge.A).ID,
				Target: e.snap.Node(edge.B).ID,
			})
		}
	}

	targets := declutter.Layout(nodes, edges, e.width, e.height)
	for id, p := range targets {
		if i, ok := e.snap.Lookup(id); ok {
			e.sim.Pin(i, forces.PinLayout, p.X, p.Y)
		}
	}
	e.settleAt = now.Add(e.settle)
}

// Frame projects the visible graph through the camera.
func (e *Engine) Frame() view.Frame {
	var f view.Frame

	for _, edge := range e.snap.Edges() {
		if !e.EdgeVisible(edge) {
			continue
		}
		ax, ay := e.sim.Position(edge.A)
		bx, by := e.sim.Position(edge.B)
		sax, say := e.cam.ToScreen(ax, ay)
		sbx, sby := e.cam.ToScreen(bx, by)
		f.Links = append(f.Links, view.LinkSprite{
			X1: sax, Y1: say, X2: sbx, Y2: sby,
			Weight: view.StrokeWeight(edge.Strength),
		})
	}

	for i := 0; i < e.snap.Len(); i++ {
		if !e.NodeVisible(i) {
			continue
		}
		n := e.snap.Node(i)
		x, y := e.sim.Position(i)
		sx, sy := e.cam.ToScreen(x, y)
		f.Nodes = append(f.Nodes, view.NodeSprite{
			ID:       n.ID,
			Label:    n.Label,
			Type:     n.Type,
			X:        sx,
			Y:        sy,
			Radius:   n.Size / 2 * e.cam.Scale,
			Color:    n.Color,
			Hovered:  i == e.hovered,
			Selected: i == e.selected,
		})
	}
	return f
}
