package engine_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mindgraph/internal/engine"
	"github.com/san-kum/mindgraph/internal/forces"
	"github.com/san-kum/mindgraph/internal/graph"
	"github.com/san-kum/mindgraph/internal/view"
)

// pairSnapshot is the precision fixture: two linked nodes settle about a
// spring length apart, far beyond the hit slop, so clicking a sprite
// center always resolves to that node.
func pairSnapshot() *graph.Snapshot {
	s, err := graph.New(
		[]graph.Node{
			{ID: "a", Label: "entry a", Type: graph.TypeEntry, Meta: &graph.Meta{EntryID: "a", EntryType: "journal"}},
			{ID: "b", Label: "tag b", Type: graph.TypeTag},
		},
		[]graph.Link{{Source: "a", Target: "b", Strength: 1, Type: graph.LinkTag}},
	)
	Expect(err).NotTo(HaveOccurred())
	return s
}

func newEngine(snap *graph.Snapshot, opts engine.Options) *engine.Engine {
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return engine.New(snap, opts)
}

func sprite(f view.Frame, id string) view.NodeSprite {
	for _, n := range f.Nodes {
		if n.ID == id {
			return n
		}
	}
	Fail("sprite not found: " + id)
	return view.NodeSprite{}
}

func click(e *engine.Engine, id string) {
	s := sprite(e.Frame(), id)
	e.PointerDown(s.X, s.Y)
	e.PointerUp()
}

func stepFor(e *engine.Engine, start time.Time, d time.Duration, frames int) {
	for i := 0; i <= frames; i++ {
		e.Step(start.Add(d * time.Duration(i) / time.Duration(frames)))
	}
}

var _ = Describe("Engine", func() {
	var now time.Time

	BeforeEach(func() {
		now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	})

	Describe("selection", func() {
		It("keeps exactly the last selected node", func() {
			var fired []string
			e := newEngine(pairSnapshot(), engine.Options{OnSelect: func(n graph.Node) { fired = append(fired, n.ID) }})
			e.WarmStart()

			click(e, "a")
			click(e, "b")

			sel, ok := e.Selected()
			Expect(ok).To(BeTrue())
			Expect(sel.ID).To(Equal("b"))
			Expect(fired).To(Equal([]string{"a", "b"}))
		})

		It("carries the navigation payload in the callback", func() {
			var got graph.Node
			e := newEngine(pairSnapshot(), engine.Options{OnSelect: func(n graph.Node) { got = n }})
			e.WarmStart()

			click(e, "a")

			Expect(got.Meta).NotTo(BeNil())
			Expect(got.Meta.EntryID).To(Equal("a"))
			Expect(got.Meta.EntryType).To(Equal("journal"))
		})

		It("does not clear selection on empty-canvas click", func() {
			e := newEngine(pairSnapshot(), engine.Options{})
			e.WarmStart()

			click(e, "a")

			// The corner is guaranteed empty: the clamp keeps nodes
			// padded inside the viewport.
			e.PointerDown(1, 1)
			e.PointerUp()

			_, ok := e.Selected()
			Expect(ok).To(BeTrue(), "empty-canvas click must not deselect")

			e.ClearSelection()
			_, ok = e.Selected()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("filters", func() {
		It("restores visibility after toggling a type off and on", func() {
			e := newEngine(graph.Sample(), engine.Options{})
			full := len(e.Frame().Nodes)

			e.ToggleFilter(graph.TypeTag)
			Expect(len(e.Frame().Nodes)).To(BeNumerically("<", full))

			e.ToggleFilter(graph.TypeTag)
			Expect(len(e.Frame().Nodes)).To(Equal(full))
		})

		It("hides links whose endpoints are not both visible", func() {
			e := newEngine(pairSnapshot(), engine.Options{})

			// Only tags visible: the entry endpoint is hidden, so the
			// link must disappear with it.
			e.ToggleFilter(graph.TypeTag)
			f := e.Frame()
			Expect(f.Nodes).To(HaveLen(1))
			Expect(f.Links).To(BeEmpty())

			e.ToggleFilter(graph.TypeEntry)
			f = e.Frame()
			Expect(f.Nodes).To(HaveLen(2))
			Expect(f.Links).To(HaveLen(1))
		})

		It("honors initial filters from options", func() {
			e := newEngine(pairSnapshot(), engine.Options{Filters: []graph.NodeType{graph.TypeEntry}})
			f := e.Frame()
			Expect(f.Nodes).To(HaveLen(1))
			Expect(f.Nodes[0].Type).To(Equal(graph.TypeEntry))
		})
	})

	Describe("viewport", func() {
		It("round-trips zoom within the clamp range", func() {
			e := newEngine(graph.Sample(), engine.Options{})
			e.ZoomBy(0.3)
			e.ZoomBy(-0.3)
			Expect(e.Camera().Scale).To(BeNumerically("~", 1, 1e-12))
		})

		It("pans by pointer delta over scale", func() {
			e := newEngine(graph.Sample(), engine.Options{})
			e.ZoomBy(1) // scale 2

			e.PointerDown(1, 1)
			e.PointerMove(41, 21)
			e.PointerUp()

			cam := e.Camera()
			Expect(cam.OffsetX).To(BeNumerically("~", 20, 1e-9))
			Expect(cam.OffsetY).To(BeNumerically("~", 10, 1e-9))
		})

		It("resets to the identity transform", func() {
			e := newEngine(graph.Sample(), engine.Options{})
			e.ZoomBy(0.5)
			e.PointerDown(1, 1)
			e.PointerMove(30, 30)
			e.PointerUp()

			e.ResetView()
			Expect(e.Camera()).To(Equal(view.Camera{Scale: 1}))
		})
	})

	Describe("gestures", func() {
		It("never switches from panning to dragging mid-gesture", func() {
			e := newEngine(pairSnapshot(), engine.Options{})
			e.WarmStart()

			s := sprite(e.Frame(), "a")
			e.PointerDown(1, 1)
			Expect(e.Mode()).To(Equal(engine.ModePanning))

			// Sweep across the node: mode must stay panning and the node
			// must not get pinned.
			e.PointerMove(s.X, s.Y)
			Expect(e.Mode()).To(Equal(engine.ModePanning))
			i, _ := e.Snapshot().Lookup("a")
			Expect(e.Simulator().Pinned(i)).To(BeFalse())

			e.PointerUp()
			Expect(e.Mode()).To(Equal(engine.ModeIdle))
		})

		It("pins a dragged node and releases it on pointer up", func() {
			e := newEngine(pairSnapshot(), engine.Options{})
			e.WarmStart()

			s := sprite(e.Frame(), "a")
			i, _ := e.Snapshot().Lookup("a")

			e.PointerDown(s.X, s.Y)
			Expect(e.Mode()).To(Equal(engine.ModeDragging))
			Expect(e.Simulator().Pinned(i)).To(BeTrue())

			e.PointerMove(s.X+120, s.Y+40)
			x, y := e.Simulator().Position(i)
			Expect(x).To(BeNumerically("~", s.X+120, 1e-9))
			Expect(y).To(BeNumerically("~", s.Y+40, 1e-9))

			e.PointerUp()
			Expect(e.Simulator().Pinned(i)).To(BeFalse())
			_, selected := e.Selected()
			Expect(selected).To(BeFalse(), "a moved drag is not a click")
		})

		It("holds the dragged node against the simulation", func() {
			e := newEngine(pairSnapshot(), engine.Options{})
			e.WarmStart()

			s := sprite(e.Frame(), "a")
			i, _ := e.Snapshot().Lookup("a")

			e.PointerDown(s.X, s.Y)
			e.PointerMove(s.X+80, s.Y)
			for t := 0; t < 30; t++ {
				e.Step(now.Add(time.Duration(t) * 16 * time.Millisecond))
			}
			x, _ := e.Simulator().Position(i)
			Expect(x).To(BeNumerically("~", s.X+80, 1e-9))
			e.PointerUp()
		})

		It("aborts the gesture on pointer leave without selecting", func() {
			e := newEngine(pairSnapshot(), engine.Options{})
			e.WarmStart()

			s := sprite(e.Frame(), "a")
			e.PointerDown(s.X, s.Y)
			e.PointerLeave()

			Expect(e.Mode()).To(Equal(engine.ModeIdle))
			_, ok := e.Selected()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("reorganize", func() {
		It("is a no-op for a single visible node", func() {
			snap, err := graph.New([]graph.Node{{ID: "solo", Type: graph.TypeEntry}}, nil)
			Expect(err).NotTo(HaveOccurred())
			e := newEngine(snap, engine.Options{})

			x0, y0 := e.Simulator().Position(0)
			e.Reorganize(now)

			Expect(e.Mode()).To(Equal(engine.ModeIdle))
			Expect(e.Simulator().Pinned(0)).To(BeFalse())
			x1, y1 := e.Simulator().Position(0)
			Expect(x1).To(Equal(x0))
			Expect(y1).To(Equal(y0))
		})

		It("pins visible nodes and releases them after the settle window", func() {
			e := newEngine(graph.Sample(), engine.Options{SettleDuration: 800 * time.Millisecond})
			e.WarmStart()

			e.Reorganize(now)
			Expect(e.Mode()).To(Equal(engine.ModeReorganizing))
			for i := 0; i < e.Snapshot().Len(); i++ {
				Expect(e.Simulator().Pinned(i)).To(BeTrue())
			}

			e.Step(now.Add(400 * time.Millisecond))
			Expect(e.Mode()).To(Equal(engine.ModeReorganizing))

			e.Step(now.Add(801 * time.Millisecond))
			Expect(e.Mode()).To(Equal(engine.ModeIdle))
			for i := 0; i < e.Snapshot().Len(); i++ {
				Expect(e.Simulator().Pinned(i)).To(BeFalse())
			}
		})

		It("leaves hidden nodes unpinned", func() {
			e := newEngine(graph.Sample(), engine.Options{})
			e.WarmStart()
			e.ToggleFilter(graph.TypeTag)
			e.ToggleFilter(graph.TypeTopic)

			e.Reorganize(now)
			for i := 0; i < e.Snapshot().Len(); i++ {
				t := e.Snapshot().Node(i).Type
				if t == graph.TypeEntry || t == graph.TypeDate {
					Expect(e.Simulator().Pinned(i)).To(BeFalse(), "hidden node pinned")
				}
			}
		})

		It("lets a drag outlive the settle deadline", func() {
			e := newEngine(pairSnapshot(), engine.Options{SettleDuration: 100 * time.Millisecond})
			e.WarmStart()
			e.Reorganize(now)

			s := sprite(e.Frame(), "a")
			i, _ := e.Snapshot().Lookup("a")
			e.PointerDown(s.X, s.Y)
			e.PointerMove(s.X+50, s.Y)

			// Deadline passes mid-drag: layout pins clear, drag pin holds.
			e.Step(now.Add(200 * time.Millisecond))
			Expect(e.Simulator().Pinned(i)).To(BeTrue())
			j, _ := e.Snapshot().Lookup("b")
			Expect(e.Simulator().Pinned(j)).To(BeFalse())

			e.PointerUp()
			Expect(e.Simulator().Pinned(i)).To(BeFalse())
		})
	})

	Describe("teardown", func() {
		It("discards the settle deadline on close", func() {
			e := newEngine(graph.Sample(), engine.Options{SettleDuration: 100 * time.Millisecond})
			e.WarmStart()
			e.Reorganize(now)
			e.Close()

			// Stepping past the deadline after close must not touch pins.
			e.Step(now.Add(time.Second))
			Expect(e.Closed()).To(BeTrue())
			Expect(e.Mode()).To(Equal(engine.ModeIdle))
		})

		It("ignores pointer events after close", func() {
			e := newEngine(pairSnapshot(), engine.Options{})
			e.WarmStart()
			s := sprite(e.Frame(), "a")
			e.Close()

			e.PointerDown(s.X, s.Y)
			Expect(e.Mode()).To(Equal(engine.ModeIdle))
		})
	})

	Describe("end to end", func() {
		It("converges a linked pair to the spring rest length", func() {
			e := newEngine(pairSnapshot(), engine.Options{})
			e.WarmStart()
			stepFor(e, now, 5*time.Second, 300)

			f := e.Frame()
			a, b := sprite(f, "a"), sprite(f, "b")
			dist := math.Hypot(b.X-a.X, b.Y-a.Y)

			target := forces.BaseDistance + graph.DefaultSize
			Expect(dist).To(BeNumerically("~", target, 8))
		})
	})
})
