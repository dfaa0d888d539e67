package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mindgraph/internal/engine"
	"github.com/san-kum/mindgraph/internal/graph"
	"github.com/san-kum/mindgraph/internal/viz"
)

const (
	zoomStep  = 0.1
	statusBar = 2 // rows reserved under the canvas
)

var (
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type model struct {
	eng      *engine.Engine
	renderer *viz.Renderer

	viewW, viewH float64
	cols, rows   int
	themeIdx     int
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// New builds the interactive viewer around an existing engine.
func New(eng *engine.Engine, viewW, viewH float64, theme viz.Theme) model {
	themeIdx := 0
	for i, t := range viz.Themes {
		if t.Name == theme.Name {
			themeIdx = i
		}
	}
	return model{
		eng:      eng,
		renderer: viz.NewRenderer(80, 22, theme),
		viewW:    viewW,
		viewH:    viewH,
		cols:     80,
		rows:     24,
		themeIdx: themeIdx,
	}
}

// Run starts the viewer and blocks until quit. The engine is closed on
// the way out.
func Run(eng *engine.Engine, viewW, viewH float64, theme viz.Theme) error {
	p := tea.NewProgram(New(eng, viewW, viewH, theme), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	eng.Close()
	return err
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.renderer.Resize(m.canvasCols(), m.canvasRows())
		return m, nil
	case tickMsg:
		m.eng.Step(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "d":
		m.eng.Reorganize(time.Now())
	case "0", "r":
		m.eng.ResetView()
	case "esc":
		m.eng.ClearSelection()
	case "+", "=":
		m.eng.ZoomBy(zoomStep)
	case "-":
		m.eng.ZoomBy(-zoomStep)
	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(viz.Themes)
		m.renderer.SetTheme(viz.Themes[m.themeIdx])
	case "1":
		m.eng.ToggleFilter(graph.TypeEntry)
	case "2":
		m.eng.ToggleFilter(graph.TypeTag)
	case "3":
		m.eng.ToggleFilter(graph.TypeTopic)
	case "4":
		m.eng.ToggleFilter(graph.TypeDate)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) {
	x, y := m.toScreen(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.eng.PointerDown(x, y)
		case tea.MouseButtonWheelUp:
			m.eng.ZoomBy(zoomStep)
		case tea.MouseButtonWheelDown:
			m.eng.ZoomBy(-zoomStep)
		}
	case tea.MouseActionMotion:
		m.eng.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.eng.PointerUp()
	}
}

// toScreen maps a terminal cell to the engine's screen space.
func (m model) toScreen(col, row int) (float64, float64) {
	cols, rows := m.canvasCols(), m.canvasRows()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	x := (float64(col) + 0.5) / float64(cols) * m.viewW
	y := (float64(row) + 0.5) / float64(rows) * m.viewH
	return x, y
}

func (m model) canvasCols() int { return m.cols }
func (m model) canvasRows() int { return m.rows - statusBar }

func (m model) View() string {
	f := m.eng.Frame()
	canvas := m.renderer.Render(f, m.viewW, m.viewH)
	status := fmt.Sprintf(" %d nodes  %d links  zoom %.1fx  %s",
		len(f.Nodes), len(f.Links), m.eng.Camera().Scale, m.eng.Mode())
	if dropped := m.eng.Snapshot().Dropped(); dropped > 0 {
		status += warn.Render(fmt.Sprintf("  %d dangling links dropped", dropped))
	}

	var detail string
	if sel, ok := m.eng.Selected(); ok {
		detail = accent.Render(" "+sel.Label) + dim.Render("  ["+string(sel.Type)+"]")
		if sel.Meta != nil && sel.Meta.Snippet != "" {
			detail += dim.Render("  " + sel.Meta.Snippet)
		}
	} else {
		detail = dim.Render(" click: select  drag: move/pan  wheel: zoom  d: declutter  1-4: filters  q: quit")
	}

	return canvas + dim.Render(status) + "\n" + detail
}
