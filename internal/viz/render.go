package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mindgraph/internal/view"
)

// Renderer draws engine frames onto a braille canvas sized in terminal
// cells. It owns no engine state; each Render call is a pure projection
// of the frame it is given.
type Renderer struct {
	cols, rows int
	theme      Theme
	canvas     *Canvas

	// per-cell style layer for the overlay glyphs
	styles map[[2]int]lipgloss.Style
}

func NewRenderer(cols, rows int, theme Theme) *Renderer {
	return &Renderer{
		cols:   cols,
		rows:   rows,
		theme:  theme,
		canvas: NewCanvas(cols, rows),
		styles: make(map[[2]int]lipgloss.Style),
	}
}

// SetTheme swaps the color theme.
func (r *Renderer) SetTheme(t Theme) { r.theme = t }

// Theme returns the active theme.
func (r *Renderer) Theme() Theme { return r.theme }

// Resize adjusts the canvas to a new terminal size.
func (r *Renderer) Resize(cols, rows int) {
	if cols == r.cols && rows == r.rows {
		return
	}
	r.cols, r.rows = cols, rows
	r.canvas = NewCanvas(cols, rows)
}

// Render draws one frame. viewW and viewH are the engine's viewport
// dimensions; screen coordinates are mapped onto the canvas sub-pixel
// grid.
func (r *Renderer) Render(f view.Frame, viewW, viewH float64) string {
	r.canvas.Clear()
	for k := range r.styles {
		delete(r.styles, k)
	}

	px := float64(r.cols * 2)
	py := float64(r.rows * 4)
	mapX := func(x float64) int { return int(x / viewW * px) }
	mapY := func(y float64) int { return int(y / viewH * py) }

	for _, l := range f.Links {
		r.canvas.DrawLine(mapX(l.X1), mapY(l.Y1), mapX(l.X2), mapY(l.Y2))
	}

	for _, n := range f.Nodes {
		cx, cy := mapX(n.X), mapY(n.Y)
		// Radius in sub-pixels, scaled to the denser vertical axis.
		pr := int(n.Radius / viewW * px / 2)
		r.canvas.DrawCircle(cx, cy, pr)

		col, row := cx/2, cy/4
		glyph := '●'
		color := r.theme.NodeColor(n.Type, n.Color)
		if n.Selected {
			glyph = '◎'
			color = r.theme.Selected
		} else if n.Hovered {
			glyph = '◉'
		}
		r.canvas.Mark(col, row, glyph)
		r.styles[[2]int{col, row}] = lipgloss.NewStyle().Foreground(color)

		if n.Selected || n.Hovered {
			label := " " + n.Label
			r.canvas.Text(col+1, row, label)
			style := lipgloss.NewStyle().Foreground(r.theme.Label)
			for i := range label {
				r.styles[[2]int{col + 1 + i, row}] = style
			}
		}
	}

	return r.paint()
}

// paint flattens both canvas layers into styled terminal output.
func (r *Renderer) paint() string {
	linkStyle := lipgloss.NewStyle().Foreground(r.theme.Link)

	var b strings.Builder
	for row := 0; row < r.rows; row++ {
		var run []rune // pending unstyled braille runes
		flush := func() {
			if len(run) > 0 {
				b.WriteString(linkStyle.Render(string(run)))
				run = run[:0]
			}
		}
		for col := 0; col < r.cols; col++ {
			if g := r.canvas.Overlay[row][col]; g != 0 {
				flush()
				if style, ok := r.styles[[2]int{col, row}]; ok {
					b.WriteString(style.Render(string(g)))
				} else {
					b.WriteRune(g)
				}
				continue
			}
			run = append(run, r.canvas.Grid[row][col])
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}
