package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/mindgraph/internal/graph"
)

// Theme maps node types and chrome to terminal colors.
type Theme struct {
	Name     string
	Entry    lipgloss.Color
	Tag      lipgloss.Color
	Topic    lipgloss.Color
	Date     lipgloss.Color
	Link     lipgloss.Color
	Label    lipgloss.Color
	Selected lipgloss.Color
	Muted    lipgloss.Color
}

var (
	ThemeInk = Theme{
		Name:     "ink",
		Entry:    lipgloss.Color("86"),  // cyan
		Tag:      lipgloss.Color("213"), // magenta
		Topic:    lipgloss.Color("220"), // yellow
		Date:     lipgloss.Color("82"),  // green
		Link:     lipgloss.Color("238"),
		Label:    lipgloss.Color("255"),
		Selected: lipgloss.Color("231"),
		Muted:    lipgloss.Color("242"),
	}

	ThemePaper = Theme{
		Name:     "paper",
		Entry:    lipgloss.Color("25"),
		Tag:      lipgloss.Color("130"),
		Topic:    lipgloss.Color("90"),
		Date:     lipgloss.Color("28"),
		Link:     lipgloss.Color("250"),
		Label:    lipgloss.Color("235"),
		Selected: lipgloss.Color("16"),
		Muted:    lipgloss.Color("246"),
	}
)

// Themes in cycle order.
var Themes = []Theme{ThemeInk, ThemePaper}

// NodeColor returns the theme color for a node, honoring an explicit
// per-node override.
func (t Theme) NodeColor(typ graph.NodeType, override string) lipgloss.Color {
	if override != "" {
		return lipgloss.Color(override)
	}
	switch typ {
	case graph.TypeEntry:
		return t.Entry
	case graph.TypeTag:
		return t.Tag
	case graph.TypeTopic:
		return t.Topic
	case graph.TypeDate:
		return t.Date
	default:
		return t.Label
	}
}

// GetTheme resolves a theme by name, defaulting to ink.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeInk
}
