package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/mindgraph/internal/view"
)

// Default SVG palette, keyed by node type. A node's explicit color
// override wins.
var typeFill = map[string]string{
	"entry": "#4fc3f7",
	"tag":   "#f06292",
	"topic": "#ffd54f",
	"date":  "#81c784",
}

// FrameSVG renders one projected frame as an SVG document. Links draw
// first so nodes sit on top; stroke width comes from the frame's link
// weight.
func FrameSVG(f view.Frame, width, height float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#10141a"/>
`, width, height, width, height))

	sb.WriteString(`<g stroke="#3a4556" fill="none">` + "\n")
	for _, l := range f.Links {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke-width="%.1f"/>`+"\n",
			l.X1, l.Y1, l.X2, l.Y2, l.Weight))
	}
	sb.WriteString("</g>\n")

	for _, n := range f.Nodes {
		fill := n.Color
		if fill == "" {
			if c, ok := typeFill[string(n.Type)]; ok {
				fill = c
			} else {
				fill = "#cccccc"
			}
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			n.X, n.Y, n.Radius, fill))
		if n.Selected {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#ffffff" stroke-width="2"/>`+"\n",
				n.X, n.Y, n.Radius+4))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" fill="#dde4ee" text-anchor="middle">%s</text>`+"\n",
			n.X, n.Y+n.Radius+12, escape(n.Label)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
