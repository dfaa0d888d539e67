package view

import "github.com/san-kum/mindgraph/internal/graph"

// NodeSprite is one renderable node: screen position after the camera
// transform plus the attributes a drawing surface needs.
type NodeSprite struct {
	ID       string
	Label    string
	Type     graph.NodeType
	X, Y     float64
	Radius   float64
	Color    string
	Hovered  bool
	Selected bool
}

// LinkSprite is one renderable link: both endpoint screen positions and a
// stroke weight derived from link strength.
type LinkSprite struct {
	X1, Y1 float64
	X2, Y2 float64
	Weight float64
}

// Frame is one rendered projection of the visible graph. Drawing it to
// any surface (terminal canvas, SVG, ...) is the consumer's concern.
type Frame struct {
	Nodes []NodeSprite
	Links []LinkSprite
}

// StrokeWeight maps a link strength in [0,1] to a stroke width.
func StrokeWeight(strength float64) float64 {
	return 0.5 + 2.5*strength
}
