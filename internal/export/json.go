package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/mindgraph/internal/graph"
	"github.com/san-kum/mindgraph/internal/view"
)

// LayoutData is the exported layout: node positions plus the ingestion
// stats a downstream consumer needs.
type LayoutData struct {
	Width        float64           `json:"width"`
	Height       float64           `json:"height"`
	Nodes        []NodePlacement   `json:"nodes"`
	Links        []view.LinkSprite `json:"links"`
	DroppedLinks int               `json:"droppedLinks"`
}

type NodePlacement struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Type   graph.NodeType `json:"type"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Radius float64        `json:"radius"`
}

// LayoutJSON writes the frame's positions as indented JSON.
func LayoutJSON(w io.Writer, snap *graph.Snapshot, f view.Frame, width, height float64) error {
	data := LayoutData{
		Width:        width,
		Height:       height,
		Nodes:        make([]NodePlacement, 0, len(f.Nodes)),
		Links:        f.Links,
		DroppedLinks: snap.Dropped(),
	}
	for _, n := range f.Nodes {
		data.Nodes = append(data.Nodes, NodePlacement{
			ID:     n.ID,
			Label:  n.Label,
			Type:   n.Type,
			X:      n.X,
			Y:      n.Y,
			Radius: n.Radius,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
