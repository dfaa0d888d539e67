package graph

// NodeType classifies a content node.
type NodeType string

const (
	TypeEntry NodeType = "entry"
	TypeTag   NodeType = "tag"
	TypeTopic NodeType = "topic"
	TypeDate  NodeType = "date"
)

// Types lists every node type in display order.
var Types = []NodeType{TypeEntry, TypeTag, TypeTopic, TypeDate}

// LinkType classifies a relationship. Informational only; it does not
// affect layout physics.
type LinkType string

const (
	LinkTag      LinkType = "tag"
	LinkTopic    LinkType = "topic"
	LinkTemporal LinkType = "temporal"
	LinkSemantic LinkType = "semantic"
)

const (
	DefaultSize     = 20.0
	DefaultStrength = 0.5
)

// Meta carries free-form node metadata. For entry nodes, EntryID and
// EntryType form the navigation payload handed to the selection callback.
type Meta struct {
	Date      string   `json:"date,omitempty" yaml:"date,omitempty"`
	Snippet   string   `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	EntryID   string   `json:"entryId,omitempty" yaml:"entry_id,omitempty"`
	EntryType string   `json:"entryType,omitempty" yaml:"entry_type,omitempty"`
}

// Node is one content entity in the snapshot. Size doubles as the render
// radius and the mass proxy for repulsion.
type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Type  NodeType `json:"type"`
	Size  float64  `json:"size,omitempty"`
	Color string   `json:"color,omitempty"`
	Meta  *Meta    `json:"metadata,omitempty"`
}

// Link is a typed relationship between two nodes, referenced by id.
// Strength in [0,1] governs spring stiffness.
type Link struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Strength float64  `json:"strength,omitempty"`
	Type     LinkType `json:"type"`
}

// Edge is a link resolved to node indexes. Edges never alias node values;
// endpoints are always looked up live in the snapshot's node table.
type Edge struct {
	A, B     int
	Strength float64
	Type     LinkType
}
