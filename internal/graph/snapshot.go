package graph

import (
	"fmt"
	"math"
)

// Snapshot is the immutable graph model: a node table plus links resolved
// to indexes into it. Built once from external input and treated as
// read-only afterward.
type Snapshot struct {
	nodes   []Node
	edges   []Edge
	index   map[string]int
	degree  []int
	dropped int
}

// New validates nodes and links and builds a snapshot. Duplicate node ids
// and non-finite or negative sizes/strengths are rejected. Links whose
// endpoints do not resolve are dropped, not aliased to a fallback node;
// the dropped count is retained for observability.
func New(nodes []Node, links []Link) (*Snapshot, error) {
	s := &Snapshot{
		nodes:  make([]Node, len(nodes)),
		index:  make(map[string]int, len(nodes)),
		degree: make([]int, len(nodes)),
	}

	for i, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("graph: node %d has empty id", i)
		}
		if _, ok := s.index[n.ID]; ok {
			return nil, fmt.Errorf("graph: duplicate node id %q", n.ID)
		}
		if n.Size == 0 {
			n.Size = DefaultSize
		}
		if n.Size < 0 || math.IsNaN(n.Size) || math.IsInf(n.Size, 0) {
			return nil, fmt.Errorf("graph: node %q has invalid size %v", n.ID, n.Size)
		}
		s.index[n.ID] = i
		s.nodes[i] = n
	}

	for _, l := range links {
		if l.Strength == 0 {
			l.Strength = DefaultStrength
		}
		if l.Strength < 0 || math.IsNaN(l.Strength) || math.IsInf(l.Strength, 0) {
			return nil, fmt.Errorf("graph: link %s->%s has invalid strength %v", l.Source, l.Target, l.Strength)
		}
		a, okA := s.index[l.Source]
		b, okB := s.index[l.Target]
		if !okA || !okB {
			s.dropped++
			continue
		}
		s.edges = append(s.edges, Edge{A: a, B: b, Strength: l.Strength, Type: l.Type})
		s.degree[a]++
		s.degree[b]++
	}

	return s, nil
}

// Len returns the node count.
func (s *Snapshot) Len() int { return len(s.nodes) }

// Node returns the node at index i.
func (s *Snapshot) Node(i int) Node { return s.nodes[i] }

// Nodes returns a copy of the node table.
func (s *Snapshot) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Edges returns the resolved edge list. Callers must not mutate it.
func (s *Snapshot) Edges() []Edge { return s.edges }

// Lookup returns the index for a node id.
func (s *Snapshot) Lookup(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Degree returns the number of edges incident to node i.
func (s *Snapshot) Degree(i int) int { return s.degree[i] }

// Dropped reports how many links were discarded at ingestion because an
// endpoint id did not resolve.
func (s *Snapshot) Dropped() int { return s.dropped }
