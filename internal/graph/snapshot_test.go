package graph

import (
	"strings"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	s, err := New(
		[]Node{{ID: "a", Type: TypeEntry}, {ID: "b", Type: TypeTag}},
		[]Link{{Source: "a", Target: "b", Type: LinkTag}},
	)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if s.Node(0).Size != DefaultSize {
		t.Errorf("expected default size %v, got %v", DefaultSize, s.Node(0).Size)
	}
	if s.Edges()[0].Strength != DefaultStrength {
		t.Errorf("expected default strength %v, got %v", DefaultStrength, s.Edges()[0].Strength)
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Node{{ID: "a"}, {ID: "a"}}, nil)
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewRejectsInvalidNumbers(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		links []Link
	}{
		{"negative size", []Node{{ID: "a", Size: -1}}, nil},
		{"negative strength", []Node{{ID: "a"}, {ID: "b"}}, []Link{{Source: "a", Target: "b", Strength: -0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.nodes, tt.links); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDanglingLinksDropped(t *testing.T) {
	s, err := New(
		[]Node{{ID: "a"}, {ID: "b"}},
		[]Link{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "ghost"},
			{Source: "ghost", Target: "b"},
		},
	)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if len(s.Edges()) != 1 {
		t.Errorf("expected 1 resolved edge, got %d", len(s.Edges()))
	}
	if s.Dropped() != 2 {
		t.Errorf("expected 2 dropped links, got %d", s.Dropped())
	}
}

func TestDegree(t *testing.T) {
	s, err := New(
		[]Node{{ID: "hub"}, {ID: "x"}, {ID: "y"}, {ID: "z"}},
		[]Link{
			{Source: "hub", Target: "x"},
			{Source: "hub", Target: "y"},
			{Source: "z", Target: "hub"},
		},
	)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	hub, _ := s.Lookup("hub")
	if s.Degree(hub) != 3 {
		t.Errorf("expected hub degree 3, got %d", s.Degree(hub))
	}
	x, _ := s.Lookup("x")
	if s.Degree(x) != 1 {
		t.Errorf("expected x degree 1, got %d", s.Degree(x))
	}
}

func TestParse(t *testing.T) {
	data := `{
		"nodes": [
			{"id": "e1", "label": "entry one", "type": "entry", "metadata": {"entryId": "e1", "entryType": "journal"}},
			{"id": "t1", "label": "tag one", "type": "tag", "size": 25}
		],
		"links": [
			{"source": "e1", "target": "t1", "type": "tag", "strength": 0.9}
		]
	}`

	s, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 nodes, got %d", s.Len())
	}
	if s.Node(0).Meta == nil || s.Node(0).Meta.EntryID != "e1" {
		t.Error("entry metadata not decoded")
	}
	if s.Node(1).Size != 25 {
		t.Errorf("expected explicit size 25, got %v", s.Node(1).Size)
	}
	if len(s.Edges()) != 1 || s.Edges()[0].Strength != 0.9 {
		t.Error("link not resolved")
	}
}

func TestSample(t *testing.T) {
	s := Sample()
	if s.Len() == 0 {
		t.Fatal("sample graph is empty")
	}
	if s.Dropped() != 0 {
		t.Errorf("sample graph has %d dangling links", s.Dropped())
	}
}
