package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type snapshotFile struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Parse reads a snapshot from JSON wire format: {"nodes":[...],"links":[...]}.
func Parse(r io.Reader) (*Snapshot, error) {
	var f snapshotFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("graph: decode snapshot: %w", err)
	}
	return New(f.Nodes, f.Links)
}

// Load reads a snapshot from a JSON file.
func Load(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}
