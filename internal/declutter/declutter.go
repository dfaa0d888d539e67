// Package declutter computes the one-shot grid layout used to untangle a
// crowded graph. The result is a pure position mapping; the caller pins
// nodes to it, animates, and releases the pins after a settle period.
package declutter

import (
	"math"
	"sort"
)

const (
	// CellCap bounds the grid cell size so small graphs do not scatter
	// across the whole viewport.
	CellCap = 180.0

	// Margin keeps computed targets off the viewport edge.
	Margin = 24.0

	reliefPasses   = 3
	reliefFraction = 0.3
	spiralFraction = 0.3
	goldenAngle    = 2.39996
)

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Node is the visible-node input: id, radius source, and current position
// (only used for the single-node short circuit).
type Node struct {
	ID   string
	Size float64
	X, Y float64
}

// Edge is a visible link between two node ids.
type Edge struct {
	Source, Target string
}

// Layout computes a decluttered target position for every node. It ranks
// nodes by degree, places them row-major into a centered grid with a
// spiral perturbation, then runs a few relief passes pushing linked
// neighbors apart. Zero nodes yield an empty map; a single node keeps its
// current position.
func Layout(nodes []Node, edges []Edge, width, height float64) map[string]Point {
	out := make(map[string]Point, len(nodes))
	switch len(nodes) {
	case 0:
		return out
	case 1:
		out[nodes[0].ID] = Point{X: nodes[0].X, Y: nodes[0].Y}
		return out
	}

	degree := make(map[string]int, len(nodes))
	for _, e := range edges {
		degree[e.Source]++
		degree[e.Target]++
	}

	ranked := make([]Node, len(nodes))
	copy(ranked, nodes)
	sort.SliceStable(ranked, func(i, j int) bool {
		di, dj := degree[ranked[i].ID], degree[ranked[j].ID]
		if di != dj {
			return di > dj
		}
		return ranked[i].ID < ranked[j].ID
	})

	n := len(ranked)
	side := int(math.Ceil(math.Sqrt(float64(n))))
	cell := math.Min(CellCap, math.Min(width/float64(side), height/float64(side)))

	rows := (n + side - 1) / side
	originX := width/2 - cell*float64(side-1)/2
	originY := height/2 - cell*float64(rows-1)/2

	scale := spiralFraction * cell / math.Sqrt(float64(n))
	for rank, node := range ranked {
		col := rank % side
		row := rank / side

		r := scale * math.Sqrt(float64(rank))
		a := goldenAngle * float64(rank)

		out[node.ID] = Point{
			X: originX + cell*float64(col) + r*math.Cos(a),
			Y: originY + cell*float64(row) + r*math.Sin(a),
		}
	}

	// Relief passes: spread link endpoints that landed too close.
	minSep := 0.8 * cell
	for pass := 0; pass < reliefPasses; pass++ {
		for _, e := range edges {
			a, okA := out[e.Source]
			b, okB := out[e.Target]
			if !okA || !okB {
				continue
			}
			dx := b.X - a.X
			dy := b.Y - a.Y
			d := math.Hypot(dx, dy)
			if d >= minSep {
				continue
			}
			var ux, uy float64
			if d > 1e-9 {
				ux, uy = dx/d, dy/d
			} else {
				ux, uy = 1, 0
			}
			push := reliefFraction * (minSep - d) / 2
			out[e.Source] = Point{X: a.X - ux*push, Y: a.Y - uy*push}
			out[e.Target] = Point{X: b.X + ux*push, Y: b.Y + uy*push}
		}
	}

	for _, node := range nodes {
		p := out[node.ID]
		m := Margin + node.Size/2
		out[node.ID] = Point{
			X: clamp(p.X, m, width-m),
			Y: clamp(p.Y, m, height-m),
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
