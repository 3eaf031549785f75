// Package maze models a rectangular maze as a graph of open cells and
// runs breadth-first or depth-first path searches over it.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrBadSize indicates a grid with no rows or no columns.
	ErrBadSize = errors.New("maze: grid needs at least one row and one column")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("maze: cell outside the grid")
	// ErrBlockedEndpoint indicates a teleporter or search endpoint on a
	// blocked cell.
	ErrBlockedEndpoint = errors.New("maze: endpoint cell is blocked")
	// ErrSelfTeleport indicates a teleporter from a cell to itself.
	ErrSelfTeleport = errors.New("maze: teleporter endpoints must differ")
)

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Edge is a directed teleporter jump. A symmetric teleporter is two
// entries; Bidirectional builds the pair.
type Edge struct {
	From, To Cell
}

// Bidirectional returns the two directed edges of a symmetric teleporter.
func Bidirectional(a, b Cell) []Edge {
	return []Edge{{From: a, To: b}, {From: b, To: a}}
}

// Grid is an immutable maze: a rows x cols board, a blocked-cell set and
// teleporter edges. Adjacency is 4-directional between open cells plus the
// teleporters.
type Grid struct {
	rows, cols int
	blocked    map[Cell]bool
	teleport   map[Cell][]Cell // per-origin targets in declaration order
}

// NewGrid validates and builds a maze. Blocked cells and teleporter
// endpoints must lie inside the grid; teleporters may not start or end on
// a blocked cell.
func NewGrid(rows, cols int, blocked []Cell, teleporters []Edge) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadSize
	}
	g := &Grid{
		rows:     rows,
		cols:     cols,
		blocked:  make(map[Cell]bool, len(blocked)),
		teleport: make(map[Cell][]Cell),
	}
	for _, c := range blocked {
		if !g.Contains(c) {
			return nil, fmt.Errorf("%w: blocked cell %s", ErrOutOfBounds, c)
		}
		g.blocked[c] = true
	}
	for _, e := range teleporters {
		if !g.Contains(e.From) || !g.Contains(e.To) {
			return nil, fmt.Errorf("%w: teleporter %s->%s", ErrOutOfBounds, e.From, e.To)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%w: %s", ErrSelfTeleport, e.From)
		}
		if g.blocked[e.From] || g.blocked[e.To] {
			return nil, fmt.Errorf("%w: teleporter %s->%s", ErrBlockedEndpoint, e.From, e.To)
		}
		g.teleport[e.From] = append(g.teleport[e.From], e.To)
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid) Blocked(c Cell) bool { return g.blocked[c] }

// Fixed expansion order: up, right, down, left. Teleporters follow.
var directions = [4]Cell{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Neighbors returns the open cells adjacent to c in expansion order.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4+len(g.teleport[c]))
	for _, d := range directions {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.Contains(n) && !g.blocked[n] {
			out = append(out, n)
		}
	}
	return append(out, g.teleport[c]...)
}
