package maze

import (
	"fmt"

	"searchlab/trace"
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// BFS explores in non-decreasing distance and returns a shortest path.
	BFS Strategy = iota
	// DFS explores depth-first; the path is valid but not necessarily
	// shortest.
	DFS
)

func (s Strategy) String() string {
	if s == BFS {
		return "bfs"
	}
	return "dfs"
}

// PathResult is the outcome of a search. Found == false means the goal is
// not connected to the start; that is a normal outcome, not an error.
type PathResult struct {
	Path     []Cell // start..goal inclusive, nil when not found
	Found    bool
	Expanded int           // cells taken off the frontier
	Visited  map[Cell]bool // every cell seen, for visualization overlays
}

// node lives in the search arena; parent indices reconstruct the path.
type node struct {
	cell   Cell
	parent int // index into the arena, -1 at the root
}

// FindPath searches grid from start to goal. Every frontier update and
// expansion is emitted to sink in exploration order; pass trace.Discard
// when no replay is needed.
func FindPath(g *Grid, start, goal Cell, strategy Strategy, sink trace.Sink) (PathResult, error) {
	if err := checkEndpoint(g, start, "start"); err != nil {
		return PathResult{}, err
	}
	if err := checkEndpoint(g, goal, "goal"); err != nil {
		return PathResult{}, err
	}
	if sink == nil {
		sink = trace.Discard
	}

	arena := []node{{cell: start, parent: -1}}
	frontier := []int{0}
	visited := map[Cell]bool{start: true}
	depth := map[Cell]int{start: 0}
	sink.Emit(trace.Event{Kind: trace.Frontier, Row: start.Row, Col: start.Col})

	expanded := 0
	for len(frontier) > 0 {
		var i int
		if strategy == BFS {
			i, frontier = frontier[0], frontier[1:]
		} else {
			last := len(frontier) - 1
			i, frontier = frontier[last], frontier[:last]
		}
		cur := arena[i]
		expanded++
		sink.Emit(trace.Event{
			Kind: trace.Visit,
			Row:  cur.cell.Row, Col: cur.cell.Col,
			Depth: depth[cur.cell],
		})

		if cur.cell == goal {
			return PathResult{
				Path:     reconstruct(arena, i),
				Found:    true,
				Expanded: expanded,
				Visited:  visited,
			}, nil
		}

		for _, n := range g.Neighbors(cur.cell) {
			if visited[n] {
				continue
			}
			visited[n] = true
			depth[n] = depth[cur.cell] + 1
			arena = append(arena, node{cell: n, parent: i})
			frontier = append(frontier, len(arena)-1)
			sink.Emit(trace.Event{
				Kind: trace.Frontier,
				Row:  n.Row, Col: n.Col,
				Depth: depth[n],
			})
		}
	}

	return PathResult{Expanded: expanded, Visited: visited}, nil
}

func checkEndpoint(g *Grid, c Cell, name string) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s %s", ErrOutOfBounds, name, c)
	}
	if g.Blocked(c) {
		return fmt.Errorf("%w: %s %s", ErrBlockedEndpoint, name, c)
	}
	return nil
}

// reconstruct walks parent indices from the goal back to the root and
// reverses the result.
func reconstruct(arena []node, i int) []Cell {
	var path []Cell
	for ; i >= 0; i = arena[i].parent {
		path = append(path, arena[i].cell)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
