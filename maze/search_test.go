package maze

import (
	"testing"

	"github.com/stretchr/testify/require"

	"searchlab/trace"
)

func mustGrid(t *testing.T, rows, cols int, blocked []Cell, teleporters []Edge) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols, blocked, teleporters)
	require.NoError(t, err)
	return g
}

// referenceDistance computes the true graph distance by plain level-by-level
// expansion, independent of the arena implementation under test.
func referenceDistance(g *Grid, start, goal Cell) (int, bool) {
	seen := map[Cell]bool{start: true}
	level := []Cell{start}
	for d := 0; len(level) > 0; d++ {
		var next []Cell
		for _, c := range level {
			if c == goal {
				return d, true
			}
			for _, n := range g.Neighbors(c) {
				if !seen[n] {
					seen[n] = true
					next = append(next, n)
				}
			}
		}
		level = next
	}
	return 0, false
}

func requireValidPath(t *testing.T, g *Grid, path []Cell, start, goal Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, goal, path[len(path)-1], "path must end at goal")
	for i := 1; i < len(path); i++ {
		require.Contains(t, g.Neighbors(path[i-1]), path[i],
			"every step must follow a graph edge")
	}
}

func TestFindPathBFS(t *testing.T) {
	t.Run("returns a shortest path on an open grid", func(t *testing.T) {
		g := mustGrid(t, 3, 3, nil, nil)
		start, goal := Cell{Row: 0, Col: 0}, Cell{Row: 2, Col: 2}

		result, err := FindPath(g, start, goal, BFS, nil)
		require.NoError(t, err)
		require.True(t, result.Found)
		requireValidPath(t, g, result.Path, start, goal)
		require.Len(t, result.Path, 5, "3x3 corner-to-corner distance is 4 edges")
	})

	t.Run("matches the true distance for every reachable pair", func(t *testing.T) {
		blocked := []Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 3}}
		g := mustGrid(t, 4, 4, blocked, []Edge{{From: Cell{Row: 0, Col: 0}, To: Cell{Row: 3, Col: 3}}})

		var open []Cell
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if cell := (Cell{Row: r, Col: c}); !g.Blocked(cell) {
					open = append(open, cell)
				}
			}
		}
		for _, start := range open {
			for _, goal := range open {
				want, reachable := referenceDistance(g, start, goal)
				result, err := FindPath(g, start, goal, BFS, nil)
				require.NoError(t, err)
				require.Equal(t, reachable, result.Found, "start %s goal %s", start, goal)
				if reachable {
					require.Len(t, result.Path, want+1, "start %s goal %s", start, goal)
				}
			}
		}
	})

	t.Run("counts a teleporter as one edge", func(t *testing.T) {
		g := mustGrid(t, 1, 10, nil,
			[]Edge{{From: Cell{Row: 0, Col: 0}, To: Cell{Row: 0, Col: 9}}})

		result, err := FindPath(g, Cell{Row: 0, Col: 0}, Cell{Row: 0, Col: 9}, BFS, nil)
		require.NoError(t, err)
		require.True(t, result.Found)
		require.Len(t, result.Path, 2, "the jump replaces nine grid steps")
	})
}

func TestFindPathDFS(t *testing.T) {
	t.Run("finds a valid, not necessarily shortest, path", func(t *testing.T) {
		g := mustGrid(t, 4, 4, nil, nil)
		start, goal := Cell{Row: 0, Col: 0}, Cell{Row: 3, Col: 3}

		dfs, err := FindPath(g, start, goal, DFS, nil)
		require.NoError(t, err)
		require.True(t, dfs.Found)
		requireValidPath(t, g, dfs.Path, start, goal)

		bfs, err := FindPath(g, start, goal, BFS, nil)
		require.NoError(t, err)
		require.LessOrEqual(t, len(bfs.Path), len(dfs.Path),
			"BFS never returns a longer path than DFS")
	})
}

func TestFindPathUnreachable(t *testing.T) {
	// A full wall column splits the 5x5 maze into two regions.
	wall := []Cell{
		{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
		{Row: 3, Col: 2}, {Row: 4, Col: 2},
	}
	g := mustGrid(t, 5, 5, wall, nil)
	start, goal := Cell{Row: 2, Col: 0}, Cell{Row: 2, Col: 4}

	for _, strategy := range []Strategy{BFS, DFS} {
		result, err := FindPath(g, start, goal, strategy, nil)
		require.NoError(t, err, strategy.String())
		require.False(t, result.Found, "disconnected goal is a normal outcome")
		require.Nil(t, result.Path)
		require.Positive(t, result.Expanded, "the reachable region was searched")
	}
}

func TestFindPathValidation(t *testing.T) {
	g := mustGrid(t, 3, 3, []Cell{{Row: 1, Col: 1}}, nil)

	_, err := FindPath(g, Cell{Row: 1, Col: 1}, Cell{Row: 0, Col: 0}, BFS, nil)
	require.ErrorIs(t, err, ErrBlockedEndpoint)

	_, err = FindPath(g, Cell{Row: 0, Col: 0}, Cell{Row: 5, Col: 5}, BFS, nil)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFindPathTrace(t *testing.T) {
	t.Run("emits events in exploration order", func(t *testing.T) {
		g := mustGrid(t, 2, 2, nil, nil)
		recorder := trace.NewRecorder()

		_, err := FindPath(g, Cell{Row: 0, Col: 0}, Cell{Row: 1, Col: 1}, BFS, recorder)
		require.NoError(t, err)

		kinds := make([]trace.Kind, 0)
		for _, e := range recorder.Events() {
			kinds = append(kinds, e.Kind)
		}
		want := []trace.Kind{
			trace.Frontier, // start enqueued
			trace.Visit,    // (0,0)
			trace.Frontier, // (0,1)
			trace.Frontier, // (1,0)
			trace.Visit,    // (0,1)
			trace.Frontier, // (1,1)
			trace.Visit,    // (1,0)
			trace.Visit,    // (1,1) goal
		}
		require.Equal(t, want, kinds)
	})

	t.Run("repeated runs produce identical traces", func(t *testing.T) {
		g := mustGrid(t, 4, 4, []Cell{{Row: 2, Col: 1}}, nil)
		start, goal := Cell{Row: 0, Col: 0}, Cell{Row: 3, Col: 3}

		first := trace.NewRecorder()
		second := trace.NewRecorder()
		r1, err := FindPath(g, start, goal, DFS, first)
		require.NoError(t, err)
		r2, err := FindPath(g, start, goal, DFS, second)
		require.NoError(t, err)

		require.Equal(t, r1.Path, r2.Path)
		require.Equal(t, first.Events(), second.Events())
	})
}
