package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"searchlab/game"
	"searchlab/trace"
)

func emptyTicTacToe(t *testing.T, size int) game.State {
	t.Helper()
	board, err := game.NewTicTacToe(size)
	require.NoError(t, err)
	return board
}

func TestChooseMoveNoMoves(t *testing.T) {
	marks := []game.Player{
		game.PlayerA, game.PlayerA, game.PlayerA,
		game.PlayerB, game.PlayerB, game.None,
		game.None, game.None, game.None,
	}
	board, err := game.NewTicTacToeFrom(3, marks, game.PlayerB)
	require.NoError(t, err)

	_, err = New(Config{Algorithm: Minimax, Depth: 3}).ChooseMove(board)
	require.ErrorIs(t, err, ErrNoMoves)
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	t.Run("on tic-tac-toe at every small depth", func(t *testing.T) {
		// A midgame position keeps the tree interesting without being
		// symmetric.
		marks := []game.Player{
			game.PlayerA, game.None, game.None,
			game.None, game.PlayerB, game.None,
			game.None, game.None, game.None,
		}
		board, err := game.NewTicTacToeFrom(3, marks, game.PlayerA)
		require.NoError(t, err)

		for depth := 1; depth <= 5; depth++ {
			mm, err := New(Config{Algorithm: Minimax, Depth: depth}).ChooseMove(board)
			require.NoError(t, err)
			ab, err := New(Config{Algorithm: AlphaBeta, Depth: depth}).ChooseMove(board)
			require.NoError(t, err)

			require.Equal(t, mm.Move, ab.Move, "depth %d: pruning changed the move", depth)
			require.Equal(t, mm.Score, ab.Score, "depth %d: pruning changed the score", depth)
			require.LessOrEqual(t, ab.Stats.NodesVisited, mm.Stats.NodesVisited,
				"depth %d: pruning cannot visit more nodes", depth)
		}
	})

	t.Run("on the strategy board", func(t *testing.T) {
		board, err := game.NewStrategyBoard(4)
		require.NoError(t, err)

		for depth := 1; depth <= 4; depth++ {
			mm, err := New(Config{Algorithm: Minimax, Depth: depth}).ChooseMove(board)
			require.NoError(t, err)
			ab, err := New(Config{Algorithm: AlphaBeta, Depth: depth}).ChooseMove(board)
			require.NoError(t, err)

			require.Equal(t, mm.Move, ab.Move, "depth %d", depth)
			require.Equal(t, mm.Score, ab.Score, "depth %d", depth)
			require.LessOrEqual(t, ab.Stats.NodesVisited, mm.Stats.NodesVisited, "depth %d", depth)
		}
	})
}

func TestFullDepthTicTacToeIsADraw(t *testing.T) {
	// Perfect play from the empty board draws. Depth 9 covers the whole
	// game for both algorithms.
	board := emptyTicTacToe(t, 3)

	ab, err := New(Config{Algorithm: AlphaBeta, Depth: 9}).ChooseMove(board)
	require.NoError(t, err)
	require.Zero(t, ab.Score, "best play leads to a draw")
	require.Positive(t, ab.Stats.NodesPruned, "a full-width game tree must trigger pruning")

	mm, err := New(Config{Algorithm: Minimax, Depth: 9}).ChooseMove(board)
	require.NoError(t, err)
	require.Zero(t, mm.Score)
	require.Equal(t, mm.Move, ab.Move)
}

func TestDeterminism(t *testing.T) {
	board, err := game.NewStrategyBoard(4)
	require.NoError(t, err)

	first := trace.NewRecorder()
	second := trace.NewRecorder()

	d1, err := New(Config{Algorithm: AlphaBeta, Depth: 3}, WithTrace(first)).ChooseMove(board)
	require.NoError(t, err)
	d2, err := New(Config{Algorithm: AlphaBeta, Depth: 3}, WithTrace(second)).ChooseMove(board)
	require.NoError(t, err)

	require.Equal(t, d1.Move, d2.Move)
	require.Equal(t, d1.Score, d2.Score)
	require.Equal(t, d1.Stats.NodesVisited, d2.Stats.NodesVisited)
	require.Equal(t, d1.Stats.NodesPruned, d2.Stats.NodesPruned)
	require.Equal(t, first.Events(), second.Events(),
		"identical inputs must replay the identical trace")
}

func TestTraceEvents(t *testing.T) {
	board := emptyTicTacToe(t, 3)
	recorder := trace.NewRecorder()

	_, err := New(Config{Algorithm: AlphaBeta, Depth: 3}, WithTrace(recorder)).ChooseMove(board)
	require.NoError(t, err)

	events := recorder.Events()
	require.NotEmpty(t, events)
	require.Equal(t, trace.Visit, events[0].Kind, "the root is visited first")

	var evaluated, pruned int
	for _, e := range events {
		switch e.Kind {
		case trace.Evaluated:
			require.NotEmpty(t, e.Path, "leaf events carry the move path")
		case trace.Pruned:
			pruned++
			require.GreaterOrEqual(t, e.Alpha, e.Beta, "prunes happen at alpha >= beta")
			require.NotEmpty(t, e.Path)
		}
		if e.Kind == trace.Evaluated {
			evaluated++
		}
	}
	require.Positive(t, evaluated)
	require.Positive(t, pruned)
}

func TestPruningRatio(t *testing.T) {
	board := emptyTicTacToe(t, 3)

	ab, err := New(Config{Algorithm: AlphaBeta, Depth: 6}).ChooseMove(board)
	require.NoError(t, err)

	stats := ab.Stats
	require.Positive(t, stats.NodesPruned)
	ratio := stats.PruningRatio()
	require.Greater(t, ratio, 0.0)
	require.Less(t, ratio, 1.0)
	require.InDelta(t,
		float64(stats.NodesPruned)/float64(stats.NodesVisited+stats.NodesPruned),
		ratio, 1e-12)
}

func TestTimeBudget(t *testing.T) {
	t.Run("returns the deepest completed depth before the deadline", func(t *testing.T) {
		board, err := game.NewStrategyBoard(6)
		require.NoError(t, err)

		start := time.Now()
		decision, err := New(Config{
			Algorithm:  AlphaBeta,
			Depth:      20,
			TimeBudget: 50 * time.Millisecond,
		}).ChooseMove(board)
		require.NoError(t, err)

		require.NotNil(t, decision.Move, "depth 1 always completes")
		require.GreaterOrEqual(t, decision.Depth, 1)
		require.Less(t, time.Since(start), 2*time.Second,
			"the search must not run far past its budget")
	})

	t.Run("a generous budget reaches the configured depth", func(t *testing.T) {
		board := emptyTicTacToe(t, 3)

		decision, err := New(Config{
			Algorithm:  AlphaBeta,
			Depth:      4,
			TimeBudget: 30 * time.Second,
		}).ChooseMove(board)
		require.NoError(t, err)
		require.Equal(t, 4, decision.Depth)
	})

	t.Run("deepening matches the direct search at the same depth", func(t *testing.T) {
		board := emptyTicTacToe(t, 3)

		deepened, err := New(Config{
			Algorithm:  AlphaBeta,
			Depth:      4,
			TimeBudget: 30 * time.Second,
		}).ChooseMove(board)
		require.NoError(t, err)

		direct, err := New(Config{Algorithm: AlphaBeta, Depth: 4}).ChooseMove(board)
		require.NoError(t, err)

		require.Equal(t, direct.Move, deepened.Move)
		require.Equal(t, direct.Score, deepened.Score)
	})
}

func TestWithEvaluationFn(t *testing.T) {
	board := emptyTicTacToe(t, 3)

	// A constant heuristic makes every depth-1 leaf equal, so the first
	// enumerated move must win the tie.
	flat := func(game.State, game.Player) float64 { return 0 }
	decision, err := New(Config{Algorithm: Minimax, Depth: 1}, WithEvaluationFn(flat)).ChooseMove(board)
	require.NoError(t, err)
	require.Equal(t, game.Move(game.PlaceMove{Row: 0, Col: 0}), decision.Move)
	require.Zero(t, decision.Score)
}

func TestStatsBranching(t *testing.T) {
	board := emptyTicTacToe(t, 3)

	decision, err := New(Config{Algorithm: Minimax, Depth: 2}).ChooseMove(board)
	require.NoError(t, err)

	// Root has 9 moves, its children 8 each; the mean sits between.
	require.Greater(t, decision.Stats.Branching, 7.9)
	require.Less(t, decision.Stats.Branching, 9.1)
	require.Equal(t, 2, decision.Stats.MaxDepthReached)
}
