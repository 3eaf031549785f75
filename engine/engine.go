// Package engine is the in-process surface the presentation layer calls:
// typed problem descriptors in, typed results and traces out. It owns no
// state; every call is a pure function over its inputs.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"searchlab/difficulty"
	"searchlab/game"
	"searchlab/jugs"
	"searchlab/maze"
	"searchlab/searcher"
	"searchlab/trace"
)

// MazeSpec describes a maze level's search problem.
type MazeSpec struct {
	Rows, Cols  int
	Blocked     []maze.Cell
	Teleporters []maze.Edge
	Start, Goal maze.Cell
	Strategy    maze.Strategy
}

// JugSpec describes a jug level. Start defaults to all-empty jugs.
type JugSpec struct {
	Capacities []int
	Target     int
	Start      []int
}

// Variant tags the board game a level plays.
type Variant int

const (
	Plain Variant = iota
	Special
	Strategy
)

// ErrUnknownVariant indicates a BoardSpec with an unrecognized variant tag.
var ErrUnknownVariant = errors.New("engine: unknown board variant")

// BoardSpec describes a board level. Marks restores a saved position and
// may be nil for the starting position; Tiles only applies to the Special
// variant.
type BoardSpec struct {
	Variant Variant
	Size    int
	Marks   []game.Player
	Tiles   []game.Tile
	Turn    game.Player
}

// SolveMaze runs the requested path search and returns the result with
// its replay trace.
func SolveMaze(spec MazeSpec) (maze.PathResult, []trace.Event, error) {
	grid, err := maze.NewGrid(spec.Rows, spec.Cols, spec.Blocked, spec.Teleporters)
	if err != nil {
		return maze.PathResult{}, nil, fmt.Errorf("engine: build maze: %w", err)
	}
	recorder := trace.NewRecorder()
	result, err := maze.FindPath(grid, spec.Start, spec.Goal, spec.Strategy, recorder)
	if err != nil {
		return maze.PathResult{}, nil, fmt.Errorf("engine: path search: %w", err)
	}
	log.Info().
		Stringer("strategy", spec.Strategy).
		Bool("found", result.Found).
		Int("path", len(result.Path)).
		Int("expanded", result.Expanded).
		Msg("maze solved")
	return result, recorder.Events(), nil
}

// SolveJugs returns a shortest solution for the jug level, or an
// infeasible result.
func SolveJugs(spec JugSpec) (jugs.Solution, error) {
	problem, err := jugs.NewProblem(spec.Capacities)
	if err != nil {
		return jugs.Solution{}, fmt.Errorf("engine: build jug puzzle: %w", err)
	}
	solution, err := problem.Solve(spec.Target, spec.Start)
	if err != nil {
		return jugs.Solution{}, fmt.Errorf("engine: jug search: %w", err)
	}
	log.Info().
		Ints("capacities", spec.Capacities).
		Int("target", spec.Target).
		Bool("feasible", solution.Feasible).
		Int("moves", len(solution.Moves)).
		Msg("jug puzzle solved")
	return solution, nil
}

// JugHint returns the next move of a shortest solution from the player's
// current levels; ok is false when the target is met or unreachable.
func JugHint(spec JugSpec, current []int) (jugs.Move, bool, error) {
	problem, err := jugs.NewProblem(spec.Capacities)
	if err != nil {
		return jugs.Move{}, false, fmt.Errorf("engine: build jug puzzle: %w", err)
	}
	return problem.Hint(current, spec.Target)
}

// NewBoard builds the board state a BoardSpec describes.
func NewBoard(spec BoardSpec) (game.State, error) {
	switch spec.Variant {
	case Plain:
		if spec.Marks == nil {
			return game.NewTicTacToe(spec.Size)
		}
		turn := spec.Turn
		if turn == game.None {
			turn = game.PlayerA
		}
		return game.NewTicTacToeFrom(spec.Size, spec.Marks, turn)
	case Special:
		return game.NewSpecialTicTacToe(spec.Size, spec.Tiles)
	case Strategy:
		if spec.Marks == nil {
			return game.NewStrategyBoard(spec.Size)
		}
		turn := spec.Turn
		if turn == game.None {
			turn = game.PlayerA
		}
		return game.NewStrategyBoardFrom(spec.Size, spec.Marks, turn)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, spec.Variant)
	}
}

// ChooseMove picks the AI's move at the given difficulty. Returns
// searcher.ErrNoMoves when the game is already over.
func ChooseMove(state game.State, level difficulty.Level) (searcher.Decision, error) {
	return ChooseMoveConfig(state, difficulty.Policy(level))
}

// ChooseMoveConfig is ChooseMove with an explicit search config, for
// callers applying settings-file overrides.
func ChooseMoveConfig(state game.State, config searcher.Config) (searcher.Decision, error) {
	decision, err := searcher.New(config).ChooseMove(state)
	if err != nil {
		return searcher.Decision{}, err
	}
	log.Info().
		Stringer("algorithm", config.Algorithm).
		Stringer("move", decision.Move).
		Float64("score", decision.Score).
		Int("depth", decision.Depth).
		Int64("visited", decision.Stats.NodesVisited).
		Int64("pruned", decision.Stats.NodesPruned).
		Msg("move chosen")
	return decision, nil
}
