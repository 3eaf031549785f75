package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"searchlab/difficulty"
	"searchlab/engine"
	"searchlab/experiments"
	"searchlab/game"
	"searchlab/maze"
	"searchlab/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	runMazeDemo()
	runJugDemo()
	runBoardDemo()
	runPruningExperiment()
}

func runMazeDemo() {
	fmt.Println("Maze: BFS vs DFS on a 5x5 maze with a teleporter...")
	spec := engine.MazeSpec{
		Rows: 5, Cols: 5,
		Blocked: []maze.Cell{
			{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
			{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
		},
		Teleporters: maze.Bidirectional(maze.Cell{Row: 0, Col: 4}, maze.Cell{Row: 4, Col: 4}),
		Start:       maze.Cell{Row: 0, Col: 0},
		Goal:        maze.Cell{Row: 4, Col: 4},
	}
	for _, strategy := range []maze.Strategy{maze.BFS, maze.DFS} {
		spec.Strategy = strategy
		result, events, err := engine.SolveMaze(spec)
		if err != nil {
			log.Fatal().Err(err).Msg("maze demo failed")
		}
		fmt.Printf("  %s: path length %d, expanded %d, trace %d events\n",
			strategy, len(result.Path), result.Expanded, len(events))
	}
}

func runJugDemo() {
	fmt.Println("Jugs: measuring 2 with capacities [4 3]...")
	solution, err := engine.SolveJugs(engine.JugSpec{Capacities: []int{4, 3}, Target: 2})
	if err != nil {
		log.Fatal().Err(err).Msg("jug demo failed")
	}
	for i, m := range solution.Moves {
		fmt.Printf("  step %d: %s\n", i+1, m)
	}
}

func runBoardDemo() {
	fmt.Println("Board: hard AI versus medium AI on 3x3 tic-tac-toe...")
	board, err := engine.NewBoard(engine.BoardSpec{Variant: engine.Plain, Size: 3})
	if err != nil {
		log.Fatal().Err(err).Msg("board demo failed")
	}
	match := engine.NewMatch(board,
		difficulty.Policy(difficulty.Hard),
		difficulty.Policy(difficulty.Medium))
	outcome, err := match.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
	if outcome.Winner == game.None {
		fmt.Printf("  draw after %d moves\n", match.Moves)
	} else {
		fmt.Printf("  %s wins after %d moves\n", outcome.Winner, match.Moves)
	}

	fmt.Println("Board: live trace from an async strategy-board search...")
	strategy, err := engine.NewBoard(engine.BoardSpec{Variant: engine.Strategy, Size: 5})
	if err != nil {
		log.Fatal().Err(err).Msg("board demo failed")
	}
	handle := engine.ChooseMoveAsync(strategy, searcher.Config{
		Algorithm:  searcher.AlphaBeta,
		Depth:      8,
		TimeBudget: 2 * time.Second,
	})
	drained := 0
	for {
		select {
		case <-handle.Done():
			drained += len(handle.Drain())
			decision, err := handle.Wait()
			if err != nil {
				log.Fatal().Err(err).Msg("async search failed")
			}
			fmt.Printf("  chose %s at depth %d after %d trace events\n",
				decision.Move, decision.Depth, drained)
			return
		case <-time.After(50 * time.Millisecond):
			drained += len(handle.Drain())
		}
	}
}

func runPruningExperiment() {
	fmt.Println("Experiment: minimax vs alpha-beta node counts on empty 3x3...")
	board, err := engine.NewBoard(engine.BoardSpec{Variant: engine.Plain, Size: 3})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment setup failed")
	}
	comparisons, err := experiments.ComparePruning(board, 6)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, c := range comparisons {
		fmt.Printf("  depth %d: minimax %d nodes, alphabeta %d (+%d pruned, ratio %.2f), agree=%v\n",
			c.Depth, c.MinimaxVisited, c.AlphaBetaVisited, c.Pruned, c.PruningRatio, c.Agree)
	}
	writer, err := experiments.NewWriter()
	if err != nil {
		log.Fatal().Err(err).Msg("experiment writer failed")
	}
	if err := writer.WriteComparisons("tictactoe3", comparisons); err != nil {
		log.Fatal().Err(err).Msg("experiment write failed")
	}
}
