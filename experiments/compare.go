// Package experiments measures the two adversarial algorithms against
// each other: same positions, same depths, counting what pruning saves.
package experiments

import (
	"fmt"

	"searchlab/game"
	"searchlab/searcher"
)

// Comparison is one depth's head-to-head result. Agree must hold for
// every depth: pruning never changes the chosen move or its score.
type Comparison struct {
	Depth            int
	Move             string
	Score            float64
	MinimaxVisited   int64
	AlphaBetaVisited int64
	Pruned           int64
	PruningRatio     float64
	Agree            bool
}

// ComparePruning searches state with minimax and alpha-beta at each depth
// from 1 to maxDepth and reports node counts side by side.
func ComparePruning(state game.State, maxDepth int) ([]Comparison, error) {
	results := make([]Comparison, 0, maxDepth)
	for depth := 1; depth <= maxDepth; depth++ {
		mm, err := searcher.New(searcher.Config{Algorithm: searcher.Minimax, Depth: depth}).ChooseMove(state)
		if err != nil {
			return nil, fmt.Errorf("experiments: minimax depth %d: %w", depth, err)
		}
		ab, err := searcher.New(searcher.Config{Algorithm: searcher.AlphaBeta, Depth: depth}).ChooseMove(state)
		if err != nil {
			return nil, fmt.Errorf("experiments: alphabeta depth %d: %w", depth, err)
		}
		results = append(results, Comparison{
			Depth:            depth,
			Move:             ab.Move.String(),
			Score:            ab.Score,
			MinimaxVisited:   mm.Stats.NodesVisited,
			AlphaBetaVisited: ab.Stats.NodesVisited,
			Pruned:           ab.Stats.NodesPruned,
			PruningRatio:     ab.Stats.PruningRatio(),
			Agree:            mm.Move == ab.Move && mm.Score == ab.Score,
		})
	}
	return results, nil
}
