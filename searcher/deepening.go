package searcher

import (
	"time"

	"github.com/rs/zerolog/log"

	"searchlab/game"
)

// deepen runs iterative deepening: depth 1 completes unconditionally so a
// move always exists, then each deeper search races the deadline. A depth
// that misses the deadline is discarded and the previous depth's decision
// stands. The search never runs past the deadline by more than the node
// being finished when it expires.
func (s *Searcher) deepen(state game.State, c *collector) Decision {
	deadline := time.Now().Add(s.config.TimeBudget)

	move, score, _ := s.searchRoot(state, 1, time.Time{}, c)
	best := Decision{Move: move, Score: score, Depth: 1}

	for depth := 2; depth <= s.config.Depth; depth++ {
		if time.Now().After(deadline) {
			break
		}
		move, score, ok := s.searchRoot(state, depth, deadline, c)
		if !ok {
			log.Debug().Int("depth", depth).Msg("deepening cut off by time budget")
			break
		}
		best = Decision{Move: move, Score: score, Depth: depth}
	}

	best.Stats = c.Complete()
	return best
}
