package searcher

import (
	"math"
	"time"

	"searchlab/game"
	"searchlab/trace"
)

// searchRoot evaluates every root move and keeps the best one for the
// side to move. Ties go to the first-enumerated move, so results are
// deterministic for identical inputs. Returns ok == false when the
// deadline expired before the depth completed.
func (s *Searcher) searchRoot(state game.State, depth int, deadline time.Time, c *collector) (game.Move, float64, bool) {
	maximizer := state.Player()
	moves := state.LegalMoves()
	c.AddNode(0, len(moves))
	s.sink.Emit(trace.Event{Kind: trace.Visit, Depth: 0})

	alpha, beta := math.Inf(-1), math.Inf(1)
	bestScore := math.Inf(-1)
	var bestMove game.Move
	for _, m := range moves {
		path := []string{m.String()}
		score, ok := s.value(state.Play(m), 1, depth, alpha, beta, maximizer, path, deadline, c)
		if !ok {
			return nil, 0, false
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if s.config.Algorithm == AlphaBeta && bestScore > alpha {
			alpha = bestScore
		}
	}
	return bestMove, bestScore, true
}

// value scores state from maximizer's perspective, ply moves below the
// root. Alpha and beta are the maximizer's and minimizer's guaranteed
// bounds; under AlphaBeta a node stops expanding children once
// alpha >= beta.
func (s *Searcher) value(state game.State, ply, depth int, alpha, beta float64, maximizer game.Player, path []string, deadline time.Time, c *collector) (float64, bool) {
	if outcome := state.Terminal(); outcome.Over {
		c.AddNode(ply, 0)
		score := terminalScore(outcome, maximizer, ply)
		s.sink.Emit(trace.Event{Kind: trace.Evaluated, Depth: ply, Path: path, Score: score})
		return score, true
	}
	if ply >= depth {
		c.AddNode(ply, 0)
		score := s.evaluate(state, maximizer)
		s.sink.Emit(trace.Event{Kind: trace.Evaluated, Depth: ply, Path: path, Score: score})
		return score, true
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return 0, false
	}

	moves := state.LegalMoves()
	c.AddNode(ply, len(moves))
	s.sink.Emit(trace.Event{Kind: trace.Visit, Depth: ply, Path: path})

	maximizing := state.Player() == maximizer
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for i, m := range moves {
		childPath := append(append(make([]string, 0, len(path)+1), path...), m.String())
		score, ok := s.value(state.Play(m), ply+1, depth, alpha, beta, maximizer, childPath, deadline, c)
		if !ok {
			return 0, false
		}
		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if s.config.Algorithm == AlphaBeta && alpha >= beta {
			c.AddPruned(len(moves) - i - 1)
			s.sink.Emit(trace.Event{
				Kind:  trace.Pruned,
				Depth: ply,
				Path:  childPath,
				Score: best,
				Alpha: alpha,
				Beta:  beta,
			})
			break
		}
	}
	return best, true
}

// terminalScore maps a finished game to the fixed scale: wins score
// WinScore minus the ply they occur at, losses mirror that, draws are 0.
func terminalScore(outcome game.Outcome, maximizer game.Player, ply int) float64 {
	switch outcome.Winner {
	case maximizer:
		return WinScore - float64(ply)
	case game.None:
		return 0
	default:
		return -WinScore + float64(ply)
	}
}
