// Package searcher picks moves for a game.State by depth-limited
// adversarial search: plain minimax or minimax with alpha-beta pruning,
// optionally iteratively deepened under a time budget.
package searcher

import (
	"errors"
	"time"

	"searchlab/game"
	"searchlab/trace"
)

// Algorithm selects the search variant. Both return the same move and
// score for the same inputs; alpha-beta visits fewer nodes.
type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	if a == Minimax {
		return "minimax"
	}
	return "alphabeta"
}

// WinScore is the terminal scale. A win at ply d scores WinScore-d so
// quicker wins dominate; heuristics must stay well inside (-WinScore,
// WinScore).
const WinScore = 1000.0

// MaxDepth caps configured depth to keep recursion bounded.
const MaxDepth = 32

// ErrNoMoves is returned when the position has no legal moves, meaning
// the game is already over.
var ErrNoMoves = errors.New("searcher: no legal moves")

// Config fixes one search invocation. A positive TimeBudget switches on
// iterative deepening up to Depth.
type Config struct {
	Algorithm  Algorithm
	Depth      int
	TimeBudget time.Duration
}

// Decision is a chosen move with its subtree score, the deepest fully
// completed depth, and search statistics.
type Decision struct {
	Move  game.Move
	Score float64
	Depth int
	Stats Stats
}

type Option func(*Searcher)

// WithTrace streams every visit, leaf evaluation and prune to sink in
// evaluation order.
func WithTrace(sink trace.Sink) Option {
	return func(s *Searcher) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithEvaluationFn overrides the board's built-in heuristic.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// Searcher runs searches for one Config. It keeps no state between calls;
// concurrent ChooseMove invocations are independent.
type Searcher struct {
	config   Config
	sink     trace.Sink
	evaluate game.Evaluate
}

func New(config Config, options ...Option) *Searcher {
	if config.Depth <= 0 || config.Depth > MaxDepth {
		config.Depth = MaxDepth
	}
	s := &Searcher{
		config: config,
		sink:   trace.Discard,
		evaluate: func(st game.State, p game.Player) float64 {
			return st.Evaluate(p)
		},
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// ChooseMove returns the best move for the side to move in state. The only
// error case is a position with no legal moves; a timeout is not an error,
// the deepest completed depth's move is returned.
func (s *Searcher) ChooseMove(state game.State) (Decision, error) {
	if len(state.LegalMoves()) == 0 {
		return Decision{}, ErrNoMoves
	}

	collector := newCollector()
	collector.Start()

	if s.config.TimeBudget <= 0 {
		move, score, ok := s.searchRoot(state, s.config.Depth, time.Time{}, collector)
		if !ok {
			panic("searcher: depth-limited search aborted without a deadline")
		}
		return Decision{Move: move, Score: score, Depth: s.config.Depth, Stats: collector.Complete()}, nil
	}

	return s.deepen(state, collector), nil
}
