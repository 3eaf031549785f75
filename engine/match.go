package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"searchlab/game"
	"searchlab/searcher"
)

// maxPlies stops runaway games that never reach a terminal state.
const maxPlies = 300

// Match plays two search configs against each other on one board. Used by
// AI-vs-AI demo levels and by the experiments runner.
type Match struct {
	State   game.State
	configs map[game.Player]searcher.Config
	Moves   int
}

func NewMatch(state game.State, configA, configB searcher.Config) *Match {
	return &Match{
		State: state,
		configs: map[game.Player]searcher.Config{
			game.PlayerA: configA,
			game.PlayerB: configB,
		},
	}
}

// Run plays the game to completion and returns the outcome.
func (m *Match) Run() (game.Outcome, error) {
	for m.Moves = 0; m.Moves < maxPlies; m.Moves++ {
		outcome := m.State.Terminal()
		if outcome.Over {
			log.Info().
				Stringer("winner", outcome.Winner).
				Int("moves", m.Moves).
				Msg("match over")
			return outcome, nil
		}

		player := m.State.Player()
		decision, err := searcher.New(m.configs[player]).ChooseMove(m.State)
		if err != nil {
			return game.Outcome{}, fmt.Errorf("engine: move %d for %s: %w", m.Moves, player, err)
		}
		log.Debug().
			Stringer("player", player).
			Stringer("move", decision.Move).
			Float64("score", decision.Score).
			Msg("match move")
		m.State = m.State.Play(decision.Move)
	}
	return game.Outcome{}, fmt.Errorf("engine: match exceeded %d plies", maxPlies)
}
