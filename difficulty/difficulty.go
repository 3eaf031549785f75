// Package difficulty maps the configured difficulty level to a search
// configuration for the opponent AI.
package difficulty

import (
	"errors"
	"fmt"
	"time"

	"searchlab/searcher"
)

// Level is the player-facing difficulty setting.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	Expert
)

// ErrUnknownLevel indicates a level name outside easy/medium/hard/expert.
var ErrUnknownLevel = errors.New("difficulty: unknown level")

var levelNames = map[Level]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
	Expert: "expert",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel converts a settings string to a Level.
func ParseLevel(name string) (Level, error) {
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Policy is the pure level-to-config mapping, consulted once per AI turn.
// Easy plays shallow plain minimax; the rest use alpha-beta with growing
// depth, the timed tiers bounded by a per-move budget.
func Policy(l Level) searcher.Config {
	switch l {
	case Medium:
		return searcher.Config{Algorithm: searcher.AlphaBeta, Depth: 4}
	case Hard:
		return searcher.Config{Algorithm: searcher.AlphaBeta, Depth: 6, TimeBudget: 3 * time.Second}
	case Expert:
		return searcher.Config{Algorithm: searcher.AlphaBeta, Depth: 9, TimeBudget: 5 * time.Second}
	default:
		return searcher.Config{Algorithm: searcher.Minimax, Depth: 2}
	}
}
