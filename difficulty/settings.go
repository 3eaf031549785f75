package difficulty

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"searchlab/searcher"
)

// Settings are the user-tunable knobs loaded from a YAML file. Zero
// values fall back to the built-in Policy defaults.
type Settings struct {
	DefaultLevel string              `yaml:"default_level"`
	BoardSize    int                 `yaml:"board_size"`
	Levels       map[string]Override `yaml:"levels"`
}

// Override replaces parts of a level's search config. Empty fields keep
// the Policy value.
type Override struct {
	Algorithm  string `yaml:"algorithm"`   // "minimax" or "alphabeta"
	Depth      int    `yaml:"depth"`
	TimeBudget string `yaml:"time_budget"` // time.ParseDuration format
}

// DefaultSettings returns the configuration used when no settings file
// exists.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultLevel: Medium.String(),
		BoardSize:    3,
	}
}

// LoadSettings reads a YAML settings file. A missing file is not an
// error; defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("difficulty: read settings: %w", err)
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("difficulty: parse settings: %w", err)
	}
	if s.BoardSize < 3 {
		s.BoardSize = 3
	}
	return s, nil
}

// Level returns the configured default difficulty.
func (s *Settings) Level() (Level, error) {
	return ParseLevel(s.DefaultLevel)
}

// Config resolves a level to a search config, applying any override from
// the settings file on top of the built-in policy.
func (s *Settings) Config(l Level) (searcher.Config, error) {
	cfg := Policy(l)
	o, ok := s.Levels[l.String()]
	if !ok {
		return cfg, nil
	}
	switch o.Algorithm {
	case "":
	case "minimax":
		cfg.Algorithm = searcher.Minimax
	case "alphabeta":
		cfg.Algorithm = searcher.AlphaBeta
	default:
		return cfg, fmt.Errorf("difficulty: unknown algorithm %q", o.Algorithm)
	}
	if o.Depth > 0 {
		cfg.Depth = o.Depth
	}
	if o.TimeBudget != "" {
		d, err := time.ParseDuration(o.TimeBudget)
		if err != nil {
			return cfg, fmt.Errorf("difficulty: bad time budget: %w", err)
		}
		cfg.TimeBudget = d
	}
	return cfg, nil
}
