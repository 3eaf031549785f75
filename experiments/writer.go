package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists comparison runs as CSV for offline plotting.
type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped output directory under
// experiments/pruning.
func NewWriter() (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "pruning", timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// WriteComparisons writes one CSV row per depth.
func (w *Writer) WriteComparisons(name string, comparisons []Comparison) error {
	path := filepath.Join(w.baseDir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create comparisons file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"depth", "move", "score",
		"minimax_visited", "alphabeta_visited", "pruned", "pruning_ratio", "agree",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range comparisons {
		row := []string{
			strconv.Itoa(c.Depth),
			c.Move,
			strconv.FormatFloat(c.Score, 'f', -1, 64),
			strconv.FormatInt(c.MinimaxVisited, 10),
			strconv.FormatInt(c.AlphaBetaVisited, 10),
			strconv.FormatInt(c.Pruned, 10),
			strconv.FormatFloat(c.PruningRatio, 'f', 4, 64),
			strconv.FormatBool(c.Agree),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return writer.Error()
}
