package searcher

import "time"

// Stats aggregates one search invocation. Under iterative deepening the
// counters accumulate across all completed and attempted depths.
type Stats struct {
	NodesVisited    int64
	NodesPruned     int64
	MaxDepthReached int
	Branching       float64 // mean legal moves per expanded interior node
	Elapsed         time.Duration
}

// PruningRatio is the share of the explored tree that pruning cut away.
func (s Stats) PruningRatio() float64 {
	total := s.NodesVisited + s.NodesPruned
	if total == 0 {
		return 0
	}
	return float64(s.NodesPruned) / float64(total)
}

// collector gathers counters during a search. Each invocation owns its
// collector, so plain fields suffice.
type collector struct {
	startTime time.Time
	visited   int64
	pruned    int64
	maxDepth  int
	branches  int64
	interior  int64
}

func newCollector() *collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

// AddNode records a visited node with its legal-move count; leaves pass 0.
func (c *collector) AddNode(depth, moves int) {
	c.visited++
	if depth > c.maxDepth {
		c.maxDepth = depth
	}
	if moves > 0 {
		c.branches += int64(moves)
		c.interior++
	}
}

// AddPruned records n subtree roots skipped by an alpha-beta cut.
func (c *collector) AddPruned(n int) {
	c.pruned += int64(n)
}

func (c *collector) Complete() Stats {
	s := Stats{
		NodesVisited:    c.visited,
		NodesPruned:     c.pruned,
		MaxDepthReached: c.maxDepth,
		Elapsed:         time.Since(c.startTime),
	}
	if c.interior > 0 {
		s.Branching = float64(c.branches) / float64(c.interior)
	}
	return s
}
