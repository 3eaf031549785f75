package engine

import (
	"searchlab/game"
	"searchlab/searcher"
	"searchlab/trace"
)

// Handle follows a search running on a worker goroutine. The presentation
// loop drains the trace buffer for live animation while the search runs,
// then collects the decision once Done closes. One goroutine produces and
// one consumes; the buffer supports exactly that.
type Handle struct {
	buffer   *trace.Buffer
	done     chan struct{}
	decision searcher.Decision
	err      error
}

// ChooseMoveAsync starts an adversarial search off the caller's
// goroutine. The state snapshot must not be mutated by the caller; board
// states are immutable so sharing is safe.
func ChooseMoveAsync(state game.State, config searcher.Config) *Handle {
	h := &Handle{
		buffer: trace.NewBuffer(),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(h.done)
		h.decision, h.err = searcher.New(config, searcher.WithTrace(h.buffer)).ChooseMove(state)
	}()
	return h
}

// Drain returns trace events emitted since the last Drain. Safe to call
// while the search runs.
func (h *Handle) Drain() []trace.Event {
	return h.buffer.Drain()
}

// Done closes when the search finishes.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the search finishes and returns its decision.
func (h *Handle) Wait() (searcher.Decision, error) {
	<-h.done
	return h.decision, h.err
}
