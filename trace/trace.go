package trace

import "sync"

// Kind tags the event variants a search can emit.
type Kind int

const (
	// Visit marks a node taken off the frontier for expansion.
	Visit Kind = iota
	// Frontier marks a node added to the frontier.
	Frontier
	// Evaluated marks a leaf scored by the evaluation function or a
	// terminal test.
	Evaluated
	// Pruned marks a subtree cut off by an alpha >= beta bound.
	Pruned
)

func (k Kind) String() string {
	switch k {
	case Visit:
		return "visit"
	case Frontier:
		return "frontier"
	case Evaluated:
		return "evaluated"
	case Pruned:
		return "pruned"
	default:
		return "unknown"
	}
}

// Event is one step of a search, in exact evaluation order. Which fields
// are meaningful depends on Kind: path searches set Row/Col, adversarial
// searches set Path/Score and, for Pruned, the Alpha/Beta bounds at the
// moment of the cut.
type Event struct {
	Kind  Kind
	Row   int
	Col   int
	Depth int
	Path  []string
	Score float64
	Alpha float64
	Beta  float64
}

// Sink consumes events as the search produces them.
type Sink interface {
	Emit(Event)
}

// Recorder is a batch sink: the whole trace is read after the search
// returns. Not safe for concurrent use.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

// Events returns the recorded trace in emission order.
func (r *Recorder) Events() []Event {
	return r.events
}

// Buffer is an append-only sink safe for one producing search and one
// consuming reader. The reader drains incrementally while the search runs.
type Buffer struct {
	mu     sync.Mutex
	events []Event
	read   int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Emit(e Event) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

// Drain returns the events emitted since the previous Drain.
func (b *Buffer) Drain() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.read == len(b.events) {
		return nil
	}
	out := make([]Event, len(b.events)-b.read)
	copy(out, b.events[b.read:])
	b.read = len(b.events)
	return out
}

// Len reports the total number of events emitted so far.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

type discard struct{}

func (discard) Emit(Event) {}

// Discard drops every event. Searches use it when no trace was requested.
var Discard Sink = discard{}
