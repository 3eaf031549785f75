package game

// Player identifies a side. None marks empty cells and drawn outcomes.
type Player int

const (
	None Player = iota
	PlayerA
	PlayerB
)

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "-"
	}
}

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return None
	}
}

// Move is one legal action on a board. Implementations are comparable
// value types so the searcher can key and compare them.
type Move interface {
	String() string
}

// Outcome is a terminal verdict. Winner is None for a draw.
type Outcome struct {
	Over   bool
	Winner Player
}

// State is an immutable board position. Play always returns a new copy;
// a state handed to the searcher is never mutated.
type State interface {
	// Player returns the side to move.
	Player() Player
	// LegalMoves enumerates moves in a deterministic order. The searcher
	// breaks score ties by this order.
	LegalMoves() []Move
	// Play applies a legal move and returns the resulting position.
	Play(Move) State
	// Terminal reports whether the game is over and who won.
	Terminal() Outcome
	// Evaluate scores the position heuristically from the given player's
	// perspective. Only consulted at search cutoff, never at terminals.
	Evaluate(perspective Player) float64
}

// Evaluate scores a state from the given player's perspective. Searches
// accept one to override a board's built-in heuristic.
type Evaluate func(s State, perspective Player) float64
