package game

import (
	"errors"
	"fmt"
)

var (
	ErrBoardSize    = errors.New("game: board size must be at least 3")
	ErrBadMarks     = errors.New("game: initial marks do not fit the board")
	ErrNoSideToMove = errors.New("game: side to move must be a player")
)

// PlaceMove puts the mover's mark on an empty cell.
type PlaceMove struct {
	Row, Col int
}

func (m PlaceMove) String() string {
	return fmt.Sprintf("place %d,%d", m.Row, m.Col)
}

// TicTacToe is a plain N-in-a-row board of size N (N >= 3). The zero value
// is not usable; construct through NewTicTacToe.
type TicTacToe struct {
	size  int
	cells []Player
	turn  Player
}

// NewTicTacToe returns an empty board with PlayerA to move.
func NewTicTacToe(size int) (*TicTacToe, error) {
	if size < 3 {
		return nil, ErrBoardSize
	}
	return &TicTacToe{
		size:  size,
		cells: make([]Player, size*size),
		turn:  PlayerA,
	}, nil
}

// NewTicTacToeFrom builds a board from an existing position. marks is
// row-major and must have size*size entries.
func NewTicTacToeFrom(size int, marks []Player, turn Player) (*TicTacToe, error) {
	if size < 3 {
		return nil, ErrBoardSize
	}
	if len(marks) != size*size {
		return nil, fmt.Errorf("%w: got %d marks for a %dx%d board",
			ErrBadMarks, len(marks), size, size)
	}
	if turn != PlayerA && turn != PlayerB {
		return nil, ErrNoSideToMove
	}
	cells := make([]Player, len(marks))
	copy(cells, marks)
	return &TicTacToe{size: size, cells: cells, turn: turn}, nil
}

func (t *TicTacToe) Size() int { return t.size }

func (t *TicTacToe) At(row, col int) Player {
	return t.cells[row*t.size+col]
}

func (t *TicTacToe) Player() Player { return t.turn }

func (t *TicTacToe) LegalMoves() []Move {
	if t.Terminal().Over {
		return nil
	}
	moves := make([]Move, 0, len(t.cells))
	for i, c := range t.cells {
		if c == None {
			moves = append(moves, PlaceMove{Row: i / t.size, Col: i % t.size})
		}
	}
	return moves
}

func (t *TicTacToe) Play(m Move) State {
	pm, ok := m.(PlaceMove)
	if !ok {
		panic("tictactoe: move is not a placement")
	}
	i := pm.Row*t.size + pm.Col
	if t.cells[i] != None {
		panic("tictactoe: cell already occupied")
	}
	next := &TicTacToe{
		size:  t.size,
		cells: make([]Player, len(t.cells)),
		turn:  t.turn.Opponent(),
	}
	copy(next.cells, t.cells)
	next.cells[i] = t.turn
	return next
}

func (t *TicTacToe) Terminal() Outcome {
	if w := lineWinner(t.cells, t.size); w != None {
		return Outcome{Over: true, Winner: w}
	}
	for _, c := range t.cells {
		if c == None {
			return Outcome{}
		}
	}
	return Outcome{Over: true} // full board, no winner
}

func (t *TicTacToe) Evaluate(perspective Player) float64 {
	return evalLines(t.cells, t.size, perspective, nil)
}
