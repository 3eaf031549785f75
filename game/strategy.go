package game

import (
	"errors"
	"fmt"
)

var ErrStrategySize = errors.New("game: strategy board size must be at least 4")

// PieceMove slides a pawn to an adjacent cell.
type PieceMove struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

func (m PieceMove) String() string {
	return fmt.Sprintf("move %d,%d->%d,%d", m.FromRow, m.FromCol, m.ToRow, m.ToCol)
}

// StrategyBoard is the pawn-race variant: PlayerA starts on the bottom row
// advancing up, PlayerB on the top row advancing down. Pawns step forward
// to an empty cell (straight or diagonal) and capture only diagonally. A
// side wins by reaching the opposite edge or leaving the opponent with no
// pawns.
type StrategyBoard struct {
	size  int
	cells []Player
	turn  Player
}

// NewStrategyBoard returns the starting position: one full row of pawns
// per side, PlayerA to move.
func NewStrategyBoard(size int) (*StrategyBoard, error) {
	if size < 4 {
		return nil, ErrStrategySize
	}
	b := &StrategyBoard{
		size:  size,
		cells: make([]Player, size*size),
		turn:  PlayerA,
	}
	for c := 0; c < size; c++ {
		b.cells[c] = PlayerB               // top row
		b.cells[(size-1)*size+c] = PlayerA // bottom row
	}
	return b, nil
}

// NewStrategyBoardFrom builds a board from an existing position.
func NewStrategyBoardFrom(size int, marks []Player, turn Player) (*StrategyBoard, error) {
	if size < 4 {
		return nil, ErrStrategySize
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
	return &StrategyBoard{size: size, cells: cells, turn: turn}, nil
}

func (b *StrategyBoard) Size() int { return b.size }

func (b *StrategyBoard) At(row, col int) Player {
	return b.cells[row*b.size+col]
}

func (b *StrategyBoard) Player() Player { return b.turn }

// forward is -1 for PlayerA (toward row 0) and +1 for PlayerB.
func forward(p Player) int {
	if p == PlayerA {
		return -1
	}
	return 1
}

// goalRow is the row a player wins by reaching.
func (b *StrategyBoard) goalRow(p Player) int {
	if p == PlayerA {
		return 0
	}
	return b.size - 1
}

func (b *StrategyBoard) LegalMoves() []Move {
	if b.Terminal().Over {
		return nil
	}
	return b.movesFor(b.turn)
}

func (b *StrategyBoard) Play(m Move) State {
	pm, ok := m.(PieceMove)
	if !ok {
		panic("strategy: move is not a piece move")
	}
	from := pm.FromRow*b.size + pm.FromCol
	if b.cells[from] != b.turn {
		panic("strategy: no own pawn on the source cell")
	}
	next := &StrategyBoard{
		size:  b.size,
		cells: make([]Player, len(b.cells)),
		turn:  b.turn.Opponent(),
	}
	copy(next.cells, b.cells)
	next.cells[from] = None
	next.cells[pm.ToRow*b.size+pm.ToCol] = b.turn
	return next
}

func (b *StrategyBoard) Terminal() Outcome {
	countA, countB := 0, 0
	for i, p := range b.cells {
		row := i / b.size
		switch p {
		case PlayerA:
			countA++
			if row == b.goalRow(PlayerA) {
				return Outcome{Over: true, Winner: PlayerA}
			}
		case PlayerB:
			countB++
			if row == b.goalRow(PlayerB) {
				return Outcome{Over: true, Winner: PlayerB}
			}
		}
	}
	if countA == 0 {
		return Outcome{Over: true, Winner: PlayerB}
	}
	if countB == 0 {
		return Outcome{Over: true, Winner: PlayerA}
	}
	// Side to move with no step available loses the race by stalemate;
	// treated as a draw to keep the game total.
	if len(b.movesFor(b.turn)) == 0 {
		return Outcome{Over: true}
	}
	return Outcome{}
}

// movesFor enumerates p's moves row-major, each pawn trying straight,
// diagonal left, diagonal right. No terminal guard so the stalemate test
// can use it.
func (b *StrategyBoard) movesFor(p Player) []Move {
	dr := forward(p)
	opponent := p.Opponent()
	var moves []Move
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r*b.size+c] != p {
				continue
			}
			for _, dc := range [3]int{0, -1, 1} {
				nr, nc := r+dr, c+dc
				if nr < 0 || nr >= b.size || nc < 0 || nc >= b.size {
					continue
				}
				target := b.cells[nr*b.size+nc]
				if target == None || (dc != 0 && target == opponent) {
					moves = append(moves, PieceMove{
						FromRow: r, FromCol: c, ToRow: nr, ToCol: nc,
					})
				}
			}
		}
	}
	return moves
}

// Evaluate rewards advancement toward the goal row, center control and
// material advantage.
func (b *StrategyBoard) Evaluate(perspective Player) float64 {
	center := b.size / 2
	score := 0.0
	mine, theirs := 0, 0
	for i, p := range b.cells {
		if p != PlayerA && p != PlayerB {
			continue
		}
		row, col := i/b.size, i%b.size
		progress := float64(b.size - 1 - abs(row-b.goalRow(p)))
		centerDrift := float64(abs(col - center))
		value := progress*2 - centerDrift
		if p == perspective {
			mine++
			score += value
		} else {
			theirs++
			score -= value
		}
	}
	return score + float64(mine-theirs)*10
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
