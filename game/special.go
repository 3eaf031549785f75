package game

import (
	"errors"
	"fmt"
)

var (
	ErrTileOutside = errors.New("game: special tile outside the board")
	ErrTileClash   = errors.New("game: multiple special tiles on one cell")
)

// TileKind tags a special cell.
type TileKind int

const (
	// TileBlock makes a cell unplayable for the whole game.
	TileBlock TileKind = iota + 1
	// TileDouble grants the mover an extra turn when played on.
	TileDouble
)

func (k TileKind) String() string {
	switch k {
	case TileBlock:
		return "block"
	case TileDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Tile places a special effect on a cell.
type Tile struct {
	Row, Col int
	Kind     TileKind
}

// SpecialTicTacToe is tic-tac-toe with blocked and double-move tiles.
// Blocked cells never accept a mark and count as filled for the draw test;
// playing a double tile keeps the turn with the mover.
type SpecialTicTacToe struct {
	size  int
	cells []Player
	tiles map[int]TileKind // keyed by row*size+col
	turn  Player
}

func NewSpecialTicTacToe(size int, tiles []Tile) (*SpecialTicTacToe, error) {
	if size < 3 {
		return nil, ErrBoardSize
	}
	kinds := make(map[int]TileKind, len(tiles))
	for _, t := range tiles {
		if t.Row < 0 || t.Row >= size || t.Col < 0 || t.Col >= size {
			return nil, fmt.Errorf("%w: (%d,%d) on a %dx%d board",
				ErrTileOutside, t.Row, t.Col, size, size)
		}
		i := t.Row*size + t.Col
		if _, dup := kinds[i]; dup {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrTileClash, t.Row, t.Col)
		}
		kinds[i] = t.Kind
	}
	return &SpecialTicTacToe{
		size:  size,
		cells: make([]Player, size*size),
		tiles: kinds,
		turn:  PlayerA,
	}, nil
}

func (s *SpecialTicTacToe) Size() int { return s.size }

func (s *SpecialTicTacToe) TileAt(row, col int) (TileKind, bool) {
	k, ok := s.tiles[row*s.size+col]
	return k, ok
}

func (s *SpecialTicTacToe) Player() Player { return s.turn }

func (s *SpecialTicTacToe) LegalMoves() []Move {
	if s.Terminal().Over {
		return nil
	}
	moves := make([]Move, 0, len(s.cells))
	for i, c := range s.cells {
		if c != None || s.tiles[i] == TileBlock {
			continue
		}
		moves = append(moves, PlaceMove{Row: i / s.size, Col: i % s.size})
	}
	return moves
}

func (s *SpecialTicTacToe) Play(m Move) State {
	pm, ok := m.(PlaceMove)
	if !ok {
		panic("special: move is not a placement")
	}
	i := pm.Row*s.size + pm.Col
	if s.cells[i] != None || s.tiles[i] == TileBlock {
		panic("special: cell not playable")
	}
	turn := s.turn.Opponent()
	if s.tiles[i] == TileDouble {
		turn = s.turn // extra move
	}
	next := &SpecialTicTacToe{
		size:  s.size,
		cells: make([]Player, len(s.cells)),
		tiles: s.tiles, // immutable after construction
		turn:  turn,
	}
	copy(next.cells, s.cells)
	next.cells[i] = s.turn
	return next
}

func (s *SpecialTicTacToe) Terminal() Outcome {
	if w := lineWinner(s.cells, s.size); w != None {
		return Outcome{Over: true, Winner: w}
	}
	for i, c := range s.cells {
		if c == None && s.tiles[i] != TileBlock {
			return Outcome{}
		}
	}
	return Outcome{Over: true}
}

func (s *SpecialTicTacToe) Evaluate(perspective Player) float64 {
	bonus := make(map[int]bool, len(s.tiles))
	for i, k := range s.tiles {
		if k == TileDouble {
			bonus[i] = true
		}
	}
	return evalLines(s.cells, s.size, perspective, bonus)
}
