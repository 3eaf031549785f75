// Package jugs solves the water-jug measuring puzzle as a bounded
// state-space search. States are tuples of fill levels; transitions fill a
// jug, empty a jug, or pour one into another until the source empties or
// the destination fills.
package jugs

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

var (
	// ErrNoJugs indicates an empty capacity list.
	ErrNoJugs = errors.New("jugs: need at least one jug")
	// ErrBadCapacity indicates a capacity below one.
	ErrBadCapacity = errors.New("jugs: capacities must be positive")
	// ErrBadTarget indicates a negative target.
	ErrBadTarget = errors.New("jugs: target must be non-negative")
	// ErrBadState indicates levels that do not fit the capacities.
	ErrBadState = errors.New("jugs: levels do not fit the jug capacities")
)

// Kind tags a jug move.
type Kind int

const (
	Fill Kind = iota
	Empty
	Pour
)

// Move is one puzzle step. Jug is the acted-on jug for Fill and Empty;
// Pour moves Amount units from Jug into Into.
type Move struct {
	Kind   Kind
	Jug    int
	Into   int
	Amount int
}

func (m Move) String() string {
	switch m.Kind {
	case Fill:
		return fmt.Sprintf("fill jug %d", m.Jug+1)
	case Empty:
		return fmt.Sprintf("empty jug %d", m.Jug+1)
	default:
		return fmt.Sprintf("pour %d from jug %d into jug %d", m.Amount, m.Jug+1, m.Into+1)
	}
}

// Problem is an immutable jug puzzle instance.
type Problem struct {
	capacities []int
}

func NewProblem(capacities []int) (*Problem, error) {
	if len(capacities) == 0 {
		return nil, ErrNoJugs
	}
	caps := make([]int, len(capacities))
	for i, c := range capacities {
		if c < 1 {
			return nil, fmt.Errorf("%w: jug %d has capacity %d", ErrBadCapacity, i+1, c)
		}
		caps[i] = c
	}
	return &Problem{capacities: caps}, nil
}

func (p *Problem) Capacities() []int {
	out := make([]int, len(p.capacities))
	copy(out, p.capacities)
	return out
}

// Feasible reports whether target can be measured starting from all-empty
// jugs: target must be a multiple of gcd(capacities) and no larger than
// the largest jug.
func (p *Problem) Feasible(target int) bool {
	if target < 0 {
		return false
	}
	g := 0
	for _, c := range p.capacities {
		g = gcd(g, c)
	}
	return target <= slices.Max(p.capacities) && target%g == 0
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Solution is the outcome of Solve. Feasible == false means no state with
// a jug at the target level is reachable; Moves is the shortest move
// sequence otherwise (empty when the start already measures the target).
type Solution struct {
	Moves          []Move
	Feasible       bool
	StatesExplored int
}

// searchNode lives in the BFS arena.
type searchNode struct {
	levels []int
	parent int
	move   Move
}

// Solve finds a shortest move sequence measuring target, via BFS from the
// given start levels (all-empty when from is omitted). The gcd feasibility
// rule short-circuits impossible targets from the all-empty start; from
// other starts infeasibility falls out of frontier exhaustion, since the
// state space is bounded by the product of capacity+1.
func (p *Problem) Solve(target int, from ...[]int) (Solution, error) {
	if target < 0 {
		return Solution{}, ErrBadTarget
	}
	start := make([]int, len(p.capacities))
	if len(from) > 0 && from[0] != nil {
		if err := p.checkLevels(from[0]); err != nil {
			return Solution{}, err
		}
		copy(start, from[0])
	}
	if allZero(start) && !p.Feasible(target) {
		return Solution{Feasible: false}, nil
	}
	return p.search(start, target), nil
}

// search is the exhaustive BFS behind Solve, without the feasibility
// fast path.
func (p *Problem) search(start []int, target int) Solution {
	arena := []searchNode{{levels: start, parent: -1}}
	frontier := []int{0}
	visited := map[string]bool{key(start): true}

	explored := 0
	for len(frontier) > 0 {
		var i int
		i, frontier = frontier[0], frontier[1:]
		cur := arena[i]
		explored++

		if measures(cur.levels, target) {
			return Solution{
				Moves:          p.reconstruct(arena, i),
				Feasible:       true,
				StatesExplored: explored,
			}
		}

		for _, m := range p.transitions(cur.levels) {
			next := p.apply(cur.levels, m)
			k := key(next)
			if visited[k] {
				continue
			}
			visited[k] = true
			arena = append(arena, searchNode{levels: next, parent: i, move: m})
			frontier = append(frontier, len(arena)-1)
		}
	}

	return Solution{Feasible: false, StatesExplored: explored}
}

// Hint returns the first move of a shortest solution from current. The
// second result is false when the target is already measured or cannot be
// reached from current. Enumeration order is fixed, so repeated calls from
// the same state return the same move.
func (p *Problem) Hint(current []int, target int) (Move, bool, error) {
	sol, err := p.Solve(target, current)
	if err != nil {
		return Move{}, false, err
	}
	if !sol.Feasible || len(sol.Moves) == 0 {
		return Move{}, false, nil
	}
	return sol.Moves[0], true, nil
}

// transitions enumerates moves in fixed order: fills by jug index, empties
// by jug index, pours by ordered (source, destination) pair.
func (p *Problem) transitions(levels []int) []Move {
	var moves []Move
	for i, l := range levels {
		if l < p.capacities[i] {
			moves = append(moves, Move{Kind: Fill, Jug: i})
		}
	}
	for i, l := range levels {
		if l > 0 {
			moves = append(moves, Move{Kind: Empty, Jug: i})
		}
	}
	for i, src := range levels {
		for j, dst := range levels {
			if i == j || src == 0 || dst == p.capacities[j] {
				continue
			}
			amount := min(src, p.capacities[j]-dst)
			moves = append(moves, Move{Kind: Pour, Jug: i, Into: j, Amount: amount})
		}
	}
	return moves
}

func (p *Problem) apply(levels []int, m Move) []int {
	next := make([]int, len(levels))
	copy(next, levels)
	switch m.Kind {
	case Fill:
		next[m.Jug] = p.capacities[m.Jug]
	case Empty:
		next[m.Jug] = 0
	case Pour:
		next[m.Jug] -= m.Amount
		next[m.Into] += m.Amount
	}
	return next
}

func (p *Problem) checkLevels(levels []int) error {
	if len(levels) != len(p.capacities) {
		return fmt.Errorf("%w: %d levels for %d jugs", ErrBadState, len(levels), len(p.capacities))
	}
	for i, l := range levels {
		if l < 0 || l > p.capacities[i] {
			return fmt.Errorf("%w: jug %d holds %d of %d", ErrBadState, i+1, l, p.capacities[i])
		}
	}
	return nil
}

func (p *Problem) reconstruct(arena []searchNode, i int) []Move {
	var moves []Move
	for ; arena[i].parent >= 0; i = arena[i].parent {
		moves = append(moves, arena[i].move)
	}
	for l, r := 0, len(moves)-1; l < r; l, r = l+1, r-1 {
		moves[l], moves[r] = moves[r], moves[l]
	}
	return moves
}

func measures(levels []int, target int) bool {
	for _, l := range levels {
		if l == target {
			return true
		}
	}
	return false
}

func allZero(levels []int) bool {
	for _, l := range levels {
		if l != 0 {
			return false
		}
	}
	return true
}

func key(levels []int) string {
	b := make([]byte, 0, len(levels)*4)
	for _, l := range levels {
		b = strconv.AppendInt(b, int64(l), 10)
		b = append(b, ',')
	}
	return string(b)
}
