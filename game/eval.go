package game

// lineWinner returns the player holding a complete row, column or diagonal,
// or None.
func lineWinner(cells []Player, size int) Player {
	for _, line := range allLines(size) {
		first := cells[line[0]]
		if first == None {
			continue
		}
		won := true
		for _, i := range line[1:] {
			if cells[i] != first {
				won = false
				break
			}
		}
		if won {
			return first
		}
	}
	return None
}

// allLines enumerates every winning line as cell indices: rows first, then
// columns, then the two diagonals.
func allLines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)
	for r := 0; r < size; r++ {
		line := make([]int, size)
		for c := 0; c < size; c++ {
			line[c] = r*size + c
		}
		lines = append(lines, line)
	}
	for c := 0; c < size; c++ {
		line := make([]int, size)
		for r := 0; r < size; r++ {
			line[r] = r*size + c
		}
		lines = append(lines, line)
	}
	diag := make([]int, size)
	anti := make([]int, size)
	for i := 0; i < size; i++ {
		diag[i] = i*size + i
		anti[i] = i*size + (size - 1 - i)
	}
	return append(lines, diag, anti)
}

// evalLines is the shared placement-game heuristic: a line holding only one
// player's marks is worth the mark count (doubled per mark on a bonus
// tile), a contested line is worth nothing. The 3x3 center earns a small
// bonus. Scores stay far below the terminal scale.
func evalLines(cells []Player, size int, perspective Player, bonus map[int]bool) float64 {
	score := 0.0
	for _, line := range allLines(size) {
		var mine, theirs float64
		for _, i := range line {
			weight := 1.0
			if bonus[i] {
				weight = 2.0
			}
			switch cells[i] {
			case perspective:
				mine += weight
			case perspective.Opponent():
				theirs += weight
			}
		}
		if mine > 0 && theirs > 0 {
			continue
		}
		score += mine - theirs
	}
	if size == 3 {
		switch cells[4] {
		case perspective:
			score += 2
		case perspective.Opponent():
			score -= 2
		}
	}
	return score
}
