package game

// Board is the 3x3 grid, indexed [row][col].
type Board [Size][Size]Mark

// At returns the mark in the given cell.
func (b Board) At(c Coord) Mark {
	return b[c.Row][c.Col]
}

// lines lists every winning line in evaluation order:
// rows, then columns, then the main diagonal, then the anti-diagonal.
var lines = [8][3]Coord{
	// rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// completedLine returns the mark of the first line held entirely by one player.
func (b Board) completedLine() (Mark, bool) {
	for _, ln := range lines {
		m := b.At(ln[0])
		if m != Empty && m == b.At(ln[1]) && m == b.At(ln[2]) {
			return m, true
		}
	}
	return Empty, false
}
