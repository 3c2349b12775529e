package game

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 3

const (
	rowLabels = "abc"
	colLabels = "123"
)

// Coord addresses one cell. Only ParseCoord and AllCoords produce values that are
// guaranteed to be on the board; Valid checks any other value.
type Coord struct {
	Row int
	Col int
}

// ParseCoord decodes a cell label such as "a1" or "C3" into a Coord.
// Rows are labelled a, b, c and columns 1, 2, 3.
func ParseCoord(label string) (Coord, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCell, label)
	}

	row := strings.IndexByte(rowLabels, s[0])
	col := strings.IndexByte(colLabels, s[1])
	if row < 0 || col < 0 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCell, label)
	}

	return Coord{Row: row, Col: col}, nil
}

// MustParseCoord is like ParseCoord but panics on a bad label. Intended for
// literals in tests and tables.
func MustParseCoord(label string) Coord {
	c, err := ParseCoord(label)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// String returns the cell label (e.g., "b2")
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return string([]byte{rowLabels[c.Row], colLabels[c.Col]})
}

// AllCoords returns every cell in label order: a1, a2, a3, b1, ... c3.
func AllCoords() []Coord {
	coords := make([]Coord, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			coords = append(coords, Coord{Row: r, Col: c})
		}
	}
	return coords
}

// RowLabel returns the letter used for row r.
func RowLabel(r int) string {
	return string(rowLabels[r])
}

// ColLabel returns the digit used for column c.
func ColLabel(c int) string {
	return string(colLabels[c])
}
