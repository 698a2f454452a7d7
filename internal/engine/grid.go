package engine

import (
	"fmt"
	"strings"
)

// Size is the board dimension. Boards are always Size x Size.
const Size = 5

// LockThreshold is the minimum region size that, if not the target color,
// ends the game in a loss. 13 of 25 cells is a strict majority.
const LockThreshold = 13

// Coord represents a cell position on the grid.
// Row increases downward, Col increases to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds returns true if the coordinate is within the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Neighbors returns the 4-directional neighbors of the coordinate that are
// within the board. Diagonals are never adjacent.
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

// Grid is the puzzle board. It is a value type: assignment copies the whole
// board, so scratch simulations and snapshots never alias live state.
type Grid [Size][Size]Color

// Get returns the color at the given coordinate.
func (g *Grid) Get(c Coord) Color {
	return g[c.Row][c.Col]
}

// Set sets the color at the given coordinate.
func (g *Grid) Set(c Coord, color Color) {
	g[c.Row][c.Col] = color
}

// Equal returns true if both grids hold the same colors everywhere.
func (g Grid) Equal(other Grid) bool {
	return g == other
}

// String renders the grid as Size lines of color letters.
func (g Grid) String() string {
	var b strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			b.WriteRune('\n')
		}
		for col := 0; col < Size; col++ {
			b.WriteRune(g[row][col].Char())
		}
	}
	return b.String()
}

// GridFromRows builds a grid from Size strings of Size color letters each.
// Used by the puzzle file format and by tests.
func GridFromRows(rows []string) (Grid, error) {
	var g Grid
	if len(rows) != Size {
		return g, fmt.Errorf("engine: grid needs %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != Size {
			return g, fmt.Errorf("engine: row %d needs %d cells, got %d", r, Size, len(cells))
		}
		for c, ch := range cells {
			color, ok := ParseColor(string(ch))
			if !ok {
				return g, fmt.Errorf("engine: row %d col %d: unknown color %q", r, c, ch)
			}
			g[r][c] = color
		}
	}
	return g, nil
}

// CellSet is a set of grid coordinates. Used for the locked-cell set and for
// visited bookkeeping where membership order does not matter.
type CellSet map[Coord]struct{}

// NewCellSet creates a set containing the given coordinates.
func NewCellSet(coords ...Coord) CellSet {
	s := make(CellSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Has returns true if the coordinate is in the set.
func (s CellSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Add inserts the coordinate into the set.
func (s CellSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Len returns the number of coordinates in the set.
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}
