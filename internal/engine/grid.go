package engine

import (
	"strconv"
	"strings"
)

// Grid is a square board of tile values. Zero means empty.
// Cells are addressed row-major as grid[row][col].
type Grid [][]int

// Cell is a (row, col) coordinate on the grid.
type Cell struct {
	Row int
	Col int
}

// NewGrid returns an empty size x size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// GridFromRows builds a grid from literal rows. Rows are copied.
// Panics if the rows do not form a square.
func GridFromRows(rows ...[]int) Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			panic("engine: grid rows must form a square")
		}
		copy(g[r], row)
	}
	return g
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := NewGrid(len(g))
	for r := range g {
		copy(c[r], g[r])
	}
	return c
}

// Equal reports whether two grids hold the same values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// IsFull returns true if no cell is empty.
func (g Grid) IsFull() bool {
	for r := range g {
		for c := range g[r] {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// CanMerge returns true if any nonzero cell has an orthogonal neighbor
// with the same value.
func (g Grid) CanMerge() bool {
	n := len(g)
	for r := range n {
		for c := range n {
			val := g[r][c]
			if val == 0 {
				continue
			}
			// Right and bottom neighbors cover every adjacent pair once.
			if c < n-1 && g[r][c+1] == val {
				return true
			}
			if r < n-1 && g[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for r := range g {
		for c := range g[r] {
			total += g[r][c]
		}
	}
	return total
}

// TileCount returns the number of nonzero cells.
func (g Grid) TileCount() int {
	count := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] != 0 {
				count++
			}
		}
	}
	return count
}

// String renders the grid as space-separated rows, for logs and test output.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, val := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(val))
		}
	}
	return sb.String()
}
