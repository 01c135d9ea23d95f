// Package grid provides the board model for the 2048 puzzle: a fixed-size
// square matrix of tile values with spawn logic. It contains no external
// dependencies to keep game logic pure and testable.
package grid

import (
	"errors"
	"math/rand"
)

// DefaultSize is the standard board dimension.
const DefaultSize = 4

// Errors returned by cell accessors. All are recoverable; the grid never
// panics on invalid input.
var (
	ErrOutOfBounds      = errors.New("grid: cell out of bounds")
	ErrInvalidTileValue = errors.New("grid: tile value must be empty or a power of 2")
)

// Cell identifies a board position by row and column.
type Cell struct {
	Row, Col int
}

// Grid is a square N×N board. A cell value of 0 means empty; any other
// value is a power of 2 ≥ 2. Dimensions never change after construction.
type Grid struct {
	size  int
	cells []int
}

// New creates an empty grid of the given dimension.
// Sizes below 2 fall back to DefaultSize.
func New(size int) *Grid {
	if size < 2 {
		size = DefaultSize
	}
	return &Grid{
		size:  size,
		cells: make([]int, size*size),
	}
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.size
}

// inBounds reports whether (row, col) is a valid cell.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// ValidTile reports whether v is a legal cell value: empty or a power of 2 ≥ 2.
func ValidTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Get returns the value at (row, col).
func (g *Grid) Get(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, ErrOutOfBounds
	}
	return g.cells[row*g.size+col], nil
}

// Set overwrites the cell at (row, col). The value must be empty or a
// power of 2, otherwise the write is rejected.
func (g *Grid) Set(row, col, value int) error {
	if !g.inBounds(row, col) {
		return ErrOutOfBounds
	}
	if !ValidTile(value) {
		return ErrInvalidTileValue
	}
	g.cells[row*g.size+col] = value
	return nil
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for row := range g.size {
		for col := range g.size {
			if g.cells[row*g.size+col] == 0 {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// IsFull returns true if no empty cells remain.
func (g *Grid) IsFull() bool {
	for _, v := range g.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// SpawnRandom places a new tile in one empty cell picked uniformly at
// random: 4 with probability prob4, otherwise 2. Returns false without
// mutating the grid if the board is full. The randomness source is
// supplied by the caller so tests can be deterministic.
func (g *Grid) SpawnRandom(rng *rand.Rand, prob4 float64) bool {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return false
	}
	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < prob4 {
		value = 4
	}

	g.cells[cell.Row*g.size+cell.Col] = value
	return true
}

// MaxTile returns the highest tile value on the board, 0 if empty.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		size:  g.size,
		cells: make([]int, len(g.cells)),
	}
	copy(clone.cells, g.cells)
	return clone
}

// Equal reports whether two grids have identical dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rows returns a copy of the board as a row-major matrix. Mutating the
// result does not affect the grid; the UI layer holds no direct reference
// to cells.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for row := range g.size {
		rows[row] = make([]int, g.size)
		copy(rows[row], g.cells[row*g.size:(row+1)*g.size])
	}
	return rows
}

// Reset clears every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}
