package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// SeedFunc returns the initial state of the cell at the given linear index
type SeedFunc func(index int) Cell

// Grid stores cells in row-major order: index = x + width*y.
// It knows nothing about wraparound; callers reduce coordinates first.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid with the specified dimensions, seeding each cell from its linear index
func NewGrid(width, height int, seed SeedFunc) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width: %d, height: %d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Seed(seed)
	return g, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Seed overwrites every cell with seed(index); a nil seed clears the grid
func (g *Grid) Seed(seed SeedFunc) {
	for i := range g.cells {
		if seed == nil {
			g.cells[i] = Dead
			continue
		}
		g.cells[i] = seed(i)
	}
}

// Contains reports whether c lies within [0,width) x [0,height)
func (g *Grid) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IndexOf returns the linear index of an in-range coordinate
func (g *Grid) IndexOf(c Coordinate) int {
	return c.X + g.width*c.Y
}

// CoordOf is the inverse of IndexOf for index < Len()
func (g *Grid) CoordOf(index int) Coordinate {
	return Coordinate{X: index % g.width, Y: index / g.width}
}

// Get returns the state of a cell
func (g *Grid) Get(c Coordinate) (Cell, error) {
	if !g.Contains(c) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Get] %s on %dx%d grid", c, g.width, g.height)
	}
	return g.cells[g.IndexOf(c)], nil
}

// Set writes the state of a cell
func (g *Grid) Set(c Coordinate, cell Cell) error {
	if !g.Contains(c) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] %s on %dx%d grid", c, g.width, g.height)
	}
	g.cells[g.IndexOf(c)] = cell
	return nil
}

// at reads a cell without bounds checking
func (g *Grid) at(x, y int) Cell {
	return g.cells[x+g.width*y]
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Clone returns a detached copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
