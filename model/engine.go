package model

import (
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Engine advances a toroidal Game of Life grid one generation at a time.
// It exclusively owns two equally sized buffers: cur holds the visible
// generation and nxt receives the next one before they are swapped.
type Engine struct {
	cur        *Grid
	nxt        *Grid
	seed       SeedFunc
	workers    int
	generation uint64
	logger     *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithSeed replaces DefaultSeed as the initial pattern
func WithSeed(seed SeedFunc) Option {
	return func(e *Engine) {
		if seed != nil {
			e.seed = seed
		}
	}
}

// WithWorkers sets how many goroutines share the rows of one Advance; n <= 0 means runtime.NumCPU()
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithLogger attaches a logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine with a width x height grid seeded by DefaultSeed unless overridden
func NewEngine(width, height int, opts ...Option) (*Engine, error) {
	e := &Engine{
		seed:   DefaultSeed,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = runtime.NumCPU()
	}

	cur, err := NewGrid(width, height, e.seed)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEngine] failed to build grid")
	}
	nxt, err := NewGrid(width, height, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEngine] failed to build back buffer")
	}
	e.cur, e.nxt = cur, nxt

	e.logger.Debug("engine created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("workers", e.workers),
		zap.Int("population", cur.Population()),
	)
	return e, nil
}

// Width returns the width of the grid
func (e *Engine) Width() int {
	return e.cur.width
}

// Height returns the height of the grid
func (e *Engine) Height() int {
	return e.cur.height
}

// Generation returns how many times the engine has advanced since construction or the last Reset
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Population returns the number of living cells in the current generation
func (e *Engine) Population() int {
	return e.cur.Population()
}

// CellAt returns the state of the cell at (x, y) without wrapping
func (e *Engine) CellAt(x, y int) (Cell, error) {
	cell, err := e.cur.Get(Coordinate{X: x, Y: y})
	if err != nil {
		return Dead, errors.Wrap(err, "[CellAt]")
	}
	return cell, nil
}

// Snapshot returns a copy of the current generation that the caller may mutate freely
func (e *Engine) Snapshot() *Grid {
	return e.cur.Clone()
}

// Hash returns the hash of the current generation
func (e *Engine) Hash() string {
	return e.cur.Hash()
}

// Reset re-applies the engine's seed func and restarts the generation counter.
// Pure seeds such as DefaultSeed and PatternSeed restore the starting grid;
// stateful seeds such as RandomSeed continue their stream and yield a new grid.
func (e *Engine) Reset() {
	e.cur.Seed(e.seed)
	e.generation = 0
	e.logger.Debug("engine reset", zap.Int("population", e.cur.Population()))
}

// Reseed replaces the engine's seed and resets the grid with it
func (e *Engine) Reseed(seed SeedFunc) {
	if seed != nil {
		e.seed = seed
	}
	e.Reset()
}

// wrap returns the rows and columns adjacent to (row, col) on a w x h torus
func wrap(w, h, row, col int) (north, south, west, east int) {
	north = row - 1
	if row == 0 {
		north = h - 1
	}
	south = row + 1
	if row == h-1 {
		south = 0
	}
	west = col - 1
	if col == 0 {
		west = w - 1
	}
	east = col + 1
	if col == w-1 {
		east = 0
	}
	return
}

// Neighbors returns the eight wrapped neighbour positions of c in the order
// NW, N, NE, W, E, SW, S, SE. c must lie within the grid.
func (e *Engine) Neighbors(c Coordinate) ([8]Coordinate, error) {
	if !e.cur.Contains(c) {
		return [8]Coordinate{}, errors.Wrapf(ErrOutOfBounds, "[Neighbors] %s", c)
	}
	row, col := c.Y, c.X
	north, south, west, east := wrap(e.cur.width, e.cur.height, row, col)
	return [8]Coordinate{
		{west, north}, {col, north}, {east, north},
		{west, row}, {east, row},
		{west, south}, {col, south}, {east, south},
	}, nil
}

// LiveNeighborCount returns how many of the eight neighbour positions of (row, col) are alive
func (e *Engine) LiveNeighborCount(row, col int) (int, error) {
	if !e.cur.Contains(Coordinate{X: col, Y: row}) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[LiveNeighborCount] row: %d, col: %d", row, col)
	}
	return liveNeighbors(e.cur, row, col), nil
}

// liveNeighbors counts against g, which is always the pre-tick generation during Advance
func liveNeighbors(g *Grid, row, col int) int {
	north, south, west, east := wrap(g.width, g.height, row, col)
	return int(g.at(west, north)) + int(g.at(col, north)) + int(g.at(east, north)) +
		int(g.at(west, row)) + int(g.at(east, row)) +
		int(g.at(west, south)) + int(g.at(col, south)) + int(g.at(east, south))
}

// stepRows writes the next state of rows [startRow, endRow) of src into dst
func stepRows(src, dst *Grid, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < src.width; x++ {
			idx := x + src.width*y
			alive := src.cells[idx] == Alive
			dst.cells[idx] = cellOf(rules.Next(alive, liveNeighbors(src, y, x)))
		}
	}
}

// Advance computes the next generation into the back buffer and swaps it in.
// Row bands run in parallel; the swap only happens once every band is done.
func (e *Engine) Advance() {
	var (
		eg            errgroup.Group
		src, dst      = e.cur, e.nxt
		numWorkers    = min(e.workers, src.height)
		rowsPerWorker = (src.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.height)
		)
		if startRow >= src.height {
			break
		}

		eg.Go(func() error {
			stepRows(src, dst, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		e.logger.Error("row band failed", zap.Error(err), zap.Uint64("generation", e.generation))
	}

	e.cur, e.nxt = dst, src
	e.generation++
}

// Step advances n generations
func (e *Engine) Step(n int) {
	for i := 0; i < n; i++ {
		e.Advance()
	}
}
