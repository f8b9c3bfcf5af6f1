package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid represents a bounded board of live and dead cells, indexed by (row, col)
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", rows, cols)
	}
	return newGrid(rows, cols), nil
}

func newGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Dimensions returns (rows, cols)
func (g *Grid) Dimensions() (int, int) {
	return g.rows, g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) checkBounds(row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "(%d, %d) on %dx%d grid", row, col, g.rows, g.cols)
	}
	return nil
}

// Get returns the state of a cell, or ErrOutOfBounds
func (g *Grid) Get(row, col int) (bool, error) {
	if err := g.checkBounds(row, col); err != nil {
		return false, errors.Wrap(err, "[Grid.Get]")
	}
	return g.cells[row][col], nil
}

// Alive reports whether a cell is alive. Coordinates outside the grid read as dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(row, col int, alive bool) error {
	if err := g.checkBounds(row, col); err != nil {
		return errors.Wrap(err, "[Grid.Set]")
	}
	g.cells[row][col] = alive
	return nil
}

// Toggle flips a single cell in place
func (g *Grid) Toggle(row, col int) error {
	if err := g.checkBounds(row, col); err != nil {
		return errors.Wrap(err, "[Grid.Toggle]")
	}
	g.cells[row][col] = !g.cells[row][col]
	return nil
}

// Clear kills all cells
func (g *Grid) Clear() {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = false
		}
	}
}

// Randomize sets every cell alive with probability one half
func (g *Grid) Randomize(rng *rand.Rand) {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col] = rng.IntN(2) == 1
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.rows, g.cols)
	c.CopyFrom(g)
	return c
}

// CopyFrom overwrites the cells of g with those of src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	for row := range g.rows {
		copy(g.cells[row], src.cells[row])
	}
}

// Equal compares dimensions and every cell
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// CountNeighbors counts living neighbors of an in-bounds cell. Neighbors past an edge are
// skipped, so corner cells see at most 3 and edge cells at most 5.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// nextRows fills rows [startRow, endRow) of next from g
func (g *Grid) nextRows(next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range g.cols {
			next.cells[row][col] = rules.ApplyConwayRules(g.CountNeighbors(row, col), g.cells[row][col])
		}
	}
}

func (g *Grid) sameShape(next *Grid) error {
	if next == nil || next.rows != g.rows || next.cols != g.cols {
		return errors.Wrapf(ErrInvalidDimensions, "target does not match %dx%d", g.rows, g.cols)
	}
	return nil
}

// NextGeneration returns a new grid holding the successor of g. g is not modified.
func (g *Grid) NextGeneration() *Grid {
	next := newGrid(g.rows, g.cols)
	g.nextRows(next, 0, g.rows)
	return next
}

// NextGenerationInto writes the successor of g into next, overwriting every cell
func (g *Grid) NextGenerationInto(next *Grid) error {
	if err := g.sameShape(next); err != nil {
		return errors.Wrap(err, "[NextGenerationInto]")
	}
	g.nextRows(next, 0, g.rows)
	return nil
}

// NextGenerationParallel writes the successor of g into next, splitting rows across workers
func (g *Grid) NextGenerationParallel(next *Grid, workers int) error {
	if err := g.sameShape(next); err != nil {
		return errors.Wrap(err, "[NextGenerationParallel]")
	}
	if workers <= 1 {
		g.nextRows(next, 0, g.rows)
		return nil
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			g.nextRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[NextGenerationParallel] worker failed")
	}
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the dimensions and cell states
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// AddBlinker places a horizontal period-2 oscillator with its left cell at (row, col).
// Cells falling outside the grid are dropped.
func (g *Grid) AddBlinker(row, col int) {
	for dc := range 3 {
		_ = g.Set(row, col+dc, true)
	}
}

// AddBlock places a 2x2 still life with its top-left cell at (row, col)
func (g *Grid) AddBlock(row, col int) {
	for dr := range 2 {
		for dc := range 2 {
			_ = g.Set(row+dr, col+dc, true)
		}
	}
}

// AddGlider adds a glider pattern with its bounding box starting at (row, col)
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for dr, line := range pattern {
		for dc, cell := range line {
			_ = g.Set(row+dr, col+dc, cell)
		}
	}
}
