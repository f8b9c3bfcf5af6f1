// Package life runs Conway's Game of Life on a bounded grid.
//
// A Game owns two buffers, the current generation and the one before it. Step computes the
// successor into the older buffer and swaps them, so the previous generation is always a
// snapshot and never an alias of the current one. A Game is meant to be driven by a single
// control loop and does no locking.
package life

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

var (
	// ErrFormat is returned by Load and Read for malformed grid files
	ErrFormat = model.ErrFormat
	// ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = model.ErrOutOfBounds
	// ErrInvalidDimensions is returned by New for rows or cols below one
	ErrInvalidDimensions = model.ErrInvalidDimensions
	// ErrInvalidGenerationLimit is returned when WithMaxGenerations is given a limit below one
	ErrInvalidGenerationLimit = errors.New("generation limit must be at least 1")
)

// Game is a single Game of Life simulation
type Game struct {
	current  *model.Grid
	previous *model.Grid

	generation     int
	maxGenerations int
	limited        bool
	workers        int
}

// New creates a rows x cols game. With randomize set, each cell starts alive with
// probability one half; otherwise every cell starts dead.
func New(rows, cols int, randomize bool, opts ...Option) (*Game, error) {
	current, err := model.NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[New]")
	}

	s := newSettings(opts)
	if randomize {
		current.Randomize(s.rng)
	}
	return newGame(current, s)
}

func newGame(current *model.Grid, s settings) (*Game, error) {
	if s.limited && s.maxGenerations < 1 {
		return nil, errors.Wrapf(ErrInvalidGenerationLimit, "[New] got %d", s.maxGenerations)
	}

	rows, cols := current.Dimensions()
	previous, err := model.NewGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[New]")
	}

	return &Game{
		current:        current,
		previous:       previous,
		generation:     1,
		maxGenerations: s.maxGenerations,
		limited:        s.limited,
		workers:        s.workers,
	}, nil
}

// Step advances the game by one generation
func (g *Game) Step() {
	// Both buffers are allocated with the same shape, so neither call can fail.
	if g.workers > 1 {
		_ = g.current.NextGenerationParallel(g.previous, g.workers)
	} else {
		_ = g.current.NextGenerationInto(g.previous)
	}
	g.previous, g.current = g.current, g.previous
	g.generation++
}

// IsChanging reports whether the current generation differs from the previous one. Before
// the first step the previous generation is all dead.
func (g *Game) IsChanging() bool {
	return !g.current.Equal(g.previous)
}

// IsMaxGenerationsExceeded reports whether a generation limit is set and has been reached
func (g *Game) IsMaxGenerationsExceeded() bool {
	return g.limited && g.generation >= g.maxGenerations
}

// MaxGenerations returns the configured limit and whether one is set
func (g *Game) MaxGenerations() (int, bool) {
	return g.maxGenerations, g.limited
}

// Generation returns the generation counter, starting at 1
func (g *Game) Generation() int {
	return g.generation
}

// Dimensions returns (rows, cols)
func (g *Game) Dimensions() (int, int) {
	return g.current.Dimensions()
}

// Cell returns whether the cell at (row, col) is alive in the current generation
func (g *Game) Cell(row, col int) (bool, error) {
	alive, err := g.current.Get(row, col)
	if err != nil {
		return false, errors.Wrap(err, "[Cell]")
	}
	return alive, nil
}

// Alive is Cell without the bounds error; coordinates outside the grid read as dead
func (g *Game) Alive(row, col int) bool {
	return g.current.Alive(row, col)
}

// Toggle flips the cell at (row, col) in the current generation. Callers are expected to
// edit only while their loop is paused.
func (g *Game) Toggle(row, col int) error {
	if err := g.current.Toggle(row, col); err != nil {
		return errors.Wrap(err, "[Toggle]")
	}
	return nil
}

// Population returns the number of living cells in the current generation
func (g *Game) Population() int {
	return g.current.CountLivingCells()
}

// Snapshot returns a copy of the current generation
func (g *Game) Snapshot() *model.Grid {
	return g.current.Clone()
}
