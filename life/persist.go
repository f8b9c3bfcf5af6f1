package life

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Encode writes the current generation in the grid text format
func (g *Game) Encode(w io.Writer) error {
	return errors.Wrap(model.Encode(w, g.current), "[Encode]")
}

// Save writes the current generation to path, one line of '0'/'1' per row
func (g *Game) Save(path string) error {
	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		return errors.Wrapf(err, "[Save] failed to encode grid for file: %+v", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "[Save] failed to write file: %+v", path)
	}
	return nil
}

// Read builds a new game from the grid text format. Dimensions come from the input, the
// previous generation starts dead and the counter starts at 1.
func Read(r io.Reader, opts ...Option) (*Game, error) {
	current, err := model.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "[Read]")
	}
	return newGame(current, newSettings(opts))
}

// Load builds a new game from a grid file written by Save
func Load(path string, opts ...Option) (*Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open file: %+v", path)
	}
	defer f.Close()

	game, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to read file: %+v", path)
	}
	return game, nil
}
