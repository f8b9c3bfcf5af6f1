package model

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellAlive = '1'
	cellDead  = '0'

	maxLineBytes = 16 << 20
)

// Encode writes g as text, one newline-terminated line of '0'/'1' per row
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, g.cols+1)
	line[g.cols] = '\n'

	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col] {
				line[col] = cellAlive
			} else {
				line[col] = cellDead
			}
		}
		if _, err := bw.Write(line); err != nil {
			return errors.Wrapf(err, "[Encode] failed to write row %d", row)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Encode] failed to flush")
	}
	return nil
}

// Decode parses the text form written by Encode. The first line fixes the column count and
// every following line must match it. Blank lines are tolerated only at the end of input.
func Decode(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		cells      [][]bool
		cols       int
		lineNo     int
		firstBlank int // line number of the first pending blank line, 0 if none
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" {
			if firstBlank == 0 {
				firstBlank = lineNo
			}
			continue
		}
		if firstBlank != 0 {
			return nil, errors.Wrapf(ErrFormat, "[Decode] line %d is empty", firstBlank)
		}

		if cells == nil {
			cols = len(line)
		} else if len(line) != cols {
			return nil, errors.Wrapf(ErrFormat, "[Decode] line %d has %d cells, want %d", lineNo, len(line), cols)
		}

		row := make([]bool, cols)
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case cellAlive:
				row[col] = true
			case cellDead:
			default:
				return nil, errors.Wrapf(ErrFormat, "[Decode] line %d column %d: invalid character %q", lineNo, col+1, line[col])
			}
		}
		cells = append(cells, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to read grid")
	}
	if len(cells) == 0 {
		return nil, errors.Wrap(ErrFormat, "[Decode] empty input")
	}

	return &Grid{
		rows:  len(cells),
		cols:  cols,
		cells: cells,
	}, nil
}
