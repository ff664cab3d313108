package mazeio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Read parses one grid row per line using grid.ParseCell.
// The width is the rune count of the first line; shorter lines are
// padded with Open cells and longer lines are truncated. A trailing
// '\r' is dropped from every line.
//
// Returns ErrEmptyInput when r has no lines, grid.ErrEmptyGrid when the
// first line is blank and ErrTooFewLines when WithFrame is set and the
// input is smaller than 3×3.
func Read(r io.Reader, opts ...Option) (*grid.Grid, error) {
	o := buildOptions(opts)

	var lines [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		lines = append(lines, []rune(strings.TrimSuffix(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazeio: read: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	w := len(lines[0])
	rows := make([][]grid.Cell, len(lines))
	for y, line := range lines {
		row := make([]grid.Cell, w)
		for x := range row {
			if x < len(line) {
				row[x] = grid.ParseCell(line[x])
			} else {
				row[x] = grid.OpenCell
			}
		}
		rows[y] = row
	}

	if o.Frame {
		if len(rows) < 3 || w < 3 {
			return nil, fmt.Errorf("%w: got %dx%d", ErrTooFewLines, w, len(rows))
		}
		rows = rows[1 : len(rows)-1]
		for y := range rows {
			rows[y] = rows[y][1 : w-1]
		}
	}

	return grid.FromRows(rows)
}

// ReadString is Read over a string.
func ReadString(s string, opts ...Option) (*grid.Grid, error) {
	return Read(strings.NewReader(s), opts...)
}
