package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Rune returns the display character for c. Kind wins over terrain,
// so a coated PathMark still renders as '.'.
func (c Cell) Rune() rune {
	switch c.Kind {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	case PathMark:
		return '.'
	}
	switch c.Terrain {
	case Grass:
		return 'G'
	case Sand:
		return 'N'
	case Water:
		return 'W'
	default:
		return ' '
	}
}

// ParseCell maps a display character to a cell. Block glyphs '▓' and
// '░' read as Wall and Open. Unrecognized characters become an Open
// Plain cell.
func ParseCell(r rune) Cell {
	switch r {
	case '#', '▓':
		return WallCell
	case 'S', 'O':
		return StartCell
	case 'E', 'X':
		return EndCell
	case '.':
		return Cell{Kind: PathMark}
	case 'G':
		return Cell{Kind: Open, Terrain: Grass}
	case 'N':
		return Cell{Kind: Open, Terrain: Sand}
	case 'W':
		return Cell{Kind: Open, Terrain: Water}
	default:
		return OpenCell
	}
}

// FromStrings builds a Grid from text rows using ParseCell.
// Rows must have equal rune counts.
func FromStrings(lines ...string) (*Grid, error) {
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			row = append(row, ParseCell(r))
		}
		rows[y] = row
	}

	return FromRows(rows)
}

// ParsePoint reads "x,y" (spaces around either number allowed).
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q, want x,y", ErrBadPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: x: %v", ErrBadPoint, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: y: %v", ErrBadPoint, s, err)
	}

	return Point{X: x, Y: y}, nil
}
