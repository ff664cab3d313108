package mazeio

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Write renders g one character per cell, one line per row, each line
// terminated by '\n'.
func Write(w io.Writer, g *grid.Grid, opts ...Option) error {
	o := buildOptions(opts)
	bw := bufio.NewWriter(w)

	wall := glyph(grid.WallCell, o)
	border := strings.Repeat(string(wall), g.Width()+2) + "\n"
	if o.Frame {
		if _, err := bw.WriteString(border); err != nil {
			return err
		}
	}
	for y := 0; y < g.Height(); y++ {
		if o.Frame {
			_, _ = bw.WriteRune(wall)
		}
		for x := 0; x < g.Width(); x++ {
			_, _ = bw.WriteRune(glyph(g.At(grid.Pt(x, y)), o))
		}
		if o.Frame {
			_, _ = bw.WriteRune(wall)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if o.Frame {
		if _, err := bw.WriteString(border); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String renders g with Write into a string.
func String(g *grid.Grid, opts ...Option) string {
	var sb strings.Builder
	_ = Write(&sb, g, opts...)
	return sb.String()
}

// Block glyphs used by WithUnicode.
const (
	unicodeWall = '▓'
	unicodeOpen = '░'
)

// glyph maps a cell to its output character.
func glyph(c grid.Cell, o Options) rune {
	r := c.Rune()
	if o.Classic {
		r = classic(c)
	}
	if o.Unicode {
		switch r {
		case '#':
			return unicodeWall
		case ' ':
			return unicodeOpen
		}
	}
	return r
}

func classic(c grid.Cell) rune {
	switch c.Kind {
	case grid.Wall:
		return '#'
	case grid.Start:
		return 'O'
	case grid.End:
		return 'X'
	case grid.PathMark:
		return '.'
	default:
		return ' '
	}
}
