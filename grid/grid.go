package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular field of cells stored row-major.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	width, height int
	cells         []Cell
}

// New builds a w×h grid with every cell set to fill.
// Returns ErrInvalidDimensions if w < 1 or h < 1.
// Complexity: O(W×H).
func New(w, h int, fill Cell) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// NewAllWall builds a w×h grid of Wall cells.
func NewAllWall(w, h int) (*Grid, error) {
	return New(w, h, WallCell)
}

// NewBordered builds a w×h grid whose outer ring is Wall and whose
// interior is Open.
func NewBordered(w, h int) (*Grid, error) {
	g, err := New(w, h, OpenCell)
	if err != nil {
		return nil, err
	}
	for x := 0; x < w; x++ {
		g.cells[g.index(x, 0)] = WallCell
		g.cells[g.index(x, h-1)] = WallCell
	}
	for y := 0; y < h; y++ {
		g.cells[g.index(0, y)] = WallCell
		g.cells[g.index(w-1, y)] = WallCell
	}

	return g, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice, rows[y][x].
// The input is copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g := &Grid{width: w, height: h, cells: make([]Cell, 0, w*h)}
	for _, row := range rows {
		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// CheckBounds returns ErrOutOfBounds, wrapped with p and the grid size,
// when p lies outside the grid.
func (g *Grid) CheckBounds(p Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return nil
}

// At returns the cell at p. Points outside the grid read as Wall.
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return WallCell
	}
	return g.cells[g.index(p.X, p.Y)]
}

// Set stores c at p.
func (g *Grid) Set(p Point, c Cell) error {
	if err := g.CheckBounds(p); err != nil {
		return err
	}
	g.cells[g.index(p.X, p.Y)] = c

	return nil
}

// SetKind changes the kind at p and keeps its terrain.
func (g *Grid) SetKind(p Point, k Kind) error {
	if err := g.CheckBounds(p); err != nil {
		return err
	}
	g.cells[g.index(p.X, p.Y)].Kind = k

	return nil
}

// IsWall reports whether p is a Wall. Points outside the grid are walls.
func (g *Grid) IsWall(p Point) bool {
	return !g.At(p).Walkable()
}

// Neighbors returns the in-bounds, non-Wall 4-neighbors of p in the
// order east, west, south, north.
// Complexity: O(1).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Directions))
	for _, d := range Directions {
		q := p.Add(d)
		if g.InBounds(q) && g.cells[g.index(q.X, q.Y)].Walkable() {
			out = append(out, q)
		}
	}

	return out
}

// Degree returns the number of walkable 4-neighbors of p.
func (g *Grid) Degree(p Point) int {
	n := 0
	for _, d := range Directions {
		if !g.IsWall(p.Add(d)) {
			n++
		}
	}
	return n
}

// Count returns how many cells have kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.cells {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// CountWalkable returns how many cells are not Wall.
func (g *Grid) CountWalkable() int {
	return len(g.cells) - g.Count(Wall)
}

// CountTerrain returns how many cells carry terrain t.
func (g *Grid) CountTerrain(t Terrain) int {
	n := 0
	for _, c := range g.cells {
		if c.Terrain == t {
			n++
		}
	}
	return n
}

// HasPathMarks reports whether any cell is a PathMark.
func (g *Grid) HasPathMarks() bool {
	for _, c := range g.cells {
		if c.Kind == PathMark {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Stamp marks start as Start and end as End, keeping their terrain.
// Both points are checked before either is written.
func (g *Grid) Stamp(start, end Point) error {
	if err := g.CheckBounds(start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	if err := g.CheckBounds(end); err != nil {
		return fmt.Errorf("end: %w", err)
	}
	g.cells[g.index(start.X, start.Y)].Kind = Start
	g.cells[g.index(end.X, end.Y)].Kind = End

	return nil
}

// WithPath returns a copy of g with every path cell marked PathMark,
// except cells already marked Start or End. Points outside the grid
// are skipped.
func (g *Grid) WithPath(path Path) *Grid {
	out := g.Clone()
	for _, p := range path {
		if !out.InBounds(p) {
			continue
		}
		c := &out.cells[out.index(p.X, p.Y)]
		if c.Kind == Start || c.Kind == End {
			continue
		}
		c.Kind = PathMark
	}

	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Point, c Cell)) {
	for i, c := range g.cells {
		fn(g.Coordinate(i), c)
	}
}

// Line renders row y with the character mapping.
func (g *Grid) Line(y int) string {
	var sb strings.Builder
	sb.Grow(g.width)
	for x := 0; x < g.width; x++ {
		sb.WriteRune(g.cells[g.index(x, y)].Rune())
	}
	return sb.String()
}

// String renders the grid one line per row, each terminated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		sb.WriteString(g.Line(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}
