// Package grid defines cell kinds, terrain, coordinates and sentinel errors
// for the grid data model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a width or height below 1.
	ErrInvalidDimensions = errors.New("grid: width and height must be at least 1")
	// ErrEmptyGrid indicates input rows are missing or zero-length.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrInvalidPath indicates a path that cannot be walked on the grid.
	ErrInvalidPath = errors.New("grid: invalid path")
	// ErrBadPoint indicates a coordinate string that is not "x,y".
	ErrBadPoint = errors.New("grid: malformed point")
)

// Kind classifies a cell for traversal. The zero value is Wall.
type Kind uint8

const (
	// Wall blocks movement.
	Wall Kind = iota
	// Open is a plain passage.
	Open
	// Start marks the path origin. Walkable.
	Start
	// End marks the path destination. Walkable.
	End
	// PathMark marks a cell of a rendered solution. Walkable.
	PathMark
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Start:
		return "start"
	case End:
		return "end"
	case PathMark:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Terrain is a cosmetic coating of a walkable cell.
type Terrain uint8

const (
	// Plain is the absence of a coating.
	Plain Terrain = iota
	// Grass coating.
	Grass
	// Sand coating.
	Sand
	// Water coating.
	Water
)

// Coatings lists the terrains a generator may pick when coatings are enabled.
var Coatings = [...]Terrain{Grass, Sand, Water}

// String returns the lowercase terrain name.
func (t Terrain) String() string {
	switch t {
	case Plain:
		return "plain"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

// Cell is a single grid position: its traversal kind and its terrain.
type Cell struct {
	Kind    Kind
	Terrain Terrain
}

// Walkable reports whether the cell can be entered.
func (c Cell) Walkable() bool { return c.Kind != Wall }

// Convenience cells.
var (
	WallCell  = Cell{Kind: Wall}
	OpenCell  = Cell{Kind: Open}
	StartCell = Cell{Kind: Start}
	EndCell   = Cell{Kind: End}
)

// Point is a grid coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Directions holds the unit moves in neighbor order: east, west, south, north.
var Directions = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
