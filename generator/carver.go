package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// steps holds the two-cell moves in candidate order: south, north, east, west.
var steps = [4]grid.Point{grid.Pt(0, 2), grid.Pt(0, -2), grid.Pt(2, 0), grid.Pt(-2, 0)}

// carver encapsulates mutable generation state shared by all algorithms.
type carver struct {
	g        *grid.Grid
	rng      *rand.Rand
	coatings bool
}

// newCarver validates the logical size and prepares an all-wall
// (2w+1)×(2h+1) canvas.
func newCarver(alg Algorithm, w, h int, opts []Option) (*carver, error) {
	if w < 1 || h < 1 || w > MaxDimension || h > MaxDimension {
		return nil, fmt.Errorf("%w: %s %dx%d (allowed 1..%d)", grid.ErrInvalidDimensions, alg, w, h, MaxDimension)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := grid.NewAllWall(2*w+1, 2*h+1)
	if err != nil {
		return nil, err
	}

	return &carver{g: g, rng: rngFor(o), coatings: o.Coatings}, nil
}

// surface returns the cell laid on every carve: Plain when coatings are
// off, otherwise a uniformly chosen coating.
func (c *carver) surface() grid.Cell {
	if !c.coatings {
		return grid.OpenCell
	}
	return grid.Cell{Kind: grid.Open, Terrain: grid.Coatings[c.rng.Intn(len(grid.Coatings))]}
}

// carve opens p with a fresh surface.
func (c *carver) carve(p grid.Point) {
	_ = c.g.Set(p, c.surface())
}

// link opens the midpoint between a and b, then b.
func (c *carver) link(a, b grid.Point) {
	c.carve(grid.Pt((a.X+b.X)/2, (a.Y+b.Y)/2))
	c.carve(b)
}

// interior reports whether p lies strictly inside the border ring.
func (c *carver) interior(p grid.Point) bool {
	return p.X > 0 && p.X < c.g.Width()-1 && p.Y > 0 && p.Y < c.g.Height()-1
}

// uncarved returns the interior two-step neighbors of p that are still Wall.
func (c *carver) uncarved(p grid.Point) []grid.Point {
	out := make([]grid.Point, 0, len(steps))
	for _, d := range steps {
		q := p.Add(d)
		if c.interior(q) && c.g.IsWall(q) {
			out = append(out, q)
		}
	}
	return out
}

// carved returns the interior two-step neighbors of p that are open.
func (c *carver) carved(p grid.Point) []grid.Point {
	out := make([]grid.Point, 0, len(steps))
	for _, d := range steps {
		q := p.Add(d)
		if c.interior(q) && !c.g.IsWall(q) {
			out = append(out, q)
		}
	}
	return out
}
