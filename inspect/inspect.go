// Package inspect measures the structure of a grid maze: connectivity,
// cycles, dead ends and junctions, and summarizes those measures over
// batches of mazes.
//
// A maze is perfect when its open cells form a single region with no
// cycles. For a 4-connected grid this holds exactly when
//
//	components == 1 and passages == open - 1
//
// where passages counts 4-adjacent pairs of open cells. The cyclomatic
// number passages - open + components counts independent cycles.
package inspect

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for inspection.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("inspect: grid is nil")
	// ErrNoOpenCells indicates a grid with nothing walkable.
	ErrNoOpenCells = errors.New("inspect: no open cells")
	// ErrDisconnected indicates more than one open region.
	ErrDisconnected = errors.New("inspect: open cells are not connected")
	// ErrCycle indicates at least one loop among open cells.
	ErrCycle = errors.New("inspect: open cells contain a cycle")
)

// Report holds structural counts of one grid.
type Report struct {
	Width, Height int
	Open          int // walkable cells
	Passages      int // 4-adjacent walkable pairs
	Components    int // 4-connected walkable regions
	Cycles        int // cyclomatic number
	DeadEnds      int // walkable cells with exactly one walkable neighbor
	Junctions     int // walkable cells with three or more walkable neighbors
}

// Perfect reports whether the open cells form a single tree.
func (r Report) Perfect() bool {
	return r.Open > 0 && r.Components == 1 && r.Cycles == 0
}

// DeadEndRatio returns DeadEnds/Open, or 0 for an empty grid.
func (r Report) DeadEndRatio() float64 {
	if r.Open == 0 {
		return 0
	}
	return float64(r.DeadEnds) / float64(r.Open)
}

// JunctionRatio returns Junctions/Open, or 0 for an empty grid.
func (r Report) JunctionRatio() float64 {
	if r.Open == 0 {
		return 0
	}
	return float64(r.Junctions) / float64(r.Open)
}

// Analyze computes the Report of g.
// Complexity: O(W×H).
func Analyze(g *grid.Grid) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGrid
	}
	r := Report{Width: g.Width(), Height: g.Height()}
	east, south := grid.Pt(1, 0), grid.Pt(0, 1)

	g.Each(func(p grid.Point, c grid.Cell) {
		if !c.Walkable() {
			return
		}
		r.Open++
		// count each pair once, from its west or north end
		if !g.IsWall(p.Add(east)) {
			r.Passages++
		}
		if !g.IsWall(p.Add(south)) {
			r.Passages++
		}
		switch d := g.Degree(p); {
		case d == 1:
			r.DeadEnds++
		case d >= 3:
			r.Junctions++
		}
	})
	r.Components = len(g.Components())
	r.Cycles = r.Passages - r.Open + r.Components

	return r, nil
}

// Verify returns nil when g is a perfect maze, otherwise ErrNoOpenCells,
// ErrDisconnected or ErrCycle wrapped with the offending counts.
func Verify(g *grid.Grid) error {
	r, err := Analyze(g)
	if err != nil {
		return err
	}
	switch {
	case r.Open == 0:
		return ErrNoOpenCells
	case r.Components != 1:
		return fmt.Errorf("%w: %d regions", ErrDisconnected, r.Components)
	case r.Cycles != 0:
		return fmt.Errorf("%w: %d independent cycles", ErrCycle, r.Cycles)
	}

	return nil
}
