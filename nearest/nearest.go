// Package nearest relocates a point that sits on a Wall to the closest
// walkable cell, measured in 4-directional steps.
//
// The search is a breadth-first walk from the point itself that may cross
// walls. Neighbors are examined east, west, south, north and a cell is
// accepted the moment it is discovered, so among equally near cells the
// first one discovered wins.
package nearest

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrNoOpenCells is returned when the grid has no walkable cell at all.
var ErrNoOpenCells = errors.New("nearest: no open cells")

// ErrNilGrid is returned if a nil grid pointer is passed.
var ErrNilGrid = errors.New("nearest: grid is nil")

// walker encapsulates mutable BFS state.
type walker struct {
	g       *grid.Grid
	queue   *queue.Queue[grid.Point]
	visited mapset.Set[grid.Point]
}

// Resolve returns p itself when p is walkable, otherwise the nearest
// walkable cell. Returns grid.ErrOutOfBounds for a point outside g and
// ErrNoOpenCells when nothing in g is walkable.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited set.
func Resolve(g *grid.Grid, p grid.Point) (grid.Point, error) {
	if g == nil {
		return grid.Point{}, ErrNilGrid
	}
	if err := g.CheckBounds(p); err != nil {
		return grid.Point{}, err
	}
	if !g.IsWall(p) {
		return p, nil
	}

	w := &walker{
		g:       g,
		queue:   queue.New[grid.Point](),
		visited: mapset.New[grid.Point](),
	}
	w.enqueue(p)
	if q, ok := w.loop(); ok {
		return q, nil
	}

	return grid.Point{}, fmt.Errorf("%w: searched from %v in %dx%d grid", ErrNoOpenCells, p, g.Width(), g.Height())
}

// enqueue marks p visited and adds it to the queue.
func (w *walker) enqueue(p grid.Point) {
	w.visited.Put(p)
	w.queue.Enqueue(p)
}

// loop expands the queue until a walkable cell is discovered.
func (w *walker) loop() (grid.Point, bool) {
	for !w.queue.Empty() {
		cur := w.queue.Dequeue()
		for _, d := range grid.Directions {
			q := cur.Add(d)
			if !w.g.InBounds(q) || w.visited.Has(q) {
				continue
			}
			if !w.g.IsWall(q) {
				return q, true
			}
			w.enqueue(q)
		}
	}
	return grid.Point{}, false
}

// Resolution reports the outcome of ResolveAll.
type Resolution struct {
	Start, End           grid.Point
	StartMoved, EndMoved bool
}

// ResolveAll resolves a start/end pair. Failures name the endpoint.
func ResolveAll(g *grid.Grid, start, end grid.Point) (Resolution, error) {
	s, err := Resolve(g, start)
	if err != nil {
		return Resolution{}, fmt.Errorf("start: %w", err)
	}
	e, err := Resolve(g, end)
	if err != nil {
		return Resolution{}, fmt.Errorf("end: %w", err)
	}

	return Resolution{Start: s, End: e, StartMoved: s != start, EndMoved: e != end}, nil
}
