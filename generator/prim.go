package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// frontier is a random-access list of wall cells adjacent to the maze,
// with a membership set so a cell is listed at most once.
type frontier struct {
	items []grid.Point
	in    mapset.Set[grid.Point]
}

func newFrontier() *frontier {
	return &frontier{in: mapset.New[grid.Point]()}
}

// add lists p unless it is already present.
func (f *frontier) add(p grid.Point) {
	if f.in.Has(p) {
		return
	}
	f.in.Put(p)
	f.items = append(f.items, p)
}

// take removes and returns the element at index i (swap-remove).
func (f *frontier) take(i int) grid.Point {
	p := f.items[i]
	last := len(f.items) - 1
	f.items[i] = f.items[last]
	f.items = f.items[:last]
	f.in.Remove(p)

	return p
}

func (f *frontier) size() int { return len(f.items) }

// Prim generates a w×h maze with randomized Prim's algorithm.
//
// Steps:
//  1. Carve a random odd cell; its uncarved two-step neighbors form the frontier.
//  2. Remove a uniformly random frontier cell, link it through the wall
//     to a uniformly chosen carved two-step neighbor.
//  3. Add the removed cell's uncarved two-step neighbors. Repeat until
//     the frontier is empty.
//
// Every frontier cell is linked exactly once, so the result is a perfect maze.
// Complexity: O(w×h) time and memory.
func Prim(w, h int, opts ...Option) (*grid.Grid, error) {
	c, err := newCarver(AlgorithmPrim, w, h, opts)
	if err != nil {
		return nil, err
	}

	start := randomCell(c.rng, c.g)
	c.carve(start)
	f := newFrontier()
	for _, p := range c.uncarved(start) {
		f.add(p)
	}

	for f.size() > 0 {
		cur := f.take(c.rng.Intn(f.size()))
		if links := c.carved(cur); len(links) > 0 {
			c.link(pickPoint(c.rng, links), cur)
		}
		for _, p := range c.uncarved(cur) {
			f.add(p)
		}
	}

	return c.g, nil
}
