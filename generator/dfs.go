package generator

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/labyrinth/grid"
)

// DFS generates a w×h maze with an iterative randomized depth-first walk.
//
// Steps:
//  1. Carve a random odd cell and push it.
//  2. Peek the top; if it has uncarved two-step neighbors, pick one at
//     random, carve it and the wall between, and push it.
//  3. Otherwise pop. Stop when the stack is empty.
//
// The result is a perfect maze on a (2w+1)×(2h+1) canvas.
// Complexity: O(w×h) time and memory.
func DFS(w, h int, opts ...Option) (*grid.Grid, error) {
	c, err := newCarver(AlgorithmDFS, w, h, opts)
	if err != nil {
		return nil, err
	}

	start := randomCell(c.rng, c.g)
	c.carve(start)
	st := stack.New[grid.Point]()
	st.Push(start)

	for st.Size() > 0 {
		cur := st.Peek()
		next := c.uncarved(cur)
		if len(next) == 0 {
			st.Pop()
			continue
		}
		to := pickPoint(c.rng, next)
		c.link(cur, to)
		st.Push(to)
	}

	return c.g, nil
}
