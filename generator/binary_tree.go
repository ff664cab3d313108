package generator

import "github.com/katalvlaran/labyrinth/grid"

// BinaryTree generates a w×h maze by visiting odd cells in row-major
// order, carving each and opening the wall to its right or below.
// When both exits are available a coin flip decides: heads goes right,
// tails goes down. The bottom-right cell opens nothing.
//
// The last row and last column always end up as straight corridors.
// Complexity: O(w×h).
func BinaryTree(w, h int, opts ...Option) (*grid.Grid, error) {
	c, err := newCarver(AlgorithmBinaryTree, w, h, opts)
	if err != nil {
		return nil, err
	}
	W, H := c.g.Width(), c.g.Height()

	for y := 1; y < H-1; y += 2 {
		for x := 1; x < W-1; x += 2 {
			c.carve(grid.Pt(x, y))
			right := x < W-3
			down := y < H-3
			switch {
			case right && down:
				if c.rng.Intn(2) == 0 {
					c.carve(grid.Pt(x+1, y))
				} else {
					c.carve(grid.Pt(x, y+1))
				}
			case right:
				c.carve(grid.Pt(x+1, y))
			case down:
				c.carve(grid.Pt(x, y+1))
			}
		}
	}

	return c.g, nil
}
