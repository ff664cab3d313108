package generator

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// rngFor returns the random source for one generator run.
// Policy: explicit Rand wins; otherwise a non-zero Seed is used verbatim;
// otherwise the source is seeded from the clock.
//
// Complexity: O(1).
func rngFor(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	s := o.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

// randomOdd returns a uniformly random odd coordinate in [1, bound-2]
// for a canvas extent bound = 2n+1. Extents of 3 or less yield 1.
func randomOdd(rng *rand.Rand, bound int) int {
	n := (bound - 1) / 2
	if n <= 1 {
		return 1
	}
	return rng.Intn(n)*2 + 1
}

// randomCell returns a random odd cell of the canvas g.
func randomCell(rng *rand.Rand, g *grid.Grid) grid.Point {
	return grid.Pt(randomOdd(rng, g.Width()), randomOdd(rng, g.Height()))
}

// pickPoint returns a uniformly chosen element of pts. pts must be non-empty.
func pickPoint(rng *rand.Rand, pts []grid.Point) grid.Point {
	return pts[rng.Intn(len(pts))]
}
