package solver_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/solver"
)

// ExampleSolve finds the route around a U-shaped corridor and overlays it.
func ExampleSolve() {
	g, _ := grid.FromStrings(
		"#####",
		"#   #",
		"# # #",
		"# # #",
		"#####",
	)
	start, end := grid.Pt(1, 3), grid.Pt(3, 3)

	path, err := solver.Solve(solver.AlgorithmAStar, g, start, end)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.Stamp(start, end)
	fmt.Println("steps:", path.Steps())
	fmt.Print(g.WithPath(path))

	// Output:
	// steps: 6
	// #####
	// #...#
	// #.#.#
	// #S#E#
	// #####
}

// ExampleSearch plugs a custom priority into the shared search.
// Any strategy that never overestimates the remaining distance keeps
// results optimal.
func ExampleSearch() {
	g, _ := grid.NewBordered(7, 3)
	res, _ := solver.Search(g, grid.Pt(1, 1), grid.Pt(5, 1), func(dist int, p, goal grid.Point) int {
		return dist + abs(goal.X-p.X)
	})
	fmt.Println(res.Path, res.Cost)

	// Output:
	// [(1,1) (2,1) (3,1) (4,1) (5,1)] 4
}

// ExampleAStar_noPath shows how an unreachable goal is reported.
func ExampleAStar_noPath() {
	g, _ := grid.FromStrings("#S#E#")
	_, err := solver.AStar(g, grid.Pt(1, 0), grid.Pt(3, 0))
	fmt.Println(errors.Is(err, solver.ErrNoPath))
	fmt.Println(err)

	// Output:
	// true
	// astar: solver: no path exists: from (1,0) to (3,0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
