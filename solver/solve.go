package solver

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Dijkstra finds a shortest path with uniform-cost ordering.
// Failures are prefixed with the algorithm name.
func Dijkstra(g *grid.Grid, start, goal grid.Point, opts ...Option) (Result, error) {
	res, err := Search(g, start, goal, UniformCost, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", AlgorithmDijkstra, err)
	}
	return res, nil
}

// AStar finds a shortest path ordered by distance plus Manhattan heuristic.
// It returns a path of the same length as Dijkstra and usually expands fewer cells.
func AStar(g *grid.Grid, start, goal grid.Point, opts ...Option) (Result, error) {
	res, err := Search(g, start, goal, ManhattanCost, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", AlgorithmAStar, err)
	}
	return res, nil
}

// Run selects and runs the solver named by alg.
//
//	– AlgorithmDijkstra: Dijkstra(g, start, goal, opts...)
//	– AlgorithmAStar:    AStar(g, start, goal, opts...)
func Run(alg Algorithm, g *grid.Grid, start, goal grid.Point, opts ...Option) (Result, error) {
	switch alg {
	case AlgorithmDijkstra:
		return Dijkstra(g, start, goal, opts...)
	case AlgorithmAStar:
		return AStar(g, start, goal, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// Solve returns only the path found by Run.
func Solve(alg Algorithm, g *grid.Grid, start, end grid.Point) (grid.Path, error) {
	res, err := Run(alg, g, start, end)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}
