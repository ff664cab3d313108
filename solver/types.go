// Package solver defines algorithm names, priority strategies, options
// and sentinel errors for shortest-path search on a grid.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrAlreadySolved indicates that the grid already carries PathMark cells.
	ErrAlreadySolved = errors.New("solver: grid already contains a path")

	// ErrNoPath indicates that the goal is unreachable from the start.
	ErrNoPath = errors.New("solver: no path exists")

	// ErrUnknownAlgorithm indicates a solver name that ParseAlgorithm does not know.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
)

// Algorithm names a shortest-path algorithm.
type Algorithm string

const (
	// AlgorithmDijkstra expands cells in order of distance from the start.
	AlgorithmDijkstra Algorithm = "dijkstra"
	// AlgorithmAStar adds the Manhattan distance to the goal as a heuristic.
	AlgorithmAStar Algorithm = "astar"
)

// Algorithms lists every supported solver in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDijkstra, AlgorithmAStar}
}

// ParseAlgorithm resolves a case-insensitive solver name.
// "a*" and "a-star" are accepted for AlgorithmAStar.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return AlgorithmDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Priority ranks a frontier cell: dist is the number of steps from the
// start to p. Lower values are expanded first.
type Priority func(dist int, p, goal grid.Point) int

// UniformCost orders by distance alone (Dijkstra).
func UniformCost(dist int, _, _ grid.Point) int {
	return dist
}

// ManhattanCost orders by distance plus |dx|+|dy| to the goal (A*).
// The heuristic never overestimates on a 4-connected unit grid.
func ManhattanCost(dist int, p, goal grid.Point) int {
	return dist + grid.Manhattan(p, goal)
}

// Options configures a search.
//
// Ctx      – cancellation; checked once per expansion.
// OnExpand – called for every cell whose distance is finalized, in expansion order.
type Options struct {
	Ctx      context.Context
	OnExpand func(p grid.Point, dist int)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback for finalized cells.
func WithOnExpand(fn func(p grid.Point, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(grid.Point, int) {},
	}
}

// Result is the outcome of a successful search.
//
//	Path     – start..goal inclusive.
//	Cost     – number of steps, len(Path)-1.
//	Expanded – number of cells finalized before the goal was reached.
type Result struct {
	Path     grid.Path
	Cost     int
	Expanded int
}
