package solver

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Reconstruct walks predecessor links from goal back to start and
// returns the path in start→goal order.
// prev[v] == u means the best path to v arrives from u.
// Returns ErrNoPath if the chain breaks before start is reached.
func Reconstruct(prev map[grid.Point]grid.Point, start, goal grid.Point) (grid.Path, error) {
	if start == goal {
		return grid.Path{start}, nil
	}
	if _, ok := prev[goal]; !ok {
		return nil, fmt.Errorf("%w: %v has no predecessor", ErrNoPath, goal)
	}

	// build reversed path; a chain longer than prev means a loop
	path := grid.Path{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev) {
			return nil, fmt.Errorf("%w: chain from %v breaks at %v", ErrNoPath, goal, cur)
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
