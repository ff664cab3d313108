// Package solver computes shortest paths between two cells of a grid.
//
// Dijkstra and AStar share one best-first search (Search) that differs
// only in the Priority strategy used to order the frontier:
//
//	UniformCost:   dist
//	ManhattanCost: dist + |dx| + |dy|
//
// Every move costs 1 and terrain is ignored, so both strategies return
// paths of equal, minimal length. A* usually expands fewer cells.
//
// Complexity:
//
//   - Time:  O(N log N), N = walkable cells.
//   - Space: O(N) plus heap duplicates under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Frontier ties are broken by insertion order, so results are deterministic.
//   - Neighbors are explored east, west, south, north.
//   - The search stops when the goal is popped, not when it is first reached.
//   - A grid that already carries PathMark cells is rejected (ErrAlreadySolved);
//     solve the unmarked grid and overlay the result with grid.WithPath.
//
// Errors:
//
//   - ErrNilGrid: nil grid.
//   - grid.ErrOutOfBounds: start or goal outside the grid.
//   - ErrAlreadySolved: the grid contains PathMark cells.
//   - ErrNoPath: the goal is unreachable (wrapped with algorithm and coordinates).
//   - ErrUnknownAlgorithm: Run, Solve or ParseAlgorithm got an unknown name.
package solver
