// Package grid is the shared data model of labyrinth: a rectangular,
// row-major field of cells that generators carve, solvers search and
// mazeio reads and writes.
//
// What:
//
//   - Kind classifies a cell for traversal: Wall, Open, Start, End, PathMark.
//   - Terrain (Plain, Grass, Sand, Water) is cosmetic and never affects walkability.
//   - Point is a comparable (X, Y) pair, X = column, Y = row.
//   - Path is an ordered start→end sequence of Points.
//   - Grid offers bounds checks, 4-neighborhood lookup, path overlay and
//     open-region discovery (Components).
//
// Neighborhood:
//
//	Neighbors and Directions share one fixed order: east, west, south, north.
//	Every traversal in the module (solver, nearest) iterates in this order,
//	so results are deterministic for a given grid.
//
// Character mapping (used by mazeio):
//
//	'#' Wall   'S' Start   'E' End   '.' PathMark   ' ' Open
//	'G' Grass  'N' Sand    'W' Water
//
//	ParseCell maps any other rune to an Open Plain cell; 'O' and 'X'
//	are accepted as Start and End.
//
// Complexity:
//
//   - At, Set, InBounds, IsWall: O(1).
//   - Neighbors: O(1), at most 4 results.
//   - Clone, WithPath, Count: O(W×H).
//   - Components: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrEmptyGrid: FromRows got no rows or no columns.
//   - ErrNonRectangular: FromRows rows of differing lengths.
//   - ErrOutOfBounds: a Point outside the grid (wrapped with coordinates and size).
//   - ErrInvalidPath: a Path that is empty, crosses a Wall or skips a step.
//   - ErrBadPoint: ParsePoint could not read "x,y".
package grid
