// Package generator builds random perfect mazes on a doubled grid.
//
// What:
//
//   - DFS: iterative randomized depth-first carving. Long, winding corridors.
//   - Prim: randomized Prim frontier growth. Short branches, many dead ends.
//   - BinaryTree: each cell links right or down. Fast, strong diagonal bias.
//   - Generate: dispatch by Algorithm name.
//
// Layout:
//
//	A logical w×h maze is drawn on a (2w+1)×(2h+1) canvas. Cells with odd
//	coordinates are rooms; the cells between them are walls that may be
//	opened. The outer ring is always Wall. Every generator starts from an
//	all-wall canvas and yields a perfect maze: the open cells are connected
//	and there is exactly one simple path between any two of them.
//
// Options:
//
//   - WithCoatings(true): carved cells get a random Grass, Sand or Water terrain.
//   - WithSeed(s): reproducible output for s != 0; 0 means time-seeded.
//   - WithRand(r): explicit *rand.Rand; overrides WithSeed.
//
// Complexity:
//
//   - DFS, Prim, BinaryTree: O(w×h) time and memory.
//
// Errors:
//
//   - grid.ErrInvalidDimensions: w or h outside 1..MaxDimension. Nothing is generated.
//   - ErrUnknownAlgorithm: Generate, Lookup or ParseAlgorithm got an unknown name.
package generator
