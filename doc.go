// Package labyrinth generates and solves perfect mazes on a character grid.
//
// A maze of logical size W×H lives on a (2W+1)×(2H+1) canvas: odd
// coordinates are cells, the cells between them are walls or passages.
// Every generator carves a spanning tree, so any two open cells are joined
// by exactly one simple path.
//
// Everything is organized under these subpackages:
//
//	grid/       Cell, Point, Grid, Path and the text glyphs
//	generator/  DFS backtracker, randomized Prim, binary tree
//	solver/     best-first search: Dijkstra and A* (Manhattan)
//	nearest/    BFS relocation of wall endpoints to the closest open cell
//	inspect/    perfect-maze checks and batch statistics
//	mazeio/     text read/write, file lookup, frame and O/X markers
//	config/     MAZE_* environment and .env defaults
//
// Quick example:
//
//	g, _ := generator.Generate(generator.AlgorithmPrim, 8, 5, generator.WithSeed(7))
//	end := grid.Pt(g.Width()-2, g.Height()-2)
//	_ = g.Stamp(grid.Pt(1, 1), end)
//	res, _ := solver.Run(solver.AlgorithmAStar, g, grid.Pt(1, 1), end)
//	fmt.Print(g.WithPath(res.Path))
//
// The maze command (cmd/maze) wraps the same flow:
//
//	maze generate -a prim -w 8 -h 5 -o maze.txt
//	maze solve -f maze.txt -s 1,1 -e 15,9
//	maze stats -n 50
package labyrinth
