package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
)

// oracle builds an independent gonum view of the open cells of g:
// one node per walkable cell, one edge per 4-adjacent walkable pair.
func oracle(g *grid.Grid) (ug *simple.UndirectedGraph, nodes, edges int) {
	ug = simple.NewUndirectedGraph()
	id := func(p grid.Point) int64 { return int64(p.Y*g.Width() + p.X) }
	g.Each(func(p grid.Point, c grid.Cell) {
		if c.Walkable() {
			ug.AddNode(simple.Node(id(p)))
			nodes++
		}
	})
	g.Each(func(p grid.Point, c grid.Cell) {
		if !c.Walkable() {
			return
		}
		for _, q := range []grid.Point{p.Add(grid.Pt(1, 0)), p.Add(grid.Pt(0, 1))} {
			if g.InBounds(q) && !g.IsWall(q) {
				ug.SetEdge(ug.NewEdge(simple.Node(id(p)), simple.Node(id(q))))
				edges++
			}
		}
	})
	return ug, nodes, edges
}

// requirePerfect asserts connectivity and passages == open cells - 1.
func requirePerfect(t *testing.T, g *grid.Grid) {
	t.Helper()
	ug, nodes, edges := oracle(g)
	require.Positive(t, nodes)
	require.Len(t, topo.ConnectedComponents(ug), 1, "open cells must be connected")
	require.Equal(t, nodes-1, edges, "a perfect maze has no cycles")
}

// requireBorder asserts the outer ring is all Wall.
func requireBorder(t *testing.T, g *grid.Grid) {
	t.Helper()
	W, H := g.Width(), g.Height()
	for x := 0; x < W; x++ {
		require.True(t, g.IsWall(grid.Pt(x, 0)), "top (%d,0)", x)
		require.True(t, g.IsWall(grid.Pt(x, H-1)), "bottom (%d,%d)", x, H-1)
	}
	for y := 0; y < H; y++ {
		require.True(t, g.IsWall(grid.Pt(0, y)), "left (0,%d)", y)
		require.True(t, g.IsWall(grid.Pt(W-1, y)), "right (%d,%d)", W-1, y)
	}
}

// TestGenerators_Invariants runs every algorithm over a spread of sizes
// and seeds and checks dimension fidelity, border and perfect-maze invariants.
func TestGenerators_Invariants(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {6, 1}, {2, 2}, {5, 5}, {10, 10}, {17, 9}}
	for _, alg := range generator.Algorithms() {
		for _, sz := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				g, err := generator.Generate(alg, sz[0], sz[1], generator.WithSeed(seed))
				require.NoError(t, err, "%s %v seed=%d", alg, sz, seed)
				require.Equal(t, 2*sz[0]+1, g.Width())
				require.Equal(t, 2*sz[1]+1, g.Height())
				requireBorder(t, g)
				requirePerfect(t, g)
				// every room of the logical grid is carved
				for y := 1; y < g.Height(); y += 2 {
					for x := 1; x < g.Width(); x += 2 {
						require.False(t, g.IsWall(grid.Pt(x, y)), "%s room (%d,%d)", alg, x, y)
					}
				}
			}
		}
	}
}

func TestGenerators_OneByOne(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		g, err := generator.Generate(alg, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, "###\n# #\n###\n", g.String(), string(alg))
	}
}

func TestGenerators_InvalidDimensions(t *testing.T) {
	bad := [][2]int{{0, 5}, {5, 0}, {-1, -1}, {generator.MaxDimension + 1, 1}}
	for _, alg := range generator.Algorithms() {
		for _, sz := range bad {
			g, err := generator.Generate(alg, sz[0], sz[1])
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrInvalidDimensions, "%s %v", alg, sz)
			if err != nil {
				assert.Contains(t, err.Error(), string(alg))
			}
		}
	}
}

func TestGenerators_SeedIsReproducible(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		a, err := generator.Generate(alg, 12, 8, generator.WithSeed(99), generator.WithCoatings(true))
		require.NoError(t, err)
		b, err := generator.Generate(alg, 12, 8, generator.WithSeed(99), generator.WithCoatings(true))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String(), string(alg))
	}
}

func TestGenerators_WithRandOverridesSeed(t *testing.T) {
	a, err := generator.DFS(8, 8, generator.WithSeed(1), generator.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	b, err := generator.DFS(8, 8, generator.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, b.String(), a.String())
}

func TestGenerators_Coatings(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		plain, err := generator.Generate(alg, 15, 15, generator.WithSeed(3))
		require.NoError(t, err)
		cells := plain.Width() * plain.Height()
		assert.Equal(t, cells, plain.CountTerrain(grid.Plain), "%s: coatings off must emit no terrain", alg)

		coated, err := generator.Generate(alg, 15, 15, generator.WithSeed(3), generator.WithCoatings(true))
		require.NoError(t, err)
		// walls stay plain; every open cell is coated
		assert.Equal(t, coated.Count(grid.Wall), coated.CountTerrain(grid.Plain), string(alg))
		for _, tr := range grid.Coatings {
			assert.Positive(t, coated.CountTerrain(tr), "%s: %s never picked", alg, tr)
		}
		requirePerfect(t, coated)
	}
}

// TestBinaryTree_Corridors checks the structural bias: the last row and
// the last column of rooms are fully linked.
func TestBinaryTree_Corridors(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := generator.BinaryTree(9, 6, generator.WithSeed(seed))
		require.NoError(t, err)
		W, H := g.Width(), g.Height()
		for x := 1; x < W-1; x++ {
			require.False(t, g.IsWall(grid.Pt(x, H-2)), "bottom corridor x=%d", x)
		}
		for y := 1; y < H-1; y++ {
			require.False(t, g.IsWall(grid.Pt(W-2, y)), "right corridor y=%d", y)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]generator.Algorithm{
		"dfs":         generator.AlgorithmDFS,
		"DFS":         generator.AlgorithmDFS,
		"prim":        generator.AlgorithmPrim,
		" Prim ":      generator.AlgorithmPrim,
		"binary_tree": generator.AlgorithmBinaryTree,
		"binary-tree": generator.AlgorithmBinaryTree,
		"binary":      generator.AlgorithmBinaryTree,
	}
	for in, want := range cases {
		got, err := generator.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := generator.ParseAlgorithm("kruskal")
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	_, err = generator.Generate("kruskal", 3, 3)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}
