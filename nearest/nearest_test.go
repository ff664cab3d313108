package nearest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/nearest"
)

func TestResolve_OpenPointUnchanged(t *testing.T) {
	g, err := grid.FromStrings("# #", "   ")
	require.NoError(t, err)
	got, err := nearest.Resolve(g, grid.Pt(1, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(1, 0), got)
}

// TestResolve_DiscoveryOrder pins the east, west, south, north preference.
func TestResolve_DiscoveryOrder(t *testing.T) {
	g, err := grid.FromStrings(
		"# #",
		" # ",
		"# #",
	)
	require.NoError(t, err)
	// all four neighbors of the center are open: east wins
	got, err := nearest.Resolve(g, grid.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(2, 1), got)

	// corner: east is outside, west (1,2) beats north (2,1)
	got, err = nearest.Resolve(g, grid.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(1, 2), got)
}

// TestResolve_CrossesWalls checks that the walk passes through walls to
// reach the closest open cell.
func TestResolve_CrossesWalls(t *testing.T) {
	g, err := grid.FromStrings(
		"#######",
		"#######",
		"###### ",
	)
	require.NoError(t, err)
	got, err := nearest.Resolve(g, grid.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(6, 2), got)
}

// TestResolve_Minimal verifies the result is at minimal Manhattan
// distance on a generated maze, for every wall cell.
func TestResolve_Minimal(t *testing.T) {
	g, err := generator.Prim(6, 6, generator.WithSeed(2))
	require.NoError(t, err)
	var open []grid.Point
	g.Each(func(p grid.Point, c grid.Cell) {
		if c.Walkable() {
			open = append(open, p)
		}
	})
	g.Each(func(p grid.Point, c grid.Cell) {
		if c.Walkable() {
			return
		}
		got, err := nearest.Resolve(g, p)
		require.NoError(t, err)
		require.False(t, g.IsWall(got))
		best := grid.Manhattan(p, open[0])
		for _, q := range open[1:] {
			if d := grid.Manhattan(p, q); d < best {
				best = d
			}
		}
		assert.Equal(t, best, grid.Manhattan(p, got), "from %v", p)
	})
}

func TestResolve_Errors(t *testing.T) {
	g, err := grid.NewAllWall(3, 3)
	require.NoError(t, err)

	_, err = nearest.Resolve(g, grid.Pt(1, 1))
	assert.ErrorIs(t, err, nearest.ErrNoOpenCells)

	_, err = nearest.Resolve(g, grid.Pt(3, 0))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = nearest.Resolve(nil, grid.Pt(0, 0))
	assert.ErrorIs(t, err, nearest.ErrNilGrid)
}

func TestResolveAll(t *testing.T) {
	g, err := grid.FromStrings(
		"#####",
		"#   #",
		"#####",
	)
	require.NoError(t, err)
	res, err := nearest.ResolveAll(g, grid.Pt(0, 1), grid.Pt(2, 1))
	require.NoError(t, err)
	assert.Equal(t, nearest.Resolution{
		Start:      grid.Pt(1, 1),
		End:        grid.Pt(2, 1),
		StartMoved: true,
		EndMoved:   false,
	}, res)

	_, err = nearest.ResolveAll(g, grid.Pt(1, 1), grid.Pt(9, 9))
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "end:")
}
