package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
)

func TestReconstruct(t *testing.T) {
	prev := map[grid.Point]grid.Point{
		grid.Pt(2, 0): grid.Pt(1, 0),
		grid.Pt(1, 0): grid.Pt(0, 0),
		grid.Pt(2, 1): grid.Pt(2, 0),
	}
	got, err := Reconstruct(prev, grid.Pt(0, 0), grid.Pt(2, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Path{grid.Pt(0, 0), grid.Pt(1, 0), grid.Pt(2, 0), grid.Pt(2, 1)}, got)

	got, err = Reconstruct(nil, grid.Pt(4, 4), grid.Pt(4, 4))
	require.NoError(t, err)
	assert.Equal(t, grid.Path{grid.Pt(4, 4)}, got)
}

func TestReconstruct_Broken(t *testing.T) {
	_, err := Reconstruct(map[grid.Point]grid.Point{}, grid.Pt(0, 0), grid.Pt(1, 0))
	assert.ErrorIs(t, err, ErrNoPath)

	// chain that never reaches start
	_, err = Reconstruct(map[grid.Point]grid.Point{grid.Pt(2, 0): grid.Pt(1, 0)}, grid.Pt(0, 0), grid.Pt(2, 0))
	assert.ErrorIs(t, err, ErrNoPath)

	// loop
	loop := map[grid.Point]grid.Point{grid.Pt(1, 0): grid.Pt(2, 0), grid.Pt(2, 0): grid.Pt(1, 0)}
	_, err = Reconstruct(loop, grid.Pt(0, 0), grid.Pt(1, 0))
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestItemLess_TieBreaksBySequence(t *testing.T) {
	a := item{prio: 3, seq: 2}
	b := item{prio: 3, seq: 5}
	c := item{prio: 1, seq: 9}
	assert.True(t, itemLess(a, b))
	assert.False(t, itemLess(b, a))
	assert.True(t, itemLess(c, a))
}
