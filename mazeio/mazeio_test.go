package mazeio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/mazeio"
)

func TestRead_PadsAndMaps(t *testing.T) {
	g, err := mazeio.ReadString("#####\n#  \n#G?W#\n")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	// short row padded with Open
	assert.Equal(t, grid.OpenCell, g.At(grid.Pt(3, 1)))
	assert.Equal(t, grid.OpenCell, g.At(grid.Pt(4, 1)))
	// terrain and unknown glyphs
	assert.Equal(t, grid.Cell{Kind: grid.Open, Terrain: grid.Grass}, g.At(grid.Pt(1, 2)))
	assert.Equal(t, grid.OpenCell, g.At(grid.Pt(2, 2)))
	assert.Equal(t, grid.Cell{Kind: grid.Open, Terrain: grid.Water}, g.At(grid.Pt(3, 2)))
}

func TestRead_TruncatesLongRows(t *testing.T) {
	g, err := mazeio.ReadString("##\n#####\n")
	require.NoError(t, err)
	assert.Equal(t, "##\n##\n", g.String())
}

func TestRead_Errors(t *testing.T) {
	_, err := mazeio.ReadString("")
	assert.ErrorIs(t, err, mazeio.ErrEmptyInput)

	_, err = mazeio.ReadString("\n###\n")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = mazeio.ReadString("###\n###\n", mazeio.WithFrame())
	assert.ErrorIs(t, err, mazeio.ErrTooFewLines)

	_, err = mazeio.ReadString("##\n##\n##\n", mazeio.WithFrame())
	assert.ErrorIs(t, err, mazeio.ErrTooFewLines)
}

func TestWrite_Frame(t *testing.T) {
	g, err := grid.FromStrings("S E", "# #")
	require.NoError(t, err)

	assert.Equal(t, "S E\n# #\n", mazeio.String(g))
	framed := mazeio.String(g, mazeio.WithFrame())
	assert.Equal(t, "#####\n#S E#\n## ##\n#####\n", framed)

	back, err := mazeio.ReadString(framed, mazeio.WithFrame())
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
}

func TestWrite_ClassicMarkers(t *testing.T) {
	g, err := grid.FromStrings("SGN.E#")
	require.NoError(t, err)
	assert.Equal(t, "O  .X#\n", mazeio.String(g, mazeio.WithClassicMarkers()))
}

func TestWrite_Unicode(t *testing.T) {
	g, err := grid.FromStrings("S E", "#G#")
	require.NoError(t, err)

	assert.Equal(t, "S░E\n▓G▓\n", mazeio.String(g, mazeio.WithUnicode()))
	assert.Equal(t, "O░X\n▓░▓\n", mazeio.String(g, mazeio.WithUnicode(), mazeio.WithClassicMarkers()))

	framed := mazeio.String(g, mazeio.WithUnicode(), mazeio.WithFrame())
	assert.Equal(t, "▓▓▓▓▓\n▓S░E▓\n▓▓G▓▓\n▓▓▓▓▓\n", framed)

	back, err := mazeio.ReadString(framed, mazeio.WithFrame())
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
	assert.Equal(t, 1, back.CountTerrain(grid.Grass))
}

// TestRoundTrip writes a coated generated maze and reads it back.
func TestRoundTrip(t *testing.T) {
	g, err := generator.Prim(7, 5, generator.WithSeed(8), generator.WithCoatings(true))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, mazeio.Write(&sb, g))
	back, err := mazeio.ReadString(sb.String())
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
	assert.Equal(t, g.CountTerrain(grid.Water), back.CountTerrain(grid.Water))
}

func TestFindAndLoad(t *testing.T) {
	// found through the "testdata" search root
	path, err := mazeio.Find("corridor.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "corridor.txt"), path)

	// leading separator is dropped for root lookup
	_, err = mazeio.Find("/corridor.txt")
	require.NoError(t, err)

	g, err := mazeio.LoadFile("corridor.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.End))

	ragged, err := mazeio.LoadFile("testdata/ragged.txt")
	require.NoError(t, err)
	assert.Equal(t, "#####\n#    \n#G W#\n", ragged.String())

	_, err = mazeio.Find("missing.txt")
	require.ErrorIs(t, err, mazeio.ErrFileNotFound)
	assert.Contains(t, err.Error(), "testdata")

	_, err = mazeio.LoadFile("corridor.txt", mazeio.WithSearchRoots())
	assert.ErrorIs(t, err, mazeio.ErrFileNotFound)
}

func TestSaveFile_CreatesParents(t *testing.T) {
	g, err := grid.NewBordered(4, 3)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "a", "b", "maze.txt")

	require.NoError(t, mazeio.SaveFile(path, g, mazeio.WithFrame()))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "######\n######\n##  ##\n######\n######\n", string(raw))

	back, err := mazeio.LoadFile(path, mazeio.WithFrame())
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
}
