// Package mazeio reads and writes grids as flat character text, one row
// per line, using the character mapping of package grid:
//
//	'#' Wall  'S' Start  'E' End  '.' PathMark  ' ' Open
//	'G' Grass 'N' Sand   'W' Water
//
// Reading is lenient: unknown characters become Open, short lines are
// padded with Open and 'O'/'X' are accepted as Start/End.
//
// Files are located with Find, which tries the path itself and then each
// search root (".", "testdata", "tests" by default). SaveFile creates
// missing parent directories.
//
// Rendering options:
//
//   - WithFrame: surround the grid with a '#' border (and strip it on read).
//   - WithClassicMarkers: draw Start/End as 'O'/'X' and hide terrain.
package mazeio
