package nearest_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/nearest"
)

// ExampleResolve moves a point off a wall.
func ExampleResolve() {
	g, _ := grid.FromStrings(
		"#####",
		"#   #",
		"#####",
	)
	p, err := nearest.Resolve(g, grid.Pt(2, 0))
	fmt.Println(p, err)

	// Output:
	// (2,1) <nil>
}
