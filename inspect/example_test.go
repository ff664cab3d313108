package inspect_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/inspect"
)

// ExampleAnalyze reports a plus-shaped room: one junction, four dead ends.
func ExampleAnalyze() {
	g, _ := grid.FromStrings(
		"## ##",
		"     ",
		"## ##",
	)
	r, _ := inspect.Analyze(g)
	fmt.Printf("open=%d passages=%d junctions=%d dead ends=%d perfect=%v\n",
		r.Open, r.Passages, r.Junctions, r.DeadEnds, r.Perfect())

	// Output:
	// open=7 passages=6 junctions=1 dead ends=4 perfect=true
}
