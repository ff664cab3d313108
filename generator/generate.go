package generator

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Func is the common signature of DFS, Prim and BinaryTree.
type Func func(w, h int, opts ...Option) (*grid.Grid, error)

// Lookup returns the generator function for alg.
func Lookup(alg Algorithm) (Func, error) {
	switch alg {
	case AlgorithmDFS:
		return DFS, nil
	case AlgorithmPrim:
		return Prim, nil
	case AlgorithmBinaryTree:
		return BinaryTree, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// Generate selects and runs the generator named by alg.
//
//	– AlgorithmDFS:        DFS(w, h, opts...)
//	– AlgorithmPrim:       Prim(w, h, opts...)
//	– AlgorithmBinaryTree: BinaryTree(w, h, opts...)
//
// Returns ErrUnknownAlgorithm for any other name and
// grid.ErrInvalidDimensions when w or h is outside 1..MaxDimension.
func Generate(alg Algorithm, w, h int, opts ...Option) (*grid.Grid, error) {
	fn, err := Lookup(alg)
	if err != nil {
		return nil, err
	}
	return fn(w, h, opts...)
}
