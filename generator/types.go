// Package generator defines algorithm names, options and sentinel errors
// for maze generation.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownAlgorithm indicates a generator name that ParseAlgorithm does not know.
var ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

// MaxDimension bounds the logical width and height accepted by every generator.
// The canvas of a w×h maze is (2w+1)×(2h+1) cells.
const MaxDimension = 2048

// Algorithm names a maze generation algorithm.
type Algorithm string

const (
	// AlgorithmDFS carves with a randomized depth-first walk (long corridors).
	AlgorithmDFS Algorithm = "dfs"
	// AlgorithmPrim grows the maze from a random frontier (many short dead ends).
	AlgorithmPrim Algorithm = "prim"
	// AlgorithmBinaryTree links every cell right or down (diagonal bias).
	AlgorithmBinaryTree Algorithm = "binary_tree"
)

// Algorithms lists every supported generator in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDFS, AlgorithmPrim, AlgorithmBinaryTree}
}

// ParseAlgorithm resolves a case-insensitive generator name.
// "binary" and "binary-tree" are accepted for AlgorithmBinaryTree.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs":
		return AlgorithmDFS, nil
	case "prim":
		return AlgorithmPrim, nil
	case "binary_tree", "binary-tree", "binary":
		return AlgorithmBinaryTree, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Options configures a generator run.
//
// Coatings – when true every carved cell gets a random Grass, Sand or Water terrain.
// Seed     – non-zero seeds give reproducible mazes; 0 means time-seeded.
// Rand     – explicit source; overrides Seed. Not safe to share across goroutines.
type Options struct {
	Coatings bool
	Seed     int64
	Rand     *rand.Rand
}

// Option represents a functional option for configuring a generator.
type Option func(*Options)

// WithCoatings enables or disables random terrain on carved cells.
func WithCoatings(on bool) Option {
	return func(o *Options) {
		o.Coatings = on
	}
}

// WithSeed fixes the random seed. 0 keeps the time-seeded default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source directly. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// DefaultOptions returns Options with coatings off and a time-seeded source.
func DefaultOptions() Options {
	return Options{
		Coatings: false,
		Seed:     0,
		Rand:     nil,
	}
}
