package grid

import "fmt"

// Path is an ordered sequence of points from start to end, both inclusive.
type Path []Point

// Len returns the number of points, start and end included.
func (p Path) Len() int { return len(p) }

// Steps returns the number of moves, Len()-1, or 0 for an empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// First returns the start point. ok is false for an empty path.
func (p Path) First() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0], true
}

// Last returns the end point. ok is false for an empty path.
func (p Path) Last() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// Validate checks that p is non-empty, stays on walkable cells of g
// and moves exactly one orthogonal step at a time.
// Every failure wraps ErrInvalidPath.
func (p Path) Validate(g *Grid) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i, pt := range p {
		if !g.InBounds(pt) {
			return fmt.Errorf("%w: step %d %v out of bounds", ErrInvalidPath, i, pt)
		}
		if g.IsWall(pt) {
			return fmt.Errorf("%w: step %d %v is a wall", ErrInvalidPath, i, pt)
		}
		if i > 0 && Manhattan(p[i-1], pt) != 1 {
			return fmt.Errorf("%w: step %d %v -> %v is not adjacent", ErrInvalidPath, i, p[i-1], pt)
		}
	}

	return nil
}
