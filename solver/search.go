package solver

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// item is a frontier entry. seq breaks priority ties in insertion order.
type item struct {
	p    grid.Point
	dist int
	prio int
	seq  uint64
}

func itemLess(a, b item) bool {
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	return a.seq < b.seq
}

// runner encapsulates mutable search state.
type runner struct {
	g        *grid.Grid
	goal     grid.Point
	priority Priority
	opts     Options

	dist     map[grid.Point]int
	prev     map[grid.Point]grid.Point
	closed   mapset.Set[grid.Point]
	pq       *heap.Heap[item]
	seq      uint64
	expanded int
}

// Search finds a shortest 4-directional path from start to goal,
// expanding cells in the order given by priority.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must be inside g (grid.ErrOutOfBounds).
//  3. g must not contain PathMark cells (ErrAlreadySolved).
//
// start may be a Wall; the search leaves it through walkable neighbors.
// A Wall goal is never reached unless it equals start.
// The search stops as soon as the goal is popped from the frontier.
//
// Complexity:
//
//   - Time:  O(N log N), N = walkable cells.
//   - Space: O(N) for the distance, predecessor and closed sets;
//     the heap may hold duplicates (lazy decrease-key).
func Search(g *grid.Grid, start, goal grid.Point, priority Priority, opts ...Option) (Result, error) {
	// 1) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := g.CheckBounds(start); err != nil {
		return Result{}, fmt.Errorf("start: %w", err)
	}
	if err := g.CheckBounds(goal); err != nil {
		return Result{}, fmt.Errorf("goal: %w", err)
	}
	if g.HasPathMarks() {
		return Result{}, ErrAlreadySolved
	}
	if priority == nil {
		priority = UniformCost
	}

	// 2) Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3) Trivial case: nothing to search
	if start == goal {
		o.OnExpand(start, 0)
		return Result{Path: grid.Path{start}, Cost: 0, Expanded: 1}, nil
	}

	// 4) Initialize runner and seed the frontier with start
	n := g.CountWalkable()
	r := &runner{
		g:        g,
		goal:     goal,
		priority: priority,
		opts:     o,
		dist:     make(map[grid.Point]int, n),
		prev:     make(map[grid.Point]grid.Point, n),
		closed:   mapset.New[grid.Point](),
		pq:       heap.New[item](itemLess),
	}
	r.dist[start] = 0
	r.push(start, 0)

	// 5) Main loop
	found, err := r.run()
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, fmt.Errorf("%w: from %v to %v", ErrNoPath, start, goal)
	}

	// 6) Rebuild the path from predecessor links
	path, err := Reconstruct(r.prev, start, goal)
	if err != nil {
		return Result{}, err
	}

	return Result{Path: path, Cost: path.Steps(), Expanded: r.expanded}, nil
}

// push adds p at distance d to the frontier.
func (r *runner) push(p grid.Point, d int) {
	r.seq++
	r.pq.Push(item{p: p, dist: d, prio: r.priority(d, p, r.goal), seq: r.seq})
}

// run pops cells until the goal is finalized or the frontier is empty.
func (r *runner) run() (bool, error) {
	for {
		select {
		case <-r.opts.Ctx.Done():
			return false, r.opts.Ctx.Err()
		default:
		}

		it, ok := r.pq.Pop()
		if !ok {
			return false, nil
		}
		// skip stale entries
		if r.closed.Has(it.p) || it.dist > r.dist[it.p] {
			continue
		}
		r.closed.Put(it.p)
		r.expanded++
		r.opts.OnExpand(it.p, it.dist)

		if it.p == r.goal {
			return true, nil
		}
		r.relax(it)
	}
}

// relax offers every unfinished walkable neighbor of it a distance of it.dist+1.
func (r *runner) relax(it item) {
	nd := it.dist + 1
	for _, q := range r.g.Neighbors(it.p) {
		if r.closed.Has(q) {
			continue
		}
		if d, seen := r.dist[q]; seen && d <= nd {
			continue
		}
		r.dist[q] = nd
		r.prev[q] = it.p
		r.push(q, nd)
	}
}
