package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/inspect"
	"github.com/katalvlaran/labyrinth/solver"
)

// StatsRequest describes a batch of generated mazes to measure.
type StatsRequest struct {
	Algorithms    []generator.Algorithm // nil measures every algorithm
	Solver        solver.Algorithm
	Count         int
	Width, Height int
	Seed          int64 // nonzero seeds maze i with Seed+i
}

// AlgorithmStats aggregates one algorithm's batch.
type AlgorithmStats struct {
	Algorithm generator.Algorithm
	Summary   inspect.Summary
	PathLen   inspect.Stat // corner-to-corner path length in cells
}

// Stats generates Count mazes per algorithm, verifies each one is perfect,
// solves corner to corner and prints a table of the aggregates.
func (a *App) Stats(ctx context.Context, req StatsRequest) ([]AlgorithmStats, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrUsage, req.Count)
	}
	algs := req.Algorithms
	if algs == nil {
		algs = generator.Algorithms()
	}

	out := make([]AlgorithmStats, 0, len(algs))
	for _, alg := range algs {
		st, err := a.measure(ctx, alg, req)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\tmazes\tperfect\tdead ends\tjunctions\tpath len\tpath sd")
	for _, st := range out {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%.3f\t%.1f\t%.1f\n",
			st.Algorithm, st.Summary.Mazes, st.Summary.Perfect,
			st.Summary.DeadEnds.Mean, st.Summary.Junctions.Mean,
			st.PathLen.Mean, st.PathLen.StdDev)
	}
	return out, tw.Flush()
}

func (a *App) measure(ctx context.Context, alg generator.Algorithm, req StatsRequest) (AlgorithmStats, error) {
	gen, err := generator.Lookup(alg)
	if err != nil {
		return AlgorithmStats{}, err
	}
	log := a.log.WithFields(logrus.Fields{"algorithm": alg, "count": req.Count})

	reports := make([]inspect.Report, 0, req.Count)
	lengths := make([]float64, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		if err := ctx.Err(); err != nil {
			return AlgorithmStats{}, err
		}
		var opts []generator.Option
		if req.Seed != 0 {
			opts = append(opts, generator.WithSeed(req.Seed+int64(i)))
		}
		g, err := gen(req.Width, req.Height, opts...)
		if err != nil {
			return AlgorithmStats{}, err
		}

		rep, err := inspect.Analyze(g)
		if err != nil {
			return AlgorithmStats{}, err
		}
		if !rep.Perfect() {
			log.WithFields(logrus.Fields{"maze": i, "components": rep.Components, "cycles": rep.Cycles}).
				Warn("maze is not perfect")
		}
		reports = append(reports, rep)

		goal := grid.Pt(g.Width()-2, g.Height()-2)
		res, err := solver.Run(req.Solver, g, grid.Pt(1, 1), goal, solver.WithContext(ctx))
		switch {
		case errors.Is(err, solver.ErrNoPath):
			log.WithField("maze", i).Warn("no path exists between corners")
		case err != nil:
			return AlgorithmStats{}, err
		default:
			lengths = append(lengths, float64(res.Path.Len()))
		}
	}

	st := AlgorithmStats{
		Algorithm: alg,
		Summary:   inspect.Summarize(reports),
		PathLen:   inspect.Describe(lengths),
	}
	log.WithFields(logrus.Fields{
		"perfect":   st.Summary.Perfect,
		"dead_ends": st.Summary.DeadEnds.Mean,
		"path_len":  st.PathLen.Mean,
	}).Debug("batch measured")
	return st, nil
}
