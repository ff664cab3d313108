package inspect

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stat describes a sample: mean, unbiased standard deviation and range.
// StdDev is 0 for fewer than two values.
type Stat struct {
	N        int
	Mean     float64
	StdDev   float64
	Min, Max float64
}

// Describe computes the Stat of xs. An empty sample yields the zero Stat.
func Describe(xs []float64) Stat {
	if len(xs) == 0 {
		return Stat{}
	}
	s := Stat{N: len(xs), Min: floats.Min(xs), Max: floats.Max(xs)}
	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)

	return s
}

// Summary aggregates Reports of a batch of mazes.
type Summary struct {
	Mazes     int
	Perfect   int
	DeadEnds  Stat // per-maze DeadEndRatio
	Junctions Stat // per-maze JunctionRatio
}

// Summarize aggregates reports. Used to compare the structural bias of
// generators: Prim yields more dead ends than DFS, BinaryTree more junctions.
func Summarize(reports []Report) Summary {
	s := Summary{Mazes: len(reports)}
	dead := make([]float64, 0, len(reports))
	junc := make([]float64, 0, len(reports))
	for _, r := range reports {
		if r.Perfect() {
			s.Perfect++
		}
		dead = append(dead, r.DeadEndRatio())
		junc = append(junc, r.JunctionRatio())
	}
	s.DeadEnds = Describe(dead)
	s.Junctions = Describe(junc)

	return s
}
