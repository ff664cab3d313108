// Package app implements the generate, solve and stats workflows behind
// the maze command. Library packages stay silent; this package logs.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/mazeio"
	"github.com/katalvlaran/labyrinth/nearest"
	"github.com/katalvlaran/labyrinth/solver"
)

// App runs workflows, writing mazes to out and logging to log.
type App struct {
	log logrus.FieldLogger
	out io.Writer
}

// New returns an App. A nil log discards all entries.
func New(log logrus.FieldLogger, out io.Writer) *App {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &App{log: log, out: out}
}

// GenerateRequest describes one generate run.
type GenerateRequest struct {
	Algorithm     generator.Algorithm
	Width, Height int
	Coatings      bool
	Seed          int64
	Output        string // file path; empty writes to the App output
	Frame         bool
	Unicode       bool
}

// Generate builds a maze and writes it out.
func (a *App) Generate(ctx context.Context, req GenerateRequest) (*grid.Grid, error) {
	log := a.log.WithFields(logrus.Fields{
		"algorithm": req.Algorithm,
		"width":     req.Width,
		"height":    req.Height,
		"coatings":  req.Coatings,
		"seed":      req.Seed,
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	began := time.Now()
	g, err := generator.Generate(req.Algorithm, req.Width, req.Height,
		generator.WithCoatings(req.Coatings),
		generator.WithSeed(req.Seed),
	)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"canvas":  fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		"open":    g.CountWalkable(),
		"elapsed": time.Since(began),
	}).Info("maze generated")

	if err := a.emit(log, g, req.Output, mazeOptions(req.Frame, false, req.Unicode)); err != nil {
		return nil, err
	}
	return g, nil
}

// SolveRequest describes one solve run.
type SolveRequest struct {
	Algorithm   solver.Algorithm
	File        string
	Start, End  grid.Point
	Output      string // file path; empty writes to the App output
	Frame       bool   // input has a '#' ring to strip; output gets one
	Classic     bool
	Unicode     bool
	SearchRoots []string // nil keeps mazeio.DefaultSearchRoots
}

// Solve loads a maze, moves wall endpoints to the nearest open cell,
// stamps Start and End, searches and writes the maze with the path overlay.
func (a *App) Solve(ctx context.Context, req SolveRequest) (solver.Result, error) {
	log := a.log.WithFields(logrus.Fields{
		"algorithm": req.Algorithm,
		"file":      req.File,
	})

	var lookup []mazeio.Option
	if req.SearchRoots != nil {
		lookup = append(lookup, mazeio.WithSearchRoots(req.SearchRoots...))
	}
	path, err := mazeio.Find(req.File, lookup...)
	if err != nil {
		return solver.Result{}, err
	}
	g, err := mazeio.LoadFile(path, mazeOptions(req.Frame, false, false)...)
	if err != nil {
		return solver.Result{}, err
	}
	log = log.WithField("file", path)
	log.WithField("size", fmt.Sprintf("%dx%d", g.Width(), g.Height())).Debug("maze loaded")

	ends, err := nearest.ResolveAll(g, req.Start, req.End)
	if err != nil {
		return solver.Result{}, err
	}
	if ends.StartMoved {
		log.WithFields(logrus.Fields{"from": req.Start, "to": ends.Start}).Info("start is on a wall, relocated")
	}
	if ends.EndMoved {
		log.WithFields(logrus.Fields{"from": req.End, "to": ends.End}).Info("end is on a wall, relocated")
	}

	if err := g.Stamp(ends.Start, ends.End); err != nil {
		return solver.Result{}, err
	}
	res, err := solver.Run(req.Algorithm, g, ends.Start, ends.End, solver.WithContext(ctx))
	if err != nil {
		return solver.Result{}, err
	}
	log.WithFields(logrus.Fields{
		"start":    ends.Start,
		"end":      ends.End,
		"length":   res.Path.Len(),
		"expanded": res.Expanded,
	}).Info("path found")

	if err := a.emit(log, g.WithPath(res.Path), req.Output, mazeOptions(req.Frame, req.Classic, req.Unicode)); err != nil {
		return solver.Result{}, err
	}
	return res, nil
}

// emit saves g to path, or writes it to the App output when path is empty.
func (a *App) emit(log logrus.FieldLogger, g *grid.Grid, path string, opts []mazeio.Option) error {
	if path == "" {
		return mazeio.Write(a.out, g, opts...)
	}
	if err := mazeio.SaveFile(path, g, opts...); err != nil {
		return err
	}
	log.WithField("output", path).Info("maze saved")
	return nil
}

func mazeOptions(frame, classic, unicode bool) []mazeio.Option {
	var opts []mazeio.Option
	if frame {
		opts = append(opts, mazeio.WithFrame())
	}
	if classic {
		opts = append(opts, mazeio.WithClassicMarkers())
	}
	if unicode {
		opts = append(opts, mazeio.WithUnicode())
	}
	return opts
}
