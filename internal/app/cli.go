package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/solver"
)

// Process exit codes.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitUsage  = 2
	ExitNoPath = 3
)

// ErrUsage marks malformed command lines.
var ErrUsage = errors.New("usage")

const usage = `maze - generate and solve grid mazes

Usage: maze <command> [options]

Commands:
  generate   Carve a perfect maze and print or save it
  solve      Find the shortest path through a maze file
  stats      Compare generators over a batch of mazes
  help       Show this help message

Defaults come from MAZE_* environment variables and an optional .env file.
Run "maze <command> -help" for command options.
`

// Run parses args (without the program name), runs one command and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return ExitUsage
	}
	command, rest := args[0], args[1:]
	if command == "help" || command == "-h" || command == "-help" || command == "--help" {
		fmt.Fprint(stdout, usage)
		return ExitOK
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	logger := newLogger(stderr, cfg.LogLevel)
	log := logger.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": command,
	})
	a := New(log, stdout)

	switch command {
	case "generate":
		err = a.runGenerate(ctx, cfg, rest, stderr)
	case "solve":
		err = a.runSolve(ctx, cfg, rest, stderr)
	case "stats":
		err = a.runStats(ctx, cfg, rest, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n%s", command, usage)
		return ExitUsage
	}

	return report(log, err)
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// report logs err once and maps it to an exit code.
func report(log logrus.FieldLogger, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, solver.ErrNoPath):
		log.WithError(err).Warn("no path exists")
		return ExitNoPath
	case isUsage(err):
		log.WithError(err).Error("invalid arguments")
		return ExitUsage
	default:
		log.WithError(err).Error("command failed")
		return ExitError
	}
}

func isUsage(err error) bool {
	for _, target := range []error{
		ErrUsage,
		grid.ErrInvalidDimensions,
		grid.ErrBadPoint,
		grid.ErrOutOfBounds,
		generator.ErrUnknownAlgorithm,
		solver.ErrUnknownAlgorithm,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (a *App) runGenerate(ctx context.Context, cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	alg := fs.String("a", string(cfg.Generator), "algorithm: "+joinAlgs(generator.Algorithms()))
	w := fs.Int("w", cfg.Width, "logical width in cells")
	h := fs.Int("h", cfg.Height, "logical height in cells")
	coatings := fs.Bool("coatings", cfg.Coatings, "paint random terrain on carved cells")
	seed := fs.Int64("seed", cfg.Seed, "random seed; 0 seeds from the clock")
	out := fs.String("o", "", "output file; empty prints to stdout")
	frame := fs.Bool("frame", false, "surround the maze with an extra wall ring")
	unicode := fs.Bool("unicode", false, "draw walls and open cells as block glyphs")
	if err := parse(fs, args); err != nil {
		return err
	}

	algorithm, err := generator.ParseAlgorithm(*alg)
	if err != nil {
		return err
	}
	_, err = a.Generate(ctx, GenerateRequest{
		Algorithm: algorithm,
		Width:     *w,
		Height:    *h,
		Coatings:  *coatings,
		Seed:      *seed,
		Output:    *out,
		Frame:     *frame,
		Unicode:   *unicode,
	})
	return err
}

func (a *App) runSolve(ctx context.Context, cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	alg := fs.String("a", string(cfg.Solver), "algorithm: "+joinAlgs(solver.Algorithms()))
	file := fs.String("f", "", "maze file (required)")
	var start, end pointFlag
	fs.Var(&start, "s", "start cell as x,y (required)")
	fs.Var(&end, "e", "end cell as x,y (required)")
	out := fs.String("o", "", "output file; empty prints to stdout")
	frame := fs.Bool("frame", false, "maze file has an extra wall ring; the output keeps it")
	classic := fs.Bool("classic", false, "mark start and end as O and X")
	unicode := fs.Bool("unicode", false, "draw walls and open cells as block glyphs")
	if err := parse(fs, args); err != nil {
		return err
	}

	switch {
	case *file == "":
		return fmt.Errorf("%w: solve: -f is required", ErrUsage)
	case !start.set:
		return fmt.Errorf("%w: solve: -s is required", ErrUsage)
	case !end.set:
		return fmt.Errorf("%w: solve: -e is required", ErrUsage)
	}
	algorithm, err := solver.ParseAlgorithm(*alg)
	if err != nil {
		return err
	}

	req := SolveRequest{
		Algorithm: algorithm,
		File:      *file,
		Start:     start.p,
		End:       end.p,
		Output:    *out,
		Frame:     *frame,
		Classic:   *classic,
		Unicode:   *unicode,
	}
	if len(cfg.SearchPath) > 0 {
		req.SearchRoots = cfg.SearchPath
	}
	_, err = a.Solve(ctx, req)
	return err
}

func (a *App) runStats(ctx context.Context, cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	alg := fs.String("a", "", "single algorithm to measure; empty measures all")
	n := fs.Int("n", 20, "mazes per algorithm")
	w := fs.Int("w", cfg.Width, "logical width in cells")
	h := fs.Int("h", cfg.Height, "logical height in cells")
	seed := fs.Int64("seed", cfg.Seed, "base seed; 0 seeds from the clock")
	if err := parse(fs, args); err != nil {
		return err
	}

	req := StatsRequest{
		Solver: cfg.Solver,
		Count:  *n,
		Width:  *w,
		Height: *h,
		Seed:   *seed,
	}
	if *alg != "" {
		algorithm, err := generator.ParseAlgorithm(*alg)
		if err != nil {
			return err
		}
		req.Algorithms = []generator.Algorithm{algorithm}
	}
	_, err := a.Stats(ctx, req)
	return err
}

// parse runs fs and rejects stray positional arguments.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %q", ErrUsage, fs.Name(), fs.Args())
	}
	return nil
}

// pointFlag is a flag.Value holding an "x,y" cell.
type pointFlag struct {
	p   grid.Point
	set bool
}

func (f *pointFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.p.X, f.p.Y)
}

func (f *pointFlag) Set(s string) error {
	p, err := grid.ParsePoint(s)
	if err != nil {
		return err
	}
	f.p, f.set = p, true
	return nil
}

func joinAlgs[T ~string](algs []T) string {
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
