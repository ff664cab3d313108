// Package config loads CLI defaults from the environment and optional
// .env files. Command-line flags override every value loaded here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/solver"
)

// ErrInvalidValue indicates an environment variable that cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment keys.
const (
	KeyGenerator  = "MAZE_GENERATOR"
	KeySolver     = "MAZE_SOLVER"
	KeyWidth      = "MAZE_WIDTH"
	KeyHeight     = "MAZE_HEIGHT"
	KeyCoatings   = "MAZE_COATINGS"
	KeySeed       = "MAZE_SEED"
	KeyLogLevel   = "MAZE_LOG_LEVEL"
	KeySearchPath = "MAZE_SEARCH_PATH"
)

// DefaultEnvFile is loaded when Load is called without files.
const DefaultEnvFile = ".env"

// Config holds the CLI defaults.
type Config struct {
	Generator  generator.Algorithm // maze algorithm for generate
	Solver     solver.Algorithm    // path algorithm for solve
	Width      int                 // logical maze width
	Height     int                 // logical maze height
	Coatings   bool                // random terrain on carved cells
	Seed       int64               // 0 means time-seeded
	LogLevel   logrus.Level        // minimum level written to stderr
	SearchPath []string            // extra roots for maze file lookup; empty keeps mazeio defaults
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generator: generator.AlgorithmDFS,
		Solver:    solver.AlgorithmAStar,
		Width:     10,
		Height:    10,
		Coatings:  false,
		Seed:      0,
		LogLevel:  logrus.InfoLevel,
	}
}

// Load reads the given .env files (DefaultEnvFile when none are given),
// skipping files that do not exist, then overlays the environment on
// Default. Variables already set in the process environment win over
// .env values. Malformed values return ErrInvalidValue naming the key.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv overlays the process environment on Default.
func FromEnv() (Config, error) {
	c := Default()
	var err error

	if v, ok := lookup(KeyGenerator); ok {
		if c.Generator, err = generator.ParseAlgorithm(v); err != nil {
			return Config{}, invalid(KeyGenerator, v, err)
		}
	}
	if v, ok := lookup(KeySolver); ok {
		if c.Solver, err = solver.ParseAlgorithm(v); err != nil {
			return Config{}, invalid(KeySolver, v, err)
		}
	}
	if c.Width, err = intEnv(KeyWidth, c.Width); err != nil {
		return Config{}, err
	}
	if c.Height, err = intEnv(KeyHeight, c.Height); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(KeyCoatings); ok {
		if c.Coatings, err = strconv.ParseBool(v); err != nil {
			return Config{}, invalid(KeyCoatings, v, err)
		}
	}
	if v, ok := lookup(KeySeed); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, invalid(KeySeed, v, err)
		}
	}
	if v, ok := lookup(KeyLogLevel); ok {
		if c.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, invalid(KeyLogLevel, v, err)
		}
	}
	if v, ok := lookup(KeySearchPath); ok {
		for _, root := range filepath.SplitList(v) {
			if root = strings.TrimSpace(root); root != "" {
				c.SearchPath = append(c.SearchPath, root)
			}
		}
	}

	return c, nil
}

// lookup returns a trimmed, non-empty environment value.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func intEnv(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(key, v, err)
	}
	return n, nil
}

func invalid(key, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, value, err)
}
