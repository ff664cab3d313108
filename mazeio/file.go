package mazeio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Find resolves name to an existing file. It tries name as given, then
// name (with any leading separator dropped) under each search root.
// Returns ErrFileNotFound listing the roots that were searched.
func Find(name string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	if exists(name) {
		return name, nil
	}
	rel := strings.TrimLeft(name, `/\`)
	for _, root := range o.SearchRoots {
		candidate := filepath.Join(root, rel)
		if exists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q (searched %v)", ErrFileNotFound, name, o.SearchRoots)
}

func exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// LoadFile finds name with Find and reads it with Read.
func LoadFile(name string, opts ...Option) (*grid.Grid, error) {
	path, err := Find(name, opts...)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazeio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// SaveFile writes g to path with Write, creating missing parent directories.
func SaveFile(path string, g *grid.Grid, opts ...Option) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mazeio: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mazeio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("mazeio: close %s: %w", path, cerr)
		}
	}()

	return Write(f, g, opts...)
}
