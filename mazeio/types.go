// Package mazeio defines options and sentinel errors for reading and
// writing grids as flat character text.
package mazeio

import "errors"

// Sentinel errors for maze I/O.
var (
	// ErrEmptyInput indicates input without a single line.
	ErrEmptyInput = errors.New("mazeio: input is empty")
	// ErrTooFewLines indicates framed input too small to hold a border.
	ErrTooFewLines = errors.New("mazeio: framed input needs at least 3 rows and 3 columns")
	// ErrFileNotFound indicates that no search root holds the requested file.
	ErrFileNotFound = errors.New("mazeio: file not found")
)

// DefaultSearchRoots lists the directories Find tries after the path itself.
var DefaultSearchRoots = []string{".", "testdata", "tests"}

// Options configures reading, writing and file lookup.
//
// Frame       – on write, wrap the grid in a '#' border; on read, strip one.
// Classic     – on write, draw Start as 'O', End as 'X' and hide terrain.
// Unicode     – on write, draw walls as '▓' and plain open cells as '░'.
// SearchRoots – directories Find tries, in order, after the path itself.
type Options struct {
	Frame       bool
	Classic     bool
	Unicode     bool
	SearchRoots []string
}

// Option represents a functional option for configuring I/O.
type Option func(*Options)

// WithFrame enables the one-cell '#' border.
func WithFrame() Option {
	return func(o *Options) {
		o.Frame = true
	}
}

// WithClassicMarkers renders Start as 'O', End as 'X' and every
// non-wall, non-path cell as ' '.
func WithClassicMarkers() Option {
	return func(o *Options) {
		o.Classic = true
	}
}

// WithUnicode renders walls as '▓' and plain open cells as '░'.
// Read maps both back.
func WithUnicode() Option {
	return func(o *Options) {
		o.Unicode = true
	}
}

// WithSearchRoots replaces DefaultSearchRoots. An empty list disables
// the fallback lookup.
func WithSearchRoots(roots ...string) Option {
	return func(o *Options) {
		o.SearchRoots = roots
	}
}

// DefaultOptions returns Options with no frame, the standard character
// mapping and DefaultSearchRoots.
func DefaultOptions() Options {
	return Options{
		Frame:       false,
		Classic:     false,
		Unicode:     false,
		SearchRoots: DefaultSearchRoots,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
