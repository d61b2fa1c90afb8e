package engine

import (
	"errors"
	"fmt"

	"github.com/sandworm/sandworm/internal/detectors"
)

// DefaultMaxBytes is the largest file scanned when nothing else is configured.
const DefaultMaxBytes int64 = 10_000_000

// ErrInvalidConfig is returned (wrapped) when a Config cannot drive a scan.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls scanning behavior. It is resolved once at startup and not
// modified while a scan runs.
type Config struct {
	Root          string
	MinWhitespace int
	MaxBytes      int64
	Verbose       bool
	Threads       int    // 0 = GOMAXPROCS
	IncludeGlobs  string // comma-separated; empty scans every file

	// Discovered is called once with the number of candidate files after the
	// walk finishes and before any file is opened.
	Discovered func(total int)
	// Progress is called after each file is scanned with the number of files
	// finished so far. It may be called from several goroutines at once.
	Progress func(done, total int)
}

// DefaultConfig returns the built-in defaults for root.
func DefaultConfig(root string) Config {
	return Config{
		Root:          root,
		MinWhitespace: detectors.DefaultMinWhitespace,
		MaxBytes:      DefaultMaxBytes,
	}
}

// Validate reports whether cfg can drive a scan.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: empty root path", ErrInvalidConfig)
	}
	if c.MinWhitespace < 1 {
		return fmt.Errorf("%w: min whitespace must be >= 1, got %d", ErrInvalidConfig, c.MinWhitespace)
	}
	if c.MaxBytes < 1 {
		return fmt.Errorf("%w: max size must be >= 1 (0 would skip every file), got %d", ErrInvalidConfig, c.MaxBytes)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads must be >= 0, got %d", ErrInvalidConfig, c.Threads)
	}
	if g, ok := validGlobs(parseGlobsList(c.IncludeGlobs)); !ok {
		return fmt.Errorf("%w: bad include glob %q", ErrInvalidConfig, g)
	}
	return nil
}
