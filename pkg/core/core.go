package core

import (
	"context"

	"github.com/sandworm/sandworm/internal/engine"
	"github.com/sandworm/sandworm/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding
type Result = engine.Result

// ErrInvalidConfig is wrapped by every config validation failure.
var ErrInvalidConfig = engine.ErrInvalidConfig

// DefaultConfig returns the built-in defaults (threshold 50, 10 MB size cap)
// for scanning root.
func DefaultConfig(root string) Config { return engine.DefaultConfig(root) }

// Scan is the stable entrypoint for other programs.
func Scan(ctx context.Context, cfg Config) ([]Finding, error) {
	return engine.Scan(ctx, cfg)
}

// ScanWithStats is like Scan but also returns counts and timing.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	return engine.ScanWithStats(ctx, cfg)
}

// ScanFile scans a single file. Files that cannot be read as text yield nil;
// an invalid cfg is reported as an error wrapping ErrInvalidConfig.
func ScanFile(path string, cfg Config) ([]Finding, error) {
	return engine.ScanFile(path, cfg)
}
