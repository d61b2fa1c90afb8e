package engine

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/sandworm/sandworm/internal/types"
	"golang.org/x/sync/errgroup"
)

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
	Skipped      SkipStats
}

// SkipStats counts files that contributed nothing (or only a prefix) because
// they could not be read as text.
type SkipStats struct {
	Missing    int
	NotFile    int
	Size       int
	Unreadable int
	Partial    int
}

func (s *SkipStats) add(o Outcome) {
	switch o {
	case SkippedMissing:
		s.Missing++
	case SkippedNotFile:
		s.NotFile++
	case SkippedSize:
		s.Size++
	case SkippedUnreadable:
		s.Unreadable++
	case PartialDecode:
		s.Partial++
	}
}

// Total returns the number of files that were skipped or cut short.
func (s SkipStats) Total() int {
	return s.Missing + s.NotFile + s.Size + s.Unreadable + s.Partial
}

// Scan runs a scan and returns only findings (without stats).
func Scan(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats walks cfg.Root, scans every candidate file and returns the
// merged findings. Duration covers the walk, the scan and the merge.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	started := time.Now()
	paths, err := Targets(ctx, cfg)
	if err != nil {
		return Result{}, err
	}
	if cfg.Discovered != nil {
		cfg.Discovered(len(paths))
	}
	res, err := ScanPaths(ctx, cfg, paths)
	res.Duration = time.Since(started)
	return res, err
}

type fileResult struct {
	findings []types.Finding
	outcome  Outcome
}

// ScanPaths scans the given files on a pool of cfg.Threads workers. Each
// worker fills its own result slot and the slots are concatenated after the
// pool drains, so findings come back in the order of paths and, within a
// file, in line order. A cancelled ctx stops dispatching; files already
// handed to a worker still finish.
func ScanPaths(ctx context.Context, cfg Config, paths []string) (Result, error) {
	var result Result
	if err := cfg.Validate(); err != nil {
		return result, err
	}
	sc, err := newFileScanner(cfg)
	if err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	started := time.Now()

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	slots := make([]fileResult, len(paths))
	var scanned, done atomic.Int64
	var g errgroup.Group
	g.SetLimit(threads)
	dispatched := 0
	for i, p := range paths {
		if ctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			scanned.Add(1)
			fs, outcome := sc.scan(p)
			slots[i] = fileResult{findings: fs, outcome: outcome}
			n := done.Add(1)
			if cfg.Progress != nil {
				cfg.Progress(int(n), len(paths))
			}
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, s := range slots[:dispatched] {
		total += len(s.findings)
	}
	result.Findings = make([]types.Finding, 0, total)
	for _, s := range slots[:dispatched] {
		result.Findings = append(result.Findings, s.findings...)
		result.Skipped.add(s.outcome)
	}
	result.FilesScanned = int(scanned.Load())
	result.Duration = time.Since(started)
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("scan interrupted: %w", err)
	}
	return result, nil
}

// fingerprint identifies a finding by location and run length so repeated
// scans of an unchanged tree produce the same value.
func fingerprint(path string, line, ws int) string {
	sum := xxhash.Sum64String(path + "|" + strconv.Itoa(line) + "|" + strconv.Itoa(ws))
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
