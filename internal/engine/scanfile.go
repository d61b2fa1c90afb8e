package engine

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"github.com/sandworm/sandworm/internal/detectors"
	"github.com/sandworm/sandworm/internal/types"
)

// Outcome classifies how a single file scan ended. Every skip variant looks
// the same to callers of ScanFile: no findings and no error.
type Outcome int

const (
	Scanned           Outcome = iota
	SkippedMissing            // metadata lookup failed
	SkippedNotFile            // not a regular file
	SkippedSize               // empty or larger than MaxBytes
	SkippedUnreadable         // open or read failed
	PartialDecode             // stopped at the first line that is not valid UTF-8
)

func (o Outcome) String() string {
	switch o {
	case Scanned:
		return "scanned"
	case SkippedMissing:
		return "missing"
	case SkippedNotFile:
		return "not_file"
	case SkippedSize:
		return "size"
	case SkippedUnreadable:
		return "unreadable"
	case PartialDecode:
		return "partial_decode"
	default:
		return "unknown"
	}
}

type fileScanner struct {
	matcher  detectors.WhitespaceRun
	maxBytes int64
}

func newFileScanner(cfg Config) (fileScanner, error) {
	m, err := detectors.NewWhitespaceRun(cfg.MinWhitespace)
	if err != nil {
		return fileScanner{}, err
	}
	return fileScanner{matcher: m, maxBytes: cfg.MaxBytes}, nil
}

// ScanFile scans one file and returns its findings in line order. Files that
// cannot or should not be read yield nil findings; only an invalid cfg is an
// error. cfg.Root is not consulted.
func ScanFile(path string, cfg Config) ([]types.Finding, error) {
	if cfg.Root == "" {
		cfg.Root = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sc, err := newFileScanner(cfg)
	if err != nil {
		return nil, err
	}
	findings, _ := sc.scan(path)
	return findings, nil
}

func (s fileScanner) scan(path string) ([]types.Finding, Outcome) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, SkippedMissing
	}
	if !info.Mode().IsRegular() {
		return nil, SkippedNotFile
	}
	if info.Size() == 0 || info.Size() > s.maxBytes {
		return nil, SkippedSize
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, SkippedUnreadable
	}
	defer f.Close()
	return s.scanReader(path, f)
}

func (s fileScanner) scanReader(path string, r io.Reader) ([]types.Finding, Outcome) {
	var out []types.Finding
	br := bufio.NewReaderSize(r, 64*1024)
	line := 0
	for {
		raw, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return out, SkippedUnreadable
		}
		if len(raw) == 0 && err != nil {
			return out, Scanned
		}
		line++
		raw = bytes.TrimSuffix(raw, []byte("\n"))
		raw = bytes.TrimSuffix(raw, []byte("\r"))
		if !utf8.Valid(raw) {
			return out, PartialDecode
		}
		text := string(raw)
		if m, ok := s.matcher.Find(text); ok {
			out = append(out, types.Finding{
				Path:        path,
				Line:        line,
				Column:      m.Start + 1,
				Whitespace:  m.Len(),
				Preview:     detectors.Preview(text),
				Fingerprint: fingerprint(path, line, m.Len()),
			})
		}
		if err != nil {
			return out, Scanned
		}
	}
}
