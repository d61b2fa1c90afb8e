package detectors

import (
	"errors"
	"fmt"
)

// ID is the detector identifier reported in SARIF output.
const ID = "whitespace_run"

// DefaultMinWhitespace is the run length flagged when nothing else is configured.
const DefaultMinWhitespace = 50

var errMinWhitespace = errors.New("minimum whitespace run must be at least 1")

// Match is the byte span of a whitespace run within a line.
type Match struct {
	Start int
	End   int
}

// Len returns the number of whitespace characters in the run. Space and tab
// are single-byte in UTF-8, so the byte span equals the character count.
func (m Match) Len() int { return m.End - m.Start }

// WhitespaceRun finds runs of at least Min consecutive space/tab characters.
// The zero value is not usable; construct with NewWhitespaceRun.
type WhitespaceRun struct {
	min int
}

// NewWhitespaceRun returns a matcher for runs of min or more spaces/tabs.
func NewWhitespaceRun(min int) (WhitespaceRun, error) {
	if min < 1 {
		return WhitespaceRun{}, fmt.Errorf("%w (got %d)", errMinWhitespace, min)
	}
	return WhitespaceRun{min: min}, nil
}

// Min returns the configured threshold.
func (w WhitespaceRun) Min() int { return w.min }

// Find returns the first maximal run in line whose length reaches the
// threshold. A line with several qualifying runs reports only the earliest.
func (w WhitespaceRun) Find(line string) (Match, bool) {
	if w.min < 1 || len(line) < w.min {
		return Match{}, false
	}
	start := -1
	for i := 0; i < len(line); i++ {
		if isBlank(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if i-start >= w.min {
				return Match{Start: start, End: i}, true
			}
			start = -1
		}
	}
	if start >= 0 && len(line)-start >= w.min {
		return Match{Start: start, End: len(line)}, true
	}
	return Match{}, false
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }
