// Package detectors implements the line heuristics used by Sandworm. The only
// heuristic today is a run of consecutive spaces/tabs long enough to push a
// payload past the visible margin of a source line.
package detectors
