// Package engine contains the core scanning logic for Sandworm. It walks the
// target tree, scans each candidate file for long whitespace runs on a bounded
// worker pool, and returns the merged findings with scan statistics. This
// package is internal; external consumers should use the stable facade in
// pkg/core.
package engine
