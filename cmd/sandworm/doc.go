// Package sandworm provides the command-line interface for the Sandworm
// scanner. It parses flags, merges them with optional YAML config files,
// runs one scan and renders the report.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/sandworm/sandworm/cmd/sandworm"
//	func main() { sandworm.Execute() }
package sandworm
