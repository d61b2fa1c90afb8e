// Package core provides a small, stable facade over Sandworm's internal engine
// for external integrations. It re-exports a narrow API surface so other tools
// can depend on a stable import path without importing internal packages.
//
// Example:
//
//	cfg := core.DefaultConfig("/srv/www")
//	res, err := core.ScanWithStats(context.Background(), cfg)
//	if err != nil { /* handle */ }
//	_ = core.WriteReport(os.Stdout, res, cfg.MinWhitespace)
package core
