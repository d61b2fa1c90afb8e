package core

import (
	"io"

	"github.com/sandworm/sandworm/internal/report"
)

// Report is the JSON document printed by `sandworm --json`.
type Report = report.JSONReport

// WriteReport writes res in the same JSON shape as `sandworm --json`.
func WriteReport(w io.Writer, res Result, minWhitespace int) error {
	return report.WriteJSON(w, res.Findings, report.PrintOptions{
		MinWhitespace: minWhitespace,
		FilesScanned:  res.FilesScanned,
		Duration:      res.Duration,
	})
}

// ReadReport decodes a document produced by WriteReport or the CLI.
func ReadReport(r io.Reader) (Report, error) {
	return report.ReadJSON(r)
}
