package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sandworm/sandworm/internal/types"
)

// JSONReport is the document written by WriteJSON.
type JSONReport struct {
	MinWhitespace int             `json:"min_whitespace"`
	FilesScanned  int             `json:"files_scanned"`
	DurationMS    int64           `json:"duration_ms"`
	AffectedFiles int             `json:"affected_files"`
	Findings      []types.Finding `json:"findings"`
}

// WriteJSON writes the findings and scan totals as one indented JSON object.
func WriteJSON(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	if findings == nil {
		findings = []types.Finding{} // no `null` in JSON
	}
	doc := JSONReport{
		MinWhitespace: opts.MinWhitespace,
		FilesScanned:  opts.FilesScanned,
		DurationMS:    opts.Duration.Milliseconds(),
		AffectedFiles: len(AffectedFiles(findings)),
		Findings:      findings,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadJSON decodes a document written by WriteJSON.
func ReadJSON(r io.Reader) (JSONReport, error) {
	var doc JSONReport
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("decode report: %w", err)
	}
	return doc, nil
}
