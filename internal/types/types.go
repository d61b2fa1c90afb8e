package types

// Finding describes one line whose first maximal run of spaces/tabs reached the
// configured threshold. Only the first qualifying run on a line is reported.
type Finding struct {
	Path        string `json:"path"`
	Line        int    `json:"line"`
	Column      int    `json:"column,omitempty"` // 1-based byte offset of the run start
	Whitespace  int    `json:"whitespace"`
	Preview     string `json:"preview,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}
