package detectors

import "unicode/utf8"

// PreviewLimit is the maximum number of characters kept in a line preview.
const PreviewLimit = 120

// TruncationMarker is appended to previews that were cut.
const TruncationMarker = "..."

// Preview shortens line to at most PreviewLimit characters, cutting on a rune
// boundary and appending TruncationMarker when anything was dropped.
func Preview(line string) string {
	if utf8.RuneCountInString(line) <= PreviewLimit {
		return line
	}
	n := 0
	for i := range line {
		if n == PreviewLimit {
			return line[:i] + TruncationMarker
		}
		n++
	}
	return line
}
