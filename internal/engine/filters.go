package engine

import (
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Directory names pruned during traversal. Matching is exact and
// case-sensitive against the entry's base name.
var defaultExcludeDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"vendor":       true,
	".pnpm":        true,
	"dist":         true,
	"build":        true,
	".cache":       true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".tox":         true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

// ExcludedDirs returns the pruned directory names in sorted order.
func ExcludedDirs() []string {
	out := make([]string, 0, len(defaultExcludeDirs))
	for name := range defaultExcludeDirs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// allowedByGlobs returns true if relPath passes the include glob list. An
// empty list allows everything. Matching uses forward-slash semantics and is
// tried against both the relative path and its base name.
func allowedByGlobs(relPath string, includes []string) bool {
	if len(includes) == 0 {
		return true
	}
	rp := filepath.ToSlash(relPath)
	return matchAnyGlob(rp, includes)
}

// parseGlobsList splits a comma-separated glob list, adding a variant with
// any leading "./" or "**/" removed so plain names match at any depth.
func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if t := trimGlobPrefix(p); t != p {
			out = append(out, t)
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	base := pathToMatch
	if i := strings.LastIndex(pathToMatch, "/"); i >= 0 {
		base = pathToMatch[i+1:]
	}
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}

// validGlobs reports the first malformed pattern, if any.
func validGlobs(globs []string) (string, bool) {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return g, false
		}
	}
	return "", true
}
