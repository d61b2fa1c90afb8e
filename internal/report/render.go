package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sandworm/sandworm/internal/types"
)

type PrintOptions struct {
	NoColor       bool
	Verbose       bool
	MinWhitespace int
	Duration      time.Duration
	FilesScanned  int
}

// FileGroup is a contiguous run of findings that share a path.
type FileGroup struct {
	Path     string
	Findings []types.Finding
}

// Group splits findings into runs of equal paths without reordering. A path
// whose findings are not adjacent in the input appears in more than one group.
func Group(findings []types.Finding) []FileGroup {
	var out []FileGroup
	for _, f := range findings {
		if n := len(out); n > 0 && out[n-1].Path == f.Path {
			out[n-1].Findings = append(out[n-1].Findings, f)
			continue
		}
		out = append(out, FileGroup{Path: f.Path, Findings: []types.Finding{f}})
	}
	return out
}

// AffectedFiles returns the distinct paths in order of first appearance.
func AffectedFiles(findings []types.Finding) []string {
	seen := make(map[string]struct{}, len(findings))
	var out []string
	for _, f := range findings {
		if _, ok := seen[f.Path]; ok {
			continue
		}
		seen[f.Path] = struct{}{}
		out = append(out, f.Path)
	}
	return out
}

// PrintClean writes the message shown when a scan found nothing.
func PrintClean(w io.Writer, opts PrintOptions) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "No files with %d+ consecutive whitespace chars found.\n", opts.MinWhitespace)
}

// PrintText writes findings grouped under a path header, in arrival order.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		PrintClean(w, opts)
		return
	}
	alert := color.New(color.FgRed, color.Bold)
	path := color.New(color.FgCyan)
	dim := color.New(color.Faint)
	if opts.NoColor {
		alert.DisableColor()
		path.DisableColor()
		dim.DisableColor()
	}

	fmt.Fprintln(w)
	alert.Fprintf(w, "FOUND %d file(s) with %d+ consecutive whitespace chars:\n", len(AffectedFiles(findings)), opts.MinWhitespace)
	fmt.Fprintln(w)
	for _, g := range Group(findings) {
		path.Fprintf(w, "  %s\n", g.Path)
		for _, f := range g.Findings {
			fmt.Fprintf(w, "    Line %d: %d whitespace chars\n", f.Line, f.Whitespace)
			if opts.Verbose {
				dim.Fprintf(w, "      %s\n", f.Preview)
			}
		}
	}
}

// PrintTable renders one bordered row per finding followed by a summary footer.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		PrintClean(w, opts)
	} else {
		table := tablewriter.NewWriter(w)
		if opts.Verbose {
			table.Header("Path", "Line", "Whitespace", "Preview")
		} else {
			table.Header("Path", "Line", "Whitespace")
		}
		for _, f := range findings {
			row := []string{f.Path, strconv.Itoa(f.Line), strconv.Itoa(f.Whitespace)}
			if opts.Verbose {
				row = append(row, f.Preview)
			}
			_ = table.Append(row)
		}
		_ = table.Render()
	}
	// Summary footer (always show if we have stats)
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Findings: %d in %d file(s)\n", len(findings), len(AffectedFiles(findings)))
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
		}
	}
}
