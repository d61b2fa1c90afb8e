package sandworm

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sandworm/sandworm/internal/config"
	"github.com/sandworm/sandworm/internal/engine"
	"github.com/sandworm/sandworm/internal/report"
	"github.com/sandworm/sandworm/pkg/core"
	"github.com/spf13/cobra"
)

// scanOptions is the fully resolved invocation: engine settings plus how to
// render the result.
type scanOptions struct {
	engine  engine.Config
	format  string
	noColor bool
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd, args)
	if err != nil {
		return err
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagDryRun {
		paths, err := engine.Targets(ctx, opts.engine)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(stdout, p)
		}
		fmt.Fprintf(stderr, "Found %d files to scan\n", len(paths))
		return nil
	}

	fmt.Fprintf(stderr, "Scanning %s for files with %d+ consecutive whitespace chars...\n", opts.engine.Root, opts.engine.MinWhitespace)
	bar := newProgress(stderr)
	cfg := opts.engine
	cfg.Discovered = func(total int) {
		fmt.Fprintf(stderr, "Found %d files to scan\n", total)
	}
	if bar != nil {
		cfg.Progress = bar.update
	}
	res, err := engine.ScanWithStats(ctx, cfg)
	if bar != nil {
		bar.clear()
	}
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	popts := report.PrintOptions{
		NoColor:       opts.noColor,
		Verbose:       cfg.Verbose,
		MinWhitespace: cfg.MinWhitespace,
		Duration:      res.Duration,
		FilesScanned:  res.FilesScanned,
	}
	if err := render(stdout, stderr, opts.format, res, popts); err != nil {
		return err
	}

	fmt.Fprintln(stderr)
	fmt.Fprintf(stderr, "Scanned %d files in %.2fs\n", res.FilesScanned, res.Duration.Seconds())

	if flagFailOnFindings && len(res.Findings) > 0 {
		return errFindings
	}
	return nil
}

func render(stdout, stderr io.Writer, format string, res engine.Result, popts report.PrintOptions) error {
	switch format {
	case "json":
		if err := core.WriteReport(stdout, res, popts.MinWhitespace); err != nil {
			return fmt.Errorf("json error: %w", err)
		}
	case "sarif":
		if err := report.WriteSARIF(stdout, res.Findings, version, popts); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case "table":
		report.PrintTable(stdout, res.Findings, popts)
	default:
		// the clean message is status, not report
		if len(res.Findings) == 0 {
			report.PrintClean(stderr, popts)
			return nil
		}
		report.PrintText(stdout, res.Findings, popts)
	}
	return nil
}

// resolveOptions merges flags with local and global config files. Precedence:
// explicitly set flag > local config > global config > built-in default.
func resolveOptions(cmd *cobra.Command, args []string) (scanOptions, error) {
	root := defaultRoot(os.UserHomeDir)
	if len(args) > 0 {
		root = args[0]
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	var gcfg, lcfg config.FileConfig
	if !flagNoConfig {
		var err error
		if gcfg, err = loadConfig(cmd, "global", config.GlobalPath); err != nil {
			return scanOptions{}, err
		}
		if lcfg, err = loadConfig(cmd, "local", func() (string, bool) { return config.LocalPath(root) }); err != nil {
			return scanOptions{}, err
		}
	}

	changed := cmd.Flags().Changed
	format := pickString(changed("format"), flagFormat, lcfg.Format, gcfg.Format)
	switch {
	case flagJSON:
		format = "json"
	case flagSARIF:
		format = "sarif"
	}
	switch format {
	case "text", "table", "json", "sarif":
	default:
		return scanOptions{}, usageError{fmt.Errorf("unknown --format %q (want text, table, json or sarif)", format)}
	}

	cfg := engine.Config{
		Root:          root,
		MinWhitespace: pickInt(changed("min-whitespace"), flagMinWhitespace, lcfg.MinWhitespace, gcfg.MinWhitespace),
		MaxBytes:      pickInt64(changed("max-size"), flagMaxSize, lcfg.MaxSize, gcfg.MaxSize),
		Verbose:       pickBool(changed("verbose"), flagVerbose, lcfg.Verbose, gcfg.Verbose),
		Threads:       pickInt(changed("threads"), flagThreads, lcfg.Threads, gcfg.Threads),
		IncludeGlobs:  pickString(changed("include"), flagInclude, lcfg.Include, gcfg.Include),
	}
	if err := cfg.Validate(); err != nil {
		return scanOptions{}, usageError{err}
	}
	return scanOptions{
		engine:  cfg,
		format:  format,
		noColor: pickBool(changed("no-color"), flagNoColor, lcfg.NoColor, gcfg.NoColor),
	}, nil
}

// loadConfig reads the config file locate finds, if any, and announces it on
// stderr so settings never apply unseen.
func loadConfig(cmd *cobra.Command, scope string, locate func() (string, bool)) (config.FileConfig, error) {
	p, ok := locate()
	if !ok {
		return config.FileConfig{}, nil
	}
	c, err := config.LoadFile(p)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("%s config: %w", scope, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Using config %s\n", p)
	return c, nil
}
