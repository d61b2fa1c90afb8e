package sandworm

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandworm/sandworm/internal/detectors"
	"github.com/sandworm/sandworm/internal/engine"
	"github.com/spf13/cobra"
)

var (
	flagMinWhitespace  int
	flagVerbose        bool
	flagMaxSize        int64
	flagThreads        int
	flagInclude        string
	flagFormat         string
	flagJSON           bool
	flagSARIF          bool
	flagNoColor        bool
	flagFailOnFindings bool
	flagDryRun         bool
	flagNoConfig       bool

	version = "0.1.0"
)

// errFindings is returned when --fail-on-findings is set and the scan found
// something. Execute maps it to exit status 1 without printing.
var errFindings = errors.New("findings reported")

// rootCmd is the base Cobra command for the Sandworm CLI.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandworm [path]",
		Short: "Scan filesystems for whitespace obfuscation",
		Long: "Sandworm walks a directory tree and reports text lines that contain a long run of\n" +
			"spaces or tabs, the signature of payloads hidden past the visible margin of a file.\n" +
			"The path defaults to your home directory. These directories are never entered:\n" +
			"  " + strings.Join(engine.ExcludedDirs(), " "),
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScan,
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{fmt.Errorf("%w\nRun '%s --help' for usage", err, c.CommandPath())}
	})

	f := cmd.Flags()
	f.IntVarP(&flagMinWhitespace, "min-whitespace", "n", detectors.DefaultMinWhitespace, "minimum consecutive whitespace characters to flag")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "show line preview for each finding")
	f.Int64Var(&flagMaxSize, "max-size", engine.DefaultMaxBytes, "skip files larger than this many bytes")
	f.IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	f.StringVar(&flagInclude, "include", "", "comma-separated globs; only matching files are scanned")
	f.StringVar(&flagFormat, "format", "text", "output format: text|table|json|sarif")
	f.BoolVar(&flagJSON, "json", false, "shorthand for --format json")
	f.BoolVar(&flagSARIF, "sarif", false, "shorthand for --format sarif")
	f.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	f.BoolVar(&flagFailOnFindings, "fail-on-findings", false, "exit 1 when anything is found")
	f.BoolVar(&flagDryRun, "dry-run", false, "list files that would be scanned without opening them")
	f.BoolVar(&flagNoConfig, "no-config", false, "ignore local and global config files")
	cmd.MarkFlagsMutuallyExclusive("json", "sarif")
	return cmd
}

// usageError marks argument problems detected before any scanning starts.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// Execute runs the Sandworm CLI. It should be called by the main package.
func Execute() {
	os.Exit(exitCode(rootCmd.Execute()))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFindings):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}
}
