package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/roach88/sequ/internal/engine"
	"github.com/roach88/sequ/internal/ir"
)

// Version is reported by --version.
const Version = "1.0"

// RootOptions holds the flags of the sequence command. Verbose is shared
// with every subcommand.
type RootOptions struct {
	Verbose bool

	Format      string
	Separator   string
	EqualWidth  bool
	Words       bool
	Pad         string
	PadSpaces   bool
	FormatWord  string
	NumberLines bool

	Profile string
	History string

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs engine.RunIDGenerator
}

// NewRootCommand creates the sequ command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequ [flags] FIRST [INCREMENT] LAST",
		Short: "Print a sequence of numbers, letters or roman numerals",
		Long: `Print the items from FIRST to LAST in steps of INCREMENT.

The notation is taken from --format-word, or inferred from LAST (FIRST with
--number-lines): an integer is arabic, a decimal is floating, a single
letter is alpha or ALPHA, and a roman numeral is roman or ROMAN.
INCREMENT defaults to 1 (i or I for roman numerals).

With --number-lines, sequ reads standard input and prefixes each line with
the next item, starting at FIRST. Only FIRST and INCREMENT are given.`,
		Example: `  sequ 1 10
  sequ -s , 1 2 10
  sequ -w -5 5 10
  sequ -F ROMAN I X
  sequ --format "%.3f" 0 0.25 1
  cat notes.txt | sequ -n a 1`,
		Version:       Version,
		Args:          sequenceArgs(opts),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("sequ {{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.Format, "format", "f", "", "use printf style floating-point `format`")
	flags.StringVarP(&opts.Separator, "separator", "s", ir.DefaultSeparator, "use `string` to separate items")
	flags.BoolVarP(&opts.EqualWidth, "equal-width", "w", false, "equalize width by padding with zeroes (spaces for letters and numerals)")
	flags.BoolVarP(&opts.Words, "words", "W", false, "use ' ' to separate items")
	flags.StringVarP(&opts.Pad, "pad", "p", "", "equalize width by padding with `char`")
	flags.BoolVarP(&opts.PadSpaces, "pad-spaces", "P", false, "equalize width by padding with spaces")
	flags.StringVarP(&opts.FormatWord, "format-word", "F", "", "notation: arabic, floating, alpha, ALPHA, roman or ROMAN")
	flags.BoolVarP(&opts.NumberLines, "number-lines", "n", false, "number the lines of standard input")
	flags.StringVar(&opts.Profile, "profile", "", "read defaults from a CUE or YAML `file`")
	flags.StringVar(&opts.History, "history", "", "record the run in a SQLite `database`")
	cmd.MarkFlagsMutuallyExclusive("equal-width", "pad", "pad-spaces")

	cmd.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "log run details to stderr")

	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	cmd.SetGlobalNormalizationFunc(normalizeFlagName)
	return cmd
}

// normalizeFlagName accepts the historical spelling of --separator.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "seperator" {
		name = "separator"
	}
	return pflag.NormalizedName(name)
}

// Execute runs sequ with the given arguments and returns the process exit
// code. Errors are reported on stderr.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return execute(NewRootCommand(), args, stdin, stdout, stderr)
}

func execute(cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args for a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stderr, "sequ: %v\n", err)
		if ir.IsCode(err, ir.ErrCodeUsage) {
			fmt.Fprintln(stderr, "Try 'sequ --help' for more information.")
		}
		return GetExitCode(err)
	}
	return ExitSuccess
}
