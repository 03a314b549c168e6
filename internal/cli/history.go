package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Notation string
	Output   string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded with --history",
		Long: `List the runs recorded in a history database, most recent first.

Example:
  sequ --history runs.db 1 10
  sequ history --db runs.db
  sequ history --db runs.db --notation roman --limit 5 --output json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.Notation, "notation", "", "only list runs in this notation")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "output format (json|text)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	if !isValidOutput(opts.Output) {
		return usageError("invalid output %q: must be one of %v", opts.Output, ValidOutputs)
	}
	if opts.Limit < 0 {
		return usageError("invalid limit %d: must not be negative", opts.Limit)
	}

	filter := store.ListFilter{Limit: opts.Limit}
	if opts.Notation != "" {
		n, err := ir.ParseNotation(opts.Notation)
		if err != nil {
			return err
		}
		filter.Notation = n
	}

	formatter := &OutputFormatter{
		Format:    opts.Output,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return historyError(formatter, "failed to open history database", err, opts.Database)
	}
	defer st.Close()

	runs, err := st.ListRuns(cmd.Context(), filter)
	if err != nil {
		return historyError(formatter, "failed to list runs", err, opts.Database)
	}
	formatter.VerboseLog("%d run(s) from %s", len(runs), opts.Database)

	if opts.Output == "json" {
		return formatter.Success(runs)
	}
	writeHistoryText(formatter.Writer, runs)
	return nil
}

// historyError reports a store failure. JSON output also gets an error
// envelope on stdout.
func historyError(f *OutputFormatter, message string, err error, db string) error {
	if f.Format == "json" {
		_ = f.Error("E_HISTORY", fmt.Sprintf("%s: %v", message, err), map[string]string{"db": db})
	}
	return WrapExitError(ExitCommandError, message, err)
}

func writeHistoryText(w io.Writer, runs []ir.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-5s %-36s %-8s %-24s %6s  %s\n", "SEQ", "RUN ID", "NOTATION", "ARGS", "ITEMS", "STATUS")
	for _, r := range runs {
		fmt.Fprintf(w, "%-5d %-36s %-8s %-24s %6d  %s\n",
			r.Seq, r.RunID, r.Notation, describeArgs(r), r.Items, describeStatus(r))
	}
}

func describeArgs(r ir.RunRecord) string {
	if r.NumberLines {
		return fmt.Sprintf("-n %s %s", r.Start, r.Increment)
	}
	return fmt.Sprintf("%s %s %s", r.Start, r.Increment, r.End)
}

func describeStatus(r ir.RunRecord) string {
	switch {
	case r.Status == ir.RunError:
		return fmt.Sprintf("%s (%s)", r.Status, r.ErrorCode)
	case r.Unnumbered > 0:
		return fmt.Sprintf("%s (%d of %d lines unnumbered)", r.Status, r.Unnumbered, r.Lines)
	}
	return string(r.Status)
}
