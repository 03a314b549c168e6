package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/sequ/internal/engine"
	"github.com/roach88/sequ/internal/ir"
	"github.com/roach88/sequ/internal/profile"
	"github.com/roach88/sequ/internal/store"
)

// newLogger configures logging based on the verbose flag.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func runSequence(cmd *cobra.Command, opts *RootOptions, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	var prof *profile.Profile
	if opts.Profile != "" {
		p, err := profile.Load(opts.Profile)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load profile", err)
		}
		logger.Debug("profile loaded", "path", opts.Profile)
		prof = p
	}

	req, err := buildRequest(cmd.Flags(), opts, prof, args)
	if err != nil {
		return err
	}

	var recorder engine.Recorder
	if opts.History != "" {
		st, err := store.Open(opts.History)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open history database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()
		recorder = st
	}

	eng := engine.New(recorder, opts.RunIDs, engine.WithLogger(logger))
	if _, err := eng.Run(cmd.Context(), req, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		// Anything the core did not classify is an I/O failure.
		if ir.CodeOf(err) == "" {
			return WrapExitError(ExitCommandError, "run failed", err)
		}
		return err
	}
	return nil
}
