package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macropower/tagcheck/pkg/log"
	"github.com/macropower/tagcheck/pkg/validate"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

// NewRootCmd returns the root command. The root invocation itself runs the
// manifest check: `tagcheck <expected-version>`.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name + " <expected-version>",
		Short:         shortDesc,
		Long:          longDesc,
		Example:       fmt.Sprintf("  %s 1.0.1", name),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", defaultLogFormat(), "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandlerWithStrings(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, args []string) error {
		// Arguments are valid once RunE runs; later failures print their own
		// diagnostics and must not re-print usage.
		cc.SilenceUsage = true

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}

		execPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve executable path: %w", err)
		}

		v := validate.New(workDir, filepath.Dir(execPath), cc.OutOrStdout())

		return v.Validate(args[0])
	}

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// defaultLogFormat selects a terminal-friendly format on a TTY and a
// machine-friendly one otherwise, e.g. in CI logs.
func defaultLogFormat() string {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return log.TextFormat
	}

	return log.LogfmtFormat
}
