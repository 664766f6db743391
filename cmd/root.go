package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/nob/internal/config"
	"github.com/mbourmaud/nob/internal/logger"
	"github.com/mbourmaud/nob/internal/shell"
	"github.com/mbourmaud/nob/internal/ui"
)

var (
	configPath string
	logLevel   string
	logFile    string
)

// executor spawns every command; tests swap in a shell.MockExecutor
var executor shell.Executor = shell.NewRealExecutor()

var rootCmd = &cobra.Command{
	Use:   "nob",
	Short: "Run build commands with colored, leveled logging",
	Long: `nob runs external programs synchronously, captures their output and
reports progress through a leveled, colored logger that can also append
to a file.

Commands:
  run -- <program> [args...]   Run a single command
  build [recipe]               Run a recipe from nob.yaml
  config show|validate|path    Inspect nob.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.ErrorBox("nob", err.Error()))
	}
	return err
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "Path to the nob config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Minimum log level: debug, info, warning, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append log lines to this file (overrides config)")
}

// errReported marks errors already rendered to the user
var errReported = errors.New("reported")

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() []error { return []error{e.err, errReported} }

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	var failed *shell.CommandFailedError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &failed) && failed.ReturnCode > 0:
		return failed.ReturnCode
	case errors.Is(err, shell.ErrCommandNotFound):
		return 127
	default:
		return 1
	}
}

// loadConfig reads the config file, falling back to defaults when absent
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return cfg, nil
}

// newLogger builds the logger from config, letting flags override it.
// A log file that cannot be opened only costs the file copy.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*logger.Logger, error) {
	opts, err := cfg.LoggerOptions()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		opts.MinLevel = level
	}
	if logFile != "" {
		opts.FilePath = logFile
	}
	opts.Output = cmd.OutOrStdout()

	l, err := logger.New(opts)
	if errors.Is(err, logger.ErrLogWrite) {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning(err.Error()+", logging to console only"))
		opts.FilePath = ""
		return logger.New(opts)
	}
	return l, err
}

// closeLogger closes l and reports file logging failures without failing
// the command
func closeLogger(cmd *cobra.Command, l *logger.Logger) {
	err := l.Err()
	if cerr := l.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning(err.Error()))
	}
}

// reportFailure renders a command error in an error box
func reportFailure(w io.Writer, err error) error {
	var failed *shell.CommandFailedError
	var notFound *shell.CommandNotFoundError

	switch {
	case errors.As(err, &failed):
		fmt.Fprint(w, ui.ErrorBox(failed.Error(), failed.Stderr))
	case errors.As(err, &notFound):
		fmt.Fprint(w, ui.ErrorBox("Command not found", fmt.Sprintf("%s: %v\nPlease ensure it is in your PATH.", notFound.Program, notFound.Err)))
	default:
		fmt.Fprint(w, ui.ErrorBox("Command error", err.Error()))
	}

	return &reportedError{err: err}
}
