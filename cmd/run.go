package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbourmaud/nob/internal/shell"
)

var (
	runCheck bool
	runRaw   bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [--] <program> [args...]",
	Short: "Run a single command",
	Long: `Run a program with the given arguments and log its outcome.

Arguments are passed to the program as-is; no shell is involved, so
operators like && or | are ordinary arguments.

Examples:
  nob run -- cc main.c -o main -Wall     # Compile, log stdout/stderr
  nob run --check -- make test           # Fail with the exit code of make
  nob run --raw -- go env GOPATH         # Print the output untouched`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().SetInterspersed(false)
	runCmd.Flags().BoolVar(&runCheck, "check", false, "Fail when the command exits with a non-zero code")
	runCmd.Flags().BoolVar(&runRaw, "raw", false, "Pass the command output through unmodified instead of logging it")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLogger(cmd, l)

	inv := shell.New(args[0]).
		AddFlags(args[1:]...).
		WithExecutor(executor)
	if !runRaw {
		inv.WithLogger(l)
	}

	result, err := inv.Run(runCheck)

	if runRaw {
		fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
		fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
	}

	if err != nil {
		return reportFailure(cmd.ErrOrStderr(), err)
	}
	return nil
}
