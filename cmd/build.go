package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mbourmaud/nob/internal/config"
	"github.com/mbourmaud/nob/internal/shell"
	"github.com/mbourmaud/nob/internal/ui"
)

var buildYes bool

// Swapped in tests
var (
	confirm    = ui.PromptConfirm
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// errBuildCancelled is returned when the user declines the confirmation
var errBuildCancelled = errors.New("build cancelled")

var buildCmd = &cobra.Command{
	Use:   "build [recipe]",
	Short: "Run a recipe from nob.yaml",
	Long: `Run the steps of a recipe in order.

Steps with check: true stop the build when they exit with a non-zero
code; other steps only log a warning. A program that cannot be started
always stops the build.

Examples:
  nob build              # Run the "default" recipe
  nob build release -y   # Run "release" without asking`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&buildYes, "yes", "y", false, "Do not ask for confirmation")
}

func runBuild(cmd *cobra.Command, args []string) error {
	name := config.DefaultRecipe
	if len(args) > 0 {
		name = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	recipe, err := cfg.Recipe(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, ui.Header("🔨", fmt.Sprintf("Recipe %s (%d steps)", name, len(recipe))))

	if !buildYes && isTerminal() {
		ok, err := confirm(fmt.Sprintf("Run recipe %q?", name), true)
		if err != nil {
			return err
		}
		if !ok {
			return errBuildCancelled
		}
	}

	l, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLogger(cmd, l)

	warnings := 0
	for i, step := range recipe {
		inv, err := step.Invocation()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := inv.WithLogger(l).WithExecutor(executor).Run(step.Check)
		if err != nil {
			code := result.ReturnCode
			if errors.Is(err, shell.ErrCommandNotFound) {
				code = -1
			}
			fmt.Fprint(out, ui.StepLine(i+1, len(recipe), step.Title(), code))
			return reportFailure(cmd.ErrOrStderr(), err)
		}

		fmt.Fprint(out, ui.StepLine(i+1, len(recipe), step.Title(), result.ReturnCode))
		if result.ReturnCode != 0 {
			warnings++
		}
	}

	summary := fmt.Sprintf("%d steps completed", len(recipe))
	if warnings > 0 {
		summary += fmt.Sprintf(", %d with non-zero exit", warnings)
	}
	fmt.Fprint(out, ui.SuccessBox(fmt.Sprintf("Recipe %s finished", name), summary))

	return nil
}
