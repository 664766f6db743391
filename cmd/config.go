package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mbourmaud/nob/internal/config"
	"github.com/mbourmaud/nob/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or manage configuration",
	Long: `View and manage the nob configuration.

Examples:
  nob config show        # Display current configuration
  nob config validate    # Validate nob.yaml
  nob config path        # Show the config file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Current nob configuration:")
		fmt.Fprintln(out)

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to format config: %w", err)
		}
		fmt.Fprintln(out, string(data))

		if len(cfg.Recipes) > 0 {
			rows := make([][]string, 0, len(cfg.Recipes))
			for _, name := range cfg.RecipeNames() {
				rows = append(rows, []string{name, strconv.Itoa(len(cfg.Recipes[name]))})
			}
			fmt.Fprintln(out, ui.Table([]string{"RECIPE", "STEPS"}, rows))
		}

		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(out, "Source: %s\n", configPath)
		} else {
			fmt.Fprintf(out, "Source: defaults (no %s found)\n", configPath)
		}

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("%s: not found", configPath)
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("%s: INVALID - %w", configPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%s: INVALID - %w", configPath, err)
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s: OK (%d recipes)", configPath, len(cfg.Recipes))))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configPathCmd)
}
