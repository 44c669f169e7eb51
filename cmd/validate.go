package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a blackjack config file",
	Long: `Validate checks that a config file parses and that its table settings
can be dealt from a single 52-card deck. Without a path the default
config file is checked.`,
	Args: cobra.MaximumNArgs(1),
	// Skips the root setup: the file under test may be missing or broken.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			colorize.NoColor = true
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigFilePath()
		if configPath != "" {
			path = configPath
		}
		if len(args) == 1 {
			path = args[0]
		}

		v := config.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Validation Results:")
		fmt.Fprintln(w, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(w, "✅ Config '%s' is valid.\n", path)
		} else {
			fmt.Fprintf(w, "❌ Config '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(w, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(w, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(w, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
