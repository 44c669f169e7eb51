package cmd

import (
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/logging"
)

var (
	configPath string
	verbose    bool
	noColor    bool

	cfg *config.Config
	log = zap.NewNop().Sugar()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Multi-player blackjack in your terminal",
	Long: `Blackjack deals a round of blackjack for one or more players at the same
terminal. The dealer stands on every 17 and hits anything lower.

Settings are read from XDG_CONFIG_HOME/blackjack/config.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every card and decision")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	RootCmd.AddCommand(validateCmd)
}

// setup loads the config and builds the logger shared by all commands.
func setup() error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c

	if noColor || !cfg.Color {
		colorize.NoColor = true
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	l, err := logging.New(level, cfg.LogFile)
	if err != nil {
		return err
	}
	log = l
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
