// Package cmd provides the CLI commands for num2text.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	num2text "github.com/rahmat412/num2text-sub006"
	"github.com/rahmat412/num2text-sub006/internal/config"
	"github.com/rahmat412/num2text-sub006/internal/logging"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfgFile      string
	verbose      bool
	lexiconFiles []string

	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "num2text",
		Short: "Spell numbers as words",
		Long: `num2text spells integers, decimals, amounts of money and years in
several languages.

Examples:
  num2text spell 1984
  num2text spell --locale ru --mode currency 21.50
  num2text spell --locale ja --mode year -- -500
  num2text locales`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (JSON or YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringSliceVar(&a.lexiconFiles, "lexicon", nil, "extra lexicon files merged over the built-in ones")

	root.AddCommand(newSpellCommand(a))
	root.AddCommand(newLocalesCommand(a))
	root.AddCommand(newValidateCommand(a))
	root.AddCommand(newVersionCommand())
	return root
}

func (a *app) init() error {
	a.cfg = config.Default()
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		a.cfg = cfg
	}
	a.cfg.LexiconFiles = append(a.cfg.LexiconFiles, a.lexiconFiles...)

	if a.verbose {
		a.cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(a.cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.logger = logger
	return nil
}

// registry builds the registry from the loaded configuration.
func (a *app) registry() (*num2text.Registry, error) {
	opts := append(a.cfg.Options(), num2text.WithLogger(a.logger))
	if a.verbose {
		opts = append(opts, num2text.WithHooks(num2text.NewLoggingHook(a.logger)))
	}
	return num2text.NewRegistry(opts...)
}

const version = "0.1.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "num2text version %s\n", version)
		},
	}
}
