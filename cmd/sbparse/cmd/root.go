// Package cmd implements the sbparse command line.
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/nickhildpac/slackbot-parser/pkg/config"
	"github.com/nickhildpac/slackbot-parser/pkg/logging"
	"github.com/nickhildpac/slackbot-parser/pkg/repl"
	"github.com/spf13/cobra"
)

// app carries flag values and the state built from them before a
// subcommand runs.
type app struct {
	cfgFile  string
	prefix   string
	output   string
	logLevel string

	cfg      *config.Config
	logger   *log.Logger
	closeLog func() error
}

// Execute runs the root command with os.Args.
func Execute() error {
	root, a := newRoot()
	return a.execute(root)
}

// NewRootCmd builds the sbparse command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

// execute runs root and closes the log file whether or not the
// subcommand failed. cobra skips PersistentPostRunE after an error.
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if cerr := a.teardown(root, nil); err == nil {
		err = cerr
	}
	return err
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "sbparse",
		Short: "Parse slackbot task commands",
		Long: `sbparse validates slackbot task commands and prints the parsed record.

Syntax:
  /slackbot create <name>:<description>:<priority 0-2>:<percent 0-100>
  /slackbot update <name>:[description]:[priority 0-2]:<percent 0-100>
  /slackbot suspend <name>
  /slackbot abandon <name>

Without a subcommand sbparse starts the interactive REPL.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(a.cfg, a.logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+" if present)")
	flags.StringVar(&a.prefix, "prefix", "", "command prefix (default: /slackbot)")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newREPLCmd(a),
		newTUICmd(a),
		newParseCmd(a),
		newDemoCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// setup loads the config, applies flag overrides and opens the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("prefix") {
		cfg.Prefix = a.prefix
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.closeLog = closeLog
	logger.Debug("config loaded", "prefix", cfg.Prefix, "output", cfg.Output)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.closeLog == nil {
		return nil
	}
	closeLog := a.closeLog
	a.closeLog = nil
	return closeLog()
}
