package cmd

import (
	"github.com/nickhildpac/slackbot-parser/pkg/repl"
	"github.com/spf13/cobra"
)

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Long: `Start a readline prompt that parses each line as a slackbot command.

Meta commands:
  /help, /history, /clear, /prefix [word], /format [text|json|yaml], /exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Start(a.cfg, a.logger)
		},
	}
}
