package cmd

import (
	"github.com/nickhildpac/slackbot-parser/pkg/logging"
	"github.com/nickhildpac/slackbot-parser/pkg/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal UI",
		Long: `Start the full-screen terminal UI.

Navigation:
  Tab/Enter - Accept a suggestion
  Enter     - Parse the line
  Up/Down   - Previous lines
  Esc       - Close suggestions, then quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.logger
			// stderr output would draw over the alternate screen
			if a.cfg.Log.File == "" {
				logger = logging.Discard()
			}
			return tui.Run(a.cfg, logger)
		},
	}
}
