package cmd

import (
	"fmt"
	"strings"

	"github.com/nickhildpac/slackbot-parser/pkg/display"
	"github.com/nickhildpac/slackbot-parser/pkg/parser"
	"github.com/nickhildpac/slackbot-parser/pkg/samples"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Parse the built-in sample lines",
		Long: `Parse every built-in sample line and print the result, good lines
first. Samples are written for the default prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			out := display.NewPrinter(w)
			format := a.cfg.OutputFormat()
			if a.cfg.Prefix != parser.DefaultPrefix {
				out.Warning("samples use %s; ignoring prefix %s", parser.DefaultPrefix, a.cfg.Prefix)
			}

			sections := []struct {
				title string
				lines []string
			}{
				{"Good test lines:", samples.Good},
				{"Bad test lines:", samples.Bad},
			}
			for i, section := range sections {
				if i > 0 {
					fmt.Fprintln(w)
				}
				out.Success(section.title)
				for _, line := range section.lines {
					fmt.Fprintf(w, "%s :\n", line)
					parsed, err := parser.Diagnose(line)
					if err != nil {
						out.Warning("    rejected: %v", err)
						continue
					}
					rendered, err := display.FormatRecord(parsed, format)
					if err != nil {
						return err
					}
					fmt.Fprintln(w, indent(rendered, "    "))
				}
			}
			return nil
		},
	}
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
