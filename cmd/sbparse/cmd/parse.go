package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nickhildpac/slackbot-parser/pkg/display"
	"github.com/nickhildpac/slackbot-parser/pkg/parser"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var strict bool

	c := &cobra.Command{
		Use:   "parse [line...]",
		Short: "Parse lines given as arguments or read from stdin",
		Long: `Parse each argument as one slackbot line. With no arguments, parse each
line read from stdin. Accepted records go to stdout; rejected lines are
reported on stderr.`,
		Example: `  sbparse parse "/slackbot create myTaskA:'plain vanilla task':1:10"
  sbparse parse -o json < commands.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &lineParser{
				prefix: a.cfg.Prefix,
				format: a.cfg.OutputFormat(),
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
				app:    a,
			}

			if len(args) > 0 {
				for _, line := range args {
					if err := p.parse(line); err != nil {
						return err
					}
				}
			} else {
				if err := p.parseAll(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			a.logger.Debug("parse finished", "accepted", p.accepted, "rejected", p.rejected)
			if strict && p.rejected > 0 {
				return fmt.Errorf("%d of %d lines rejected", p.rejected, p.accepted+p.rejected)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&strict, "strict", false, "fail if any line is rejected")
	return c
}

type lineParser struct {
	prefix string
	format display.Format
	out    io.Writer
	errOut io.Writer
	app    *app

	accepted int
	rejected int
}

// parseAll parses every line of r. Lines have no length limit.
func (p *lineParser) parseAll(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read stdin: %w", readErr)
		}
		if line := strings.TrimSpace(raw); line != "" {
			if err := p.parse(line); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

func (p *lineParser) parse(line string) error {
	cmd, err := parser.Diagnose(line, parser.WithPrefix(p.prefix))
	if err != nil {
		p.rejected++
		p.app.logger.Debug("rejected line", "line", line, "reason", err)
		fmt.Fprintf(p.errOut, "rejected: %s\n", line)
		return nil
	}

	rendered, err := display.FormatRecord(cmd, p.format)
	if err != nil {
		return err
	}
	if p.accepted > 0 && p.format == display.FormatText {
		fmt.Fprintln(p.out)
	}
	if p.accepted > 0 && p.format == display.FormatYAML {
		fmt.Fprintln(p.out, "---")
	}
	p.accepted++
	fmt.Fprintln(p.out, rendered)
	return nil
}
