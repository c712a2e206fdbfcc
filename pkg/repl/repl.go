package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/google/shlex"
	"github.com/nickhildpac/slackbot-parser/pkg/config"
	"github.com/nickhildpac/slackbot-parser/pkg/display"
	"github.com/nickhildpac/slackbot-parser/pkg/parser"
)

// Session holds the state of one interactive run: the active prefix and
// output format, and the lines typed so far.
type Session struct {
	prefix  string
	format  display.Format
	out     *display.Printer
	w       io.Writer
	logger  *log.Logger
	history []string

	// clearScreen is swapped out in tests.
	clearScreen func()
}

// NewSession returns a Session writing to w.
func NewSession(cfg *config.Config, w io.Writer, logger *log.Logger) *Session {
	return &Session{
		prefix:      cfg.Prefix,
		format:      cfg.OutputFormat(),
		out:         display.NewPrinter(w),
		w:           w,
		logger:      logger,
		clearScreen: display.ClearScreen,
	}
}

// Start initializes and runs the REPL.
func Start(cfg *config.Config, logger *log.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          color.CyanString("slackbot> "),
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("start readline: %w", err)
	}
	defer rl.Close()

	s := NewSession(cfg, rl.Stdout(), logger)
	s.out.Success("Welcome to sbparse! Type /help for a list of commands.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			break
		}
		if err != nil {
			s.out.Error("Error reading line: %v", err)
			continue
		}
		if s.HandleLine(line) {
			break
		}
	}
	return nil
}

// HandleLine runs a meta command or parses line as a slackbot command.
// It reports whether the session should end.
func (s *Session) HandleLine(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	s.history = append(s.history, line)

	// a line shlex cannot split is never a meta command; the parser reports it
	parts, err := shlex.Split(line)
	if err == nil && len(parts) > 0 && parts[0] != s.prefix {
		switch strings.ToUpper(parts[0]) {
		case "/HELP":
			s.printHelp()
			return false
		case "/HISTORY":
			s.printHistory()
			return false
		case "/CLEAR":
			s.clearScreen()
			return false
		case "/PREFIX":
			s.handlePrefix(parts[1:])
			return false
		case "/FORMAT":
			s.handleFormat(parts[1:])
			return false
		case "/EXIT", "/QUIT":
			return true
		}
	}

	s.parseLine(line)
	return false
}

func (s *Session) parseLine(line string) {
	cmd, err := parser.Diagnose(line, parser.WithPrefix(s.prefix))
	if err != nil {
		s.logger.Debug("rejected line", "line", line, "reason", err)
		s.out.Warning("Not a recognized command. Type /help for the syntax.")
		return
	}
	s.logger.Debug("accepted line", "command", cmd.Verb, "task", cmd.TaskName)

	rendered, err := display.FormatRecord(cmd, s.format)
	if err != nil {
		s.out.Error("Error rendering command: %v", err)
		return
	}
	s.out.Success("Accepted: %s", display.Summary(cmd))
	s.out.Output(rendered)
}

func (s *Session) handlePrefix(args []string) {
	if len(args) == 0 {
		s.out.Info("Prefix: %s", s.prefix)
		return
	}
	prefix := args[0]
	if prefix == "" || strings.ContainsAny(prefix, " \t\r\n'\"") {
		s.out.Error("Invalid prefix %q: must be a single unquoted word", prefix)
		return
	}
	s.prefix = prefix
	s.out.Success("Prefix set to %s", prefix)
}

func (s *Session) handleFormat(args []string) {
	if len(args) == 0 {
		s.out.Info("Output format: %s", s.format)
		return
	}
	f, err := display.ParseFormat(args[0])
	if err != nil {
		s.out.Error("%v", err)
		return
	}
	s.format = f
	s.out.Success("Output format set to %s", f)
}

func (s *Session) printHelp() {
	s.out.Success("Available commands:")
	fmt.Fprintf(s.w, "  %s create <name>:<description>:<priority 0-2>:<percent 0-100>\n", s.prefix)
	fmt.Fprintf(s.w, "  %s update <name>:[description]:[priority 0-2]:<percent 0-100>\n", s.prefix)
	fmt.Fprintf(s.w, "  %s suspend <name>\n", s.prefix)
	fmt.Fprintf(s.w, "  %s abandon <name>\n", s.prefix)
	fmt.Fprintln(s.w, "  /prefix [word]       - Show or change the command prefix")
	fmt.Fprintln(s.w, "  /format [text|json|yaml] - Show or change the output format")
	fmt.Fprintln(s.w, "  /help                - Show this help message")
	fmt.Fprintln(s.w, "  /history             - Show lines entered in this session")
	fmt.Fprintln(s.w, "  /clear               - Clear the screen")
	fmt.Fprintln(s.w, "  /exit, /quit         - Exit the application")
	fmt.Fprintln(s.w, "\nQuote descriptions that contain spaces or colons, e.g. 'plain vanilla task'.")
}

func (s *Session) printHistory() {
	s.out.Success("Command History:")
	for i, line := range s.history {
		fmt.Fprintf(s.w, "  %d: %s\n", i+1, line)
	}
}
