package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/shlex"
	"github.com/nickhildpac/slackbot-parser/pkg/config"
	"github.com/nickhildpac/slackbot-parser/pkg/display"
	"github.com/nickhildpac/slackbot-parser/pkg/parser"
)

type model struct {
	prefix           string
	format           display.Format
	logger           *log.Logger
	textInput        textinput.Model
	historyViewport  viewport.Model
	recordViewport   viewport.Model
	history          []string
	suggestions      []string
	activeSuggestion int
	isSuggesting     bool
	lineHistory      []string
	historyIndex     int
	status           string
	width, height    int
}

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	sectionStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	acceptedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	metaCommands    = []string{"/HELP", "/HISTORY", "/CLEAR", "/EXIT"}
)

// InitialModel returns the TUI model for cfg.
func InitialModel(cfg *config.Config, logger *log.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Focus()

	historyVP := viewport.New(10, 5)
	historyVP.SetContent("Welcome to sbparse! Type /help for commands.")

	recordVP := viewport.New(10, 10)
	recordVP.SetContent("Parsed commands will appear here.")

	return model{
		prefix:          cfg.Prefix,
		format:          cfg.OutputFormat(),
		logger:          logger,
		textInput:       ti,
		historyViewport: historyVP,
		recordViewport:  recordVP,
		suggestions:     []string{},
		lineHistory:     []string{},
		historyIndex:    0,
		status:          "N/A",
	}
}

// Run starts the TUI on the alternate screen and blocks until it exits.
func Run(cfg *config.Config, logger *log.Logger) error {
	p := tea.NewProgram(InitialModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.isSuggesting {
				m.isSuggesting = false
			} else {
				return m, tea.Quit
			}
		case tea.KeyUp:
			if m.isSuggesting && len(m.suggestions) > 0 {
				m.activeSuggestion = (m.activeSuggestion - 1 + len(m.suggestions)) % len(m.suggestions)
			} else if !m.isSuggesting && len(m.lineHistory) > 0 {
				if m.historyIndex > 0 {
					m.historyIndex--
				}
				m.textInput.SetValue(m.lineHistory[m.historyIndex])
				m.textInput.CursorEnd()
			}
		case tea.KeyDown:
			if m.isSuggesting && len(m.suggestions) > 0 {
				m.activeSuggestion = (m.activeSuggestion + 1) % len(m.suggestions)
			} else if !m.isSuggesting && len(m.lineHistory) > 0 {
				if m.historyIndex < len(m.lineHistory)-1 {
					m.historyIndex++
					m.textInput.SetValue(m.lineHistory[m.historyIndex])
				} else {
					m.historyIndex = len(m.lineHistory)
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
		case tea.KeyTab, tea.KeyEnter:
			if m.isSuggesting && len(m.suggestions) > 0 {
				parts := strings.Fields(m.textInput.Value())
				if len(parts) > 0 {
					parts[len(parts)-1] = m.suggestions[m.activeSuggestion]
					m.textInput.SetValue(strings.Join(parts, " ") + " ")
				}
				m.isSuggesting = false
				m.textInput.CursorEnd()
			} else if msg.Type == tea.KeyEnter {
				return m.handleEnter()
			}
		default:
			m.textInput, cmd = m.textInput.Update(msg)
			cmds = append(cmds, cmd)
			m.updateSuggestions()
			return m, tea.Batch(cmds...)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// 40% for input, 60% for the parsed record
		inputSectionHeight := m.height * 2 / 5
		recordSectionHeight := m.height - inputSectionHeight - 2

		m.textInput.Width = m.width - 4

		m.historyViewport.Width = m.width - 4
		m.historyViewport.Height = inputSectionHeight - 4

		m.recordViewport.Width = m.width - 4
		m.recordViewport.Height = recordSectionHeight - 2
	}

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)
	m.historyViewport, cmd = m.historyViewport.Update(msg)
	cmds = append(cmds, cmd)
	m.recordViewport, cmd = m.recordViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateSuggestions offers the prefix and meta commands for the first word
// and the verbs for the second word after the prefix.
func (m *model) updateSuggestions() {
	val := m.textInput.Value()
	parts := strings.Fields(val)
	m.suggestions = []string{}

	if len(parts) == 0 || val[len(val)-1] == ' ' {
		m.isSuggesting = false
		return
	}

	lastPart := parts[len(parts)-1]
	switch {
	case len(parts) == 1:
		candidates := append([]string{m.prefix}, metaCommands...)
		for _, c := range candidates {
			upper := strings.ToUpper(c)
			if strings.HasPrefix(upper, strings.ToUpper(lastPart)) && upper != strings.ToUpper(lastPart) {
				m.suggestions = append(m.suggestions, c)
			}
		}
	case len(parts) == 2 && parts[0] == m.prefix:
		for _, v := range parser.Verbs() {
			if strings.HasPrefix(string(v), lastPart) && string(v) != lastPart {
				m.suggestions = append(m.suggestions, string(v))
			}
		}
	}
	m.isSuggesting = len(m.suggestions) > 0
	m.activeSuggestion = 0
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	userInput := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()
	if userInput == "" {
		return m, nil
	}
	m.appendHistory("> " + userInput)

	parts, err := shlex.Split(userInput)
	if err == nil && len(parts) > 0 && parts[0] != m.prefix {
		switch strings.ToUpper(parts[0]) {
		case "/EXIT", "/QUIT":
			return m, tea.Quit
		case "/CLEAR":
			m.history = []string{}
			m.historyViewport.SetContent("")
			m.recordViewport.SetContent("")
			m.status = "N/A"
			return m, nil
		case "/HELP":
			m.appendHistory(m.getHelp())
			return m, nil
		case "/HISTORY":
			m.appendHistory(m.getUniqueHistory())
			return m, nil
		}
	}

	m.lineHistory = append(m.lineHistory, userInput)
	m.historyIndex = len(m.lineHistory)
	m.parseLine(userInput)
	return m, nil
}

func (m *model) parseLine(line string) {
	cmd, err := parser.Diagnose(line, parser.WithPrefix(m.prefix))
	if err != nil {
		m.logger.Debug("rejected line", "line", line, "reason", err)
		m.status = "rejected"
		m.appendHistory(rejectedStyle.Render("✗ not a recognized command"))
		return
	}
	m.logger.Debug("accepted line", "command", cmd.Verb, "task", cmd.TaskName)

	rendered, err := display.FormatRecord(cmd, m.format)
	if err != nil {
		m.status = "error"
		m.appendHistory(rejectedStyle.Render("✗ " + err.Error()))
		return
	}
	m.status = "accepted: " + display.Summary(cmd)
	m.appendHistory(acceptedStyle.Render("✓ " + display.Summary(cmd)))
	m.recordViewport.SetContent(rendered)
	m.recordViewport.GotoTop()
}

func (m *model) appendHistory(entry string) {
	m.history = append(m.history, entry)
	m.historyViewport.SetContent(strings.Join(m.history, "\n"))
	m.historyViewport.GotoBottom()
}

func (m *model) getUniqueHistory() string {
	var uniqueHistory []string
	seen := make(map[string]bool)
	for i := len(m.lineHistory) - 1; i >= 0; i-- {
		line := m.lineHistory[i]
		if !seen[line] {
			seen[line] = true
			uniqueHistory = append(uniqueHistory, line)
		}
		if len(uniqueHistory) >= 10 {
			break
		}
	}
	if len(uniqueHistory) == 0 {
		return "No command history yet."
	}
	var b strings.Builder
	b.WriteString("Last 10 unique lines:\n")
	for i := len(uniqueHistory) - 1; i >= 0; i-- {
		b.WriteString(fmt.Sprintf("  %s\n", uniqueHistory[i]))
	}
	return b.String()
}

func (m model) View() string {
	// --- INPUT SECTION ---
	var inputContent strings.Builder
	inputContent.WriteString(m.textInput.View())

	if m.isSuggesting && len(m.suggestions) > 0 {
		inputContent.WriteString("\n")
		var suggestionParts []string
		for i, sug := range m.suggestions {
			if i == m.activeSuggestion {
				suggestionParts = append(suggestionParts, activeStyle.Render(sug))
			} else {
				suggestionParts = append(suggestionParts, suggestionStyle.Render(sug))
			}
		}
		inputContent.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, suggestionParts...))
	}

	inputHistory := lipgloss.JoinVertical(lipgloss.Left,
		m.historyViewport.View(),
		inputContent.String(),
	)

	inputSection := sectionStyle.
		Width(m.width - 2).
		Height(m.height * 2 / 5).
		Render(titleStyle.Render("Input") + "\n" + inputHistory)

	// --- RECORD SECTION ---
	statusLine := fmt.Sprintf("Status: %s", m.status)
	recordContent := statusLine + "\n" + m.recordViewport.View()
	recordSection := sectionStyle.
		Width(m.width - 2).
		Height(m.height - lipgloss.Height(inputSection) - 2).
		Render(titleStyle.Render("Record") + "\n" + recordContent)

	return lipgloss.JoinVertical(lipgloss.Left,
		inputSection,
		recordSection,
	)
}

func (m *model) getHelp() string {
	return fmt.Sprintf(`Available commands:
  %[1]s create <name>:<description>:<priority 0-2>:<percent 0-100>
  %[1]s update <name>:[description]:[priority 0-2]:<percent 0-100>
  %[1]s suspend <name>
  %[1]s abandon <name>
  /history             - Show last 10 unique lines
  /help                - Show this help message
  /clear               - Clear all views
  /exit                - Exit the application`, m.prefix)
}
