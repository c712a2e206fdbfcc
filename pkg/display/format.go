package display

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nickhildpac/slackbot-parser/pkg/parser"
	"gopkg.in/yaml.v3"
)

// Format selects how a parsed command is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", name)
}

// FormatRecord renders cmd in the given format. Absent fields are shown as
// "-" in text output and as null in JSON and YAML.
func FormatRecord(cmd parser.Command, format Format) (string, error) {
	switch format {
	case FormatText, "":
		return formatText(cmd), nil
	case FormatJSON:
		b, err := json.MarshalIndent(cmd, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(cmd)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return strings.TrimRight(string(b), "\n"), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func formatText(cmd parser.Command) string {
	rows := [][2]string{
		{"Command", string(cmd.Verb)},
		{"Task Name", cmd.TaskName},
		{"Task Description", optString(cmd.TaskDescription)},
		{"Priority Level", optInt(cmd.PriorityLevel)},
		{"Percent Completion", optInt(cmd.PercentCompletion)},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-19s %s", row[0]+":", row[1])
	}
	return b.String()
}

func optString(s *string) string {
	if s == nil {
		return "-"
	}
	return strconv.Quote(*s)
}

func optInt(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

// Summary is a one-line description of an accepted command.
func Summary(cmd parser.Command) string {
	return fmt.Sprintf("%s %s", cmd.Verb, cmd.TaskName)
}
