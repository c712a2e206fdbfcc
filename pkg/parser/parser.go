// Package parser turns one line of slackbot chat text into a task command.
//
// Expected syntax:
//
//	/slackbot create <name>:<description>:<priority>:<percent>
//	/slackbot update <name>:[description]:[priority]:<percent>
//	/slackbot suspend <name>
//	/slackbot abandon <name>
//
// The parser is stateless and safe for concurrent use. It never panics on
// untrusted input: a line is either a fully valid Command or it is rejected.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPrefix is the word every slackbot line starts with.
const DefaultPrefix = "/slackbot"

const fieldSeparator = ":"

// Verb names the requested task action.
type Verb string

const (
	VerbCreate  Verb = "create"
	VerbUpdate  Verb = "update"
	VerbSuspend Verb = "suspend"
	VerbAbandon Verb = "abandon"
)

// Verbs returns the known verbs in documentation order.
func Verbs() []Verb {
	return []Verb{VerbCreate, VerbUpdate, VerbSuspend, VerbAbandon}
}

// Priority and completion bounds, inclusive.
const (
	MinPriority = 0
	MaxPriority = 2
	MinPercent  = 0
	MaxPercent  = 100
)

// Command is a validated slackbot command.
//
// A nil pointer means the field is absent: not given on update, or not
// applicable to suspend and abandon. An update with an empty description
// carries a non-nil pointer to "".
type Command struct {
	Verb              Verb    `json:"command" yaml:"command"`
	TaskName          string  `json:"task_name" yaml:"task_name"`
	TaskDescription   *string `json:"task_description" yaml:"task_description"`
	PriorityLevel     *int    `json:"priority_level" yaml:"priority_level"`
	PercentCompletion *int    `json:"percent_completion" yaml:"percent_completion"`
}

type options struct {
	prefix string
}

// Option configures a parse call.
type Option func(*options)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Parse returns the command described by line, or false if line is not a
// valid slackbot command for any reason.
func Parse(line string, opts ...Option) (Command, bool) {
	cmd, err := Diagnose(line, opts...)
	if err != nil {
		return Command{}, false
	}
	return cmd, true
}

// Diagnose is Parse with the rejection reason. The returned error wraps one
// of the Err* values of this package.
func Diagnose(line string, opts ...Option) (Command, error) {
	o := options{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := Tokenize(line)
	if err != nil {
		return Command{}, err
	}
	if len(tokens) < 3 {
		return Command{}, fmt.Errorf("%w: got %d, want at least 3", ErrTooFewTokens, len(tokens))
	}
	if tokens[0] != o.prefix {
		return Command{}, fmt.Errorf("%w: %q", ErrPrefix, tokens[0])
	}

	// words after the parameter word are ignored
	fields := strings.Split(tokens[2], fieldSeparator)

	switch verb := Verb(tokens[1]); verb {
	case VerbCreate:
		return parseCreate(fields)
	case VerbUpdate:
		return parseUpdate(fields)
	case VerbSuspend, VerbAbandon:
		return parseNameOnly(verb, fields)
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, tokens[1])
	}
}

func parseCreate(fields []string) (Command, error) {
	if err := checkFieldCount(VerbCreate, fields, 4); err != nil {
		return Command{}, err
	}
	if err := requireNonEmpty("task name", fields[0]); err != nil {
		return Command{}, err
	}
	if err := requireNonEmpty("task description", fields[1]); err != nil {
		return Command{}, err
	}
	priority, err := parseBounded("priority level", fields[2], MinPriority, MaxPriority)
	if err != nil {
		return Command{}, err
	}
	percent, err := parseBounded("percent completion", fields[3], MinPercent, MaxPercent)
	if err != nil {
		return Command{}, err
	}

	desc := fields[1]
	return Command{
		Verb:              VerbCreate,
		TaskName:          fields[0],
		TaskDescription:   &desc,
		PriorityLevel:     &priority,
		PercentCompletion: &percent,
	}, nil
}

func parseUpdate(fields []string) (Command, error) {
	if err := checkFieldCount(VerbUpdate, fields, 4); err != nil {
		return Command{}, err
	}
	if err := requireNonEmpty("task name", fields[0]); err != nil {
		return Command{}, err
	}
	percent, err := parseBounded("percent completion", fields[3], MinPercent, MaxPercent)
	if err != nil {
		return Command{}, err
	}

	// priority is optional, but when given it has to be valid
	var priority *int
	if fields[2] != "" {
		p, err := parseBounded("priority level", fields[2], MinPriority, MaxPriority)
		if err != nil {
			return Command{}, err
		}
		priority = &p
	}

	desc := fields[1]
	return Command{
		Verb:              VerbUpdate,
		TaskName:          fields[0],
		TaskDescription:   &desc,
		PriorityLevel:     priority,
		PercentCompletion: &percent,
	}, nil
}

func parseNameOnly(verb Verb, fields []string) (Command, error) {
	if err := checkFieldCount(verb, fields, 1); err != nil {
		return Command{}, err
	}
	if err := requireNonEmpty("task name", fields[0]); err != nil {
		return Command{}, err
	}
	return Command{Verb: verb, TaskName: fields[0]}, nil
}

func checkFieldCount(verb Verb, fields []string, want int) error {
	if len(fields) != want {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrFieldCount, verb, want, len(fields))
	}
	return nil
}

func requireNonEmpty(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrEmptyField, name)
	}
	return nil
}

// parseBounded accepts surrounding whitespace and a sign, like a lenient
// integer conversion, and checks lo <= n <= hi.
func parseBounded(name, value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s %q", ErrOutOfRange, name, value)
		}
		return 0, fmt.Errorf("%w: %s %q", ErrNotNumeric, name, value)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, name, n, lo, hi)
	}
	return n, nil
}
