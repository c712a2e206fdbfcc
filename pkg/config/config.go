// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nickhildpac/slackbot-parser/pkg/display"
	"github.com/nickhildpac/slackbot-parser/pkg/parser"
)

// Default values.
const (
	DefaultOutput      = "text"
	DefaultHistoryFile = "/tmp/slackbot-history.tmp"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"

	// DefaultConfigFile is read from the working directory when no path is given.
	DefaultConfigFile = "sbparse.toml"
)

// Config holds the full configuration for sbparse.
type Config struct {
	Prefix      string `toml:"prefix"`
	Output      string `toml:"output"` // text, json or yaml
	HistoryFile string `toml:"history_file"`

	Log LogConfig `toml:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json, logfmt
	File   string `toml:"file"`   // empty means stderr
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		Prefix:      parser.DefaultPrefix,
		Output:      DefaultOutput,
		HistoryFile: DefaultHistoryFile,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load loads configuration in priority order:
// 1. Defaults
// 2. Config file (path, or sbparse.toml in the working directory)
// 3. Environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			file = DefaultConfigFile
		}
	}
	if file != "" {
		if err := loadFile(cfg, file); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", file, err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("SLACKBOT_PREFIX"); v != "" {
		cfg.Prefix = v
	}
	if v := os.Getenv("SLACKBOT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("SLACKBOT_HISTORY_FILE"); v != "" {
		cfg.HistoryFile = v
	}
	if v := os.Getenv("SLACKBOT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SLACKBOT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("SLACKBOT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Prefix == "" {
		return errors.New("prefix must not be empty")
	}
	if strings.ContainsAny(c.Prefix, " \t\r\n'\"") {
		return fmt.Errorf("prefix %q must be a single unquoted word", c.Prefix)
	}
	if _, err := display.ParseFormat(c.Output); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() display.Format {
	f, err := display.ParseFormat(c.Output)
	if err != nil {
		return display.FormatText
	}
	return f
}
