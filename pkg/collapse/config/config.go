// Package config loads collapse settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/rebarcollapse-go/pkg/collapse"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/messages"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/parser"
	"github.com/ukaji3/rebarcollapse-go/pkg/collapse/workbook"
)

// Environment variables overriding file settings.
const (
	EnvMarkers   = "COLLAPSE_MARKERS"
	EnvLanguage  = "COLLAPSE_LANGUAGE"
	EnvHeaderRow = "COLLAPSE_HEADER_ROW"
	EnvLogLevel  = "COLLAPSE_LOG_LEVEL"
)

// Config holds all user-tunable settings.
type Config struct {
	ScheduleMarkers  []string `yaml:"schedule_markers"`
	Language         string   `yaml:"language"`
	DecimalSeparator string   `yaml:"decimal_separator"`
	GroupSeparator   string   `yaml:"group_separator"`
	HeaderRow        int      `yaml:"header_row"`
	LogLevel         string   `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ScheduleMarkers: append([]string(nil), collapse.DefaultMarkers...),
		Language:        string(messages.English),
		HeaderRow:       1,
		LogLevel:        "info",
	}
}

// Load reads settings from path (optional), then applies overrides from a
// .env file in envFile (optional) and the process environment. Values are
// not range-checked; call Validate once every override is applied.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		// godotenv never overrides variables already set.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load env file: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvMarkers); ok {
		c.ScheduleMarkers = nil
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				c.ScheduleMarkers = append(c.ScheduleMarkers, m)
			}
		}
	}
	if v, ok := os.LookupEnv(EnvLanguage); ok {
		c.Language = v
	}
	if v, ok := os.LookupEnv(EnvHeaderRow); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvHeaderRow, err)
		}
		c.HeaderRow = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !messages.Supported(messages.Language(c.Language)) {
		return fmt.Errorf("unsupported language: %q", c.Language)
	}
	if c.HeaderRow < 1 {
		return fmt.Errorf("header_row must be at least 1, got %d", c.HeaderRow)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	for _, sep := range []string{c.DecimalSeparator, c.GroupSeparator} {
		if sep != "" && utf8.RuneCountInString(sep) != 1 {
			return fmt.Errorf("separator must be a single character, got %q", sep)
		}
	}
	if c.DecimalSeparator != "" && c.DecimalSeparator == c.GroupSeparator {
		return errors.New("decimal and group separators must differ")
	}
	return nil
}

// Locale returns the number format described by the separators.
func (c Config) Locale() parser.Locale {
	var loc parser.Locale
	if c.DecimalSeparator != "" {
		loc.Decimal, _ = utf8.DecodeRuneInString(c.DecimalSeparator)
	}
	if c.GroupSeparator != "" {
		loc.Group, _ = utf8.DecodeRuneInString(c.GroupSeparator)
	}
	return loc
}

// CollapseOptions builds the options for collapse.Run.
func (c Config) CollapseOptions() collapse.Options {
	return collapse.Options{
		Markers:  append([]string(nil), c.ScheduleMarkers...),
		Language: messages.Language(c.Language),
		Locale:   c.Locale(),
	}
}

// WorkbookOptions builds the options for opening a workbook.
func (c Config) WorkbookOptions(selection []string) workbook.Options {
	return workbook.Options{
		HeaderRow: c.HeaderRow,
		Selection: selection,
	}
}
