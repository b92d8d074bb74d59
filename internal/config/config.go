// Package config loads the optional YAML configuration file for the CLI.
// Command-line flags take precedence over config file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/syllabus-exams/internal/scraper"
)

// Configuration validation errors.
var (
	ErrInvalidYear     = errors.New("year must not be negative")
	ErrInvalidTimeout  = errors.New("http.timeout_sec must be at least 1")
	ErrInvalidLogLevel = errors.New("logging.level must be one of: info, debug, warning, error")
	ErrInvalidTemplate = errors.New("url_template must contain the {code} and {year} placeholders")
)

// Config holds the settings a user can pin in a config file.
type Config struct {
	URLTemplate string        `yaml:"url_template"`
	Year        int           `yaml:"year"`
	CourseFile  string        `yaml:"course_file"`
	Logging     LoggingConfig `yaml:"logging"`
	HTTP        HTTPConfig    `yaml:"http"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HTTPConfig contains HTTP client settings.
type HTTPConfig struct {
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		URLTemplate: scraper.DefaultURLTemplate,
		HTTP: HTTPConfig{
			TimeoutSec: int(scraper.Timeout / time.Second),
			UserAgent:  scraper.UserAgent,
		},
	}
}

// Load reads a YAML config file, applies its values over the defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Year < 0 {
		return ErrInvalidYear
	}
	if c.HTTP.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if !strings.Contains(c.URLTemplate, "{code}") || !strings.Contains(c.URLTemplate, "{year}") {
		return ErrInvalidTemplate
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "info", "debug", "warning", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

// Timeout returns the configured HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSec) * time.Second
}
