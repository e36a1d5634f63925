package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, when one exists at path
// 3. Override with environment variables
// 4. Validate the result
//
// An empty path skips the file step entirely; a non-empty path that does not
// exist is an error, since the operator asked for it explicitly.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		if err := l.config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// fileConfig mirrors the config.yaml layout. Durations are strings in the
// file ("300s", "5m") and parsed explicitly, field by field, so that a bad
// value fails loudly instead of silently becoming zero.
type fileConfig struct {
	Timing struct {
		URL   string `yaml:"url"`
		Token string `yaml:"token"`
	} `yaml:"timing"`
	Clockify struct {
		URL           string `yaml:"url"`
		Token         string `yaml:"token"`
		WorkspaceName string `yaml:"workspace_name"`
	} `yaml:"clockify"`
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Sync struct {
		RefreshInterval string `yaml:"refresh_interval"`
		BackfillDays    *int   `yaml:"backfill_days"`
		PollWindowDays  *int   `yaml:"poll_window_days"`
		RequestDelay    string `yaml:"request_delay"`
	} `yaml:"sync"`
	HTTP struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"http"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// LoadFromFile loads configuration from a YAML file, overriding only the
// fields the file actually sets.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Timing.URL != "" {
		c.Timing.URL = fc.Timing.URL
	}
	if fc.Timing.Token != "" {
		c.Timing.Token = fc.Timing.Token
	}
	if fc.Clockify.URL != "" {
		c.Clockify.URL = fc.Clockify.URL
	}
	if fc.Clockify.Token != "" {
		c.Clockify.Token = fc.Clockify.Token
	}
	if fc.Clockify.WorkspaceName != "" {
		c.Clockify.WorkspaceName = fc.Clockify.WorkspaceName
	}
	if fc.Telegram.Token != "" {
		c.Telegram.Token = fc.Telegram.Token
	}
	if fc.Telegram.ChatID != "" {
		c.Telegram.ChatID = fc.Telegram.ChatID
	}

	if fc.Sync.RefreshInterval != "" {
		d, err := parseFileDuration("sync.refresh_interval", fc.Sync.RefreshInterval)
		if err != nil {
			return err
		}
		c.Sync.RefreshInterval = d
	}
	if fc.Sync.BackfillDays != nil {
		c.Sync.BackfillDays = *fc.Sync.BackfillDays
	}
	if fc.Sync.PollWindowDays != nil {
		c.Sync.PollWindowDays = *fc.Sync.PollWindowDays
	}
	if fc.Sync.RequestDelay != "" {
		d, err := parseFileDuration("sync.request_delay", fc.Sync.RequestDelay)
		if err != nil {
			return err
		}
		c.Sync.RequestDelay = d
	}
	if fc.HTTP.Timeout != "" {
		d, err := parseFileDuration("http.timeout", fc.HTTP.Timeout)
		if err != nil {
			return err
		}
		c.HTTP.Timeout = d
	}
	if fc.Log.Level != "" {
		c.Log.Level = fc.Log.Level
	}
	if fc.Log.Format != "" {
		c.Log.Format = fc.Log.Format
	}

	return nil
}

// parseFileDuration parses a duration value from the config file
func parseFileDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, &ConfigError{Field: field, Message: fmt.Sprintf("invalid duration %q", value)}
	}
	return d, nil
}
