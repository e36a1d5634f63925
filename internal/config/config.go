package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the sync daemon
type Config struct {
	Timing   TimingConfig
	Clockify ClockifyConfig
	Telegram TelegramConfig
	Sync     SyncConfig
	HTTP     HTTPConfig
	Log      LogConfig
}

// TimingConfig holds source service configuration
type TimingConfig struct {
	URL   string `env:"T2C_TIMING_URL"`
	Token string `env:"T2C_TIMING_TOKEN"`
}

// ClockifyConfig holds destination service configuration
type ClockifyConfig struct {
	URL           string `env:"T2C_CLOCKIFY_URL"`
	Token         string `env:"T2C_CLOCKIFY_TOKEN"`
	WorkspaceName string `env:"T2C_CLOCKIFY_WORKSPACE"`
}

// TelegramConfig holds notification sink configuration.
// An empty token disables notifications.
type TelegramConfig struct {
	Token  string `env:"T2C_TELEGRAM_TOKEN"`
	ChatID string `env:"T2C_TELEGRAM_CHAT_ID"`
}

// SyncConfig holds sync engine configuration
type SyncConfig struct {
	RefreshInterval time.Duration `env:"T2C_REFRESH_INTERVAL"`
	BackfillDays    int           `env:"T2C_BACKFILL_DAYS"`
	PollWindowDays  int           `env:"T2C_POLL_WINDOW_DAYS"`
	RequestDelay    time.Duration `env:"T2C_REQUEST_DELAY"`
}

// HTTPConfig holds outbound HTTP configuration
type HTTPConfig struct {
	Timeout time.Duration `env:"T2C_HTTP_TIMEOUT"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `env:"T2C_LOG_LEVEL"`
	Format string `env:"T2C_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Timing: TimingConfig{
			URL: "https://web.timingapp.com/api/v1/",
		},
		Clockify: ClockifyConfig{
			URL: "https://api.clockify.me/api/v1/",
		},
		Sync: SyncConfig{
			RefreshInterval: 300 * time.Second,
			BackfillDays:    30,
			PollWindowDays:  7,
			RequestDelay:    1 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Timing configuration
	if url := os.Getenv("T2C_TIMING_URL"); url != "" {
		c.Timing.URL = url
	}
	if token := os.Getenv("T2C_TIMING_TOKEN"); token != "" {
		c.Timing.Token = token
	}

	// Clockify configuration
	if url := os.Getenv("T2C_CLOCKIFY_URL"); url != "" {
		c.Clockify.URL = url
	}
	if token := os.Getenv("T2C_CLOCKIFY_TOKEN"); token != "" {
		c.Clockify.Token = token
	}
	if workspace := os.Getenv("T2C_CLOCKIFY_WORKSPACE"); workspace != "" {
		c.Clockify.WorkspaceName = workspace
	}

	// Telegram configuration
	if token := os.Getenv("T2C_TELEGRAM_TOKEN"); token != "" {
		c.Telegram.Token = token
	}
	if chatID := os.Getenv("T2C_TELEGRAM_CHAT_ID"); chatID != "" {
		c.Telegram.ChatID = chatID
	}

	// Sync configuration
	if interval := os.Getenv("T2C_REFRESH_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Sync.RefreshInterval = d
		}
	}
	if days := os.Getenv("T2C_BACKFILL_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Sync.BackfillDays = n
		}
	}
	if days := os.Getenv("T2C_POLL_WINDOW_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Sync.PollWindowDays = n
		}
	}
	if delay := os.Getenv("T2C_REQUEST_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Sync.RequestDelay = d
		}
	}

	// HTTP configuration
	if timeout := os.Getenv("T2C_HTTP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.HTTP.Timeout = d
		}
	}

	// Log configuration
	if level := os.Getenv("T2C_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv("T2C_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate timing configuration
	if c.Timing.URL == "" {
		return &ConfigError{Field: "timing.url", Message: "source service URL cannot be empty"}
	}
	if c.Timing.Token == "" {
		return &ConfigError{Field: "timing.token", Message: "source service token cannot be empty"}
	}

	// Validate clockify configuration
	if c.Clockify.URL == "" {
		return &ConfigError{Field: "clockify.url", Message: "destination service URL cannot be empty"}
	}
	if c.Clockify.Token == "" {
		return &ConfigError{Field: "clockify.token", Message: "destination service token cannot be empty"}
	}
	if c.Clockify.WorkspaceName == "" {
		return &ConfigError{Field: "clockify.workspace_name", Message: "destination workspace name cannot be empty"}
	}

	// Validate telegram configuration: a token without a chat is unusable
	if c.Telegram.Token != "" && c.Telegram.ChatID == "" {
		return &ConfigError{Field: "telegram.chat_id", Message: "chat id is required when a telegram token is set"}
	}

	// Validate sync configuration
	if c.Sync.RefreshInterval <= 0 {
		return &ConfigError{Field: "sync.refresh_interval", Message: "refresh interval must be positive"}
	}
	if c.Sync.BackfillDays < 0 {
		return &ConfigError{Field: "sync.backfill_days", Message: "backfill days cannot be negative"}
	}
	if c.Sync.PollWindowDays <= 0 {
		return &ConfigError{Field: "sync.poll_window_days", Message: "poll window days must be positive"}
	}
	if c.Sync.RequestDelay < 0 {
		return &ConfigError{Field: "sync.request_delay", Message: "request delay cannot be negative"}
	}

	// Validate HTTP configuration
	if c.HTTP.Timeout <= 0 {
		return &ConfigError{Field: "http.timeout", Message: "HTTP timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
