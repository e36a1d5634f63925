package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestNewLoggerWithWriter(t *testing.T) {
	t.Run("json format emits structured lines", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerWithWriter(&Config{Level: "info", Format: "json"}, &buf)

		logger.Info().Str("title", "Design review").Msg("time entry created")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "time entry created", line["message"])
		assert.Equal(t, "Design review", line["title"])
		assert.Equal(t, "info", line["level"])
		assert.Contains(t, line, "time")
	})

	t.Run("level filters lower severity events", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerWithWriter(&Config{Level: "warn", Format: "json"}, &buf)

		logger.Info().Msg("dropped")
		logger.Warn().Msg("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("console format is human readable", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, &buf)

		logger.Info().Msg("starting sync")
		assert.Contains(t, buf.String(), "starting sync")
	})

	t.Run("nil config falls back to defaults", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerWithWriter(nil, &buf)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}
