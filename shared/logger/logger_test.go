package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"sitepro/config"
	"sitepro/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetup_JSONOutsideDevelopment(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "warn"
	cfg.App.Name = "sitepro"

	var buf bytes.Buffer
	logger.Setup(cfg, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("bid_id", "bid-1").Msg("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))

	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "sitepro", line["app"])
	assert.Equal(t, "bid-1", line["bid_id"])
	assert.Equal(t, "warn", line["level"])
}

func TestSetup_ConsoleInDevelopment(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.LogLevel = "debug"

	var buf bytes.Buffer
	logger.Setup(cfg, &buf)

	log.Debug().Msg("rental assigned")

	assert.Contains(t, buf.String(), "rental assigned")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "error", level: "error", expected: zerolog.ErrorLevel},
		{name: "empty falls back to info", level: "", expected: zerolog.InfoLevel},
		{name: "unknown falls back to info", level: "verbose", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger.ErrorWithStack(errors.New("failed to update bid"))

	assert.Contains(t, buf.String(), "failed to update bid")
	assert.Contains(t, buf.String(), `"level":"error"`)
}
