package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/pkg/logger"
)

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "debug", Service: "startnet-api", Out: &buf})

	l.Component("auth").Info().Str("email", "a@b.co").Msg("signup")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "startnet-api", line["service"])
	assert.Equal(t, "auth", line["component"])
	assert.Equal(t, "signup", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestNew_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("no se escribe")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí")
	assert.NotZero(t, buf.Len())
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Out: &buf})

	ctx := l.WithContext(context.Background())
	zerolog.Ctx(ctx).Error().Msg("desde ctx")
	assert.Contains(t, buf.String(), "desde ctx")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("loud"))
}
