package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLevel(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, zerologLevel(tracelog.LogLevelError))
	assert.Equal(t, zerolog.WarnLevel, zerologLevel(tracelog.LogLevelWarn))
	assert.Equal(t, zerolog.DebugLevel, zerologLevel(tracelog.LogLevelDebug))
	assert.Equal(t, zerolog.NoLevel, zerologLevel(tracelog.LogLevelNone))
}

func TestLogQuery_UsaLoggerDelContexto(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	logQuery(ctx, tracelog.LogLevelError, "Query", map[string]any{"sql": "SELECT 1"})

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"component":"pgx"`)
	assert.Contains(t, out, `"sql":"SELECT 1"`)
	assert.Contains(t, out, `"message":"Query"`)
}
