package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/jcp-backend-service/internal/config"
)

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.EnvProd, &buf)

	log.Info().Str("route", "/api/ping").Msg("served")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "served", entry["message"])
	assert.Equal(t, "/api/ping", entry["route"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "pid")
}

func TestNew_LeavesGlobalsAlone(t *testing.T) {
	assert.Equal(t, "timestamp", zerolog.TimestampFieldName)

	zerolog.TimestampFieldName = "ts"
	t.Cleanup(func() {
		zerolog.TimestampFieldName = "timestamp"
	})

	var buf bytes.Buffer
	log := New(config.EnvProd, &buf)
	log.Info().Msg("served")

	assert.Equal(t, "ts", zerolog.TimestampFieldName)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "ts")
}

func TestNew_LevelByEnv(t *testing.T) {
	tests := []struct {
		env   string
		level zerolog.Level
	}{
		{config.EnvLocal, zerolog.TraceLevel},
		{config.EnvDev, zerolog.DebugLevel},
		{config.EnvProd, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log := New(tt.env, &bytes.Buffer{})
			assert.Equal(t, tt.level, log.GetLevel())
		})
	}
}

func TestGorm_ProdOnlyWarns(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.EnvProd, &buf)
	gl := Gorm(log, config.EnvProd)

	gl.Info(context.Background(), "statement %s", "SELECT 1")
	assert.Empty(t, buf.String())

	gl.Warn(context.Background(), "slow %s", time.Second)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"component":"gorm"`)
}
