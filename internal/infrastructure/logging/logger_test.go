package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "production", cfg: NewConfig("warn", false)},
		{name: "development", cfg: NewConfig("debug", true)},
		{name: "bad level", cfg: Config{Level: "loud", OutputPaths: []string{"stderr"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger.Logger)
		})
	}
}

func TestNewConfigWritesToStderr(t *testing.T) {
	cfg := NewConfig("info", true)
	assert.Equal(t, "info", cfg.Level)
	assert.True(t, cfg.Development)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	level, err = parseLevel("nope")
	assert.Error(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}

func TestForRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := &Logger{Logger: zap.New(core)}

	logger.ForRun("run_01HZX").Info("started")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "run_01HZX", logs.All()[0].ContextMap()["run_id"])
}
