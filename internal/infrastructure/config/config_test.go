package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Script config
	assert.Equal(t, "./done.js", cfg.Script.Entry)
	assert.Equal(t, "./src/modules", cfg.Script.ModulesDir)
	assert.False(t, cfg.Script.StrictReads)
	assert.Equal(t, 1024, cfg.Script.MaxCallStack)

	// Logging config
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Metrics config
	assert.Empty(t, cfg.Metrics.File)
}

func TestLoadMatchesDefault(t *testing.T) {
	for _, key := range []string{"DONE_ENTRY", "DONE_MODULES_DIR", "DONE_STRICT_READS", "DONE_MAX_CALL_STACK", "LOG_LEVEL", "LOG_DEV", "DONE_METRICS_FILE"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"DONE_ENTRY":          "./main.js",
		"DONE_MODULES_DIR":    "/opt/done/modules",
		"DONE_STRICT_READS":   "true",
		"DONE_MAX_CALL_STACK": "4096",
		"LOG_LEVEL":           "debug",
		"LOG_DEV":             "true",
		"DONE_METRICS_FILE":   "/tmp/done.prom",
	}

	for key, value := range envVars {
		err := os.Setenv(key, value)
		require.NoError(t, err)
		defer os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./main.js", cfg.Script.Entry)
	assert.Equal(t, "/opt/done/modules", cfg.Script.ModulesDir)
	assert.True(t, cfg.Script.StrictReads)
	assert.Equal(t, 4096, cfg.Script.MaxCallStack)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "/tmp/done.prom", cfg.Metrics.File)
}

func TestLoadInvalidValue(t *testing.T) {
	err := os.Setenv("DONE_STRICT_READS", "sometimes")
	require.NoError(t, err)
	defer os.Unsetenv("DONE_STRICT_READS")

	_, err = Load()
	assert.Error(t, err)
}

func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		dev       string
		wantLevel string
		wantDev   bool
	}{
		{
			name:      "default values",
			wantLevel: "warn",
			wantDev:   false,
		},
		{
			name:      "debug level",
			level:     "debug",
			wantLevel: "debug",
			wantDev:   false,
		},
		{
			name:      "development mode",
			level:     "info",
			dev:       "true",
			wantLevel: "info",
			wantDev:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("LOG_LEVEL")
			os.Unsetenv("LOG_DEV")

			if tt.level != "" {
				require.NoError(t, os.Setenv("LOG_LEVEL", tt.level))
				defer os.Unsetenv("LOG_LEVEL")
			}
			if tt.dev != "" {
				require.NoError(t, os.Setenv("LOG_DEV", tt.dev))
				defer os.Unsetenv("LOG_DEV")
			}

			cfg, err := Load()
			require.NoError(t, err)

			assert.Equal(t, tt.wantLevel, cfg.Logging.Level)
			assert.Equal(t, tt.wantDev, cfg.Logging.Development)
		})
	}
}
