package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dummygen/dummygen-go/internal/dummy"
)

var envKeys = []string{
	"CONFIG_FILE", "PORT", "ENV", "LOG_LEVEL", "MAX_BODY_BYTES",
	"MAX_FIELDS", "MAX_SUB_MODULES", "MAX_ARRAY_SIZE", "MAX_ELEMENTS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

// clearEnv blanks every key Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, dummy.DefaultLimits(), cfg.Limits)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_FIELDS", "50")
	t.Setenv("MAX_SUB_MODULES", "0")
	t.Setenv("MAX_ARRAY_SIZE", "20")
	t.Setenv("MAX_ELEMENTS", "5000")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, dummy.Limits{MaxFields: 50, MaxSubModules: 0, MaxArraySize: 20, MaxElements: 5000}, cfg.Limits)
	assert.Equal(t, RateLimitConfig{RPS: 2.5, Burst: 4}, cfg.RateLimit)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
port: "7070"
logLevel: warn
limits:
  maxFields: 12
  maxSubModules: 2
  maxArraySize: 3
  maxElements: 250
rateLimit:
  rps: 1
  burst: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("MAX_ARRAY_SIZE", "9")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env, "unset keys keep defaults")
	assert.Equal(t, dummy.Limits{MaxFields: 12, MaxSubModules: 2, MaxArraySize: 9, MaxElements: 250}, cfg.Limits, "env wins over file")
	assert.Equal(t, RateLimitConfig{RPS: 1, Burst: 2}, cfg.RateLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "non numeric port", env: map[string]string{"PORT": "http"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "non integer limit", env: map[string]string{"MAX_FIELDS": "lots"}},
		{name: "negative limit", env: map[string]string{"MAX_SUB_MODULES": "-1"}},
		{name: "negative element budget", env: map[string]string{"MAX_ELEMENTS": "-10"}},
		{name: "non numeric rps", env: map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{name: "zero body size", env: map[string]string{"MAX_BODY_BYTES": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yml"))

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("limits: [not, a, map"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
