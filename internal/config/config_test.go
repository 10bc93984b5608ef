package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // без .env
	for _, key := range []string{"INCIDENTS_SOURCE", "INCIDENTS_FILE", "HTTP_PORT", "REDIS_ADDR", "DEFAULT_PAGE_SIZE", "MAX_PAGE_SIZE", "WATCH_INCIDENTS_FILE", "RELOAD_DEBOUNCE"} {
		t.Setenv(key, "")
	}
	t.Setenv("INCIDENTS_SOURCE", SourceFile)
	t.Setenv("INCIDENTS_FILE", "assets/incidents.json")
	t.Setenv("DEFAULT_PAGE_SIZE", "10")
	t.Setenv("MAX_PAGE_SIZE", "100")
	t.Setenv("WATCH_INCIDENTS_FILE", "false")
	t.Setenv("RELOAD_DEBOUNCE", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, SourceFile, cfg.IncidentsSource)
	assert.False(t, cfg.WatchIncidentsFile)
	assert.Equal(t, 250*time.Millisecond, cfg.ReloadDebounce)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadConfig_RedisUnset(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INCIDENTS_SOURCE", SourceFile)
	t.Setenv("INCIDENTS_FILE", "assets/incidents.json")
	t.Setenv("DEFAULT_PAGE_SIZE", "10")
	t.Setenv("MAX_PAGE_SIZE", "100")
	t.Setenv("REDIS_ADDR", "")
	require.NoError(t, os.Unsetenv("REDIS_ADDR"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.RedisAddr)

	t.Setenv("REDIS_ADDR", "localhost:6379")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := map[string]map[string]string{
		"postgres without url": {"INCIDENTS_SOURCE": SourcePostgres, "DATABASE_URL": ""},
		"unknown source":       {"INCIDENTS_SOURCE": "s3"},
		"empty file":           {"INCIDENTS_SOURCE": SourceFile, "INCIDENTS_FILE": ""},
		"page size too big":    {"INCIDENTS_SOURCE": SourceFile, "DEFAULT_PAGE_SIZE": "500", "MAX_PAGE_SIZE": "100"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("INCIDENTS_FILE", "assets/incidents.json")
			t.Setenv("DEFAULT_PAGE_SIZE", "10")
			t.Setenv("MAX_PAGE_SIZE", "100")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
