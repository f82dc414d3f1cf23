package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "./data", cfg.DataSource)
	assert.Equal(t, 10*time.Second, cfg.LoadTimeout)
	assert.Equal(t, "economy", cfg.DefaultCategory)
	assert.Equal(t, 1000, cfg.SessionCacheSize)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 18.2208, cfg.Map.CenterLat)
	assert.Equal(t, -66.5901, cfg.Map.CenterLng)
	assert.Equal(t, 9, cfg.Map.Zoom)
	assert.Equal(t, "© OpenStreetMap contributors", cfg.Map.Attribution)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfig_CustomEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SOURCE", "https://cdn.example.org/painel")
	t.Setenv("LOAD_TIMEOUT", "3s")
	t.Setenv("SESSION_CACHE_SIZE", "50")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("MAP_ZOOM", "11")
	t.Setenv("DEFAULT_CATEGORY", "health")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "https://cdn.example.org/painel", cfg.DataSource)
	assert.Equal(t, 3*time.Second, cfg.LoadTimeout)
	assert.Equal(t, 50, cfg.SessionCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 11, cfg.Map.Zoom)
	assert.Equal(t, "health", cfg.DefaultCategory)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.TracingEnabled)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"duração inválida", "LOAD_TIMEOUT", "depressa", "LOAD_TIMEOUT"},
		{"shutdown negativo", "SHUTDOWN_TIMEOUT", "-1s", "SHUTDOWN_TIMEOUT"},
		{"cache vazio", "SESSION_CACHE_SIZE", "0", "SESSION_CACHE_SIZE"},
		{"ttl zero", "SESSION_TTL", "0s", "SESSION_TTL"},
		{"zoom fora do intervalo", "MAP_ZOOM", "25", "MAP_ZOOM"},
		{"esquema desconhecido", "DATA_SOURCE", "ftp://dados", "DATA_SOURCE"},
		{"formato de log", "LOG_FORMAT", "xml", "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsRemoteSource(t *testing.T) {
	assert.True(t, IsRemoteSource("https://example.org/data"))
	assert.True(t, IsRemoteSource("http://localhost:8000"))
	assert.False(t, IsRemoteSource("./data"))
	assert.False(t, IsRemoteSource("/srv/painel/data"))
}
