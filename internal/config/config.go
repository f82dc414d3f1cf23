// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - SHUTDOWN_TIMEOUT: Tempo máximo para encerramento gracioso (default: 10s)
//
// ## Dados
//   - DATA_SOURCE: Diretório local ou URL base http(s) com municipalities.json e indicators.json (default: ./data)
//   - LOAD_TIMEOUT: Tempo máximo para a carga inicial dos dados (default: 10s)
//   - DEFAULT_CATEGORY: Categoria de indicadores exibida inicialmente (default: economy)
//
// ## Sessões
//   - SESSION_CACHE_SIZE: Quantidade máxima de sessões em memória (default: 1000)
//   - SESSION_TTL: Tempo de vida de uma sessão ociosa (default: 30m)
//
// ## Mapa
//   - MAP_CENTER_LAT / MAP_CENTER_LNG: Centro do mapa (default: 18.2208, -66.5901)
//   - MAP_ZOOM: Zoom inicial (default: 9)
//   - MAP_TILE_URL: Template de URL dos tiles (default: OpenStreetMap)
//   - MAP_ATTRIBUTION: Texto de atribuição dos tiles
//
// ## Observabilidade
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json ou console (default: json)
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MapConfig descreve o mapa base entregue ao Leaflet
type MapConfig struct {
	CenterLat   float64 `json:"center_lat"`
	CenterLng   float64 `json:"center_lng"`
	Zoom        int     `json:"zoom"`
	TileURL     string  `json:"tile_url"`
	Attribution string  `json:"attribution"`
}

type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration

	DataSource      string
	LoadTimeout     time.Duration
	DefaultCategory string

	SessionCacheSize int
	SessionTTL       time.Duration

	Map MapConfig

	LogLevel  string
	LogFormat string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

// LoadConfig lê o .env (se existir) e as variáveis de ambiente, aplicando defaults
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DataSource:      getEnv("DATA_SOURCE", "./data"),
		LoadTimeout:     getEnvDuration("LOAD_TIMEOUT", 10*time.Second),
		DefaultCategory: getEnv("DEFAULT_CATEGORY", "economy"),

		SessionCacheSize: getEnvInt("SESSION_CACHE_SIZE", 1000),
		SessionTTL:       getEnvDuration("SESSION_TTL", 30*time.Minute),

		Map: MapConfig{
			CenterLat:   getEnvFloat("MAP_CENTER_LAT", 18.2208),
			CenterLng:   getEnvFloat("MAP_CENTER_LNG", -66.5901),
			Zoom:        getEnvInt("MAP_ZOOM", 9),
			TileURL:     getEnv("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"),
			Attribution: getEnv("MAP_ATTRIBUTION", "© OpenStreetMap contributors"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejeita combinações que impediriam o servidor de subir
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataSource) == "" {
		return errors.New("DATA_SOURCE is required")
	}
	if IsRemoteSource(c.DataSource) {
		if !strings.HasPrefix(c.DataSource, "http://") && !strings.HasPrefix(c.DataSource, "https://") {
			return fmt.Errorf("invalid DATA_SOURCE scheme: %s", c.DataSource)
		}
	}
	if c.LoadTimeout <= 0 {
		return errors.New("invalid LOAD_TIMEOUT: must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("invalid SHUTDOWN_TIMEOUT: must be positive")
	}
	if c.SessionCacheSize < 1 {
		return errors.New("invalid SESSION_CACHE_SIZE: must be at least 1")
	}
	if c.SessionTTL <= 0 {
		return errors.New("invalid SESSION_TTL: must be positive")
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 19 {
		return fmt.Errorf("invalid MAP_ZOOM %d: must be between 0 and 19", c.Map.Zoom)
	}
	if c.DefaultCategory == "" {
		return errors.New("DEFAULT_CATEGORY is required")
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid LOG_FORMAT %q: use json or console", c.LogFormat)
	}
	return nil
}

// IsRemoteSource indica se DATA_SOURCE aponta para uma URL em vez de um diretório
func IsRemoteSource(source string) bool {
	return strings.Contains(source, "://")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvDuration devolve -1 quando o valor existe mas não é uma duração válida,
// para que Validate reporte a variável em vez de cair silenciosamente no default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err != nil {
			return -1
		}
		return d
	}
	return defaultValue
}
