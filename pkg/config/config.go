package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "TODO_"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	// CORSAllowedOrigins lists origins permitted to call the API from a
	// browser. Defaults target the local dev frontend.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// Addr returns the host:port the server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds PostgreSQL connection settings. ConnString, when
// set, takes precedence over the individual fields.
type DatabaseConfig struct {
	ConnString string `koanf:"conn_string"`
	Host       string `koanf:"host"`
	Port       string `koanf:"port"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Name       string `koanf:"name"`
	SSLMode    string `koanf:"ssl_mode"`
}

// DSN returns a connection string usable by both pgx and database/sql.
func (c *DatabaseConfig) DSN() string {
	if c.ConnString != "" {
		return c.ConnString
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			CORSAllowedOrigins: []string{
				"http://localhost:5173",
				"http://127.0.0.1:5173",
			},
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "",
			Name:     "todos",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// envToPath maps environment variables onto config paths. Explicit
// mappings are required because the config keys themselves contain
// underscores.
var envToPath = map[string]string{
	"TODO_SERVER_HOST":                 "server.host",
	"TODO_SERVER_PORT":                 "server.port",
	"TODO_SERVER_CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",
	"TODO_DB_CONN_STRING":              "database.conn_string",
	"TODO_DB_HOST":                     "database.host",
	"TODO_DB_PORT":                     "database.port",
	"TODO_DB_USER":                     "database.user",
	"TODO_DB_PASSWORD":                 "database.password",
	"TODO_DB_NAME":                     "database.name",
	"TODO_DB_SSL_MODE":                 "database.ssl_mode",
	"TODO_LOG_LEVEL":                   "log.level",
	"TODO_LOG_JSON":                    "log.json",
}

// Load builds the configuration from defaults overridden by TODO_*
// environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			path, ok := envToPath[key]
			if !ok {
				return transformEnvKey(key), value
			}
			if path == "server.cors_allowed_origins" {
				return path, splitOrigins(value)
			}
			return path, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// transformEnvKey converts an unmapped environment variable name to a
// koanf path, e.g. TODO_SERVER_HOST -> server.host.
func transformEnvKey(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "_", ".")
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
