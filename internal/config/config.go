package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `envconfig:"DB_PATH" default:"data/nestling.db"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	SecretKey    string        `envconfig:"SECRET_KEY" default:"change_me_in_production"`
	TokenTTL     time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"720h"`
	CookieSecure bool          `envconfig:"AUTH_COOKIE_SECURE" default:"false"`
}

// Load reads configuration from the environment, picking up a .env file when
// one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the host:port the server should listen on.
func (cfg ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
