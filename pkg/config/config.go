package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the arka API server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Admin    AdminConfig    `yaml:"admin"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"5050" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"arka" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`

	MaxOpenConns   int           `yaml:"max_open_conns" default:"20" validate:"min=1"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" default:"5s" validate:"gt=0"`
	// Ledger selects the usage store backing limit counters: "postgres" or "memory".
	Ledger string `yaml:"ledger" default:"postgres" validate:"oneof=postgres memory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// PricingConfig controls the token price cache
type PricingConfig struct {
	DefaultTTL      time.Duration `yaml:"default_ttl" default:"5m" validate:"gt=0"`
	RefreshInterval time.Duration `yaml:"refresh_interval" default:"30s" validate:"gt=0"`
	// AllowStale lets decisions use expired prices for every request.
	AllowStale bool `yaml:"allow_stale"`
}

// AdminConfig contains JWKS settings for the admin API. Admin routes are not mounted when
// JWKSURL is empty.
type AdminConfig struct {
	JWKSURL  string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

// CORSConfig contains cross origin settings for dashboard clients
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" default:"[\"*\"]"`
	MaxAge         int      `yaml:"max_age" default:"300"`
}

// Load reads configPath, expanding ${VAR} references from the environment and an optional .env
// file next to the working directory, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse([]byte(os.ExpandEnv(string(raw))))
}

// Parse decodes YAML configuration, applies defaults and validates it
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// DSN returns the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}
