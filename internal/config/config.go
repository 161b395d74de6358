// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Root      RootConfig
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Watch     WatchConfig
}

// RootConfig identifies the watched root directory.
type RootConfig struct {
	// Dir is the directory whose flat listing the tag tree is derived from.
	Dir string `envconfig:"ROOT_DIR" default:"."`
	// Scheme restricts tree queries to local roots; anything other than
	// "file" yields an empty tree.
	Scheme string `envconfig:"ROOT_SCHEME" default:"file"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8700"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// WatchConfig holds filesystem watch configuration.
type WatchConfig struct {
	// Excludes is accepted for forward compatibility but not yet applied
	// to the event stream.
	Excludes []string `envconfig:"WATCH_EXCLUDES"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Root:   RootConfig{Dir: ".", Scheme: "file"},
		Server: ServerConfig{Port: "8700", Host: "0.0.0.0"},
		Logging: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
