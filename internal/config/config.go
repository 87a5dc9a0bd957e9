// Package config holds server configuration, loadable from a YAML file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig holds configuration for the cpusched server.
type ServerConfig struct {
	Addr           string // Listen address (default ":8080")
	LogLevel       string // Log level: debug, info, warn, error
	LogFormat      string // Log format: text, json
	DefaultQuantum int    // Quantum used for RR requests that omit one
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		DefaultQuantum: 2,
	}
}

// Load reads a YAML config file and overlays it on the defaults. Keys:
// addr, log_level, log_format, default_quantum.
func Load(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("addr", cfg.Addr)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("default_quantum", cfg.DefaultQuantum)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.Addr = v.GetString("addr")
	cfg.LogLevel = v.GetString("log_level")
	cfg.LogFormat = v.GetString("log_format")
	cfg.DefaultQuantum = v.GetInt("default_quantum")

	if cfg.DefaultQuantum <= 0 {
		return cfg, fmt.Errorf("config %s: default_quantum must be positive, got %d", path, cfg.DefaultQuantum)
	}
	return cfg, nil
}
