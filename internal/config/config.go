// Package config loads the service configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all GoCaesar configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Remote   RemoteConfig   `yaml:"remote"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
	IdleTimeout  string `yaml:"idle_timeout"`
}

// AnalysisConfig configures the breaking engine defaults.
type AnalysisConfig struct {
	// DefaultLang is used when a caller supplies no language hint.
	DefaultLang string `yaml:"default_lang"`
}

// RemoteConfig configures the optional external analyze service.
type RemoteConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  "30s",
			WriteTimeout: "60s",
			IdleTimeout:  "120s",
		},
		Analysis: AnalysisConfig{DefaultLang: "auto"},
		Remote: RemoteConfig{
			Enabled: false,
			Timeout: "10s",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path loads defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from GOCAESAR_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("GOCAESAR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("GOCAESAR_DEFAULT_LANG"); v != "" {
		c.Analysis.DefaultLang = v
	}
	if v := os.Getenv("GOCAESAR_REMOTE_URL"); v != "" {
		c.Remote.Enabled = true
		c.Remote.BaseURL = v
	}
	if v := os.Getenv("GOCAESAR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Duration parses one of the config's timeout strings, falling back to
// def on empty or invalid values.
func Duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
