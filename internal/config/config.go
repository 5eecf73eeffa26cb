package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the client configuration, loaded from a YAML file with
// environment overrides for the deployment-specific values
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Sync       SyncConfig       `yaml:"sync"`
	Network    NetworkConfig    `yaml:"network"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type SyncConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	PacingMS    int `yaml:"pacing_ms"`
}

type NetworkConfig struct {
	ProbeIntervalSeconds int `yaml:"probe_interval_seconds"`
	StabilizationMS      int `yaml:"stabilization_ms"`
}

type MonitoringConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from the given YAML file (optional), applies
// .env / environment overrides and fills defaults
func Load(path string) (*Config, error) {
	// Missing .env is fine, real environment still applies
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FIELDSYNC_SERVER_URL"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("FIELDSYNC_DB_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("FIELDSYNC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FIELDSYNC_METRICS_ADDR"); v != "" {
		c.Monitoring.ListenAddr = v
		c.Monitoring.Enabled = true
	}
}

func (c *Config) applyDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = "http://localhost:8080"
	}
	if c.Server.TimeoutSeconds <= 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "fieldsync-client.db"
	}
	if c.Sync.MaxAttempts <= 0 {
		c.Sync.MaxAttempts = 3
	}
	if c.Sync.PacingMS <= 0 {
		c.Sync.PacingMS = 100
	}
	if c.Network.ProbeIntervalSeconds <= 0 {
		c.Network.ProbeIntervalSeconds = 10
	}
	if c.Network.StabilizationMS <= 0 {
		c.Network.StabilizationMS = 1000
	}
	if c.Monitoring.ListenAddr == "" {
		c.Monitoring.ListenAddr = ":9090"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// RequestTimeout returns the HTTP client timeout
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

// PacingInterval returns the inter-item drain delay
func (c *Config) PacingInterval() time.Duration {
	return time.Duration(c.Sync.PacingMS) * time.Millisecond
}

// ProbeInterval returns the connectivity probe interval
func (c *Config) ProbeInterval() time.Duration {
	return time.Duration(c.Network.ProbeIntervalSeconds) * time.Second
}

// Stabilization returns the restoration debounce window
func (c *Config) Stabilization() time.Duration {
	return time.Duration(c.Network.StabilizationMS) * time.Millisecond
}
