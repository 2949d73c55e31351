// Package config provides unified configuration loading for the folio
// service. Supports YAML files, a local .env file, and environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the folio service.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Auth       AuthConfig       `yaml:"auth"`
	Limits     LimitsConfig     `yaml:"limits"`
	Webhook    WebhookConfig    `yaml:"webhook"`
	Events     EventsConfig     `yaml:"events"`
	Logging    LoggingConfig    `yaml:"logging"`
	Extraction ExtractionConfig `yaml:"extraction"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// StorageConfig holds blob storage settings. DataDir is the root the
// filesystem store maps buckets under; ResultsBucket receives job results.
type StorageConfig struct {
	DataDir       string `yaml:"data_dir"`
	ResultsBucket string `yaml:"results_bucket"`
}

// AuthConfig holds authentication settings. SecretName names the secret
// holding the access key; empty disables authentication.
type AuthConfig struct {
	SecretName string `yaml:"secret_name"`
}

// LimitsConfig holds document resource limits. Zero disables a limit.
type LimitsConfig struct {
	MaxFileSize int64 `yaml:"max_file_size"`
	MaxPages    int   `yaml:"max_pages"`
}

// WebhookConfig holds callback delivery settings.
type WebhookConfig struct {
	RetryInterval time.Duration `yaml:"retry_interval"`
}

// EventsConfig holds event bus settings. Driver is log or redis.
type EventsConfig struct {
	Driver  string      `yaml:"driver"`
	Channel string      `yaml:"channel"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LoggingConfig holds logging settings. Format is json or console.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ExtractionConfig holds extraction defaults.
type ExtractionConfig struct {
	DefaultMode string `yaml:"default_mode"`
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing path loads defaults only. A .env file in the
// working directory is folded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Default returns a configuration with sensible defaults for development.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
		Storage: StorageConfig{
			DataDir:       "data",
			ResultsBucket: "folio-results",
		},
		Limits: LimitsConfig{
			MaxFileSize: 100 << 20,
			MaxPages:    500,
		},
		Webhook: WebhookConfig{
			RetryInterval: 2 * time.Second,
		},
		Events: EventsConfig{
			Driver:  "log",
			Channel: "folio.events",
			Redis: RedisConfig{
				Addr: "localhost:6379",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Extraction: ExtractionConfig{
			DefaultMode: "full",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Events.Driver != "log" && c.Events.Driver != "redis" {
		return fmt.Errorf("invalid events driver: %s", c.Events.Driver)
	}
	if c.Limits.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must not be negative")
	}
	if c.Limits.MaxPages < 0 {
		return fmt.Errorf("max_pages must not be negative")
	}
	return nil
}

// ListenAddr returns the host:port the HTTP server binds.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FOLIO_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("FOLIO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("FOLIO_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("FOLIO_RESULTS_BUCKET"); v != "" {
		cfg.Storage.ResultsBucket = v
	}
	if v := os.Getenv("FOLIO_AUTH_SECRET_NAME"); v != "" {
		cfg.Auth.SecretName = v
	}
	if v := os.Getenv("FOLIO_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Limits.MaxFileSize = n
		}
	}
	if v := os.Getenv("FOLIO_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxPages = n
		}
	}
	if v := os.Getenv("FOLIO_EVENTS_DRIVER"); v != "" {
		cfg.Events.Driver = v
	}
	if v := os.Getenv("FOLIO_REDIS_ADDR"); v != "" {
		cfg.Events.Driver = "redis"
		cfg.Events.Redis.Addr = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FOLIO_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
