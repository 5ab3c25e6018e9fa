// Package config holds the loancmp settings: a YAML (or JSON) file with
// defaults, overridden by .env and the process environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	RateLimit RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
	Rates     RatesConfig     `json:"rates" yaml:"rates"`
	Storage   StorageConfig   `json:"storage" yaml:"storage"`
	Access    AccessConfig    `json:"access" yaml:"access"`
	Logging   LoggingConfig   `json:"logging" yaml:"logging"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
	Advisor   AdvisorConfig   `json:"advisor" yaml:"advisor"`
}

type ServerConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout" yaml:"idle_timeout"`
}

type RateLimitConfig struct {
	Capacity int           `json:"capacity" yaml:"capacity"`
	Window   time.Duration `json:"window" yaml:"window"`
}

type RatesConfig struct {
	// File is the bank rate table. Empty uses the built-in table.
	File string `json:"file" yaml:"file"`
}

type StorageConfig struct {
	RegistryDriver string `json:"registry_driver" yaml:"registry_driver"` // "json" or "redis"
	RegistryPath   string `json:"registry_path,omitempty" yaml:"registry_path,omitempty"`
	RedisAddr      string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty"`
	RedisPrefix    string `json:"redis_prefix,omitempty" yaml:"redis_prefix,omitempty"`
	HistoryDriver  string `json:"history_driver" yaml:"history_driver"` // "memory" or "sqlite"
	SQLitePath     string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty"`
}

type AccessConfig struct {
	TrialDuration time.Duration `json:"trial_duration" yaml:"trial_duration"`
	MaxTrialRuns  int           `json:"max_trial_runs" yaml:"max_trial_runs"`
	SessionTTL    time.Duration `json:"session_ttl" yaml:"session_ttl"`
	AdminKey      string        `json:"admin_key,omitempty" yaml:"admin_key,omitempty"`
}

type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

type TracingConfig struct {
	Endpoint    string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	ServiceName string `json:"service_name" yaml:"service_name"`
}

type AdvisorConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	APIURL  string        `json:"api_url" yaml:"api_url"`
	Model   string        `json:"model" yaml:"model"`
	APIKey  string        `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// Default returns a configuration that runs without any external service.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Capacity: 30,
			Window:   time.Minute,
		},
		Storage: StorageConfig{
			RegistryDriver: "json",
			RegistryPath:   "paid_users.json",
			RedisAddr:      "localhost:6379",
			RedisPrefix:    "loancmp:",
			HistoryDriver:  "memory",
			SQLitePath:     "loancmp.db",
		},
		Access: AccessConfig{
			TrialDuration: 15 * time.Minute,
			MaxTrialRuns:  3,
			SessionTTL:    24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Tracing: TracingConfig{
			ServiceName: "loan-compare",
		},
		Advisor: AdvisorConfig{
			APIURL:  "https://api.openai.com/v1/chat/completions",
			Model:   "gpt-4o-mini",
			Timeout: 30 * time.Second,
		},
	}
}

// LoadFromFile reads a YAML file (or JSON for .json paths) over the
// defaults and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.RateLimit.Capacity <= 0 {
		return errors.New("rate_limit.capacity must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("rate_limit.window must be positive")
	}

	switch c.Storage.RegistryDriver {
	case "json":
		if c.Storage.RegistryPath == "" {
			return errors.New("storage.registry_path is required for the json registry")
		}
	case "redis":
		if c.Storage.RedisAddr == "" {
			return errors.New("storage.redis_addr is required for the redis registry")
		}
	default:
		return fmt.Errorf("storage.registry_driver must be 'json' or 'redis', got %q", c.Storage.RegistryDriver)
	}

	switch c.Storage.HistoryDriver {
	case "memory":
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for sqlite history")
		}
	default:
		return fmt.Errorf("storage.history_driver must be 'memory' or 'sqlite', got %q", c.Storage.HistoryDriver)
	}

	if c.Access.TrialDuration <= 0 {
		return errors.New("access.trial_duration must be positive")
	}
	if c.Access.MaxTrialRuns <= 0 {
		return errors.New("access.max_trial_runs must be positive")
	}
	if c.Access.SessionTTL < c.Access.TrialDuration {
		return errors.New("access.session_ttl must be at least access.trial_duration")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	if c.Tracing.ServiceName == "" {
		return errors.New("tracing.service_name is required")
	}
	if c.Advisor.Enabled && c.Advisor.APIURL == "" {
		return errors.New("advisor.api_url is required when the advisor is enabled")
	}
	return nil
}

// ApplyEnv loads .env (if present) and lets environment variables override
// the file settings.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	c.Server.Addr = getEnvString("LOANCMP_ADDR", c.Server.Addr)
	c.Rates.File = getEnvString("LOANCMP_RATES_FILE", c.Rates.File)
	c.Storage.RedisAddr = getEnvString("LOANCMP_REDIS_ADDR", c.Storage.RedisAddr)
	c.Storage.RegistryDriver = getEnvString("LOANCMP_REGISTRY_DRIVER", c.Storage.RegistryDriver)
	c.Storage.HistoryDriver = getEnvString("LOANCMP_HISTORY_DRIVER", c.Storage.HistoryDriver)
	c.Logging.Level = getEnvString("LOANCMP_LOG_LEVEL", c.Logging.Level)
	c.Access.AdminKey = getEnvString("LOANCMP_ADMIN_KEY", c.Access.AdminKey)
	c.Access.MaxTrialRuns = getEnvInt("LOANCMP_MAX_TRIAL_RUNS", c.Access.MaxTrialRuns)
	c.Tracing.Endpoint = getEnvString("OTEL_ENDPOINT", c.Tracing.Endpoint)
	c.Tracing.ServiceName = getEnvString("OTEL_SERVICE_NAME", c.Tracing.ServiceName)
	c.Advisor.APIKey = getEnvString("OPENAI_API_KEY", c.Advisor.APIKey)
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
