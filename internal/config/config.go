package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerview/internal/model"
	"github.com/cleared-dev/ledgerview/internal/normalize"
)

// FileName is the conventional config file name.
const FileName = "ledgerview.yaml"

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Environment overrides applied by ApplyEnv.
const (
	EnvAddr        = "LEDGERVIEW_ADDR"
	EnvStore       = "LEDGERVIEW_STORE"
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "LEDGERVIEW_LOG_LEVEL"
)

// Config represents the top-level ledgerview.yaml configuration.
type Config struct {
	Company CompanyConfig `yaml:"company"`
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
}

// CompanyConfig holds the defaults used when a payload leaves them out.
type CompanyConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig selects where ingested payloads are kept.
type StoreConfig struct {
	Driver string        `yaml:"driver"` // "memory" or "postgres"
	DSN    string        `yaml:"dsn,omitempty"`
	TTL    time.Duration `yaml:"ttl"` // memory driver only
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a ledgerview.yaml file from disk. Fields the file leaves out keep
// their defaults. The result is not validated; callers apply environment
// overrides first and then call Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, or returns the defaults when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Company: CompanyConfig{
			Name:     normalize.DefaultCompany,
			Currency: model.DefaultCurrency,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			Driver: DriverMemory,
			TTL:    2 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadEnvFile loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStore)); v != "" {
		c.Store.Driver = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDatabaseURL)); v != "" {
		c.Store.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
}

// Validate checks settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store driver %q requires a dsn", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// NormalizeOptions returns the normalizer defaults configured for the company.
func (c *Config) NormalizeOptions() normalize.Options {
	return normalize.Options{
		DefaultCompany:  c.Company.Name,
		DefaultCurrency: c.Company.Currency,
	}
}
