package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // analytics.timezone must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopdash-lab/shopdash/internal/core/analytics"
)

// EnvPrefix marks environment variables that override config keys.
// SHOPDASH_DATABASE__DSN sets database.dsn.
const EnvPrefix = "SHOPDASH_"

// Config represents the top-level application config.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Refresh   RefreshConfig   `koanf:"refresh"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	Type         string `koanf:"type"`
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

// AnalyticsConfig fixes the civil calendar and chart defaults for the process.
type AnalyticsConfig struct {
	Timezone                 string `koanf:"timezone"`      // IANA name, e.g. Asia/Manila
	FetchTimeout             string `koanf:"fetch_timeout"` // per upstream read
	DefaultSalesGranularity  string `koanf:"default_sales_granularity"`
	DefaultOrdersGranularity string `koanf:"default_orders_granularity"`
}

type RefreshConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Interval string `koanf:"interval"`
}

// Location returns the configured civil time zone.
func (c AnalyticsConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid analytics.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// FetchTimeoutDuration returns the parsed fetch timeout. Validate must have passed.
func (c AnalyticsConfig) FetchTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.FetchTimeout)
	return d
}

// DefaultGranularities returns the parsed sales and orders defaults.
// Validate must have passed.
func (c AnalyticsConfig) DefaultGranularities() (sales, orders analytics.Granularity) {
	sales, _ = analytics.ParseGranularity(c.DefaultSalesGranularity)
	orders, _ = analytics.ParseGranularity(c.DefaultOrdersGranularity)
	return sales, orders
}

// IntervalDuration returns the parsed refresh interval. Validate must have passed.
func (c RefreshConfig) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Interval)
	return d
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}
	if c.Database.Type != "" && c.Database.Type != "postgres" {
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}

	if strings.TrimSpace(c.Analytics.Timezone) == "" {
		return fmt.Errorf("analytics.timezone is required")
	}
	if _, err := c.Analytics.Location(); err != nil {
		return err
	}
	timeout, err := time.ParseDuration(c.Analytics.FetchTimeout)
	if err != nil {
		return fmt.Errorf("invalid analytics.fetch_timeout %q: %w", c.Analytics.FetchTimeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("analytics.fetch_timeout must be > 0")
	}
	if _, err := analytics.ParseGranularity(c.Analytics.DefaultSalesGranularity); err != nil {
		return fmt.Errorf("invalid analytics.default_sales_granularity: %w", err)
	}
	if _, err := analytics.ParseGranularity(c.Analytics.DefaultOrdersGranularity); err != nil {
		return fmt.Errorf("invalid analytics.default_orders_granularity: %w", err)
	}

	interval, err := time.ParseDuration(c.Refresh.Interval)
	if err != nil {
		return fmt.Errorf("invalid refresh.interval %q: %w", c.Refresh.Interval, err)
	}
	if interval <= 0 {
		return fmt.Errorf("refresh.interval must be > 0")
	}

	return nil
}

// Load parses config from defaults, file and env, then validates it.
// Each existing envFile is loaded into the process environment first so
// local secrets such as the DSN reach the env provider. Variables already
// set in the environment win over the files.
func Load(configPath string, envFiles ...string) (*Config, error) {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load env file %q: %w", path, err)
		}
	}

	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                          8080,
		"server.host":                          "0.0.0.0",
		"server.max_body_size_mb":              1,
		"server.mode":                          "release",
		"database.type":                        "postgres",
		"database.dsn":                         "",
		"database.max_open_conns":              10,
		"database.max_idle_conns":              5,
		"database.auto_migrate":                true,
		"analytics.timezone":                   "Asia/Manila",
		"analytics.fetch_timeout":              "10s",
		"analytics.default_sales_granularity":  "weekly",
		"analytics.default_orders_granularity": "weekly",
		"refresh.enabled":                      true,
		"refresh.interval":                     "1m",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
