// Package config provides configuration loading and validation for the CLI and the API server.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jonathan/opportunity-hub/internal/llm"
	"github.com/jonathan/opportunity-hub/internal/storage"
	"github.com/spf13/viper"
)

// DirName is the per-user directory holding the config file and local state.
const DirName = ".opportunity-hub"

// Config is the merged configuration from defaults, the config file and the environment.
type Config struct {
	APIKey    string        `mapstructure:"api_key"`    // Gemini API key; empty means fallback data only
	Model     string        `mapstructure:"model"`      // Overrides the standard-tier model
	LogLevel  string        `mapstructure:"log_level"`  // debug, info, warn, error
	AuthDelay time.Duration `mapstructure:"auth_delay"` // Simulated sign-in latency
	Port      int           `mapstructure:"port"`       // HTTP API port

	Storage   StorageConfig   `mapstructure:"storage"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver      string `mapstructure:"driver"`
	DataDir     string `mapstructure:"data_dir"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisURL    string `mapstructure:"redis_url"`
	Namespace   string `mapstructure:"namespace"`
}

// RateLimitConfig tunes the API rate limiter.
type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	SearchLimit     int           `mapstructure:"search_limit"`
	SearchWindow    time.Duration `mapstructure:"search_window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

// envBindings maps config keys to environment variables. Earlier names win.
var envBindings = map[string][]string{
	"api_key":                     {"GEMINI_API_KEY", "API_KEY"},
	"model":                       {"OPPORTUNITY_MODEL"},
	"log_level":                   {"LOG_LEVEL"},
	"auth_delay":                  {"AUTH_DELAY"},
	"port":                        {"PORT"},
	"storage.driver":              {"STORAGE_DRIVER"},
	"storage.data_dir":            {"DATA_DIR"},
	"storage.database_url":        {"DATABASE_URL"},
	"storage.redis_url":           {"REDIS_URL"},
	"storage.namespace":           {"STORAGE_NAMESPACE"},
	"rate_limit.enabled":          {"RATE_LIMIT_ENABLED"},
	"rate_limit.default_limit":    {"RATE_LIMIT_DEFAULT_LIMIT"},
	"rate_limit.default_window":   {"RATE_LIMIT_DEFAULT_WINDOW"},
	"rate_limit.search_limit":     {"RATE_LIMIT_SEARCH_LIMIT"},
	"rate_limit.search_window":    {"RATE_LIMIT_SEARCH_WINDOW"},
	"rate_limit.cleanup_interval": {"RATE_LIMIT_CLEANUP_INTERVAL"},
	"rate_limit.whitelist":        {"RATE_LIMIT_WHITELIST"},
	"rate_limit.blacklist":        {"RATE_LIMIT_BLACKLIST"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("auth_delay", "1s")
	v.SetDefault("port", 8080)

	v.SetDefault("storage.driver", storage.DriverFile)
	v.SetDefault("storage.data_dir", "")
	v.SetDefault("storage.database_url", "")
	v.SetDefault("storage.redis_url", "")
	v.SetDefault("storage.namespace", storage.DefaultNamespace)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", "1m")
	v.SetDefault("rate_limit.search_limit", 30)
	v.SetDefault("rate_limit.search_window", "1h")
	v.SetDefault("rate_limit.cleanup_interval", "5m")
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})
}

// Load reads configuration. An explicit path must exist; otherwise config.yaml (or .json)
// under $HOME/.opportunity-hub is read when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.RateLimit.Whitelist = splitList(cfg.RateLimit.Whitelist)
	cfg.RateLimit.Blacklist = splitList(cfg.RateLimit.Blacklist)

	return cfg, nil
}

// DefaultDir returns $HOME/.opportunity-hub.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if !slices.Contains(storage.Drivers(), c.Storage.Driver) {
		return fmt.Errorf("config error: unknown storage driver %q (want one of %s)",
			c.Storage.Driver, strings.Join(storage.Drivers(), ", "))
	}
	if c.Storage.Driver == storage.DriverPostgres && c.Storage.DatabaseURL == "" {
		return fmt.Errorf("config error: 'storage.database_url' is required for the postgres driver")
	}
	if c.Storage.Driver == storage.DriverRedis && c.Storage.RedisURL == "" {
		return fmt.Errorf("config error: 'storage.redis_url' is required for the redis driver")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.AuthDelay < 0 {
		return fmt.Errorf("config error: 'auth_delay' must be non-negative")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.RateLimit.DefaultLimit < 0 || c.RateLimit.SearchLimit < 0 {
		return fmt.Errorf("config error: rate limits must be non-negative")
	}
	if c.RateLimit.Enabled && (c.RateLimit.DefaultWindow <= 0 || c.RateLimit.SearchWindow <= 0) {
		return fmt.Errorf("config error: rate limit windows must be positive")
	}

	return nil
}

// HasAPIKey reports whether remote fetching is configured.
func (c *Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// LLMConfig returns the model configuration with the optional model override applied.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Model != "" {
		cfg = cfg.WithModel(llm.TierStandard, c.Model)
	}
	return cfg
}

// StorageOptions converts the storage section for storage.Open.
func (c *Config) StorageOptions() storage.Config {
	return storage.Config{
		Driver:      c.Storage.Driver,
		DataDir:     c.Storage.DataDir,
		DatabaseURL: c.Storage.DatabaseURL,
		RedisURL:    c.Storage.RedisURL,
		Namespace:   c.Storage.Namespace,
	}
}

// ParseLogLevel converts a level name into a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// splitList accepts both YAML lists and comma-separated environment values.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
