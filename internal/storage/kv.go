// Package storage persists the two client slots (current user and saved ids) on a pluggable
// key/value backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Drivers
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// ErrUnknownDriver is returned by Open for unsupported driver names.
var ErrUnknownDriver = errors.New("unknown storage driver")

// KV is a string key/value store. Get reports ok=false for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver      string
	DataDir     string
	DatabaseURL string
	RedisURL    string
	// Namespace scopes keys on shared backends (table rows, redis keys).
	Namespace string
}

// DefaultNamespace is used when Config.Namespace is empty.
const DefaultNamespace = "opportunity-hub"

// Drivers returns the supported driver names.
func Drivers() []string {
	return []string{DriverFile, DriverMemory, DriverSQLite, DriverPostgres, DriverRedis}
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (KV, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	var (
		kv  KV
		err error
	)
	switch cfg.Driver {
	case "", DriverFile:
		kv, err = NewFileKV(cfg.DataDir, logger)
	case DriverMemory:
		kv = NewMemoryKV()
	case DriverSQLite:
		kv, err = NewSQLiteKV(ctx, cfg.DataDir, cfg.Namespace)
	case DriverPostgres:
		kv, err = NewPostgresKV(ctx, cfg.DatabaseURL, cfg.Namespace)
	case DriverRedis:
		kv, err = NewRedisKV(ctx, cfg.RedisURL, cfg.Namespace)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", driverName(cfg.Driver), err)
	}

	logger.Debug("storage opened", "driver", driverName(cfg.Driver))
	return kv, nil
}

func driverName(driver string) string {
	if driver == "" {
		return DriverFile
	}
	return driver
}
