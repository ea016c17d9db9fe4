package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonathan/opportunity-hub/internal/app"
	"github.com/jonathan/opportunity-hub/internal/config"
	"github.com/jonathan/opportunity-hub/internal/discovery"
	"github.com/jonathan/opportunity-hub/internal/llm"
	"github.com/jonathan/opportunity-hub/internal/server/ratelimit"
	"github.com/jonathan/opportunity-hub/internal/session"
	"github.com/jonathan/opportunity-hub/internal/storage"
)

// logOutput is where command logs go. Tests replace it.
var logOutput io.Writer = os.Stderr

// environment holds everything a command needs, built from the loaded config.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	client llm.Client
	store  *storage.Store
	app    *app.App
}

// newEnvironment loads config, opens storage and restores the persisted session.
func newEnvironment(ctx context.Context, jsonLogs bool) (*environment, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel, jsonLogs)
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(ctx, cfg.StorageOptions(), logger)
	if err != nil {
		return nil, err
	}
	store := storage.NewStore(kv, logger)

	env := &environment{cfg: cfg, logger: logger, store: store}

	if cfg.HasAPIKey() {
		client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		env.client = client
	}

	fetcher := discovery.NewFetcher(discovery.Options{
		Client: env.client,
		Logger: logger,
	})

	env.app, err = app.New(ctx, app.Deps{
		Fetcher:     fetcher,
		Store:       store,
		Logger:      logger,
		GateOptions: []session.Option{session.WithDelay(cfg.AuthDelay)},
	})
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return env, nil
}

// Close releases the model client and the storage backend.
func (e *environment) Close() {
	if e.client != nil {
		if err := e.client.Close(); err != nil {
			e.logger.Warn("failed to close LLM client", "error", err)
		}
	}
	if err := e.store.Close(); err != nil {
		e.logger.Warn("failed to close storage", "error", err)
	}
}

// requireUser fails unless a user is signed in.
func (e *environment) requireUser() error {
	if !e.app.Session().Authenticated() {
		return fmt.Errorf("%w: run 'opportunity_hub login' first", app.ErrNotAuthenticated)
	}
	return nil
}

func newLogger(level string, jsonLogs bool) (*slog.Logger, error) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if jsonLogs {
		return slog.New(slog.NewJSONHandler(logOutput, opts)), nil
	}
	return slog.New(slog.NewTextHandler(logOutput, opts)), nil
}

// rateLimitConfig converts the config section for the API limiter.
func rateLimitConfig(c config.RateLimitConfig) *ratelimit.Config {
	return &ratelimit.Config{
		Enabled:         c.Enabled,
		DefaultLimit:    c.DefaultLimit,
		DefaultWindow:   c.DefaultWindow,
		CleanupInterval: c.CleanupInterval,
		Whitelist:       ratelimit.NewSet(c.Whitelist),
		Blacklist:       ratelimit.NewSet(c.Blacklist),
		EndpointConfigs: ratelimit.DefaultEndpointConfigs(c.SearchLimit, c.SearchWindow),
	}
}
