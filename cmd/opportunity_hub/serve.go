package main

import (
	"context"

	"github.com/jonathan/opportunity-hub/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the session, search, filter and saved-list operations as JSON endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	env, err := newEnvironment(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer env.Close()

	port := env.cfg.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	srv := server.New(env.app, server.Config{
		Port:      port,
		RateLimit: rateLimitConfig(env.cfg.RateLimit),
	}, env.logger)

	// A restored session gets its first search without waiting for the listener.
	go func() {
		if err := env.app.Bootstrap(context.WithoutCancel(cmd.Context())); err != nil {
			env.logger.Warn("automatic search failed", "error", err)
		}
	}()

	return srv.Start()
}
