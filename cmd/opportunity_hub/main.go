// Package main provides the entry point for the Opportunity Hub CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "opportunity_hub",
	Short: "Discover student opportunities",
	Long: `Opportunity Hub finds internships, hackathons, competitions and workshops for students,
lets you filter them and keeps a list of the ones you saved.

Without GEMINI_API_KEY a built-in sample dataset is served.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $HOME/.opportunity-hub/config.yaml)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
