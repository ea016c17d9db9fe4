// Package ratelimit provides per-client token-bucket rate limiting for the API.
package ratelimit

import "time"

// EndpointConfig defines rate limit configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches every path under it
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds limiter settings. Whitelisted clients are never limited; blacklisted ones always are.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns an enabled limiter with the standard endpoint tiers.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(30, time.Hour),
	}
}

// DefaultEndpointConfigs returns the per-endpoint tiers. Searches call the model and get the
// strict tier; session writes get a moderate one.
func DefaultEndpointConfigs(searchLimit int, searchWindow time.Duration) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/search", Method: "POST", Limit: searchLimit, Window: searchWindow, Burst: 3},

		{Path: "/session/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/saved/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

// NewSet builds a lookup set from a list of client identifiers.
func NewSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = true
		}
	}
	return set
}
