package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/jonathan/opportunity-hub/internal/app"
	"github.com/jonathan/opportunity-hub/internal/config"
	"github.com/jonathan/opportunity-hub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs commands against a fresh file store without a model key.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	dataDir := filepath.Join(home, "data")
	t.Setenv("HOME", home)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("STORAGE_DRIVER", storage.DriverFile)
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("AUTH_DELAY", "0s")
	t.Setenv("LOG_LEVEL", "error")

	prev := logOutput
	logOutput = io.Discard
	t.Cleanup(func() { logOutput = prev })
	configPath = ""
	return dataDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, "categories")
	require.NoError(t, err)

	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "AI/ML")
	assert.Contains(t, out, "Hackathon")
	assert.Contains(t, out, "International")
}

func TestCommands_RequireLogin(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{"saved"}, {"save", "mock-1"}, {"logout"}} {
		t.Run(args[0], func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, app.ErrNotAuthenticated)
		})
	}

	out, err := execute(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in.")
}

func TestLoginCommand_InvalidEmail(t *testing.T) {
	isolate(t)

	_, err := execute(t, "login", "--email", "not-an-email", "--password", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid login request")
}

func TestSessionLifecycle(t *testing.T) {
	dataDir := isolate(t)

	out, err := execute(t, "login", "--email", "ada@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, ada!")
	assert.Contains(t, out, "Loaded 4 opportunities")
	assert.FileExists(t, filepath.Join(dataDir, "state.json"))

	out, err = execute(t, "login", "--email", "bob@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Already signed in as ada")

	out, err = execute(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "[A]")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Saved: 0")

	out, err = execute(t, "save", "mock-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved mock-1")

	out, err = execute(t, "saved")
	require.NoError(t, err)
	assert.Contains(t, out, "1 saved")
	assert.Contains(t, out, "mock-1")

	out, err = execute(t, "search", "space", "--category", "AI/ML", "--stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 of 4 opportunities")
	assert.Contains(t, out, "Global AI Innovation Hackathon 2025")
	assert.Contains(t, out, "★ saved")
	assert.Contains(t, out, "Total: 4")

	_, err = execute(t, "search", "--category", "Cooking")
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrInvalidFilter)

	out, err = execute(t, "save", "mock-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed mock-1")

	out, err = execute(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")

	out, err = execute(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in.")
}

func TestRateLimitConfig(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:      true,
		DefaultLimit: 10,
		SearchLimit:  2,
		Whitelist:    []string{"127.0.0.1"},
		Blacklist:    []string{"192.0.2.1"},
	}

	rl := rateLimitConfig(cfg)

	assert.True(t, rl.Enabled)
	assert.Equal(t, 10, rl.DefaultLimit)
	assert.True(t, rl.Whitelist["127.0.0.1"])
	assert.True(t, rl.Blacklist["192.0.2.1"])
	require.NotEmpty(t, rl.EndpointConfigs)
	assert.Equal(t, "/search", rl.EndpointConfigs[0].Path)
	assert.Equal(t, 2, rl.EndpointConfigs[0].Limit)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug", true)
	assert.NoError(t, err)

	_, err = newLogger("chatty", false)
	assert.Error(t, err)
}
