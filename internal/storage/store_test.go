package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/opportunity-hub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingKV fails every operation.
type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (failingKV) Set(context.Context, string, string) error { return errors.New("disk on fire") }
func (failingKV) Delete(context.Context, string) error      { return errors.New("disk on fire") }
func (failingKV) Close() error                              { return nil }

func TestStore_UserRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	store := NewStore(kv, discardLogger())

	_, ok := store.LoadUser(ctx)
	assert.False(t, ok)

	user := types.NewUser("ada@example.com", "")
	require.NoError(t, store.SaveUser(ctx, user))

	raw, ok, err := kv.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"email":"ada@example.com","name":"ada"}`, raw)

	loaded, ok := store.LoadUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user, loaded)

	require.NoError(t, store.SaveUser(ctx, nil))
	_, ok, err = kv.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, ok, "nil user removes the slot")
}

func TestStore_LoadUserMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", "{{{"},
		{"wrong shape", `["ada"]`},
		{"missing email", `{"name":"ada"}`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKV()
			require.NoError(t, kv.Set(ctx, KeyUser, tt.raw))

			user, ok := NewStore(kv, discardLogger()).LoadUser(ctx)
			assert.False(t, ok)
			assert.Nil(t, user)
		})
	}
}

func TestStore_SavedIDsRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	store := NewStore(kv, discardLogger())

	assert.Equal(t, 0, store.LoadSavedIDs(ctx).Len())

	saved := types.NewSavedSet("opp-2", "mock-1", "opp-1")
	require.NoError(t, store.SaveSavedIDs(ctx, saved))

	reloaded := NewStore(kv, discardLogger()).LoadSavedIDs(ctx)
	assert.ElementsMatch(t, saved.IDs(), reloaded.IDs())

	require.NoError(t, store.SaveSavedIDs(ctx, types.NewSavedSet()))
	raw, ok, err := kv.Get(ctx, KeySavedIDs)
	require.NoError(t, err)
	require.True(t, ok, "empty set is written, not removed")
	assert.Equal(t, "[]", raw)
}

func TestStore_LoadSavedIDsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", "not json"},
		{"object", `{"a":1}`},
		{"numbers", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKV()
			require.NoError(t, kv.Set(ctx, KeySavedIDs, tt.raw))

			saved := NewStore(kv, discardLogger()).LoadSavedIDs(ctx)
			require.NotNil(t, saved)
			assert.Equal(t, 0, saved.Len())
		})
	}
}

func TestStore_BackendFailures(t *testing.T) {
	ctx := context.Background()
	store := NewStore(failingKV{}, discardLogger())

	_, ok := store.LoadUser(ctx)
	assert.False(t, ok)
	assert.Equal(t, 0, store.LoadSavedIDs(ctx).Len())

	user := types.NewUser("ada@example.com", "")
	assert.ErrorContains(t, store.SaveUser(ctx, user), "disk on fire")
	assert.ErrorContains(t, store.SaveUser(ctx, nil), "disk on fire")
	assert.ErrorContains(t, store.SaveSavedIDs(ctx, types.NewSavedSet("x")), "disk on fire")
}

func TestStore_RecoversFromCorruptStateFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFileName), []byte("garbage"), 0o644))

	kv, err := NewFileKV(dir, discardLogger())
	require.NoError(t, err)
	store := NewStore(kv, discardLogger())

	_, ok := store.LoadUser(ctx)
	assert.False(t, ok)
	assert.Equal(t, 0, store.LoadSavedIDs(ctx).Len())

	user := types.NewUser("ada@example.com", "")
	require.NoError(t, store.SaveUser(ctx, user))
	require.NoError(t, store.SaveSavedIDs(ctx, types.NewSavedSet("mock-2")))

	reopened, err := NewFileKV(dir, discardLogger())
	require.NoError(t, err)
	reloaded := NewStore(reopened, discardLogger())

	loaded, ok := reloaded.LoadUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user, loaded)
	assert.Equal(t, []string{"mock-2"}, reloaded.LoadSavedIDs(ctx).IDs())
}
