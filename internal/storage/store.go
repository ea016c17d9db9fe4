package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jonathan/opportunity-hub/internal/types"
)

// Slot keys
const (
	KeyUser     = "user"
	KeySavedIDs = "savedIds"
)

// Store reads and writes the typed client slots. Reads never fail: unreadable or malformed
// values are logged and replaced by the slot's empty default.
type Store struct {
	kv     KV
	logger *slog.Logger
}

// NewStore wraps kv.
func NewStore(kv KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger}
}

// LoadUser returns the persisted user, or false when the slot is absent or unusable.
func (s *Store) LoadUser(ctx context.Context) (*types.User, bool) {
	raw, ok, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		s.logger.Warn("failed to read persisted user", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var user types.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("ignoring malformed persisted user", "error", err)
		return nil, false
	}
	if user.Email == "" {
		s.logger.Warn("ignoring persisted user without email")
		return nil, false
	}
	return &user, true
}

// SaveUser writes user, or removes the slot when user is nil.
func (s *Store) SaveUser(ctx context.Context, user *types.User) error {
	if user == nil {
		if err := s.kv.Delete(ctx, KeyUser); err != nil {
			return fmt.Errorf("failed to remove user: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.kv.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// LoadSavedIDs returns the persisted saved set, empty when absent or unusable.
func (s *Store) LoadSavedIDs(ctx context.Context) types.SavedSet {
	raw, ok, err := s.kv.Get(ctx, KeySavedIDs)
	if err != nil {
		s.logger.Warn("failed to read saved ids", "error", err)
		return types.NewSavedSet()
	}
	if !ok {
		return types.NewSavedSet()
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("ignoring malformed saved ids", "error", err)
		return types.NewSavedSet()
	}
	return types.NewSavedSet(ids...)
}

// SaveSavedIDs writes the set as a JSON array. An empty set is written, not removed.
func (s *Store) SaveSavedIDs(ctx context.Context, saved types.SavedSet) error {
	raw, err := json.Marshal(saved.IDs())
	if err != nil {
		return fmt.Errorf("failed to marshal saved ids: %w", err)
	}
	if err := s.kv.Set(ctx, KeySavedIDs, string(raw)); err != nil {
		return fmt.Errorf("failed to save saved ids: %w", err)
	}
	return nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}
