package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// StateFileName is the file FileKV keeps under its data directory.
const StateFileName = "state.json"

// errCorruptState marks a state file that exists but is not a JSON object of strings.
var errCorruptState = errors.New("corrupt state file")

// FileKV keeps all slots in one JSON object file, rewritten atomically on every change.
// A corrupt file fails reads but is replaced by the next write.
type FileKV struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewFileKV creates a FileKV rooted at dataDir, creating the directory if needed.
// An empty dataDir means $HOME/.opportunity-hub.
func NewFileKV(dataDir string, logger *slog.Logger) (*FileKV, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileKV{path: filepath.Join(dataDir, StateFileName), logger: logger}, nil
}

// DefaultDataDir returns $HOME/.opportunity-hub.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".opportunity-hub"), nil
}

// Path returns the state file location.
func (f *FileKV) Path() string {
	return f.path
}

// Get returns the value stored under key.
func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set stores value under key.
func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, _, err := f.readTolerant()
	if err != nil {
		return err
	}
	data[key] = value
	return f.write(data)
}

// Delete removes key.
func (f *FileKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, corrupt, err := f.readTolerant()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok && !corrupt {
		return nil
	}
	delete(data, key)
	return f.write(data)
}

// Close is a no-op.
func (f *FileKV) Close() error {
	return nil
}

func (f *FileKV) read() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	data := make(map[string]string)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errCorruptState, f.path, err)
	}
	return data, nil
}

// readTolerant is read with a corrupt file treated as empty. corrupt reports whether that happened.
func (f *FileKV) readTolerant() (data map[string]string, corrupt bool, err error) {
	data, err = f.read()
	if errors.Is(err, errCorruptState) {
		f.logger.Warn("discarding unreadable state file", "path", f.path, "error", err)
		return make(map[string]string), true, nil
	}
	return data, false, err
}

func (f *FileKV) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
