package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys. These mirror what the admin dashboard keeps in browser
// local storage: the bearer token and the serialized user profile.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found in local store")

// Store is a small file-backed key/value store used as the client-side
// persistent state. All writes go through to disk before returning, so
// in-memory callers and a fresh process always see the same values.
type Store struct {
	path string
}

// New creates a store persisting to <dir>/state.json. The directory is
// created if it does not exist.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, "state.json")}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (s *Store) Get(key string) (string, error) {
	data, err := s.read()
	if err != nil {
		return "", err
	}
	value, ok := data[key]
	if !ok || value == "" {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key, creating the state file if needed.
func (s *Store) Set(key, value string) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = value
	return s.write(data)
}

// Remove deletes key from the store. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	delete(data, key)
	return s.write(data)
}

// Clear removes every stored key in a single write. Used on logout and on
// authentication failure, where token and user must disappear together.
func (s *Store) Clear() error {
	return s.write(map[string]string{})
}

func (s *Store) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		// A corrupt state file behaves like an empty one; the next write
		// replaces it.
		return map[string]string{}, nil
	}
	return data, nil
}

// write replaces the state file atomically via temp file + rename, so a
// crash mid-write never leaves a half-written token on disk.
func (s *Store) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
