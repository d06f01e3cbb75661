// Package fs implements store.Store on a plain directory, one JSON
// file per key. There is no atomicity and no locking: a crash
// mid-write can leave a partially written file.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pkv/pkg/store"
)

// Store maps each key to <dir>/<key> with the value serialized as
// JSON text.
type Store struct {
	dir string
}

// New creates or opens a file-per-key store rooted at dir, creating
// the directory if absent.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *Store) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncode, err)
	}
	if err := os.WriteFile(s.path(key), data, 0600); err != nil {
		return fmt.Errorf("writing value file: %w", err)
	}
	return nil
}

func (s *Store) SetString(key, value string) error {
	return s.Set(key, value)
}

func (s *Store) Get(key string, dest any) error {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("reading value file: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %w", store.ErrDecode, err)
	}
	return nil
}

// GetWith is not provided by this backend.
func (s *Store) GetWith(key string, decode store.DecodeFunc) (any, error) {
	return nil, store.ErrUnsupported
}

func (s *Store) Remove(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("removing value file: %w", err)
	}
	return nil
}

// Clear deletes entries one file at a time, so it can be slow on
// large stores.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("listing store directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("removing value file: %w", err)
		}
	}
	return nil
}

// Keys lists the directory; order is whatever the filesystem returns.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing store directory: %w", err)
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		keys = append(keys, entry.Name())
	}
	return keys, nil
}

func (s *Store) Close() error {
	return nil
}
