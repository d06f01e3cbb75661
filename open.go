//go:build !(js && wasm)

package pkv

import (
	"fmt"
	"os"
	"path/filepath"

	"pkv/internal/location"
	"pkv/pkg/store"
	"pkv/pkg/store/bolt"
	"pkv/pkg/store/fs"
	"pkv/pkg/store/sqlite"
)

// Open constructs the store selected by cfg.Backend, resolving the
// data directory from the application identity unless cfg.Path is
// set, and creating it if absent. The caller owns the returned store
// for the life of the process.
func Open(cfg Config) (store.Store, error) {
	dir := cfg.Path
	if dir == "" {
		id := location.Identity{
			Qualifier:    cfg.Qualifier,
			Organization: cfg.Organization,
			Application:  cfg.Application,
		}
		var err error
		dir, err = id.DataDir()
		if err != nil {
			return nil, fmt.Errorf("resolving data directory: %w", err)
		}
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	switch cfg.Backend {
	case "", "bolt":
		return bolt.Open(filepath.Join(dir, "pkv.db"))
	case "sqlite":
		return sqlite.Open(filepath.Join(dir, "pkv.sqlite"))
	case "fs":
		return fs.New(dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
