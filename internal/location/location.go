// Package location resolves application identity to a place to keep
// data: a per-user data directory on native targets, or a namespace
// prefix for browser storage.
package location

import (
	"fmt"
	"os"
	"path/filepath"
)

// Identity names the application owning a store. Qualifier is
// optional (a reverse-domain component like "com"); Organization and
// Application name the vendor and program.
type Identity struct {
	Qualifier    string
	Organization string
	Application  string
}

// DataDir returns the directory for this identity's persistent data,
// following XDG conventions: $XDG_DATA_HOME or ~/.local/share, with
// the organization and application appended. The directory is not
// created here.
func (id Identity) DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	parts := []string{base}
	if id.Organization != "" {
		parts = append(parts, id.Organization)
	}
	if id.Application != "" {
		parts = append(parts, id.Application)
	}
	return filepath.Join(parts...), nil
}

// Prefix returns the dotted storage namespace for this identity:
// "qualifier.organization.application", dropping empty leading
// components.
func (id Identity) Prefix() string {
	switch {
	case id.Qualifier != "" && id.Organization != "":
		return id.Qualifier + "." + id.Organization + "." + id.Application
	case id.Organization != "":
		return id.Organization + "." + id.Application
	default:
		return id.Application
	}
}
