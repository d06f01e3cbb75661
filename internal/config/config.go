package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	App   AppConfig   `toml:"app"`
	Store StoreConfig `toml:"store"`
	Log   LogConfig   `toml:"log"`
}

// AppConfig is the application identity the store location and
// namespace are derived from.
type AppConfig struct {
	Qualifier    string `toml:"qualifier" env:"PKV_APP_QUALIFIER"`
	Organization string `toml:"organization" env:"PKV_APP_ORGANIZATION"`
	Application  string `toml:"application" env:"PKV_APP_APPLICATION"`
}

type StoreConfig struct {
	// Backend selects the storage engine: "bolt", "sqlite" or "fs".
	Backend string `toml:"backend" env:"PKV_STORE_BACKEND"`
	// Path overrides the directory resolved from the app identity.
	Path string `toml:"path" env:"PKV_STORE_PATH"`
}

type LogConfig struct {
	Level  string `toml:"level" env:"PKV_LOG_LEVEL"`
	Format string `toml:"format" env:"PKV_LOG_FORMAT"`
}

// Defaults returns a Config with sane defaults.
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Application: "pkv",
		},
		Store: StoreConfig{
			Backend: "bolt",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a TOML config file, applies PKV_* environment variable
// overrides on top, and returns the result. If path is empty the
// default location is tried and silently skipped when absent.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = expandHome("~/.config/pkv/config.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that Open will reject late and
// confusingly otherwise.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "", "bolt", "sqlite", "fs":
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.App.Application == "" && c.Store.Path == "" {
		return fmt.Errorf("app.application is required when store.path is not set")
	}
	return nil
}

// ExpandHome resolves a leading ~/ to the user's home directory.
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
