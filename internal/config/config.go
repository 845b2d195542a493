// ABOUTME: Hoops configuration management with backend selection.
// ABOUTME: Handles settings and the storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/hoops/internal/storage"
)

// Config stores hoops tool configuration.
type Config struct {
	// Backend selects the storage backend: "textfile" (default) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. The textfile
	// backend puts players_data.txt here, sqlite puts hoops.db here.
	// Supports ~ expansion. Defaults to the current directory so the
	// default save file is players_data.txt right where hoops runs.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "textfile".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return storage.BackendTextfile
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the current directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return "."
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (storage.Store, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir())
}

// OpenBackend creates a Store for the named backend rooted at dataDir.
func OpenBackend(backend, dataDir string) (storage.Store, error) {
	switch backend {
	case storage.BackendTextfile:
		return storage.NewTextStore(dataDir)
	case storage.BackendSQLite:
		return storage.OpenSQLite(filepath.Join(dataDir, storage.DefaultDBName))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "hoops", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
