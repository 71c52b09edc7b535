package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Persistence backend constants
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config represents the flat careledger configuration.
type Config struct {
	Backend string `json:"backend"`            // "json" or "sqlite"
	DataDir string `json:"data_dir,omitempty"` // defaults to the config dir itself
}

// DefaultDir returns the careledger dot-directory under the user's home.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".careledger"), nil
}

// LoadConfig reads config.json from the given directory. A missing file
// is not an error: the defaults apply.
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{Backend: BackendJSON, DataDir: dir}

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}

// SaveConfig writes config.json to the given directory.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SnapshotPath returns the JSON snapshot file path for this config.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.DataDir, "roster.json")
}

// DatabasePath returns the SQLite database path for this config.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "roster.db")
}
