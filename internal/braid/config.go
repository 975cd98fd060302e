package braid

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = "config.json"

// Config holds per-repository settings, stored next to the ledger
// under .git/braid/.
type Config struct {
	// NoFastForward makes braid merge create a merge commit even when
	// fast-forwarding is possible, so the branch topology stays
	// visible to inference.
	NoFastForward bool `json:"noFastForward"`

	// ServeAddr is the listen address for braid serve.
	ServeAddr string `json:"serveAddr"`
}

func DefaultConfig() *Config {
	return &Config{
		ServeAddr: "127.0.0.1:7433",
	}
}

// LoadConfig reads the repository's settings, falling back to defaults
// when none have been saved yet.
func (c *Client) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(filepath.Join(c.stateDir, configFileName))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = DefaultConfig().ServeAddr
	}
	return cfg, nil
}

// SaveConfig writes the settings to disk.
func (c *Client) SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(c.stateDir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	path := filepath.Join(c.stateDir, configFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
