package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	MinPlayers int    `toml:"min_players"`
	MaxPlayers int    `toml:"max_players"`
	Color      bool   `toml:"color"`
	LogLevel   string `toml:"log_level"`
	LogFile    string `toml:"log_file"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		MinPlayers: 1,
		MaxPlayers: 7,
		Color:      true,
		LogLevel:   "warn",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// Load loads the config file at path, or the default path when empty.
// A missing file is created with the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefaultConfig(path)
	}

	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// PlayerRange reports whether n players fit the configured table.
func (c *Config) PlayerRange(n int) error {
	if n < c.MinPlayers || n > c.MaxPlayers {
		return fmt.Errorf("number of players must be between %d and %d, got %d", c.MinPlayers, c.MaxPlayers, n)
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := Save(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to path as TOML, creating the directory if needed.
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
