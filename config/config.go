package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Codec    CodecConfig    `toml:"codec"`
	Database DatabaseConfig `toml:"database"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// CodecConfig holds rollup encoding settings
type CodecConfig struct {
	Format  string `toml:"format"`  // "dense" or "sparse"
	Workers int    `toml:"workers"` // parallel decoders used by import
}

// DatabaseConfig holds database paths
type DatabaseConfig struct {
	RollupDBPath string `toml:"rollup_db_path"`
}

// HomeDir returns ~/.rollup-codec
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %v", err)
	}
	return filepath.Join(home, ".rollup-codec"), nil
}

// DefaultConfig returns the default configuration rooted at dir
func DefaultConfig(dir string) Config {
	return Config{
		General: GeneralConfig{LogLevel: "info"},
		Codec: CodecConfig{
			Format:  rollup.FormatSparse.String(),
			Workers: 4,
		},
		Database: DatabaseConfig{
			RollupDBPath: filepath.Join(dir, "data", "rollup_db"),
		},
	}
}

// Validate checks that every value can be used
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("invalid general.log_level: %v", err)
	}
	if _, err := rollup.ParseFormat(c.Codec.Format); err != nil {
		return fmt.Errorf("invalid codec.format: %w", err)
	}
	if c.Codec.Workers < 1 {
		return fmt.Errorf("invalid codec.workers: %d, must be at least 1", c.Codec.Workers)
	}
	if c.Database.RollupDBPath == "" {
		return fmt.Errorf("database.rollup_db_path is required")
	}
	return nil
}

// Format returns the configured codec format
func (c Config) Format() (rollup.Format, error) {
	return rollup.ParseFormat(c.Codec.Format)
}

// LoadConfig reads from config.toml and returns Config struct
func LoadConfig(path string) (Config, error) {
	var cfg Config
	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	err = toml.Unmarshal(file, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config as TOML to path
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}
	return os.WriteFile(path, data, 0644)
}
