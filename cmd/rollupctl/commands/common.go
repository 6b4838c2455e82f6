package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/airchains-network/rollup-codec/config"
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newLogger(level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %v", level, err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	return log, nil
}

func configPath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return path, nil
	}
	dir, err := config.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// setup loads the config, falling back to defaults when no config file exists,
// and builds the logger.
func setup(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	path, err := configPath(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.LoadConfig(path)
	missing := errors.Is(err, fs.ErrNotExist)
	if missing {
		cfg = config.DefaultConfig(filepath.Dir(path))
	} else if err != nil {
		return cfg, nil, fmt.Errorf("failed to load config: %v", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.General.LogLevel = level
	}
	log, err := newLogger(cfg.General.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	if missing {
		log.Debugf("No config at %s, using defaults", path)
	}
	return cfg, log, nil
}

// formatFlag returns the --format flag when set, the configured format otherwise.
func formatFlag(cmd *cobra.Command, name string, cfg config.Config) (rollup.Format, error) {
	if s, _ := cmd.Flags().GetString(name); s != "" {
		return rollup.ParseFormat(s)
	}
	return cfg.Format()
}

// readInput reads raw bytes, or 0x-prefixed hex text, from path.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("0x")) {
		decoded, err := hexutil.Decode(string(trimmed))
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex in %s: %v", path, err)
		}
		return decoded, nil
	}
	return data, nil
}

// readViewingKeys returns nil when no viewing key file was given.
func readViewingKeys(cmd *cobra.Command) ([]byte, error) {
	path, _ := cmd.Flags().GetString("viewing-keys")
	if path == "" {
		return nil, nil
	}
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
