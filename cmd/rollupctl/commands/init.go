package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/airchains-network/rollup-codec/config"
	"github.com/spf13/cobra"
)

// InitCmd represents the init command
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the rollup codec home directory",
	Long: `Initialize the rollup codec with the required configuration.
This command creates the home directory, the archive directory and config.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd)
	},
}

func init() {
	InitCmd.Flags().String("codec.format", "sparse", "Default encoding (dense/sparse)")
	InitCmd.Flags().Int("codec.workers", 4, "Parallel decoders used by import")
	InitCmd.Flags().String("general.log-level", "info", "Log level")
	InitCmd.Flags().Bool("force", false, "Overwrite an existing config.toml")
}

func initCommand(cmd *cobra.Command) error {
	format, _ := cmd.Flags().GetString("codec.format")
	workers, _ := cmd.Flags().GetInt("codec.workers")
	logLevel, _ := cmd.Flags().GetString("general.log-level")
	force, _ := cmd.Flags().GetBool("force")

	path, err := configPath(cmd)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)

	cfg := config.DefaultConfig(dir)
	cfg.General.LogLevel = logLevel
	cfg.Codec.Format = format
	cfg.Codec.Workers = workers
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.General.LogLevel)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %v", err)
	}

	if err := os.MkdirAll(cfg.Database.RollupDBPath, 0755); err != nil {
		return fmt.Errorf("failed to create rollup database directory: %v", err)
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	log.Infof("Initialized rollup codec in %s", dir)
	log.Infof("Config file: %s", path)
	log.Infof("Rollup archive: %s", cfg.Database.RollupDBPath)
	return nil
}
