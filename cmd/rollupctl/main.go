package main

import (
	"os"

	"github.com/airchains-network/rollup-codec/cmd/rollupctl/commands"
	"github.com/spf13/cobra"
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "rollupctl",
		Short: "Inspect, convert and archive rollup proof data",
		Long: `rollupctl reads and writes the public data of rollup proofs.
It understands the dense and the sparse encoding, associates viewing keys
with transactions and keeps decoded rollups in a local archive.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.rollup-codec/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Override the configured log level")

	// Add commands
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.DecodeCmd)
	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.ShowCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
