package commands

import (
	"fmt"

	"github.com/airchains-network/rollup-codec/archive"
	"github.com/airchains-network/rollup-codec/db"
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/spf13/cobra"
)

// ImportCmd decodes proof files in parallel and saves them to the archive
var ImportCmd = &cobra.Command{
	Use:   "import <proof-file>...",
	Short: "Decode rollup proofs and store them in the local archive",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importCommand(cmd, args)
	},
}

func init() {
	ImportCmd.Flags().String("format", "", "Encoding of the inputs (dense/sparse), defaults to codec.format")
	ImportCmd.Flags().StringSlice("viewing-keys", nil, "Viewing key stream files, one per proof file in the same order")
	ImportCmd.Flags().Int("workers", 0, "Parallel decoders, defaults to codec.workers")
}

func importCommand(cmd *cobra.Command, paths []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	format, err := formatFlag(cmd, "format", cfg)
	if err != nil {
		return err
	}
	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = cfg.Codec.Workers
	}
	vkPaths, _ := cmd.Flags().GetStringSlice("viewing-keys")
	if len(vkPaths) > 0 && len(vkPaths) != len(paths) {
		return fmt.Errorf("got %d viewing key files for %d proof files", len(vkPaths), len(paths))
	}

	inputs := make([]rollup.Input, len(paths))
	for i, path := range paths {
		data, err := readInput(path)
		if err != nil {
			return err
		}
		inputs[i].ProofData = data
		if len(vkPaths) > 0 {
			vkData, err := readInput(vkPaths[i])
			if err != nil {
				return err
			}
			if vkData == nil {
				vkData = []byte{}
			}
			inputs[i].ViewingKeyData = vkData
		}
	}

	rollups, err := rollup.ParseAll(cmd.Context(), format, inputs, workers)
	if err != nil {
		return err
	}
	log.Infof("Decoded %d rollups with %d workers", len(rollups), workers)

	store, err := db.NewLevelDB(cfg.Database.RollupDBPath)
	if err != nil {
		return fmt.Errorf("failed to open rollup database: %v", err)
	}
	defer store.Close()

	a := archive.New(store, log)
	for _, p := range rollups {
		if err := a.SaveRollup(p); err != nil {
			return err
		}
	}
	if last, ok, err := a.LastRollupID(); err == nil && ok {
		log.Infof("Archive now holds rollups up to #%d", last)
	}
	return nil
}
