package commands

import (
	"fmt"
	"strconv"

	"github.com/airchains-network/rollup-codec/archive"
	"github.com/airchains-network/rollup-codec/db"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

// ShowCmd loads an archived rollup by id or rollup hash
var ShowCmd = &cobra.Command{
	Use:   "show <rollup-id|rollup-hash>",
	Short: "Print an archived rollup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCommand(cmd, args[0])
	},
}

func init() {
	ShowCmd.Flags().String("format", "", "Print the rollup re-encoded as hex (dense/sparse) instead of its summary")
}

func showCommand(cmd *cobra.Command, ref string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	store, err := db.NewLevelDB(cfg.Database.RollupDBPath)
	if err != nil {
		return fmt.Errorf("failed to open rollup database: %v", err)
	}
	defer store.Close()
	a := archive.New(store, log)

	id, err := resolveRollupID(a, ref)
	if err != nil {
		return err
	}
	p, err := a.LoadRollup(id)
	if err != nil {
		return err
	}

	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format, err := formatFlag(cmd, "format", cfg)
		if err != nil {
			return err
		}
		out, err := p.Serialize(format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(out))
		return err
	}
	return printJSON(cmd, p.Summary())
}

// resolveRollupID accepts a decimal rollup id or a 0x-prefixed rollup hash.
func resolveRollupID(a *archive.Archive, ref string) (uint32, error) {
	if len(ref) == 2+2*common.HashLength && ref[:2] == "0x" {
		b, err := hexutil.Decode(ref)
		if err != nil {
			return 0, fmt.Errorf("invalid rollup hash %q: %v", ref, err)
		}
		return a.RollupIDByHash(common.BytesToHash(b))
	}
	id, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid rollup id %q: %v", ref, err)
	}
	return uint32(id), nil
}
