package commands

import (
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/spf13/cobra"
)

// InspectCmd prints the rollup id and size without decoding the whole buffer
var InspectCmd = &cobra.Command{
	Use:   "inspect <proof-file>",
	Short: "Print the rollup id and size of a proof buffer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspectCommand(cmd, args[0])
	},
}

type inspectResult struct {
	RollupID   uint32 `json:"rollupId"`
	RollupSize uint32 `json:"rollupSize"`
	Bytes      int    `json:"bytes"`
}

func inspectCommand(cmd *cobra.Command, path string) error {
	_, log, err := setup(cmd)
	if err != nil {
		return err
	}
	data, err := readInput(path)
	if err != nil {
		return err
	}

	id, err := rollup.RollupIDFromBuffer(data)
	if err != nil {
		return err
	}
	size, err := rollup.RollupSizeFromBuffer(data)
	if err != nil {
		return err
	}
	log.Debugf("Inspected %s", path)
	return printJSON(cmd, inspectResult{RollupID: id, RollupSize: size, Bytes: len(data)})
}
