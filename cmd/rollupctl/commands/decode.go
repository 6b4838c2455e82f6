package commands

import (
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/spf13/cobra"
)

// DecodeCmd decodes a proof buffer and prints its summary as JSON
var DecodeCmd = &cobra.Command{
	Use:   "decode <proof-file>",
	Short: "Decode a rollup proof and print its summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decodeCommand(cmd, args[0])
	},
}

func init() {
	DecodeCmd.Flags().String("format", "", "Encoding of the input (dense/sparse), defaults to codec.format")
	DecodeCmd.Flags().String("viewing-keys", "", "File holding the viewing key stream")
	DecodeCmd.Flags().Bool("full", false, "Print the full decoded rollup instead of the summary")
}

func decodeCommand(cmd *cobra.Command, path string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	format, err := formatFlag(cmd, "format", cfg)
	if err != nil {
		return err
	}
	data, err := readInput(path)
	if err != nil {
		return err
	}
	vkData, err := readViewingKeys(cmd)
	if err != nil {
		return err
	}

	p, err := rollup.Parse(format, data, vkData)
	if err != nil {
		return err
	}
	log.Infof("Decoded rollup #%d (%s, %d txs) hash=%s", p.RollupID, format, len(p.InnerProofData), p.RollupHash().Hex())

	if full, _ := cmd.Flags().GetBool("full"); full {
		return printJSON(cmd, p)
	}
	return printJSON(cmd, p.Summary())
}
