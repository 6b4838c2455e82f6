package commands

import (
	"fmt"
	"os"

	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

// ConvertCmd re-encodes a proof buffer between the dense and sparse forms
var ConvertCmd = &cobra.Command{
	Use:   "convert <proof-file>",
	Short: "Convert a rollup proof between dense and sparse encodings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertCommand(cmd, args[0])
	},
}

func init() {
	ConvertCmd.Flags().String("from", "", "Encoding of the input (dense/sparse), defaults to codec.format")
	ConvertCmd.Flags().String("to", "", "Encoding of the output (dense/sparse)")
	ConvertCmd.Flags().StringP("out", "o", "", "Output file, hex to stdout when empty")
	ConvertCmd.MarkFlagRequired("to")
}

func convertCommand(cmd *cobra.Command, path string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	from, err := formatFlag(cmd, "from", cfg)
	if err != nil {
		return err
	}
	toFlag, _ := cmd.Flags().GetString("to")
	to, err := rollup.ParseFormat(toFlag)
	if err != nil {
		return err
	}
	data, err := readInput(path)
	if err != nil {
		return err
	}

	p, err := rollup.Parse(from, data, nil)
	if err != nil {
		return err
	}
	out, err := p.Serialize(to)
	if err != nil {
		return err
	}
	log.Infof("Converted rollup #%d from %s (%d bytes) to %s (%d bytes)", p.RollupID, from, len(data), to, len(out))

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(out))
		return err
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %v", outPath, err)
	}
	return nil
}
