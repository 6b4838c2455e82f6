package rollup

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Header holds the fixed-layout public inputs at the front of a rollup proof.
type Header struct {
	RollupID         uint32        `json:"rollupId"`
	RollupSize       uint32        `json:"rollupSize"`
	DataStartIndex   uint32        `json:"dataStartIndex"`
	OldDataRoot      common.Hash   `json:"oldDataRoot"`
	NewDataRoot      common.Hash   `json:"newDataRoot"`
	OldNullRoot      common.Hash   `json:"oldNullRoot"`
	NewNullRoot      common.Hash   `json:"newNullRoot"`
	OldDataRootsRoot common.Hash   `json:"oldDataRootsRoot"`
	NewDataRootsRoot common.Hash   `json:"newDataRootsRoot"`
	OldDefiRoot      common.Hash   `json:"oldDefiRoot"`
	NewDefiRoot      common.Hash   `json:"newDefiRoot"`
	BridgeIDs        []common.Hash `json:"bridgeIds"`
	DefiDepositSums  []common.Hash `json:"defiDepositSums"`
	AssetIDs         []common.Hash `json:"assetIds"`
	TotalTxFees      []common.Hash `json:"totalTxFees"`
}

// RollupIDFromBuffer reads only the rollup id from encoded proof data of either format.
func RollupIDFromBuffer(proofData []byte) (uint32, error) {
	return newReader(proofData, OffsetRollupID).readUint32("rollupId")
}

// RollupSizeFromBuffer reads only the rollup size from encoded proof data of either format.
func RollupSizeFromBuffer(proofData []byte) (uint32, error) {
	return newReader(proofData, OffsetRollupSize).readUint32("rollupSize")
}

func (h *Header) validate() error {
	if h.RollupSize == 0 {
		return ErrEmptyRollup
	}
	if h.RollupSize > MaxRollupSize {
		return fmt.Errorf("%w: rollup size %d exceeds %d", ErrMalformed, h.RollupSize, MaxRollupSize)
	}
	if len(h.BridgeIDs) != NumBridgeCallsPerBlock {
		return fmt.Errorf("%w: got %d", ErrBridgeIDCount, len(h.BridgeIDs))
	}
	if len(h.DefiDepositSums) != NumBridgeCallsPerBlock {
		return fmt.Errorf("%w: got %d", ErrDefiDepositSumCount, len(h.DefiDepositSums))
	}
	if len(h.AssetIDs) != NumberOfAssets {
		return fmt.Errorf("%w: got %d", ErrAssetIDCount, len(h.AssetIDs))
	}
	if len(h.TotalTxFees) != NumberOfAssets {
		return fmt.Errorf("%w: got %d", ErrTotalTxFeeCount, len(h.TotalTxFees))
	}
	return nil
}

// parseHeader leaves r at the first inner proof byte.
func parseHeader(r *reader) (Header, error) {
	var (
		h   Header
		err error
	)
	if h.RollupID, err = r.readUint32Slot("rollupId"); err != nil {
		return h, err
	}
	if h.RollupSize, err = r.readUint32Slot("rollupSize"); err != nil {
		return h, err
	}
	if h.DataStartIndex, err = r.readUint32Slot("dataStartIndex"); err != nil {
		return h, err
	}

	roots := []struct {
		dst  *common.Hash
		name string
	}{
		{&h.OldDataRoot, "oldDataRoot"},
		{&h.NewDataRoot, "newDataRoot"},
		{&h.OldNullRoot, "oldNullRoot"},
		{&h.NewNullRoot, "newNullRoot"},
		{&h.OldDataRootsRoot, "oldDataRootsRoot"},
		{&h.NewDataRootsRoot, "newDataRootsRoot"},
		{&h.OldDefiRoot, "oldDefiRoot"},
		{&h.NewDefiRoot, "newDefiRoot"},
	}
	for _, root := range roots {
		if *root.dst, err = r.readHash(root.name); err != nil {
			return h, err
		}
	}

	if h.BridgeIDs, err = r.readHashes(NumBridgeCallsPerBlock, "bridgeIds"); err != nil {
		return h, err
	}
	if h.DefiDepositSums, err = r.readHashes(NumBridgeCallsPerBlock, "defiDepositSums"); err != nil {
		return h, err
	}
	if h.AssetIDs, err = r.readHashes(NumberOfAssets, "assetIds"); err != nil {
		return h, err
	}
	if h.TotalTxFees, err = r.readHashes(NumberOfAssets, "totalTxFees"); err != nil {
		return h, err
	}
	return h, nil
}

func (h *Header) write(w *writer) {
	w.uint32Slot(h.RollupID)
	w.uint32Slot(h.RollupSize)
	w.uint32Slot(h.DataStartIndex)
	w.hash(h.OldDataRoot)
	w.hash(h.NewDataRoot)
	w.hash(h.OldNullRoot)
	w.hash(h.NewNullRoot)
	w.hash(h.OldDataRootsRoot)
	w.hash(h.NewDataRootsRoot)
	w.hash(h.OldDefiRoot)
	w.hash(h.NewDefiRoot)
	w.hashes(h.BridgeIDs)
	w.hashes(h.DefiDepositSums)
	w.hashes(h.AssetIDs)
	w.hashes(h.TotalTxFees)
}
