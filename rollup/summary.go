package rollup

import (
	"github.com/airchains-network/rollup-codec/innerproof"
	"github.com/ethereum/go-ethereum/common"
)

// Summary is a compact view of a rollup for tooling output.
type Summary struct {
	RollupID         uint32                     `json:"rollupId"`
	RollupSize       uint32                     `json:"rollupSize"`
	DataStartIndex   uint32                     `json:"dataStartIndex"`
	RollupHash       common.Hash                `json:"rollupHash"`
	OldDataRoot      common.Hash                `json:"oldDataRoot"`
	NewDataRoot      common.Hash                `json:"newDataRoot"`
	OldNullRoot      common.Hash                `json:"oldNullRoot"`
	NewNullRoot      common.Hash                `json:"newNullRoot"`
	OldDataRootsRoot common.Hash                `json:"oldDataRootsRoot"`
	NewDataRootsRoot common.Hash                `json:"newDataRootsRoot"`
	OldDefiRoot      common.Hash                `json:"oldDefiRoot"`
	NewDefiRoot      common.Hash                `json:"newDefiRoot"`
	Txs              []TxSummary                `json:"txs"`
	PaddingCount     int                        `json:"paddingCount"`
	ViewingKeyCount  int                        `json:"viewingKeyCount"`
	ProofCounts      map[innerproof.ProofID]int `json:"proofCounts"`
}

type TxSummary struct {
	TxID    common.Hash        `json:"txId"`
	ProofID innerproof.ProofID `json:"proofId"`
}

// Summary lists the real transactions of p. Padding entries are only counted.
func (p *RollupProofData) Summary() Summary {
	s := Summary{
		RollupID:         p.RollupID,
		RollupSize:       p.RollupSize,
		DataStartIndex:   p.DataStartIndex,
		RollupHash:       p.rollupHash,
		OldDataRoot:      p.OldDataRoot,
		NewDataRoot:      p.NewDataRoot,
		OldNullRoot:      p.OldNullRoot,
		NewNullRoot:      p.NewNullRoot,
		OldDataRootsRoot: p.OldDataRootsRoot,
		NewDataRootsRoot: p.NewDataRootsRoot,
		OldDefiRoot:      p.OldDefiRoot,
		NewDefiRoot:      p.NewDefiRoot,
		Txs:              []TxSummary{},
		ProofCounts:      make(map[innerproof.ProofID]int),
	}
	for _, tx := range p.InnerProofData {
		if tx.IsPadding() {
			s.PaddingCount++
			continue
		}
		s.Txs = append(s.Txs, TxSummary{TxID: tx.TxID(), ProofID: tx.ProofID})
		s.ProofCounts[tx.ProofID]++
	}
	for _, row := range p.ViewingKeys {
		for _, k := range row {
			if !k.IsEmpty() {
				s.ViewingKeyCount++
			}
		}
	}
	return s
}
