// Package rolluptest builds deterministic rollup fixtures for tests.
package rolluptest

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/airchains-network/rollup-codec/innerproof"
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/airchains-network/rollup-codec/viewingkey"
	"github.com/ethereum/go-ethereum/common"
)

// Hash derives a distinct 32-byte value from a label and an index.
func Hash(label string, i int) common.Hash {
	h := sha256.New()
	h.Write([]byte(label))
	h.Write(binary.BigEndian.AppendUint64(nil, uint64(i)))
	return common.BytesToHash(h.Sum(nil))
}

func hashes(label string, n int) []common.Hash {
	out := make([]common.Hash, n)
	for i := range out {
		out[i] = Hash(label, i)
	}
	return out
}

// Header returns a valid header with every root and array populated.
func Header(rollupID, rollupSize uint32) rollup.Header {
	return rollup.Header{
		RollupID:         rollupID,
		RollupSize:       rollupSize,
		DataStartIndex:   rollupID * rollupSize * 2,
		OldDataRoot:      Hash("oldDataRoot", int(rollupID)),
		NewDataRoot:      Hash("newDataRoot", int(rollupID)),
		OldNullRoot:      Hash("oldNullRoot", int(rollupID)),
		NewNullRoot:      Hash("newNullRoot", int(rollupID)),
		OldDataRootsRoot: Hash("oldDataRootsRoot", int(rollupID)),
		NewDataRootsRoot: Hash("newDataRootsRoot", int(rollupID)),
		OldDefiRoot:      Hash("oldDefiRoot", int(rollupID)),
		NewDefiRoot:      Hash("newDefiRoot", int(rollupID)),
		BridgeIDs:        hashes("bridgeId", rollup.NumBridgeCallsPerBlock),
		DefiDepositSums:  hashes("defiDepositSum", rollup.NumBridgeCallsPerBlock),
		AssetIDs:         hashes("assetId", rollup.NumberOfAssets),
		TotalTxFees:      hashes("totalTxFee", rollup.NumberOfAssets),
	}
}

// Tail returns a valid tail with non-zero content.
func Tail() rollup.Tail {
	var t rollup.Tail
	for i := range t.RecursiveProofOutput {
		t.RecursiveProofOutput[i] = byte(i)
	}
	t.DefiInteractionNotes = make([]rollup.DefiInteractionNote, rollup.NumBridgeCallsPerBlock)
	for i := range t.DefiInteractionNotes {
		lo, hi := Hash("defiInteractionNote", 2*i), Hash("defiInteractionNote", 2*i+1)
		copy(t.DefiInteractionNotes[i][:32], lo[:])
		copy(t.DefiInteractionNotes[i][32:], hi[:])
	}
	t.PrevDefiInteractionHash = Hash("prevDefiInteractionHash", 0)
	return t
}

// InnerProof returns an inner proof of the given kind with only the fields that
// kind carries set, so it survives the variable-size encoding.
func InnerProof(id innerproof.ProofID, n int) innerproof.InnerProofData {
	if id == innerproof.ProofIDPadding {
		return innerproof.Padding
	}
	p := innerproof.InnerProofData{
		ProofID:    id,
		NewNote1:   Hash("newNote1", n),
		NewNote2:   Hash("newNote2", n),
		Nullifier1: Hash("nullifier1", n),
		Nullifier2: Hash("nullifier2", n),
	}
	switch id {
	case innerproof.ProofIDDeposit:
		p.PublicInput = Hash("publicInput", n)
		p.AssetID = Hash("assetId", n)
		p.InputOwner = Hash("inputOwner", n)
	case innerproof.ProofIDWithdraw:
		p.PublicOutput = Hash("publicOutput", n)
		p.AssetID = Hash("assetId", n)
		p.OutputOwner = Hash("outputOwner", n)
	case innerproof.ProofIDDefiDeposit, innerproof.ProofIDDefiClaim:
		p.AssetID = Hash("bridgeId", n)
	}
	return p
}

// ViewingKey returns a distinct non-empty viewing key.
func ViewingKey(n int) viewingkey.ViewingKey {
	b := make([]byte, 0, viewingkey.Size)
	for i := 0; len(b) < viewingkey.Size; i++ {
		h := Hash("viewingKey", n*16+i)
		b = append(b, h[:]...)
	}
	k, err := viewingkey.New(b[:viewingkey.Size])
	if err != nil {
		panic(err)
	}
	return k
}

// ViewingKeysFor fills exactly the slots each transaction requires.
func ViewingKeysFor(txs []innerproof.InnerProofData) []rollup.TxViewingKeys {
	keys := make([]rollup.TxViewingKeys, len(txs))
	n := 0
	for i, tx := range txs {
		keys[i] = rollup.TxViewingKeys{viewingkey.Empty, viewingkey.Empty}
		if tx.IsPadding() {
			continue
		}
		for j := 0; j < innerproof.NumViewingKeys(tx.ProofID); j++ {
			keys[i][j] = ViewingKey(n)
			n++
		}
	}
	return keys
}

// Txs returns one inner proof per kind, padded up to rollupSize.
func Txs(rollupSize uint32, kinds ...innerproof.ProofID) ([]innerproof.InnerProofData, error) {
	entries := make([]innerproof.InnerProofData, len(kinds))
	for i, id := range kinds {
		entries[i] = InnerProof(id, i)
	}
	return rollup.PadInnerProofs(entries, rollupSize)
}

// Rollup builds a valid rollup holding one transaction per kind followed by
// padding, with viewing keys when withKeys is set.
func Rollup(rollupID, rollupSize uint32, withKeys bool, kinds ...innerproof.ProofID) (*rollup.RollupProofData, error) {
	txs, err := Txs(rollupSize, kinds...)
	if err != nil {
		return nil, err
	}
	var keys []rollup.TxViewingKeys
	if withKeys {
		keys = ViewingKeysFor(txs)
	}
	return rollup.New(Header(rollupID, rollupSize), txs, Tail(), keys)
}
