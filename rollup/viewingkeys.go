package rollup

import (
	"fmt"

	"github.com/airchains-network/rollup-codec/innerproof"
	"github.com/airchains-network/rollup-codec/viewingkey"
)

// TxViewingKeys are the viewing key slots of one transaction. Unused slots hold viewingkey.Empty.
type TxViewingKeys [innerproof.MaxViewingKeys]viewingkey.ViewingKey

func expectedViewingKeys(tx innerproof.InnerProofData) int {
	if tx.IsPadding() {
		return 0
	}
	return innerproof.NumViewingKeys(tx.ProofID)
}

// ParseViewingKeys splits a flat viewing key stream into per-transaction slots,
// consuming as many keys as each transaction's proof kind carries.
func ParseViewingKeys(txs []innerproof.InnerProofData, viewingKeyData []byte) ([]TxViewingKeys, error) {
	r := newReader(viewingKeyData, 0)
	keys := make([]TxViewingKeys, len(txs))
	for i, tx := range txs {
		keys[i] = TxViewingKeys{viewingkey.Empty, viewingkey.Empty}
		for j := 0; j < expectedViewingKeys(tx); j++ {
			if r.remaining() < viewingkey.Size {
				return nil, fmt.Errorf("%w: transaction %d key %d at offset %d", ErrEmptyViewingKeyData, i, j, r.offset)
			}
			b, err := r.take(viewingkey.Size, "viewingKey")
			if err != nil {
				return nil, err
			}
			if keys[i][j], err = viewingkey.New(b); err != nil {
				return nil, err
			}
		}
	}
	if n := r.remaining(); n > 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingViewingKeyData, n)
	}
	return keys, nil
}

// ValidateViewingKeys checks that every transaction holds exactly as many
// non-empty viewing keys as its proof kind requires, in its leading slots.
// Rows missing from the end of keys count as holding none.
func ValidateViewingKeys(txs []innerproof.InnerProofData, keys []TxViewingKeys) error {
	if len(keys) > len(txs) {
		return fmt.Errorf("%w: %d viewing key rows for %d transactions", ErrInvalidViewingKeyCount, len(keys), len(txs))
	}
	for i, tx := range txs {
		var got int
		if i < len(keys) {
			for j, k := range keys[i] {
				if k.IsEmpty() {
					continue
				}
				if got != j {
					return fmt.Errorf("%w: transaction %d slot %d", ErrViewingKeyGap, i, j)
				}
				got++
			}
		}
		if want := expectedViewingKeys(tx); got != want {
			return fmt.Errorf("%w: transaction %d (%s) has %d, want %d", ErrInvalidViewingKeyCount, i, tx.ProofID, got, want)
		}
	}
	return nil
}

// viewingKeyData flattens keys into the stream ParseViewingKeys reads. Empty slots emit nothing.
func viewingKeyData(keys []TxViewingKeys) []byte {
	var out []byte
	for _, row := range keys {
		for _, k := range row {
			out = append(out, k.Bytes()...)
		}
	}
	return out
}
