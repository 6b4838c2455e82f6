package rollup

import (
	"fmt"

	"github.com/airchains-network/rollup-codec/innerproof"
)

// parseDenseInnerProofs reads exactly rollupSize fixed-size entries.
func parseDenseInnerProofs(r *reader, rollupSize uint32) ([]innerproof.InnerProofData, error) {
	// reject before allocating rollupSize entries for a truncated buffer
	if need := uint64(rollupSize) * innerproof.Length; need > uint64(r.remaining()) {
		return nil, fmt.Errorf("%w: %d inner proofs need %d bytes, %d available",
			ErrMalformed, rollupSize, need, r.remaining())
	}

	txs := make([]innerproof.InnerProofData, rollupSize)
	for i := range txs {
		b, err := r.take(innerproof.Length, fmt.Sprintf("innerProofData[%d]", i))
		if err != nil {
			return nil, err
		}
		if txs[i], err = innerproof.FromBytes(b); err != nil {
			return nil, fmt.Errorf("innerProofData[%d]: %w", i, err)
		}
	}
	return txs, nil
}

func writeDenseInnerProofs(w *writer, txs []innerproof.InnerProofData) {
	for _, tx := range txs {
		w.bytes(tx.Bytes())
	}
}

// parseSparseInnerProofs reads the length prefixed run of variable-size entries
// and pads the result with innerproof.Padding up to rollupSize.
func parseSparseInnerProofs(r *reader, rollupSize uint32) ([]innerproof.InnerProofData, error) {
	total, err := r.readUint32("innerProofDataLength")
	if err != nil {
		return nil, err
	}
	region, err := r.take(int(total), "innerProofData")
	if err != nil {
		return nil, err
	}

	var txs []innerproof.InnerProofData
	for offset := 0; offset < len(region); {
		if len(txs) == int(rollupSize) {
			return nil, fmt.Errorf("%w: rollup size %d", ErrTooManyInnerProofs, rollupSize)
		}
		if left := len(region) - offset; left < innerproof.MinEncodedLength {
			return nil, fmt.Errorf("%w: %d declared bytes left after entry %d", ErrMisalignedInnerProofs, left, len(txs))
		}
		n, err := innerproof.EncodedLength(innerproof.ProofID(region[offset]))
		if err != nil {
			return nil, fmt.Errorf("innerProofData[%d]: %w", len(txs), err)
		}
		if offset+n > len(region) {
			return nil, fmt.Errorf("%w: entry %d at offset %d needs %d bytes, %d declared bytes left",
				ErrMisalignedInnerProofs, len(txs), offset, n, len(region)-offset)
		}
		tx, err := innerproof.Decode(region[offset : offset+n])
		if err != nil {
			return nil, fmt.Errorf("innerProofData[%d]: %w", len(txs), err)
		}
		txs = append(txs, tx)
		offset += n
	}

	return PadInnerProofs(txs, rollupSize)
}

// writeSparseInnerProofs drops padding, encodes the rest and prefixes the run with its length.
func writeSparseInnerProofs(w *writer, txs []innerproof.InnerProofData) error {
	encoded := make([]byte, 0, len(txs)*innerproof.Length)
	for i, tx := range txs {
		if tx.IsPadding() {
			if err := tx.CheckPadding(); err != nil {
				return fmt.Errorf("innerProofData[%d]: %w", i, err)
			}
			continue
		}
		b, err := innerproof.Encode(tx)
		if err != nil {
			return fmt.Errorf("innerProofData[%d]: %w", i, err)
		}
		encoded = append(encoded, b...)
	}
	w.uint32(uint32(len(encoded)))
	w.bytes(encoded)
	return nil
}

// PadInnerProofs returns txs followed by padding entries up to size.
// It returns ErrTooManyInnerProofs when txs is already larger than size.
func PadInnerProofs(txs []innerproof.InnerProofData, size uint32) ([]innerproof.InnerProofData, error) {
	if len(txs) > int(size) {
		return nil, fmt.Errorf("%w: %d inner proofs, rollup size %d", ErrTooManyInnerProofs, len(txs), size)
	}
	out := make([]innerproof.InnerProofData, size)
	copy(out, txs)
	return out, nil
}
