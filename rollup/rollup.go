package rollup

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/airchains-network/rollup-codec/innerproof"
	"github.com/ethereum/go-ethereum/common"
)

// Format selects how the inner proof region is laid out on the wire.
type Format int

const (
	// FormatDense writes rollupSize fixed-size inner proofs, padding included.
	FormatDense Format = iota
	// FormatSparse writes a length prefixed run of variable-size inner proofs with padding omitted.
	FormatSparse
)

func (f Format) String() string {
	switch f {
	case FormatDense:
		return "dense"
	case FormatSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "dense" or "sparse".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dense":
		return FormatDense, nil
	case "sparse":
		return FormatSparse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// RollupProofData is the public data of a rollup proof. Build it with New or one
// of the parse functions; a value that is modified afterwards must be rebuilt with
// New to refresh its rollup hash.
type RollupProofData struct {
	Header
	InnerProofData []innerproof.InnerProofData `json:"innerProofData"`
	Tail
	// ViewingKeys is either empty or holds one row per inner proof.
	ViewingKeys []TxViewingKeys `json:"viewingKeys,omitempty"`

	rollupHash common.Hash
}

// New validates the record and derives its rollup hash. Nothing is returned
// unless every check passes.
func New(header Header, txs []innerproof.InnerProofData, tail Tail, viewingKeys []TxViewingKeys) (*RollupProofData, error) {
	if err := header.validate(); err != nil {
		return nil, err
	}
	if err := tail.validate(); err != nil {
		return nil, err
	}
	if len(txs) != int(header.RollupSize) {
		return nil, fmt.Errorf("%w: %d inner proofs, rollup size %d", ErrInnerProofCount, len(txs), header.RollupSize)
	}
	for i, tx := range txs {
		if err := tx.CheckPadding(); err != nil {
			return nil, fmt.Errorf("innerProofData[%d]: %w", i, err)
		}
	}
	if len(viewingKeys) > 0 {
		if err := ValidateViewingKeys(txs, viewingKeys); err != nil {
			return nil, err
		}
	}

	header.BridgeIDs = cloneSlice(header.BridgeIDs)
	header.DefiDepositSums = cloneSlice(header.DefiDepositSums)
	header.AssetIDs = cloneSlice(header.AssetIDs)
	header.TotalTxFees = cloneSlice(header.TotalTxFees)
	tail.DefiInteractionNotes = cloneSlice(tail.DefiInteractionNotes)

	p := &RollupProofData{
		Header:         header,
		InnerProofData: cloneSlice(txs),
		Tail:           tail,
		ViewingKeys:    cloneSlice(viewingKeys),
	}
	p.rollupHash = computeRollupHash(p.InnerProofData)
	return p, nil
}

func cloneSlice[T any](s []T) []T {
	return append([]T(nil), s...)
}

// computeRollupHash is sha256 over the concatenated transaction ids.
func computeRollupHash(txs []innerproof.InnerProofData) common.Hash {
	h := sha256.New()
	for _, tx := range txs {
		id := tx.TxID()
		h.Write(id[:])
	}
	return common.BytesToHash(h.Sum(nil))
}

func (p *RollupProofData) RollupHash() common.Hash {
	return p.rollupHash
}

// TxIDs returns the id of every inner proof, padding included, in rollup order.
func (p *RollupProofData) TxIDs() []common.Hash {
	ids := make([]common.Hash, len(p.InnerProofData))
	for i, tx := range p.InnerProofData {
		ids[i] = tx.TxID()
	}
	return ids
}

// Bytes returns the dense encoding.
func (p *RollupProofData) Bytes() []byte {
	w := newWriter(LengthRollupHeaderInputs + len(p.InnerProofData)*innerproof.Length + LengthTail)
	p.Header.write(w)
	writeDenseInnerProofs(w, p.InnerProofData)
	p.Tail.write(w)
	return w.buf
}

// Encode returns the sparse encoding.
func (p *RollupProofData) Encode() ([]byte, error) {
	w := newWriter(LengthRollupHeaderInputs + uintBytes + LengthTail)
	p.Header.write(w)
	if err := writeSparseInnerProofs(w, p.InnerProofData); err != nil {
		return nil, err
	}
	p.Tail.write(w)
	return w.buf, nil
}

// Serialize writes p in the given format.
func (p *RollupProofData) Serialize(format Format) ([]byte, error) {
	switch format {
	case FormatDense:
		return p.Bytes(), nil
	case FormatSparse:
		return p.Encode()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ViewingKeyData returns the flat viewing key stream for p, the inverse of ParseViewingKeys.
func (p *RollupProofData) ViewingKeyData() []byte {
	return viewingKeyData(p.ViewingKeys)
}

// Equal reports whether both records hold the same proof data and viewing keys.
func (p *RollupProofData) Equal(other *RollupProofData) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.rollupHash != other.rollupHash || !bytes.Equal(p.Bytes(), other.Bytes()) {
		return false
	}
	if len(p.ViewingKeys) != len(other.ViewingKeys) {
		return false
	}
	for i, row := range p.ViewingKeys {
		for j, k := range row {
			if !k.Equal(other.ViewingKeys[i][j]) {
				return false
			}
		}
	}
	return true
}

// FromBytes parses the dense encoding. viewingKeyData is optional; pass nil to skip
// viewing key association.
func FromBytes(proofData, viewingKeyData []byte) (*RollupProofData, error) {
	return parse(proofData, viewingKeyData, parseDenseInnerProofs)
}

// Decode parses the sparse encoding. viewingKeyData is optional; pass nil to skip
// viewing key association.
func Decode(encoded, viewingKeyData []byte) (*RollupProofData, error) {
	return parse(encoded, viewingKeyData, parseSparseInnerProofs)
}

// Parse reads proofData in the given format.
func Parse(format Format, proofData, viewingKeyData []byte) (*RollupProofData, error) {
	switch format {
	case FormatDense:
		return FromBytes(proofData, viewingKeyData)
	case FormatSparse:
		return Decode(proofData, viewingKeyData)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

type innerProofReader func(r *reader, rollupSize uint32) ([]innerproof.InnerProofData, error)

func parse(proofData, vkData []byte, readInnerProofs innerProofReader) (*RollupProofData, error) {
	rollupSize, err := RollupSizeFromBuffer(proofData)
	if err != nil {
		return nil, err
	}
	if rollupSize == 0 {
		return nil, ErrEmptyRollup
	}
	if rollupSize > MaxRollupSize {
		return nil, fmt.Errorf("%w: rollup size %d exceeds %d", ErrMalformed, rollupSize, MaxRollupSize)
	}

	r := newReader(proofData, 0)
	header, err := parseHeader(r)
	if err != nil {
		return nil, err
	}
	txs, err := readInnerProofs(r, header.RollupSize)
	if err != nil {
		return nil, err
	}
	tail, err := parseTail(r)
	if err != nil {
		return nil, err
	}

	var viewingKeys []TxViewingKeys
	if vkData != nil {
		if viewingKeys, err = ParseViewingKeys(txs, vkData); err != nil {
			return nil, err
		}
	}
	return New(header, txs, tail, viewingKeys)
}
