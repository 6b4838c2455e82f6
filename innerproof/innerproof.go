package innerproof

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	slotBytes = 32
	numSlots  = 10
	// Length is the fixed-size encoding of one inner proof: ten 32-byte slots,
	// the first holding the proof id as a big-endian uint32 in its last 4 bytes.
	Length = numSlots * slotBytes

	proofIDOffset = slotBytes - 4
)

var (
	ErrInvalidLength  = errors.New("inner proof data has invalid length")
	ErrUnknownProofID = errors.New("unknown proof id")
	ErrNotEncodable   = errors.New("inner proof cannot be encoded")
	ErrInvalidPadding = errors.New("padding inner proof has non-zero data")
)

// InnerProofData is the public data of one transaction proof inside a rollup.
type InnerProofData struct {
	ProofID      ProofID     `json:"proofId"`
	PublicInput  common.Hash `json:"publicInput"`
	PublicOutput common.Hash `json:"publicOutput"`
	AssetID      common.Hash `json:"assetId"`
	NewNote1     common.Hash `json:"newNote1"`
	NewNote2     common.Hash `json:"newNote2"`
	Nullifier1   common.Hash `json:"nullifier1"`
	Nullifier2   common.Hash `json:"nullifier2"`
	InputOwner   common.Hash `json:"inputOwner"`
	OutputOwner  common.Hash `json:"outputOwner"`
}

// Padding fills unused capacity of a rollup. Its fixed-size encoding is all zeros.
var Padding = InnerProofData{}

func (p InnerProofData) IsPadding() bool {
	return p.ProofID == ProofIDPadding
}

// CheckPadding returns ErrInvalidPadding when p has the padding proof id but
// differs from Padding. Such an entry would not survive the sparse encoding.
func (p InnerProofData) CheckPadding() error {
	if p.IsPadding() && p != Padding {
		return ErrInvalidPadding
	}
	return nil
}

// Bytes returns the fixed-size encoding of p.
func (p InnerProofData) Bytes() []byte {
	buf := make([]byte, Length)
	binary.BigEndian.PutUint32(buf[proofIDOffset:slotBytes], uint32(p.ProofID))
	for i, field := range p.fields() {
		start := (i + 1) * slotBytes
		copy(buf[start:start+slotBytes], field[:])
	}
	return buf
}

// TxID is the unique identifier of the transaction: sha256 over its fixed-size encoding.
func (p InnerProofData) TxID() common.Hash {
	return sha256.Sum256(p.Bytes())
}

// FromBytes parses the fixed-size encoding produced by Bytes.
func FromBytes(b []byte) (InnerProofData, error) {
	if len(b) != Length {
		return Padding, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Length)
	}
	var p InnerProofData
	p.ProofID = ProofID(binary.BigEndian.Uint32(b[proofIDOffset:slotBytes]))
	if !p.ProofID.valid() {
		return Padding, fmt.Errorf("%w: %d", ErrUnknownProofID, p.ProofID)
	}
	for i, field := range p.fieldRefs() {
		start := (i + 1) * slotBytes
		copy(field[:], b[start:start+slotBytes])
	}
	if err := p.CheckPadding(); err != nil {
		return Padding, err
	}
	return p, nil
}

// fields lists the nine hash slots that follow the proof id, in wire order.
func (p InnerProofData) fields() [numSlots - 1]common.Hash {
	return [...]common.Hash{
		p.PublicInput, p.PublicOutput, p.AssetID,
		p.NewNote1, p.NewNote2, p.Nullifier1, p.Nullifier2,
		p.InputOwner, p.OutputOwner,
	}
}

func (p *InnerProofData) fieldRefs() [numSlots - 1]*common.Hash {
	return [...]*common.Hash{
		&p.PublicInput, &p.PublicOutput, &p.AssetID,
		&p.NewNote1, &p.NewNote2, &p.Nullifier1, &p.Nullifier2,
		&p.InputOwner, &p.OutputOwner,
	}
}
