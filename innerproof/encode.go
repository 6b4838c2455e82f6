package innerproof

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// indexes into fields()
const (
	fieldPublicInput = iota
	fieldPublicOutput
	fieldAssetID
	fieldNewNote1
	fieldNewNote2
	fieldNullifier1
	fieldNullifier2
	fieldInputOwner
	fieldOutputOwner
)

var fieldNames = [numSlots - 1]string{
	"publicInput", "publicOutput", "assetId",
	"newNote1", "newNote2", "nullifier1", "nullifier2",
	"inputOwner", "outputOwner",
}

// encodedFields lists, per proof kind, the slots the variable-size encoding carries.
// Every other slot must be zero for that kind.
var encodedFields = map[ProofID][]int{
	ProofIDDeposit: {
		fieldPublicInput, fieldAssetID,
		fieldNewNote1, fieldNewNote2, fieldNullifier1, fieldNullifier2,
		fieldInputOwner,
	},
	ProofIDWithdraw: {
		fieldPublicOutput, fieldAssetID,
		fieldNewNote1, fieldNewNote2, fieldNullifier1, fieldNullifier2,
		fieldOutputOwner,
	},
	ProofIDSend:        {fieldNewNote1, fieldNewNote2, fieldNullifier1, fieldNullifier2},
	ProofIDAccount:     {fieldNewNote1, fieldNewNote2, fieldNullifier1, fieldNullifier2},
	ProofIDDefiDeposit: {fieldAssetID, fieldNewNote1, fieldNewNote2, fieldNullifier1, fieldNullifier2},
	ProofIDDefiClaim:   {fieldAssetID, fieldNewNote1, fieldNewNote2, fieldNullifier1, fieldNullifier2},
}

// MinEncodedLength is the size of the shortest variable-size encoding (send and account proofs).
const MinEncodedLength = 1 + 4*slotBytes

// EncodedLength returns the size of the variable-size encoding for a proof kind,
// including the leading tag byte.
func EncodedLength(id ProofID) (int, error) {
	slots, ok := encodedFields[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownProofID, id)
	}
	return 1 + len(slots)*slotBytes, nil
}

// Encode produces the variable-size encoding of p: a one byte proof id tag
// followed by the slots its kind carries. Padding has no variable-size encoding.
func Encode(p InnerProofData) ([]byte, error) {
	if p.IsPadding() {
		return nil, fmt.Errorf("%w: padding", ErrNotEncodable)
	}
	slots, ok := encodedFields[p.ProofID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProofID, p.ProofID)
	}

	fields := p.fields()
	carried := make(map[int]bool, len(slots))
	buf := make([]byte, 0, 1+len(slots)*slotBytes)
	buf = append(buf, byte(p.ProofID))
	for _, idx := range slots {
		carried[idx] = true
		buf = append(buf, fields[idx][:]...)
	}
	for idx, field := range fields {
		if !carried[idx] && field != (common.Hash{}) {
			return nil, fmt.Errorf("%w: %s proof has non-zero %s", ErrNotEncodable, p.ProofID, fieldNames[idx])
		}
	}
	return buf, nil
}

// Decode parses one variable-size encoding. b must hold exactly one entry.
func Decode(b []byte) (InnerProofData, error) {
	if len(b) == 0 {
		return Padding, fmt.Errorf("%w: empty input", ErrInvalidLength)
	}
	id := ProofID(b[0])
	want, err := EncodedLength(id)
	if err != nil {
		return Padding, err
	}
	if len(b) != want {
		return Padding, fmt.Errorf("%w: %s proof got %d bytes, want %d", ErrInvalidLength, id, len(b), want)
	}

	p := InnerProofData{ProofID: id}
	refs := p.fieldRefs()
	offset := 1
	for _, idx := range encodedFields[id] {
		copy(refs[idx][:], b[offset:offset+slotBytes])
		offset += slotBytes
	}
	return p, nil
}
