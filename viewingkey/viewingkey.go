package viewingkey

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Size is the byte length of one encrypted viewing key: a 64-byte ephemeral
// public key followed by the 112-byte encrypted note.
const Size = 176

var ErrInvalidSize = errors.New("viewing key has invalid size")

// ViewingKey is an encrypted note decryption credential attached to a transaction.
// The zero value is the empty key.
type ViewingKey struct {
	data []byte
}

// Empty marks an unused viewing key slot. It serializes to no bytes.
var Empty = ViewingKey{}

// New copies b into a viewing key. b must be exactly Size bytes.
func New(b []byte) (ViewingKey, error) {
	if len(b) != Size {
		return Empty, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(b), Size)
	}
	data := make([]byte, Size)
	copy(data, b)
	return ViewingKey{data: data}, nil
}

func (k ViewingKey) IsEmpty() bool {
	return len(k.data) == 0
}

// Bytes returns a copy of the key material, nil for the empty key.
func (k ViewingKey) Bytes() []byte {
	if k.IsEmpty() {
		return nil
	}
	out := make([]byte, len(k.data))
	copy(out, k.data)
	return out
}

func (k ViewingKey) Equal(other ViewingKey) bool {
	return bytes.Equal(k.data, other.data)
}

func (k ViewingKey) String() string {
	if k.IsEmpty() {
		return "<empty>"
	}
	return hexutil.Encode(k.data)
}

func (k ViewingKey) MarshalText() ([]byte, error) {
	if k.IsEmpty() {
		return []byte{}, nil
	}
	return hexutil.Bytes(k.data).MarshalText()
}

func (k *ViewingKey) UnmarshalText(input []byte) error {
	if len(input) == 0 {
		*k = Empty
		return nil
	}
	var b hexutil.Bytes
	if err := b.UnmarshalText(input); err != nil {
		return err
	}
	key, err := New(b)
	if err != nil {
		return err
	}
	*k = key
	return nil
}
