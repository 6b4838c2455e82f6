package rollup_test

import (
	"testing"

	"github.com/airchains-network/rollup-codec/innerproof"
	"github.com/airchains-network/rollup-codec/internal/rolluptest"
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/airchains-network/rollup-codec/viewingkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewingKeysSparseScenario(t *testing.T) {
	// one defi deposit (one key) and one send (two keys) in a rollup of four
	p, err := rolluptest.Rollup(5, 4, true, innerproof.ProofIDDefiDeposit, innerproof.ProofIDSend)
	require.NoError(t, err)
	vkData := p.ViewingKeyData()
	require.Len(t, vkData, 3*viewingkey.Size)

	encoded, err := p.Encode()
	require.NoError(t, err)
	got, err := rollup.Decode(encoded, vkData)
	require.NoError(t, err)

	require.Len(t, got.InnerProofData, 4)
	assert.Equal(t, innerproof.ProofIDDefiDeposit, got.InnerProofData[0].ProofID)
	assert.Equal(t, innerproof.ProofIDSend, got.InnerProofData[1].ProofID)
	assert.True(t, got.InnerProofData[2].IsPadding())
	assert.True(t, got.InnerProofData[3].IsPadding())

	require.Len(t, got.ViewingKeys, 4)
	assert.False(t, got.ViewingKeys[0][0].IsEmpty())
	assert.True(t, got.ViewingKeys[0][1].IsEmpty())
	assert.False(t, got.ViewingKeys[1][0].IsEmpty())
	assert.False(t, got.ViewingKeys[1][1].IsEmpty())
	for i := 2; i < 4; i++ {
		assert.True(t, got.ViewingKeys[i][0].IsEmpty(), "tx %d", i)
		assert.True(t, got.ViewingKeys[i][1].IsEmpty(), "tx %d", i)
	}

	// keys are consumed in transaction order
	assert.Equal(t, vkData[:viewingkey.Size], got.ViewingKeys[0][0].Bytes())
	assert.Equal(t, vkData[viewingkey.Size:2*viewingkey.Size], got.ViewingKeys[1][0].Bytes())
	assert.Equal(t, vkData[2*viewingkey.Size:], got.ViewingKeys[1][1].Bytes())
}

func TestParseViewingKeysShortData(t *testing.T) {
	txs, err := rolluptest.Txs(4, innerproof.ProofIDDeposit, innerproof.ProofIDDefiDeposit)
	require.NoError(t, err)
	full := 3 * viewingkey.Size

	_, err = rollup.ParseViewingKeys(txs, make([]byte, full-1))
	assert.ErrorIs(t, err, rollup.ErrEmptyViewingKeyData)

	_, err = rollup.ParseViewingKeys(txs, []byte{})
	assert.ErrorIs(t, err, rollup.ErrEmptyViewingKeyData)

	_, err = rollup.ParseViewingKeys(txs, make([]byte, full+1))
	assert.ErrorIs(t, err, rollup.ErrTrailingViewingKeyData)

	keys, err := rollup.ParseViewingKeys(txs, make([]byte, full))
	require.NoError(t, err)
	assert.Len(t, keys, 4)

	// the same failure surfaces through both parse paths
	p, err := rolluptest.Rollup(1, 4, true, innerproof.ProofIDDeposit, innerproof.ProofIDDefiDeposit)
	require.NoError(t, err)
	vkData := p.ViewingKeyData()
	encoded, err := p.Encode()
	require.NoError(t, err)
	_, err = rollup.Decode(encoded, vkData[:len(vkData)-1])
	assert.ErrorIs(t, err, rollup.ErrEmptyViewingKeyData)
	_, err = rollup.FromBytes(p.Bytes(), vkData[:len(vkData)-1])
	assert.ErrorIs(t, err, rollup.ErrEmptyViewingKeyData)
}

func TestParseViewingKeysOptional(t *testing.T) {
	p, err := rolluptest.Rollup(1, 2, false, innerproof.ProofIDAccount)
	require.NoError(t, err)

	got, err := rollup.FromBytes(p.Bytes(), nil)
	require.NoError(t, err)
	assert.Empty(t, got.ViewingKeys)

	// an empty but present stream still yields one row per transaction
	got, err = rollup.FromBytes(p.Bytes(), []byte{})
	require.NoError(t, err)
	require.Len(t, got.ViewingKeys, 2)
	for _, row := range got.ViewingKeys {
		assert.True(t, row[0].IsEmpty())
		assert.True(t, row[1].IsEmpty())
	}
}

func TestValidateViewingKeys(t *testing.T) {
	txs, err := rolluptest.Txs(3, innerproof.ProofIDSend, innerproof.ProofIDDefiDeposit)
	require.NoError(t, err)
	keys := rolluptest.ViewingKeysFor(txs)
	require.NoError(t, rollup.ValidateViewingKeys(txs, keys))

	tests := []struct {
		name   string
		mutate func(keys []rollup.TxViewingKeys) []rollup.TxViewingKeys
	}{
		{"missing key", func(k []rollup.TxViewingKeys) []rollup.TxViewingKeys {
			k[0][1] = viewingkey.Empty
			return k
		}},
		{"extra key", func(k []rollup.TxViewingKeys) []rollup.TxViewingKeys {
			k[1][1] = rolluptest.ViewingKey(99)
			return k
		}},
		{"key on padding", func(k []rollup.TxViewingKeys) []rollup.TxViewingKeys {
			k[2][0] = rolluptest.ViewingKey(99)
			return k
		}},
		{"missing rows", func(k []rollup.TxViewingKeys) []rollup.TxViewingKeys {
			return k[:1]
		}},
		{"extra rows", func(k []rollup.TxViewingKeys) []rollup.TxViewingKeys {
			return append(k, rollup.TxViewingKeys{})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := tt.mutate(append([]rollup.TxViewingKeys(nil), keys...))
			assert.ErrorIs(t, rollup.ValidateViewingKeys(txs, mutated), rollup.ErrInvalidViewingKeyCount)

			p, err := rollup.New(rolluptest.Header(1, 3), txs, rolluptest.Tail(), mutated)
			assert.ErrorIs(t, err, rollup.ErrInvalidViewingKeyCount)
			assert.Nil(t, p)
		})
	}

	// keys must fill the leading slots so the stream parses back into the same rows
	moved := append([]rollup.TxViewingKeys(nil), keys...)
	moved[1][0], moved[1][1] = viewingkey.Empty, moved[1][0]
	assert.ErrorIs(t, rollup.ValidateViewingKeys(txs, moved), rollup.ErrViewingKeyGap)
	_, err = rollup.New(rolluptest.Header(1, 3), txs, rolluptest.Tail(), moved)
	assert.ErrorIs(t, err, rollup.ErrViewingKeyGap)
}

func TestViewingKeyDataRoundTrip(t *testing.T) {
	p, err := rolluptest.Rollup(1, 8, true, allKinds...)
	require.NoError(t, err)

	vkData := p.ViewingKeyData()
	assert.Len(t, vkData, 7*viewingkey.Size)

	keys, err := rollup.ParseViewingKeys(p.InnerProofData, vkData)
	require.NoError(t, err)
	assert.Equal(t, p.ViewingKeys, keys)

	noKeys, err := rolluptest.Rollup(1, 8, false, allKinds...)
	require.NoError(t, err)
	assert.Empty(t, noKeys.ViewingKeyData())
}
