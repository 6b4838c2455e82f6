package rollup_test

import (
	"encoding/binary"
	"testing"

	"github.com/airchains-network/rollup-codec/innerproof"
	"github.com/airchains-network/rollup-codec/internal/rolluptest"
	"github.com/airchains-network/rollup-codec/rollup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBytes(t *testing.T) {
	p, err := rolluptest.Rollup(7, 2, false, innerproof.ProofIDSend)
	require.NoError(t, err)

	for _, format := range []rollup.Format{rollup.FormatDense, rollup.FormatSparse} {
		t.Run(format.String(), func(t *testing.T) {
			b, err := p.Serialize(format)
			require.NoError(t, err)

			assert.Equal(t, make([]byte, 28), b[:28], "rollupId slot is left padded with zeros")
			assert.Equal(t, uint32(7), binary.BigEndian.Uint32(b[rollup.OffsetRollupID:]))
			assert.Equal(t, uint32(2), binary.BigEndian.Uint32(b[rollup.OffsetRollupSize:]))
			assert.Equal(t, p.DataStartIndex, binary.BigEndian.Uint32(b[rollup.OffsetDataStartIndex:]))

			assert.Equal(t, p.OldDataRoot.Bytes(), b[rollup.OffsetOldDataRoot:rollup.OffsetOldDataRoot+32])
			assert.Equal(t, p.NewDefiRoot.Bytes(), b[rollup.OffsetNewDefiRoot:rollup.OffsetNewDefiRoot+32])
			assert.Equal(t, p.BridgeIDs[0].Bytes(), b[rollup.OffsetBridgeIDs:rollup.OffsetBridgeIDs+32])
			assert.Equal(t, p.DefiDepositSums[3].Bytes(), b[rollup.OffsetAssetIDs-32:rollup.OffsetAssetIDs])
			assert.Equal(t, p.AssetIDs[0].Bytes(), b[rollup.OffsetAssetIDs:rollup.OffsetAssetIDs+32])
			assert.Equal(t, p.TotalTxFees[15].Bytes(), b[rollup.OffsetInnerProofs-32:rollup.OffsetInnerProofs])
		})
	}
}

func TestRollupIDAndSizeFromBuffer(t *testing.T) {
	p, err := rolluptest.Rollup(0xdeadbeef, 4, false, innerproof.ProofIDDeposit)
	require.NoError(t, err)
	encoded, err := p.Encode()
	require.NoError(t, err)

	for _, b := range [][]byte{p.Bytes(), encoded} {
		id, err := rollup.RollupIDFromBuffer(b)
		require.NoError(t, err)
		assert.Equal(t, uint32(0xdeadbeef), id)

		size, err := rollup.RollupSizeFromBuffer(b)
		require.NoError(t, err)
		assert.Equal(t, uint32(4), size)
	}

	// only the bytes of the field itself are needed
	id, err := rollup.RollupIDFromBuffer(p.Bytes()[:rollup.OffsetRollupID+4])
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), id)

	_, err = rollup.RollupIDFromBuffer(make([]byte, rollup.OffsetRollupID+3))
	assert.ErrorIs(t, err, rollup.ErrMalformed)
	_, err = rollup.RollupSizeFromBuffer(nil)
	assert.ErrorIs(t, err, rollup.ErrMalformed)
}

func TestTruncatedHeader(t *testing.T) {
	p, err := rolluptest.Rollup(1, 1, false, innerproof.ProofIDSend)
	require.NoError(t, err)
	b := p.Bytes()

	for _, n := range []int{rollup.OffsetRollupSize + 4, rollup.OffsetBridgeIDs + 5, rollup.LengthRollupHeaderInputs - 1} {
		_, err := rollup.FromBytes(b[:n], nil)
		assert.ErrorIs(t, err, rollup.ErrMalformed, "length %d", n)
		_, err = rollup.Decode(b[:n], nil)
		assert.ErrorIs(t, err, rollup.ErrMalformed, "length %d", n)
	}
}
