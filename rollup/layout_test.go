package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderLayout(t *testing.T) {
	// These values are fixed by the on-chain verifier. They are spelled out here
	// so that any change to the constants above is a deliberate one.
	assert.Equal(t, 51, NumRollupHeaderInputs)
	assert.Equal(t, 1632, LengthRollupHeaderInputs)
	assert.Equal(t, 512, LengthRecursiveProofOutput)
	assert.Equal(t, 800, LengthTail)

	assert.Equal(t, 28, OffsetRollupID)
	assert.Equal(t, 60, OffsetRollupSize)
	assert.Equal(t, 92, OffsetDataStartIndex)
	assert.Equal(t, 96, OffsetOldDataRoot)
	assert.Equal(t, 128, OffsetNewDataRoot)
	assert.Equal(t, 160, OffsetOldNullRoot)
	assert.Equal(t, 192, OffsetNewNullRoot)
	assert.Equal(t, 224, OffsetOldDataRootsRoot)
	assert.Equal(t, 256, OffsetNewDataRootsRoot)
	assert.Equal(t, 288, OffsetOldDefiRoot)
	assert.Equal(t, 320, OffsetNewDefiRoot)
	assert.Equal(t, 352, OffsetBridgeIDs)
	assert.Equal(t, 480, OffsetDefiDepositSums)
	assert.Equal(t, 608, OffsetAssetIDs)
	assert.Equal(t, 1120, OffsetTotalTxFees)
	assert.Equal(t, LengthRollupHeaderInputs, OffsetInnerProofs)
}

func TestReaderBounds(t *testing.T) {
	r := newReader(make([]byte, 40), 0)

	_, err := r.readUint32Slot("a")
	assert.NoError(t, err)
	assert.Equal(t, 8, r.remaining())

	_, err = r.readHash("b")
	assert.ErrorIs(t, err, ErrMalformed)
	// a failed read does not move the offset
	assert.Equal(t, 32, r.offset)

	_, err = r.take(-1, "c")
	assert.ErrorIs(t, err, ErrMalformed)

	r = newReader(make([]byte, 4), 100)
	assert.Equal(t, 0, r.remaining())
	_, err = r.readUint32("d")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestWriterUint32Slot(t *testing.T) {
	w := newWriter(SlotBytes)
	w.uint32Slot(0x01020304)
	assert.Len(t, w.buf, SlotBytes)
	assert.Equal(t, make([]byte, 28), w.buf[:28])
	assert.Equal(t, []byte{1, 2, 3, 4}, w.buf[28:])
}
