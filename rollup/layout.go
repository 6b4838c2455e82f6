package rollup

const (
	// SlotBytes is the width of every header field. Integer fields are right
	// aligned in their slot as big-endian uint32s.
	SlotBytes = 32
	uintBytes = 4

	NumberOfAssets         = 16
	NumBridgeCallsPerBlock = 4

	// MaxRollupSize bounds the rollup size accepted from a header. Sparse
	// decoding allocates a padding entry for every slot up to the rollup size.
	MaxRollupSize = 1 << 12

	// NumRollupHeaderInputs counts the 32-byte slots of the header: eleven
	// scalar fields followed by the per-bridge and per-asset arrays.
	NumRollupHeaderInputs      = numScalarFields + NumberOfAssets*2 + NumBridgeCallsPerBlock*2
	LengthRollupHeaderInputs   = NumRollupHeaderInputs * SlotBytes
	LengthRecursiveProofOutput = 16 * SlotBytes
	LengthDefiInteractionNote  = 2 * SlotBytes
	// LengthTail is the fixed size of everything after the inner proof region.
	LengthTail = LengthRecursiveProofOutput + NumBridgeCallsPerBlock*LengthDefiInteractionNote + SlotBytes
)

// Scalar header fields in wire order.
const (
	fieldRollupID = iota
	fieldRollupSize
	fieldDataStartIndex
	fieldOldDataRoot
	fieldNewDataRoot
	fieldOldNullRoot
	fieldNewNullRoot
	fieldOldDataRootsRoot
	fieldNewDataRootsRoot
	fieldOldDefiRoot
	fieldNewDefiRoot
	numScalarFields
)

// Byte offsets of header fields. Integer fields point at the value inside their slot.
const (
	OffsetRollupID         = fieldRollupID*SlotBytes + SlotBytes - uintBytes
	OffsetRollupSize       = fieldRollupSize*SlotBytes + SlotBytes - uintBytes
	OffsetDataStartIndex   = fieldDataStartIndex*SlotBytes + SlotBytes - uintBytes
	OffsetOldDataRoot      = fieldOldDataRoot * SlotBytes
	OffsetNewDataRoot      = fieldNewDataRoot * SlotBytes
	OffsetOldNullRoot      = fieldOldNullRoot * SlotBytes
	OffsetNewNullRoot      = fieldNewNullRoot * SlotBytes
	OffsetOldDataRootsRoot = fieldOldDataRootsRoot * SlotBytes
	OffsetNewDataRootsRoot = fieldNewDataRootsRoot * SlotBytes
	OffsetOldDefiRoot      = fieldOldDefiRoot * SlotBytes
	OffsetNewDefiRoot      = fieldNewDefiRoot * SlotBytes

	OffsetBridgeIDs       = numScalarFields * SlotBytes
	OffsetDefiDepositSums = OffsetBridgeIDs + NumBridgeCallsPerBlock*SlotBytes
	OffsetAssetIDs        = OffsetDefiDepositSums + NumBridgeCallsPerBlock*SlotBytes
	OffsetTotalTxFees     = OffsetAssetIDs + NumberOfAssets*SlotBytes
	// OffsetInnerProofs is the first byte after the header.
	OffsetInnerProofs = OffsetTotalTxFees + NumberOfAssets*SlotBytes
)
