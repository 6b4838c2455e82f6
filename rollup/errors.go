package rollup

import "errors"

// structural
var (
	ErrMalformed             = errors.New("rollup proof data is too short")
	ErrMisalignedInnerProofs = errors.New("inner proof data length does not land on an entry boundary")
	ErrTooManyInnerProofs    = errors.New("more inner proofs than the rollup size")
	ErrTrailingBytes         = errors.New("unexpected bytes after rollup proof data")
	ErrUnknownFormat         = errors.New("unknown rollup proof data format")
)

// invariant
var (
	ErrEmptyRollup              = errors.New("empty rollup")
	ErrBridgeIDCount            = errors.New("expect bridgeIds to be an array of size 4")
	ErrDefiDepositSumCount      = errors.New("expect defiDepositSums to be an array of size 4")
	ErrAssetIDCount             = errors.New("expect assetIds to be an array of size 16")
	ErrTotalTxFeeCount          = errors.New("expect totalTxFees to be an array of size 16")
	ErrDefiInteractionNoteCount = errors.New("expect defiInteractionNotes to be an array of size 4")
	ErrInnerProofCount          = errors.New("number of inner proofs does not match the rollup size")
)

// viewing keys
var (
	ErrEmptyViewingKeyData    = errors.New("empty viewing key data")
	ErrInvalidViewingKeyCount = errors.New("invalid number of viewing keys")
	ErrTrailingViewingKeyData = errors.New("unexpected bytes after viewing key data")
	ErrViewingKeyGap          = errors.New("viewing key follows an empty slot")
)
