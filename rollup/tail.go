package rollup

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RecursiveProofOutput is the aggregated proof output the verifier checks.
type RecursiveProofOutput [LengthRecursiveProofOutput]byte

func (o RecursiveProofOutput) MarshalText() ([]byte, error) {
	return hexutil.Bytes(o[:]).MarshalText()
}

func (o *RecursiveProofOutput) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("RecursiveProofOutput", input, o[:])
}

// DefiInteractionNote is the result of one bridge call of the previous rollup.
type DefiInteractionNote [LengthDefiInteractionNote]byte

func (n DefiInteractionNote) MarshalText() ([]byte, error) {
	return hexutil.Bytes(n[:]).MarshalText()
}

func (n *DefiInteractionNote) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("DefiInteractionNote", input, n[:])
}

// Tail holds the fixed-size fields that follow the inner proofs.
type Tail struct {
	RecursiveProofOutput    RecursiveProofOutput  `json:"recursiveProofOutput"`
	DefiInteractionNotes    []DefiInteractionNote `json:"defiInteractionNotes"`
	PrevDefiInteractionHash common.Hash           `json:"prevDefiInteractionHash"`
}

func (t *Tail) validate() error {
	if len(t.DefiInteractionNotes) != NumBridgeCallsPerBlock {
		return fmt.Errorf("%w: got %d", ErrDefiInteractionNoteCount, len(t.DefiInteractionNotes))
	}
	return nil
}

// parseTail reads the tail and requires it to end the buffer.
func parseTail(r *reader) (Tail, error) {
	var t Tail
	b, err := r.take(LengthRecursiveProofOutput, "recursiveProofOutput")
	if err != nil {
		return t, err
	}
	copy(t.RecursiveProofOutput[:], b)

	t.DefiInteractionNotes = make([]DefiInteractionNote, NumBridgeCallsPerBlock)
	for i := range t.DefiInteractionNotes {
		b, err := r.take(LengthDefiInteractionNote, fmt.Sprintf("defiInteractionNotes[%d]", i))
		if err != nil {
			return t, err
		}
		copy(t.DefiInteractionNotes[i][:], b)
	}

	if t.PrevDefiInteractionHash, err = r.readHash("prevDefiInteractionHash"); err != nil {
		return t, err
	}
	if n := r.remaining(); n > 0 {
		return t, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, n)
	}
	return t, nil
}

func (t *Tail) write(w *writer) {
	w.bytes(t.RecursiveProofOutput[:])
	for _, note := range t.DefiInteractionNotes {
		w.bytes(note[:])
	}
	w.hash(t.PrevDefiInteractionHash)
}
