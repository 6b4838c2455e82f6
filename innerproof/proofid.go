package innerproof

import "fmt"

// ProofID tags the kind of transaction an inner proof represents.
type ProofID uint32

const (
	ProofIDPadding ProofID = iota
	ProofIDDeposit
	ProofIDWithdraw
	ProofIDSend
	ProofIDAccount
	ProofIDDefiDeposit
	ProofIDDefiClaim
)

// MaxViewingKeys is the number of viewing key slots every transaction owns.
const MaxViewingKeys = 2

var proofIDNames = map[ProofID]string{
	ProofIDPadding:     "padding",
	ProofIDDeposit:     "deposit",
	ProofIDWithdraw:    "withdraw",
	ProofIDSend:        "send",
	ProofIDAccount:     "account",
	ProofIDDefiDeposit: "defi_deposit",
	ProofIDDefiClaim:   "defi_claim",
}

func (id ProofID) valid() bool {
	_, ok := proofIDNames[id]
	return ok
}

func (id ProofID) String() string {
	if name, ok := proofIDNames[id]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint32(id))
}

func (id ProofID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ProofID) UnmarshalText(text []byte) error {
	for k, name := range proofIDNames {
		if name == string(text) {
			*id = k
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownProofID, text)
}

// NumViewingKeys returns how many viewing keys a transaction of the given kind carries.
// Join-split proofs create two output notes, a defi deposit one, the rest none.
func NumViewingKeys(id ProofID) int {
	switch id {
	case ProofIDDeposit, ProofIDWithdraw, ProofIDSend:
		return 2
	case ProofIDDefiDeposit:
		return 1
	default:
		return 0
	}
}
