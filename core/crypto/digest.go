package crypto

import (
	"github.com/NethermindEth/pedersen/core/crypto/pedersenhash"
	"github.com/NethermindEth/pedersen/core/felt"
)

// Digest folds a sequence of field elements into one hash.
type Digest interface {
	Update(...felt.Felt) error
	Finish() (felt.Felt, error)
}

var (
	_ Digest = (*PedersenDigest)(nil)
	_ Digest = (*pedersenhash.Digest)(nil)
)
