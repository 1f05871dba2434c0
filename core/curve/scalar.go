package curve

import (
	"math/big"

	"github.com/NethermindEth/pedersen/core/felt"
	"github.com/pkg/errors"
)

var ErrScalarRange = errors.New("scalar is not in [0, EC_ORDER)")

// Scalar is a multiplier in [0, EC_ORDER). EC_ORDER is below the field prime,
// so every scalar is also a canonical field element.
type Scalar struct {
	val felt.Felt
}

func NewScalar(k *big.Int) (Scalar, error) {
	if k.Sign() < 0 || k.Cmp(order) >= 0 {
		return Scalar{}, errors.Wrapf(ErrScalarRange, "0x%s", k.Text(16))
	}
	return Scalar{val: felt.FromBigInt(k)}, nil
}

// ScalarFromUint64 never fails since every uint64 is below the order.
func ScalarFromUint64(k uint64) Scalar {
	return Scalar{val: felt.FromUint64(k)}
}

func (s Scalar) BigInt() *big.Int {
	return s.val.BigInt()
}

func (s Scalar) IsZero() bool {
	return s.val.IsZero()
}

// ScalarMul returns k·p by most significant bit first double-and-add.
func ScalarMul(k Scalar, p Point) Point {
	acc := Infinity()
	for i := felt.Bits - 1; i >= 0; i-- {
		// doubling the identity is free, leading zero bits cost nothing
		acc = acc.Double()
		if k.val.Bit(uint(i)) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

// ScalarMulBig is ScalarMul for a multiplier that has not been range checked yet.
func ScalarMulBig(k *big.Int, p Point) (Point, error) {
	s, err := NewScalar(k)
	if err != nil {
		return Point{}, err
	}
	return ScalarMul(s, p), nil
}
