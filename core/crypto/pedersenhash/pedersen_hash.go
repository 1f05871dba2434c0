// Package pedersenhash implements the StarkWare Pedersen hash over the STARK
// curve, on top of the explicit field and point arithmetic of core/felt and
// core/curve.
package pedersenhash

import (
	"math/big"

	"github.com/NethermindEth/pedersen/core/curve"
	"github.com/NethermindEth/pedersen/core/felt"
	"github.com/pkg/errors"
)

// InputSize is the length in bytes of each hash input and of the output.
const InputSize = felt.Bytes

var (
	ErrInputLength = errors.New("pedersen hash input must be 32 bytes")
	ErrInputRange  = errors.New("pedersen hash input must be below EC_ORDER")
)

var lowPartMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), LowPartBits), big.NewInt(1))

// Hash implements the [Pedersen hash] as defined in [cairo-lang]:
//
//	shift_point + x_low·P0 + x_high·P1 + y_low·P2 + y_high·P3
//
// where x_low is the 248 low bits of x and x_high the remaining high bits,
// similarly for y. The result is the big-endian x coordinate of that point.
//
// Both inputs are validated before any curve arithmetic takes place.
//
// [Pedersen hash]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#pedersen_hash
// [cairo-lang]: https://github.com/starkware-libs/cairo-lang/blob/de741b92657f245a50caab99cfaef093152fd8be/src/starkware/crypto/signature/fast_pedersen_hash.py
func Hash(x, y []byte) ([InputSize]byte, error) {
	var out [InputSize]byte

	xv, err := parseElement(x, "x")
	if err != nil {
		return out, err
	}
	yv, err := parseElement(y, "y")
	if err != nil {
		return out, err
	}

	ConstantPoints()
	res := shiftPoint.
		Add(processElement(xv, p0, p1)).
		Add(processElement(yv, p2, p3))

	return res.X().Bytes(), nil
}

// HashFelts is Hash for callers holding field elements.
func HashFelts(a, b felt.Felt) (felt.Felt, error) {
	ab, bb := a.Bytes(), b.Bytes()
	out, err := Hash(ab[:], bb[:])
	if err != nil {
		return felt.Zero, err
	}
	return felt.FromBytes(out[:]), nil
}

func parseElement(element []byte, name string) (*big.Int, error) {
	if len(element) != InputSize {
		return nil, errors.Wrapf(ErrInputLength, "%s has %d bytes", name, len(element))
	}
	v := new(big.Int).SetBytes(element)
	if v.Cmp(curve.Order()) >= 0 {
		return nil, errors.Wrapf(ErrInputRange, "%s = 0x%s", name, v.Text(16))
	}
	return v, nil
}

// processElement returns low·base_low + high·base_high for an element already
// checked to be below the curve order.
func processElement(v *big.Int, baseLow, baseHigh curve.Point) curve.Point {
	low := mustScalar(new(big.Int).And(v, lowPartMask))
	high := mustScalar(new(big.Int).Rsh(v, LowPartBits))
	return curve.ScalarMul(low, baseLow).Add(curve.ScalarMul(high, baseHigh))
}

// mustScalar converts a part of an element that passed parseElement. Both parts
// of such an element are below the curve order, so a failure here is a bug.
func mustScalar(v *big.Int) curve.Scalar {
	s, err := curve.NewScalar(v)
	if err != nil {
		panic(errors.Wrap(err, "pedersen element split invariant violated"))
	}
	return s
}
