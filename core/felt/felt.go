package felt

import (
	"math/big"

	"github.com/pkg/errors"
)

const (
	Bits  = 252 // number of bits needed to represent a Felt
	Bytes = 32  // number of bytes needed to represent a Felt
)

var (
	ErrNotCanonical   = errors.New("value is not a canonical field element")
	ErrDivisionByZero = errors.New("division by zero in field")
)

// modulus is the STARK field prime 2^251 + 17*2^192 + 1.
var modulus, _ = new(big.Int).SetString("800000000000011000000000000000000000000000000000000000000000001", 16)

var (
	Zero = Felt{}
	One  = FromUint64(1)
)

// Felt is an element of the STARK prime field. It is an immutable value: every
// operation returns a new Felt. The zero value is the field zero.
//
// The value is stored as its canonical big-endian encoding, so two Felts are
// equal iff they compare equal with ==, and a Felt can be used as a map key.
type Felt struct {
	val [Bytes]byte
}

// Modulus returns a copy of the field prime.
func Modulus() *big.Int {
	return new(big.Int).Set(modulus)
}

func FromUint64(v uint64) Felt {
	return fromReduced(new(big.Int).SetUint64(v))
}

// FromBigInt reduces v modulo the field prime. Negative values wrap around.
func FromBigInt(v *big.Int) Felt {
	return reduce(new(big.Int).Set(v))
}

// FromBytes interprets b as a big-endian unsigned integer and reduces it modulo
// the field prime.
func FromBytes(b []byte) Felt {
	return reduce(new(big.Int).SetBytes(b))
}

// FromCanonicalBytes is like FromBytes but fails instead of reducing when b
// encodes a value greater or equal to the field prime.
func FromCanonicalBytes(b []byte) (Felt, error) {
	return fromCanonical(new(big.Int).SetBytes(b))
}

// FromString parses a 0x-prefixed hex string or a plain decimal string.
// Decimal strings with leading zeroes stay decimal, and hex digits without the
// 0x prefix are rejected. Values outside [0, prime) are rejected.
func FromString(s string) (Felt, error) {
	base, digits := 10, s
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, digits = 16, s[2:]
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Zero, errors.Errorf("can't parse into a field element: %q", s)
	}
	return fromCanonical(v)
}

// UnsafeFromString is FromString for literals known to be valid. It panics on error.
func UnsafeFromString(s string) Felt {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

func fromCanonical(v *big.Int) (Felt, error) {
	if v.Sign() < 0 || v.Cmp(modulus) >= 0 {
		return Zero, errors.Wrapf(ErrNotCanonical, "0x%s", v.Text(16))
	}
	return fromReduced(v), nil
}

// fromReduced expects v in [0, prime).
func fromReduced(v *big.Int) Felt {
	var f Felt
	v.FillBytes(f.val[:])
	return f
}

// reduce takes ownership of v.
func reduce(v *big.Int) Felt {
	// big.Int.Mod is the Euclidean modulus, the result is never negative
	return fromReduced(v.Mod(v, modulus))
}

// BigInt returns a fresh big.Int holding the value of z.
func (z Felt) BigInt() *big.Int {
	return new(big.Int).SetBytes(z.val[:])
}

// Bytes returns the big-endian encoding of z, zero padded to 32 bytes.
func (z Felt) Bytes() [Bytes]byte {
	return z.val
}

// String returns the 0x-prefixed hex representation without leading zeroes.
func (z Felt) String() string {
	return "0x" + z.Text(16)
}

func (z Felt) Text(base int) string {
	return z.BigInt().Text(base)
}

func (z Felt) IsZero() bool {
	return z == Zero
}

func (z Felt) IsOne() bool {
	return z == One
}

func (z Felt) Equal(x Felt) bool {
	return z == x
}

// Cmp compares the canonical integer values of z and x.
func (z Felt) Cmp(x Felt) int {
	return z.BigInt().Cmp(x.BigInt())
}

// Bit returns the i-th bit of the canonical value, 0 for i >= Bits.
func (z Felt) Bit(i uint) uint {
	if i >= Bits {
		return 0
	}
	return uint(z.val[Bytes-1-i/8]>>(i%8)) & 1
}
