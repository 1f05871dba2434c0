package felt

import "math/big"

// Add returns z + x mod p.
func (z Felt) Add(x Felt) Felt {
	r := z.BigInt()
	return reduce(r.Add(r, x.BigInt()))
}

// Sub returns z - x mod p.
func (z Felt) Sub(x Felt) Felt {
	r := z.BigInt()
	return reduce(r.Sub(r, x.BigInt()))
}

// Mul returns z * x mod p.
func (z Felt) Mul(x Felt) Felt {
	r := z.BigInt()
	return reduce(r.Mul(r, x.BigInt()))
}

func (z Felt) Square() Felt {
	return z.Mul(z)
}

func (z Felt) Double() Felt {
	return z.Add(z)
}

func (z Felt) Neg() Felt {
	return Zero.Sub(z)
}

// Inverse returns z^-1 mod p. Zero has no inverse.
func (z Felt) Inverse() (Felt, error) {
	if z.IsZero() {
		return Zero, ErrDivisionByZero
	}
	r := new(big.Int).ModInverse(z.BigInt(), modulus)
	if r == nil {
		// p is prime, every non-zero element is invertible
		return Zero, ErrDivisionByZero
	}
	return fromReduced(r), nil
}

// Div returns z * x^-1 mod p.
func (z Felt) Div(x Felt) (Felt, error) {
	inv, err := x.Inverse()
	if err != nil {
		return Zero, err
	}
	return z.Mul(inv), nil
}

// Exp returns z^e mod p for a non-negative exponent.
func (z Felt) Exp(e *big.Int) Felt {
	return fromReduced(new(big.Int).Exp(z.BigInt(), e, modulus))
}
