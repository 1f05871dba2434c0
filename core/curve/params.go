// Package curve implements affine arithmetic on the STARK curve
//
//	y² = x³ + α·x + β  over  𝔽p, p = 2^251 + 17·2^192 + 1
//
// as specified in https://docs.starkware.co/starkex/crypto/stark-curve.html.
//
// The arithmetic is not constant time.
package curve

import (
	"math/big"

	"github.com/NethermindEth/pedersen/core/felt"
)

var (
	Alpha = felt.One
	Beta  = felt.UnsafeFromString("3141592653589793238462643383279502884197169399375105820974944592307816406665")

	// order of the group generated by Generator, which is the whole curve group
	order, _ = new(big.Int).SetString("800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f", 16)

	// Generator is the base point used by STARK ECDSA.
	Generator = MustNewPoint(
		felt.UnsafeFromString("874739451078007766457464989774322083649278607533249481151382481072868806602"),
		felt.UnsafeFromString("152666792071518830868575557812948353041420400780739481342941381225525861407"),
	)
)

// Order returns a copy of the curve order.
func Order() *big.Int {
	return new(big.Int).Set(order)
}
