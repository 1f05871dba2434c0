package pedersenhash_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/NethermindEth/pedersen/core/crypto/pedersenhash"
	"github.com/NethermindEth/pedersen/core/curve"
	"github.com/NethermindEth/pedersen/core/felt"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	gnarkpedersen "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	require.NoError(t, err)
	return b
}

func randomInput(t testing.TB) []byte {
	t.Helper()
	v, err := rand.Int(rand.Reader, curve.Order())
	require.NoError(t, err)
	return v.FillBytes(make([]byte, pedersenhash.InputSize))
}

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			// h(0, 0) is the x coordinate of the shift point
			"zero",
			"0x0000000000000000000000000000000000000000000000000000000000000000",
			"0x0000000000000000000000000000000000000000000000000000000000000000",
			"0x049ee3eba8c1600700ee1b87eb599f16716b0b1022947733551fde4050ca6804",
		},
		{
			"small integers",
			"0x0000000000000000000000000000000000000000000000000000000000000003",
			"0x0000000000000000000000000000000000000000000000000000000000000004",
			"0x0262697b88544f733e5c6907c3e1763131e9f14c51ee7951258abbfb29415fbf",
		},
		{
			"small integers swapped",
			"0x0000000000000000000000000000000000000000000000000000000000000004",
			"0x0000000000000000000000000000000000000000000000000000000000000003",
			"0x07a9252eb87ac8c712fe8310c6f563a3086887154d9bfb894712943ae5d35ba1",
		},
		{
			"x with all 248 low bits and 3 high bits set",
			"0x07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			"0x0000000000000000000000000000000000000000000000000000000000000000",
			"0x034720a663f32c4b9c90845881fa312f821a2539aa806145e9e62f7673254fb2",
		},
		{
			"y with all 248 low bits and 3 high bits set",
			"0x0000000000000000000000000000000000000000000000000000000000000000",
			"0x07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			"0x05dabe43a81a52c4dc9000399608c6e89ecf8257be5f71f67bf76f157bfc08d0",
		},
		{
			"high part only and low part only",
			"0x0100000000000000000000000000000000000000000000000000000000000000",
			"0x00ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			"0x004093db927509c6f9fe0c78b70e8f9b75d099424268832b33349a5edaad9eab",
		},
		{
			"high nibble 8",
			"0x0800000000000000000000000000000000000000000000000000000000000000",
			"0x0000000000000000000000000000000000000000000000000000000000000000",
			"0x00133321534c28086bdb195808ddc38451c2997f03a02b817c58b1d8f997384d",
		},
		{
			"largest inputs",
			"0x0800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2e",
			"0x0800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2e",
			"0x06ec41fe892beee177c6822ecc0a3ce6577be0185f052d461861779e776babcc",
		},
		{
			"starknet vector 1",
			"0x03d937c035c878245caf64531a5756109c53068da139362728feb561405371cb",
			"0x0208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a",
			"0x030e480bed5fe53fa909cc0f8c4d99b8f9f2c016be4c41e13a4848797979c662",
		},
		{
			"starknet vector 2",
			"0x058f580910a6ca59b28927c08fe6c43e2e303ca384badc365795fc645d479d45",
			"0x078734f65a067be9bdb39de18434d71e79f7b6466a4b66bbd979ab9e7515fe0b",
			"0x068cc0b76cddd1dd4ed2301ada9b7c872b23875d5ff837b3a87993e0d9996b87",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pedersenhash.Hash(mustDecode(t, tt.x), mustDecode(t, tt.y))
			require.NoError(t, err)
			assert.Equal(t, mustDecode(t, tt.want), got[:])
		})
	}
}

func TestHashMatchesGnark(t *testing.T) {
	for i := range 8 {
		t.Run(fmt.Sprintf("random %d", i), func(t *testing.T) {
			x, y := randomInput(t), randomInput(t)

			var a, b fp.Element
			a.SetBytes(x)
			b.SetBytes(y)
			want := gnarkpedersen.Pedersen(&a, &b)

			got, err := pedersenhash.Hash(x, y)
			require.NoError(t, err)
			wantBytes := want.Bytes()
			assert.Equal(t, wantBytes, got)
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	x, y := randomInput(t), randomInput(t)
	first, err := pedersenhash.Hash(x, y)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][pedersenhash.InputSize]byte, 4)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = pedersenhash.Hash(x, y)
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, first, r)
	}
}

func TestHashAsymmetric(t *testing.T) {
	x, y := randomInput(t), randomInput(t)
	xy, err := pedersenhash.Hash(x, y)
	require.NoError(t, err)
	yx, err := pedersenhash.Hash(y, x)
	require.NoError(t, err)
	assert.NotEqual(t, xy, yx)

	xx1, err := pedersenhash.Hash(x, x)
	require.NoError(t, err)
	xx2, err := pedersenhash.Hash(x, x)
	require.NoError(t, err)
	assert.Equal(t, xx1, xx2)
}

func TestHashInputLength(t *testing.T) {
	valid := make([]byte, 32)
	for _, n := range []int{0, 1, 31, 33, 64} {
		t.Run(fmt.Sprintf("%d bytes", n), func(t *testing.T) {
			_, err := pedersenhash.Hash(make([]byte, n), valid)
			require.ErrorIs(t, err, pedersenhash.ErrInputLength)

			_, err = pedersenhash.Hash(valid, make([]byte, n))
			require.ErrorIs(t, err, pedersenhash.ErrInputLength)
		})
	}
	_, err := pedersenhash.Hash(nil, nil)
	require.ErrorIs(t, err, pedersenhash.ErrInputLength)
}

func TestHashInputRange(t *testing.T) {
	valid := make([]byte, 32)
	order := curve.Order()
	outOfRange := []*big.Int{
		order,
		new(big.Int).Add(order, big.NewInt(1)),
		felt.Modulus(),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
	}
	for _, v := range outOfRange {
		b := v.FillBytes(make([]byte, 32))
		_, err := pedersenhash.Hash(b, valid)
		require.ErrorIs(t, err, pedersenhash.ErrInputRange, "x = %s", v)

		_, err = pedersenhash.Hash(valid, b)
		require.ErrorIs(t, err, pedersenhash.ErrInputRange, "y = %s", v)
	}

	_, err := pedersenhash.Hash(new(big.Int).Sub(order, big.NewInt(1)).FillBytes(make([]byte, 32)), valid)
	require.NoError(t, err)
}

func TestHashFelts(t *testing.T) {
	a := felt.UnsafeFromString("0x3d937c035c878245caf64531a5756109c53068da139362728feb561405371cb")
	b := felt.UnsafeFromString("0x208a0a10250e382e1e4bbe2880906c2791bf6275695e02fbbc6aeff9cd8b31a")
	want := felt.UnsafeFromString("0x30e480bed5fe53fa909cc0f8c4d99b8f9f2c016be4c41e13a4848797979c662")

	got, err := pedersenhash.HashFelts(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// field elements between EC_ORDER and the field prime are not hashable
	_, err = pedersenhash.HashFelts(felt.One.Neg(), felt.Zero)
	require.ErrorIs(t, err, pedersenhash.ErrInputRange)
}

func TestHashContext(t *testing.T) {
	x, y := randomInput(t), randomInput(t)
	want, err := pedersenhash.Hash(x, y)
	require.NoError(t, err)

	got, err := pedersenhash.HashContext(context.Background(), x, y)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pedersenhash.HashContext(ctx, x, y)
	require.ErrorIs(t, err, context.Canceled)
}

// By having a package and local level variable compiler optimisations can be eliminated for more accurate results.
// See here: https://dave.cheney.net/2013/06/30/how-to-write-benchmarks-in-go
var benchHashR [pedersenhash.InputSize]byte

// go test -bench=. -run=^# -cpu=1,2,4,8,16
func BenchmarkHash(b *testing.B) {
	x, y := randomInput(b), randomInput(b)
	var r [pedersenhash.InputSize]byte
	b.ResetTimer()
	for range b.N {
		r, _ = pedersenhash.Hash(x, y)
	}
	benchHashR = r
}
