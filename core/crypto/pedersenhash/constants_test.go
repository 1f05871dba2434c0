package pedersenhash_test

import (
	"testing"

	"github.com/NethermindEth/pedersen/core/crypto/pedersenhash"
	"github.com/NethermindEth/pedersen/core/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantPoints(t *testing.T) {
	table := pedersenhash.ConstantPoints()
	assert.Same(t, table, pedersenhash.ConstantPoints())
	assert.Equal(t, []int{0, 1, 2, 250, 254, 502}, table.Indices())
	assert.Equal(t, 6, table.Len())

	for _, i := range table.Indices() {
		p, ok := table.At(i)
		require.True(t, ok)
		assert.False(t, p.IsInfinity())
		assert.True(t, curve.IsOnCurve(p.X(), p.Y()), "index %d", i)
	}

	t.Run("generator", func(t *testing.T) {
		g, ok := table.At(1)
		require.True(t, ok)
		assert.True(t, g.Equal(curve.Generator))
	})

	t.Run("positions not carried", func(t *testing.T) {
		for _, i := range []int{-1, 3, 251, 505, 1000} {
			_, ok := table.At(i)
			assert.False(t, ok, "index %d", i)
		}
	})
}
