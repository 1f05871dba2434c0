package pedersenhash

import (
	"slices"
	"sync"

	"github.com/NethermindEth/pedersen/core/curve"
	"github.com/NethermindEth/pedersen/core/felt"
	"github.com/NethermindEth/pedersen/utils"
)

const (
	// LowPartBits is the width of the low part of each hashed element.
	LowPartBits = 248
	// NElementBitsHash is the number of constant points reserved per hashed element.
	NElementBitsHash = felt.Bits

	// positions in the StarkWare constant point table
	ShiftPointIndex = 0
	GeneratorIndex  = 1
	P0Index         = 2
	P1Index         = 2 + LowPartBits
	P2Index         = 2 + NElementBitsHash
	P3Index         = 2 + NElementBitsHash + LowPartBits
)

// constantPointsHex holds the entries of the StarkWare constant point table
// (generated from the digits of pi) used by this instantiation, keyed by their
// position in that table. Position 1 is the ECDSA generator.
//
// The points come from [cairo-lang].
//
// [cairo-lang]: https://github.com/starkware-libs/cairo-lang/blob/de741b92657f245a50caab99cfaef093152fd8be/src/starkware/crypto/signature/pedersen_params.json
var constantPointsHex = map[int][2]string{
	ShiftPointIndex: {
		"0x49ee3eba8c1600700ee1b87eb599f16716b0b1022947733551fde4050ca6804",
		"0x3ca0cfe4b3bc6ddf346d49d06ea0ed34e621062c0e056c1d0405d266e10268a",
	},
	GeneratorIndex: {
		"0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca",
		"0x5668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f",
	},
	P0Index: {
		"0x234287dcbaffe7f969c748655fca9e58fa8120b6d56eb0c1080d17957ebe47b",
		"0x3b056f100f96fb21e889527d41f4e39940135dd7a6c94cc6ed0268ee89e5615",
	},
	P1Index: {
		"0x4fa56f376c83db33f9dab2656558f3399099ec1de5e3018b7a6932dba8aa378",
		"0x3fa0984c931c9e38113e0c0e47e4401562761f92a7a23b45168f4e80ff5b54d",
	},
	P2Index: {
		"0x4ba4cc166be8dec764910f75b45f74b40c690c74709e90f3aa372f0bd2d6997",
		"0x40301cf5c1751f4b971e46c4ede85fcac5c59a5ce5ae7c48151f27b24b219c",
	},
	P3Index: {
		"0x54302dcb0e6cc1c6e44cca8f61a63bb2ca65048d53fb325d36ff12c49a58202",
		"0x1b77b3e37d13504b348046268d8ae25ce98ad783c25561a879dcc77e99c2426",
	},
}

// ConstantTable is a read-only view of the constant point table.
type ConstantTable struct {
	points map[int]curve.Point
}

// At returns the point at position i of the StarkWare table. ok is false for
// positions this instantiation does not carry.
func (t *ConstantTable) At(i int) (p curve.Point, ok bool) {
	p, ok = t.points[i]
	return p, ok
}

// Indices returns the carried positions in ascending order.
func (t *ConstantTable) Indices() []int {
	idx := utils.MapKeys(t.points)
	slices.Sort(idx)
	return idx
}

func (t *ConstantTable) Len() int {
	return len(t.points)
}

var (
	constantsOnce sync.Once
	constants     *ConstantTable

	shiftPoint     curve.Point
	p0, p1, p2, p3 curve.Point
)

// ConstantPoints returns the process-wide constant table. It is built and
// validated on first use and never mutated afterwards.
func ConstantPoints() *ConstantTable {
	constantsOnce.Do(initConstants)
	return constants
}

func initConstants() {
	t := &ConstantTable{points: make(map[int]curve.Point, len(constantPointsHex))}
	for i, xy := range constantPointsHex {
		// panics with curve.ErrInvalidPoint on a corrupted table
		t.points[i] = curve.MustNewPoint(felt.UnsafeFromString(xy[0]), felt.UnsafeFromString(xy[1]))
	}
	constants = t

	shiftPoint = t.points[ShiftPointIndex]
	p0 = t.points[P0Index]
	p1 = t.points[P1Index]
	p2 = t.points[P2Index]
	p3 = t.points[P3Index]
}
