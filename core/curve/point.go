package curve

import (
	"fmt"

	"github.com/NethermindEth/pedersen/core/felt"
	"github.com/pkg/errors"
)

var ErrInvalidPoint = errors.New("point is not on the curve")

// Point is an affine point on the curve. The zero value is the point at
// infinity, the identity of the group. Points are immutable.
type Point struct {
	x, y   felt.Felt
	finite bool
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the point (x, y) after checking it satisfies the curve equation.
func NewPoint(x, y felt.Felt) (Point, error) {
	if !IsOnCurve(x, y) {
		return Point{}, errors.Wrapf(ErrInvalidPoint, "(%s, %s)", x, y)
	}
	return Point{x: x, y: y, finite: true}, nil
}

// MustNewPoint is NewPoint for compiled-in constants. It panics if (x, y) is
// not on the curve.
func MustNewPoint(x, y felt.Felt) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// IsOnCurve reports whether y² = x³ + αx + β.
func IsOnCurve(x, y felt.Felt) bool {
	rhs := x.Square().Mul(x).Add(Alpha.Mul(x)).Add(Beta)
	return y.Square() == rhs
}

func (p Point) IsInfinity() bool {
	return !p.finite
}

// X returns the affine x coordinate. It is zero for the point at infinity.
func (p Point) X() felt.Felt {
	return p.x
}

// Y returns the affine y coordinate. It is zero for the point at infinity.
func (p Point) Y() felt.Felt {
	return p.y
}

func (p Point) Equal(q Point) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x == q.x && p.y == q.y
}

func (p Point) Neg() Point {
	if !p.finite {
		return p
	}
	return Point{x: p.x, y: p.y.Neg(), finite: true}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	switch {
	case !p.finite:
		return q
	case !q.finite:
		return p
	case p.x == q.x:
		if p.y == q.y {
			return p.Double()
		}
		// same x and distinct y means q = -p
		return Infinity()
	}

	slope := mustDiv(q.y.Sub(p.y), q.x.Sub(p.x))
	x := slope.Square().Sub(p.x).Sub(q.x)
	y := slope.Mul(p.x.Sub(x)).Sub(p.y)
	return Point{x: x, y: y, finite: true}
}

// Double returns 2p.
func (p Point) Double() Point {
	// a point with y = 0 has order 2 and its tangent is vertical
	if !p.finite || p.y.IsZero() {
		return Infinity()
	}

	three := felt.FromUint64(3)
	slope := mustDiv(three.Mul(p.x.Square()).Add(Alpha), p.y.Double())
	x := slope.Square().Sub(p.x.Double())
	y := slope.Mul(p.x.Sub(x)).Sub(p.y)
	return Point{x: x, y: y, finite: true}
}

func (p Point) String() string {
	if !p.finite {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

// mustDiv divides in the field. Add and Double route every zero denominator to
// a special case, so a failure here is a bug.
func mustDiv(num, den felt.Felt) felt.Felt {
	q, err := num.Div(den)
	if err != nil {
		panic(errors.Wrap(err, "curve arithmetic invariant violated"))
	}
	return q
}
