package curve

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/takakv/ecc-core/field"
)

// Point is either the point at infinity or an affine point of a curve.
// Points are immutable values obtained from Curve.Point, Curve.Identity or
// arithmetic on other points.
type Point struct {
	curve Curve
	x, y  field.Element
	inf   bool
}

// Curve returns the curve p belongs to.
func (p Point) Curve() Curve {
	return p.curve
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.inf
}

// X returns the affine x coordinate. ok is false for the point at infinity.
func (p Point) X() (x field.Element, ok bool) {
	return p.x, !p.inf
}

// Y returns the affine y coordinate. ok is false for the point at infinity.
func (p Point) Y() (y field.Element, ok bool) {
	return p.y, !p.inf
}

// Equal reports whether p and q are the same point of the same curve. The
// point at infinity only equals itself.
func (p Point) Equal(q Point) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p, the reflection of p across the x axis.
func (p Point) Neg() Point {
	if p.inf {
		return p
	}
	return Point{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// Add returns p + q. It fails with ErrCurveMismatch if the points belong to
// different curves.
func (p Point) Add(q Point) (Point, error) {
	if !p.curve.Equal(q.curve) {
		return Point{}, errors.Wrapf(ErrCurveMismatch, "%s and %s", p.curve, q.curve)
	}
	if p.inf {
		return q, nil
	}
	if q.inf {
		return p, nil
	}

	var (
		k calc
		s field.Element
	)
	if p.x.Equal(q.x) {
		// Same x: either q = -p, or q = p with a vertical tangent when y = 0.
		if k.add(p.y, q.y).IsZero() {
			return p.curve.Identity(), nil
		}
		// Tangent: s = (3x^2 + a) / 2y
		xx := k.mul(p.x, p.x)
		num := k.add(k.add(k.add(xx, xx), xx), p.curve.a)
		s = k.div(num, k.add(p.y, p.y))
	} else {
		// Chord: s = (qy - py) / (qx - px)
		s = k.div(k.sub(q.y, p.y), k.sub(q.x, p.x))
	}

	x3 := k.sub(k.sub(k.mul(s, s), p.x), q.x)
	y3 := k.sub(k.mul(s, k.sub(p.x, x3)), p.y)
	if k.err != nil {
		return Point{}, errors.WithMessagef(k.err, "adding %s and %s", p, q)
	}
	return Point{curve: p.curve, x: x3, y: y3}, nil
}

// Sub returns p - q.
func (p Point) Sub(q Point) (Point, error) {
	return p.Add(q.Neg())
}

func (p Point) String() string {
	if p.inf {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)", p.x.Inner(), p.y.Inner())
}
