// Package curve implements the group law of short Weierstrass elliptic
// curves y^2 = x^3 + ax + b over a prime field.
package curve

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/takakv/ecc-core/field"
)

// Curve is the curve y^2 = x^3 + ax + b. It is an immutable value and acts
// as the factory for validated points.
type Curve struct {
	a field.Element
	b field.Element
}

// New returns the curve with coefficients a and b. Both coefficients must
// belong to the same field.
func New(a, b field.Element) (Curve, error) {
	if a.Prime().Cmp(b.Prime()) != 0 {
		return Curve{}, errors.Wrapf(field.ErrFieldMismatch, "coefficients mod %s and mod %s", a.Prime(), b.Prime())
	}
	return Curve{a: a, b: b}, nil
}

// A returns the linear coefficient.
func (c Curve) A() field.Element {
	return c.a
}

// B returns the constant coefficient.
func (c Curve) B() field.Element {
	return c.b
}

// Prime returns the order of the underlying field.
func (c Curve) Prime() *big.Int {
	return c.a.Prime()
}

// Equal reports whether c and o describe the same curve over the same field.
func (c Curve) Equal(o Curve) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Contains reports whether (x, y) satisfies the curve equation. Coordinates
// from another field are never on the curve.
func (c Curve) Contains(x, y field.Element) bool {
	var k calc
	lhs := k.mul(y, y)
	rhs := k.add(k.add(k.mul(k.mul(x, x), x), k.mul(c.a, x)), c.b)
	return k.err == nil && lhs.Equal(rhs)
}

// Point returns the affine point (x, y). It fails with ErrPointNotOnCurve
// if the point does not satisfy the curve equation.
func (c Curve) Point(x, y field.Element) (Point, error) {
	if x.Prime().Cmp(c.Prime()) != 0 || y.Prime().Cmp(c.Prime()) != 0 {
		return Point{}, errors.Wrapf(field.ErrFieldMismatch, "coordinates are not mod %s", c.Prime())
	}
	if !c.Contains(x, y) {
		return Point{}, errors.Wrapf(ErrPointNotOnCurve, "(%s, %s) on %s", x.Inner(), y.Inner(), c)
	}
	return Point{curve: c, x: x, y: y}, nil
}

// Identity returns the point at infinity of c.
func (c Curve) Identity() Point {
	return Point{curve: c, inf: true}
}

func (c Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s over F_%s", c.a.Inner(), c.b.Inner(), c.Prime())
}

// calc chains field operations and keeps the first error; after a failure
// every operation is a no-op returning its first operand.
type calc struct {
	err error
}

func (k *calc) add(a, b field.Element) field.Element {
	return k.do(a.Add, b, a)
}

func (k *calc) sub(a, b field.Element) field.Element {
	return k.do(a.Sub, b, a)
}

func (k *calc) mul(a, b field.Element) field.Element {
	return k.do(a.Mul, b, a)
}

func (k *calc) div(a, b field.Element) field.Element {
	return k.do(a.Div, b, a)
}

func (k *calc) do(op func(field.Element) (field.Element, error), b, fallback field.Element) field.Element {
	if k.err != nil {
		return fallback
	}
	r, err := op(b)
	if err != nil {
		k.err = err
		return fallback
	}
	return r
}
