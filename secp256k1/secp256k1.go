// Package secp256k1 pins the generic curve code to the secp256k1 parameters
// of SEC 2: y^2 = x^3 + 7 over F_p with p = 2^256 - 2^32 - 977.
//
// Points of this package are always on secp256k1, so their arithmetic cannot
// fail and returns plain values.
package secp256k1

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/takakv/ecc-core/curve"
	"github.com/takakv/ecc-core/field"
)

const (
	primeHex = `FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF
		FFFFFFFF FFFFFFFF FFFFFFFE FFFFFC2F`
	orderHex = `FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE
		BAAEDCE6 AF48A03B BFD25E8C D0364141`
	gxHex = `79BE667E F9DCBBAC 55A06295 CE870B07
		029BFCDB 2DCE28D9 59F2815B 16F81798`
	gyHex = `483ADA77 26A3C465 5DA4FBFC 0E1108A8
		FD17B448 A6855419 9C47D08F FB10D4B8`
)

var (
	prime = mustHex(primeHex)
	order = mustHex(orderHex)

	s256      = mustCurve()
	generator = mustGenerator()
)

func mustHex(s string) *big.Int {
	repr := strings.Join(strings.Fields(s), "")
	n, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		panic("invalid curve constant " + repr)
	}
	return n
}

func mustElement(v *big.Int) field.Element {
	e, err := field.New(v, prime)
	if err != nil {
		panic(err)
	}
	return e
}

func mustCurve() curve.Curve {
	c, err := curve.New(mustElement(big.NewInt(0)), mustElement(big.NewInt(7)))
	if err != nil {
		panic(err)
	}
	return c
}

func mustGenerator() Point {
	g, err := NewPoint(mustHex(gxHex), mustHex(gyHex))
	if err != nil {
		panic(err)
	}
	return g
}

// Curve returns secp256k1 as a generic curve.
func Curve() curve.Curve {
	return s256
}

// Prime returns the field modulus p.
func Prime() *big.Int {
	return new(big.Int).Set(prime)
}

// Order returns the order n of the generator.
func Order() *big.Int {
	return new(big.Int).Set(order)
}

// G returns the standard generator.
func G() Point {
	return generator
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{pt: s256.Identity()}
}

// Point is a point of secp256k1, either affine or the point at infinity.
type Point struct {
	pt curve.Point
}

// NewPoint returns the affine point (x, y). It fails if the coordinates are
// not reduced modulo p or the point is not on the curve.
func NewPoint(x, y *big.Int) (Point, error) {
	fx, err := field.New(x, prime)
	if err != nil {
		return Point{}, errors.WithMessage(err, "x coordinate")
	}
	fy, err := field.New(y, prime)
	if err != nil {
		return Point{}, errors.WithMessage(err, "y coordinate")
	}
	pt, err := s256.Point(fx, fy)
	if err != nil {
		return Point{}, err
	}
	return Point{pt: pt}, nil
}

// FromPoint converts a generic point. It fails with curve.ErrCurveMismatch if
// p does not belong to secp256k1. Coordinates are carried over unchanged.
func FromPoint(p curve.Point) (Point, error) {
	if !p.Curve().Equal(s256) {
		return Point{}, errors.Wrapf(curve.ErrCurveMismatch, "%s is not secp256k1", p.Curve())
	}
	return Point{pt: p}, nil
}

// ToPoint returns p as a generic point of Curve().
func (p Point) ToPoint() curve.Point {
	return p.pt
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.pt.IsIdentity()
}

// X returns the affine x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	x, ok := p.pt.X()
	if !ok {
		return nil
	}
	return x.Inner()
}

// Y returns the affine y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	y, ok := p.pt.Y()
	if !ok {
		return nil
	}
	return y.Inner()
}

func (p Point) Equal(q Point) bool {
	return p.pt.Equal(q.pt)
}

func (p Point) Add(q Point) Point {
	return must(p.pt.Add(q.pt))
}

func (p Point) Neg() Point {
	return Point{pt: p.pt.Neg()}
}

// Mul returns k*p using double-and-add.
func (p Point) Mul(k *big.Int) Point {
	return must(p.pt.ScalarMul(k))
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "secp256k1(infinity)"
	}
	return fmt.Sprintf("secp256k1(%x, %x)", p.X(), p.Y())
}

// must unwraps results of operations between two secp256k1 points, which
// only fail on mismatched curves.
func must(pt curve.Point, err error) Point {
	if err != nil {
		panic(err)
	}
	return Point{pt: pt}
}
