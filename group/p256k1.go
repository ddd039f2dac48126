package group

import (
	"crypto/rand"
	"math/big"

	"github.com/takakv/ecc-core/secp256k1"
)

type p256k1Group struct {
	fieldOrder *big.Int
	curveOrder *big.Int
	name       string
}

type p256k1Point struct {
	curve *p256k1Group
	val   secp256k1.Point
}

func (g *p256k1Group) Name() string {
	return g.name
}

func (g *p256k1Group) P() *big.Int {
	return new(big.Int).Set(g.fieldOrder)
}

func (g *p256k1Group) N() *big.Int {
	return new(big.Int).Set(g.curveOrder)
}

func (g *p256k1Group) Generator() Element {
	return &p256k1Point{
		curve: g,
		val:   secp256k1.G(),
	}
}

func (g *p256k1Group) Identity() Element {
	return &p256k1Point{
		curve: g,
		val:   secp256k1.Identity(),
	}
}

func (g *p256k1Group) Random() Element {
	r, _ := rand.Int(rand.Reader, g.curveOrder)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *p256k1Group) Element() Element {
	return g.Identity()
}

func (e *p256k1Point) check(a Element) *p256k1Point {
	ey, ok := a.(*p256k1Point)
	if !ok {
		panic("incompatible group element type")
	}
	return ey
}

func (e *p256k1Point) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = ca.val.Add(cb.val)
	return e
}

func (e *p256k1Point) Subtract(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = ca.val.Add(cb.val.Neg())
	return e
}

func (e *p256k1Point) Negate(a Element) Element {
	ca := e.check(a)
	e.val = ca.val.Neg()
	return e
}

func (e *p256k1Point) IsEqual(b Element) bool {
	cb := e.check(b)
	return e.val.Equal(cb.val)
}

func (e *p256k1Point) Set(a Element) Element {
	ca := e.check(a)
	e.val = ca.val
	return e
}

func (e *p256k1Point) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	e.val = ca.val.Mul(new(big.Int).Mod(s, e.curve.curveOrder))
	return e
}

func (e *p256k1Point) BaseScale(s *big.Int) Element {
	e.val = secp256k1.G().Mul(new(big.Int).Mod(s, e.curve.curveOrder))
	return e
}

func (e *p256k1Point) GroupOrder() *big.Int {
	return e.curve.N()
}

func (e *p256k1Point) FieldOrder() *big.Int {
	return e.curve.P()
}

func (e *p256k1Point) String() string {
	return e.val.String()
}

func (e *p256k1Point) IsIdentity() bool {
	return e.val.IsIdentity()
}

func SecP256k1() Group {
	G := new(p256k1Group)
	G.fieldOrder = secp256k1.Prime()
	G.curveOrder = secp256k1.Order()
	G.name = "secp256k1"
	return G
}
