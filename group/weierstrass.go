package group

import (
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/takakv/ecc-core/curve"
	"github.com/takakv/ecc-core/field"
)

type curveGroup struct {
	gen   curve.Point
	order *big.Int
	name  string
}

type curvePoint struct {
	curve *curveGroup
	val   curve.Point
}

// NewCurveGroup returns the cyclic group generated by generator, whose order
// must be order.
func NewCurveGroup(name string, generator curve.Point, order *big.Int) Group {
	G := new(curveGroup)
	G.gen = generator
	G.order = new(big.Int).Set(order)
	G.name = name
	return G
}

func (g *curveGroup) Name() string {
	return g.name
}

func (g *curveGroup) equals(h *curveGroup) bool {
	if g == h {
		return true
	}
	return g.gen.Equal(h.gen) && g.order.Cmp(h.order) == 0
}

func (g *curveGroup) P() *big.Int {
	return g.gen.Curve().Prime()
}

func (g *curveGroup) N() *big.Int {
	return new(big.Int).Set(g.order)
}

func (g *curveGroup) Generator() Element {
	return &curvePoint{
		curve: g,
		val:   g.gen,
	}
}

func (g *curveGroup) Identity() Element {
	return &curvePoint{
		curve: g,
		val:   g.gen.Curve().Identity(),
	}
}

func (g *curveGroup) Random() Element {
	r, _ := rand.Int(rand.Reader, g.order)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *curveGroup) Element() Element {
	return g.Identity()
}

func (e *curvePoint) check(a Element) *curvePoint {
	ca, ok := a.(*curvePoint)
	if !ok {
		panic("incompatible group element type")
	}
	if !e.curve.equals(ca.curve) {
		panic("incompatible groups")
	}
	return ca
}

// must unwraps the result of an operation between points that check has
// already placed on the same curve.
func must(p curve.Point, err error) curve.Point {
	if err != nil {
		panic(err)
	}
	return p
}

func (e *curvePoint) Add(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = must(ca.val.Add(cb.val))
	return e
}

func (e *curvePoint) Subtract(a Element, b Element) Element {
	ca := e.check(a)
	cb := e.check(b)
	e.val = must(ca.val.Sub(cb.val))
	return e
}

func (e *curvePoint) Negate(a Element) Element {
	ca := e.check(a)
	e.val = ca.val.Neg()
	return e
}

func (e *curvePoint) IsEqual(b Element) bool {
	cb := e.check(b)
	return e.val.Equal(cb.val)
}

func (e *curvePoint) Set(a Element) Element {
	ca := e.check(a)
	e.val = ca.val
	return e
}

func (e *curvePoint) Scale(a Element, s *big.Int) Element {
	ca := e.check(a)
	k := new(big.Int).Mod(s, e.curve.order)
	e.val = must(ca.val.ScalarMul(k))
	return e
}

func (e *curvePoint) BaseScale(s *big.Int) Element {
	k := new(big.Int).Mod(s, e.curve.order)
	e.val = must(e.curve.gen.ScalarMul(k))
	return e
}

func (e *curvePoint) GroupOrder() *big.Int {
	return e.curve.N()
}

func (e *curvePoint) FieldOrder() *big.Int {
	return e.curve.P()
}

func (e *curvePoint) String() string {
	return e.val.String()
}

func (e *curvePoint) IsIdentity() bool {
	return e.val.IsIdentity()
}

// fromParams builds a NIST prime curve group, for which a = -3.
func fromParams(params *elliptic.CurveParams) Group {
	p := params.P
	a, err := field.New(new(big.Int).Sub(p, big.NewInt(3)), p)
	if err != nil {
		panic(err)
	}
	b, err := field.New(params.B, p)
	if err != nil {
		panic(err)
	}
	c, err := curve.New(a, b)
	if err != nil {
		panic(err)
	}
	x, err := field.New(params.Gx, p)
	if err != nil {
		panic(err)
	}
	y, err := field.New(params.Gy, p)
	if err != nil {
		panic(err)
	}
	gen, err := c.Point(x, y)
	if err != nil {
		panic(fmt.Sprintf("invalid generator of %s: %v", params.Name, err))
	}
	return NewCurveGroup(params.Name, gen, params.N)
}

func P256() Group {
	return fromParams(elliptic.P256().Params())
}

func P384() Group {
	return fromParams(elliptic.P384().Params())
}
