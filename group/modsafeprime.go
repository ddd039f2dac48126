package group

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/takakv/ecc-core/field"
)

// ModPElement is an element of the order-q subgroup of the multiplicative
// group of F_p, for a safe prime p = 2q + 1.
type ModPElement struct {
	group *ModPGroup
	val   field.Element
}

type ModPGroup struct {
	gen        field.Element
	fieldOrder *big.Int
	groupOrder *big.Int
	name       string
}

func (g *ModPGroup) Name() string {
	return g.name
}

func (g *ModPGroup) equals(h *ModPGroup) bool {
	if g == h {
		return true
	}
	return g.fieldOrder.Cmp(h.fieldOrder) == 0 && g.gen.Equal(h.gen)
}

func (g *ModPGroup) P() *big.Int {
	return new(big.Int).Set(g.fieldOrder)
}

func (g *ModPGroup) N() *big.Int {
	return new(big.Int).Set(g.groupOrder)
}

func (g *ModPGroup) Generator() Element {
	return &ModPElement{
		group: g,
		val:   g.gen,
	}
}

func (g *ModPGroup) Identity() Element {
	one, err := field.New(big.NewInt(1), g.fieldOrder)
	if err != nil {
		panic(err)
	}
	return &ModPElement{
		group: g,
		val:   one,
	}
}

func (g *ModPGroup) Random() Element {
	r, _ := rand.Int(rand.Reader, g.groupOrder)
	e := g.Identity()
	e.BaseScale(r)
	return e
}

func (g *ModPGroup) Element() Element {
	return g.Identity()
}

func (e *ModPElement) check(a Element) *ModPElement {
	ey, ok := a.(*ModPElement)
	if !ok {
		panic("incompatible group element type")
	}
	if !e.group.equals(ey.group) {
		panic("incompatible groups")
	}
	return ey
}

func (e *ModPElement) Add(a Element, b Element) Element {
	ex := e.check(a)
	ey := e.check(b)
	val, err := ex.val.Mul(ey.val)
	if err != nil {
		panic(err)
	}
	e.val = val
	return e
}

func (e *ModPElement) Subtract(a Element, b Element) Element {
	tmp := e.group.Identity()
	tmp.Negate(b)
	e.Add(a, tmp)
	return e
}

func (e *ModPElement) Negate(a Element) Element {
	ex := e.check(a)
	val, err := ex.val.Inverse()
	if err != nil {
		panic(err)
	}
	e.val = val
	return e
}

func (e *ModPElement) IsEqual(b Element) bool {
	ey := e.check(b)
	return e.val.Equal(ey.val)
}

func (e *ModPElement) Set(a Element) Element {
	ex := e.check(a)
	e.val = ex.val
	return e
}

func (e *ModPElement) Scale(a Element, s *big.Int) Element {
	ex := e.check(a)
	val, err := ex.val.Exp(new(big.Int).Mod(s, e.group.groupOrder))
	if err != nil {
		panic(err)
	}
	e.val = val
	return e
}

func (e *ModPElement) BaseScale(s *big.Int) Element {
	val, err := e.group.gen.Exp(new(big.Int).Mod(s, e.group.groupOrder))
	if err != nil {
		panic(err)
	}
	e.val = val
	return e
}

func (e *ModPElement) GroupOrder() *big.Int {
	return e.group.N()
}

func (e *ModPElement) FieldOrder() *big.Int {
	return e.group.P()
}

func (e *ModPElement) String() string {
	return e.val.Inner().String()
}

func (e *ModPElement) IsIdentity() bool {
	return e.val.Inner().Cmp(big.NewInt(1)) == 0
}

// NewModPGroup returns the subgroup of quadratic residues modulo the safe
// prime fieldOrder, generated by generator. Both are hexadecimal strings;
// whitespace in fieldOrder is ignored.
func NewModPGroup(name string, fieldOrder, generator string) Group {
	repr := strings.Join(strings.Fields(fieldOrder), "")

	ffOrder, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		panic("invalid group definition")
	}

	genInt, ok := new(big.Int).SetString(generator, 16)
	if !ok {
		panic("invalid generator")
	}
	gen, err := field.New(genInt, ffOrder)
	if err != nil {
		panic("invalid generator")
	}

	genOrder := new(big.Int).Set(ffOrder)
	genOrder.Sub(genOrder, big.NewInt(1))
	genOrder.Div(genOrder, big.NewInt(2))

	G := new(ModPGroup)
	G.fieldOrder = ffOrder
	G.groupOrder = genOrder
	G.gen = gen
	G.name = name
	return G
}
