// Package field implements arithmetic over the prime field Z/pZ for an
// arbitrary prime p.
//
// Elements are immutable values: every operation allocates and returns a new
// element and never touches its operands, so elements can be shared freely
// between goroutines.
package field

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Element is a residue modulo a prime. The zero value is not a valid element;
// use New or NewUint64.
type Element struct {
	inner *big.Int
	prime *big.Int
}

// New returns the element inner (mod prime). It fails with ErrInvalidElement
// unless 0 <= inner < prime and prime >= 2. Primality of prime is not checked.
func New(inner, prime *big.Int) (Element, error) {
	if inner == nil || prime == nil {
		return Element{}, errors.Wrap(ErrInvalidElement, "nil value")
	}
	if prime.Cmp(two) < 0 {
		return Element{}, errors.Wrapf(ErrInvalidElement, "modulus %s is smaller than 2", prime)
	}
	if inner.Sign() < 0 || inner.Cmp(prime) >= 0 {
		return Element{}, errors.Wrapf(ErrInvalidElement, "%s is not in range [0, %s)", inner, prime)
	}
	return Element{
		inner: new(big.Int).Set(inner),
		prime: new(big.Int).Set(prime),
	}, nil
}

// NewUint64 is New for machine-sized values.
func NewUint64(inner, prime uint64) (Element, error) {
	return New(new(big.Int).SetUint64(inner), new(big.Int).SetUint64(prime))
}

// reduced builds an element from a value already known to be in range. It
// takes ownership of v and shares the prime of e.
func (e Element) reduced(v *big.Int) Element {
	return Element{inner: v, prime: e.prime}
}

func (e Element) check(b Element) error {
	if e.prime.Cmp(b.prime) != 0 {
		return errors.Wrapf(ErrFieldMismatch, "mod %s and mod %s", e.prime, b.prime)
	}
	return nil
}

// Inner returns a copy of the residue.
func (e Element) Inner() *big.Int {
	return new(big.Int).Set(e.inner)
}

// Prime returns a copy of the field modulus.
func (e Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.Sign() == 0
}

// Equal reports whether e and b are the same residue of the same field.
// Elements of different fields are never equal.
func (e Element) Equal(b Element) bool {
	return e.prime.Cmp(b.prime) == 0 && e.inner.Cmp(b.inner) == 0
}

// Cmp compares the residues of e and b as integers and returns -1, 0 or +1.
func (e Element) Cmp(b Element) int {
	return e.inner.Cmp(b.inner)
}

// Add returns e + b.
func (e Element) Add(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	r := new(big.Int).Add(e.inner, b.inner)
	if r.Cmp(e.prime) >= 0 {
		r.Sub(r, e.prime)
	}
	return e.reduced(r), nil
}

// Sub returns e - b. The difference never goes below zero: when e < b the
// result is p - (b - e).
func (e Element) Sub(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	if e.inner.Cmp(b.inner) >= 0 {
		return e.reduced(new(big.Int).Sub(e.inner, b.inner)), nil
	}
	r := new(big.Int).Sub(b.inner, e.inner)
	return e.reduced(r.Sub(e.prime, r)), nil
}

// Mul returns e * b.
func (e Element) Mul(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	r := new(big.Int).Mul(e.inner, b.inner)
	return e.reduced(r.Mod(r, e.prime)), nil
}

// Div returns e / b computed as e * b^(p-2). Dividing by zero fails with
// ErrDivisionByZero.
func (e Element) Div(b Element) (Element, error) {
	if err := e.check(b); err != nil {
		return Element{}, err
	}
	inv, err := b.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

// Neg returns the additive inverse -e.
func (e Element) Neg() Element {
	if e.IsZero() {
		return e.reduced(new(big.Int))
	}
	return e.reduced(new(big.Int).Sub(e.prime, e.inner))
}

// Inverse returns the multiplicative inverse e^(p-2).
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, errors.Wrapf(ErrDivisionByZero, "inverse of 0 mod %s", e.prime)
	}
	exp := new(big.Int).Sub(e.prime, two)
	return e.reduced(new(big.Int).Exp(e.inner, exp, e.prime)), nil
}

// PowUint returns e raised to exp, where exp is first reduced modulo the
// field prime.
func (e Element) PowUint(exp uint64) Element {
	n := new(big.Int).SetUint64(exp)
	n.Mod(n, e.prime)
	return e.reduced(new(big.Int).Exp(e.inner, n, e.prime))
}

// PowInt returns e raised to exp. A negative exponent -k is computed as
// e^(p-1-k), with k reduced modulo the multiplicative group order p-1.
// Raising zero to a negative power fails with ErrDivisionByZero.
func (e Element) PowInt(exp int64) (Element, error) {
	if exp >= 0 {
		n := new(big.Int).SetInt64(exp)
		return e.reduced(new(big.Int).Exp(e.inner, n, e.prime)), nil
	}
	if e.IsZero() {
		return Element{}, errors.Wrapf(ErrDivisionByZero, "0^%d mod %s", exp, e.prime)
	}
	order := new(big.Int).Sub(e.prime, one)
	k := new(big.Int).SetInt64(exp)
	k.Neg(k).Mod(k, order)
	n := new(big.Int).Sub(order, k)
	return e.reduced(new(big.Int).Exp(e.inner, n, e.prime)), nil
}

// Exp returns e raised to an arbitrary integer exponent. Negative exponents
// go through the inverse; zero to a negative power fails with
// ErrDivisionByZero.
func (e Element) Exp(exp *big.Int) (Element, error) {
	base := e
	n := new(big.Int).Set(exp)
	if n.Sign() < 0 {
		inv, err := e.Inverse()
		if err != nil {
			return Element{}, err
		}
		base = inv
		n.Neg(n)
	}
	return e.reduced(new(big.Int).Exp(base.inner, n, e.prime)), nil
}

// String implements fmt.Stringer.
func (e Element) String() string {
	if e.inner == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (mod %s)", e.inner, e.prime)
}
