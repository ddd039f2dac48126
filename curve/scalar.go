package curve

import (
	"math/big"

	"github.com/pkg/errors"
)

// operands maps a signed scalar onto the point to add and the number of
// times to add it: k*P = |k|*(-P) for negative k.
func (p Point) operands(k *big.Int) (Point, *big.Int) {
	if k.Sign() < 0 {
		return p.Neg(), new(big.Int).Neg(k)
	}
	return p, k
}

// NaiveMul returns k*p by adding p to the identity |k| times. It runs in
// O(k) group operations and is kept as a reference for ScalarMul.
func (p Point) NaiveMul(k *big.Int) (Point, error) {
	base, n := p.operands(k)
	acc := p.curve.Identity()
	for i := new(big.Int); i.Cmp(n) < 0; i.Add(i, big.NewInt(1)) {
		var err error
		if acc, err = acc.Add(base); err != nil {
			return Point{}, err
		}
	}
	return acc, nil
}

// ScalarMul returns k*p by binary expansion of k (double-and-add). Bits are
// consumed from least to most significant: the running multiple 2^i*p is
// doubled every step and added to the result whenever bit i of k is set.
func (p Point) ScalarMul(k *big.Int) (Point, error) {
	addend, n := p.operands(k)
	result := p.curve.Identity()
	var err error
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			if result, err = result.Add(addend); err != nil {
				return Point{}, err
			}
		}
		if i+1 < n.BitLen() {
			if addend, err = addend.Add(addend); err != nil {
				return Point{}, err
			}
		}
	}
	return result, nil
}

// Order returns the smallest n >= 1 with n*p equal to the identity, found by
// repeated addition. It fails with ErrOrderNotFound if n exceeds limit.
func (p Point) Order(limit uint64) (uint64, error) {
	acc := p
	for n := uint64(1); n <= limit; n++ {
		if acc.IsIdentity() {
			return n, nil
		}
		var err error
		if acc, err = acc.Add(p); err != nil {
			return 0, err
		}
	}
	return 0, errors.Wrapf(ErrOrderNotFound, "%s after %d additions", p, limit)
}
