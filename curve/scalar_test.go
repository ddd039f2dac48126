package curve

import (
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	circl "github.com/cloudflare/circl/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takakv/ecc-core/field"
)

func TestScalarMultiples(t *testing.T) {
	c := toyCurve(t)
	g := toyPoint(t, c, 47, 71)

	multiples := [][2]uint64{
		{47, 71}, {36, 111}, {15, 137}, {194, 51},
		{126, 96}, {139, 137}, {92, 47}, {116, 55},
	}
	for i, m := range multiples {
		k := big.NewInt(int64(i + 1))
		want := toyPoint(t, c, m[0], m[1])

		got, err := g.ScalarMul(k)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "%s*G = %s, want %s", k, got, want)

		got, err = g.NaiveMul(k)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "naive %s*G = %s, want %s", k, got, want)
	}

	for _, mul := range []func(Point, *big.Int) (Point, error){Point.ScalarMul, Point.NaiveMul} {
		got, err := mul(g, big.NewInt(21))
		require.NoError(t, err)
		assert.True(t, got.IsIdentity())
	}
}

func TestOrder(t *testing.T) {
	c := toyCurve(t)
	g := toyPoint(t, c, 15, 86)

	i := 0
	point := c.Identity()
	for {
		var err error
		point, err = point.Add(g)
		require.NoError(t, err)
		i++
		if point.Equal(c.Identity()) {
			break
		}
		require.Less(t, i, 7, "identity not reached")
	}
	assert.Equal(t, 7, i)

	n, err := g.Order(100)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), n)

	n, err = toyPoint(t, c, 47, 71).Order(100)
	require.NoError(t, err)
	assert.Equal(t, uint64(21), n)

	n, err = toyPoint(t, c, 6, 0).Order(100)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)

	n, err = c.Identity().Order(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	_, err = toyPoint(t, c, 47, 71).Order(20)
	assert.True(t, errors.Is(err, ErrOrderNotFound), "got %v", err)
}

func TestScalarMulByOrder(t *testing.T) {
	c := toyCurve(t)
	for _, p := range allPoints(t, c) {
		n, err := p.Order(300)
		require.NoError(t, err)
		// Lagrange: the order of every point divides the group order 252.
		assert.Zero(t, 252%n, "order %d of %s", n, p)

		got, err := p.ScalarMul(new(big.Int).SetUint64(n))
		require.NoError(t, err)
		assert.True(t, got.IsIdentity(), "%d*%s", n, p)

		got, err = p.ScalarMul(big.NewInt(252))
		require.NoError(t, err)
		assert.True(t, got.IsIdentity(), "252*%s", p)
	}
}

func TestNaiveAndBinaryAgree(t *testing.T) {
	c := toyCurve(t)
	points := append(allPoints(t, c), c.Identity())
	for _, p := range points {
		for k := int64(-3); k <= 30; k++ {
			naive, err := p.NaiveMul(big.NewInt(k))
			require.NoError(t, err)
			binary, err := p.ScalarMul(big.NewInt(k))
			require.NoError(t, err)
			assert.True(t, naive.Equal(binary), "%d*%s: naive %s, binary %s", k, p, naive, binary)
		}
	}
}

func TestScalarMulEdgeCases(t *testing.T) {
	c := toyCurve(t)
	g := toyPoint(t, c, 47, 71)

	got, err := g.ScalarMul(big.NewInt(0))
	require.NoError(t, err)
	assert.True(t, got.IsIdentity())

	got, err = g.ScalarMul(big.NewInt(1))
	require.NoError(t, err)
	assert.True(t, got.Equal(g))

	got, err = g.ScalarMul(big.NewInt(-1))
	require.NoError(t, err)
	assert.True(t, got.Equal(g.Neg()))

	got, err = c.Identity().ScalarMul(big.NewInt(12345))
	require.NoError(t, err)
	assert.True(t, got.IsIdentity())

	// Scalars wrap around the order of the point.
	got, err = g.ScalarMul(big.NewInt(21*1000 + 5))
	require.NoError(t, err)
	want, err := g.NaiveMul(big.NewInt(5))
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	k := big.NewInt(7)
	before := k.String()
	_, err = g.ScalarMul(k)
	require.NoError(t, err)
	_, err = g.NaiveMul(k)
	require.NoError(t, err)
	assert.Equal(t, before, k.String())
}

// p256 builds NIST P-256 from its standard parameters, which only uses the
// generic short Weierstrass code with a = -3.
func p256(t testing.TB) (Point, *big.Int) {
	t.Helper()
	params := elliptic.P256().Params()
	a, err := field.New(new(big.Int).Sub(params.P, big.NewInt(3)), params.P)
	require.NoError(t, err)
	b, err := field.New(params.B, params.P)
	require.NoError(t, err)
	c, err := New(a, b)
	require.NoError(t, err)

	gx, err := field.New(params.Gx, params.P)
	require.NoError(t, err)
	gy, err := field.New(params.Gy, params.P)
	require.NoError(t, err)
	g, err := c.Point(gx, gy)
	require.NoError(t, err)
	return g, params.N
}

func TestP256MatchesCircl(t *testing.T) {
	g, n := p256(t)

	scalars := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(0xdeadbeef)}
	for i := 0; i < 4; i++ {
		k, err := rand.Int(rand.Reader, n)
		require.NoError(t, err)
		if k.Sign() == 0 {
			k.SetInt64(1)
		}
		scalars = append(scalars, k)
	}

	for _, k := range scalars {
		got, err := g.ScalarMul(k)
		require.NoError(t, err)
		require.False(t, got.IsIdentity())

		s := circl.P256.NewScalar().SetBigInt(k)
		enc, err := circl.P256.NewElement().Mul(circl.P256.Generator(), s).MarshalBinary()
		require.NoError(t, err)
		require.Len(t, enc, 65)

		x, _ := got.X()
		y, _ := got.Y()
		assert.Zero(t, x.Inner().Cmp(new(big.Int).SetBytes(enc[1:33])), "x of %s*G", k)
		assert.Zero(t, y.Inner().Cmp(new(big.Int).SetBytes(enc[33:])), "y of %s*G", k)
	}

	id, err := g.ScalarMul(n)
	require.NoError(t, err)
	assert.True(t, id.IsIdentity())
}

func BenchmarkNaiveMul(b *testing.B) {
	g := toyPoint(b, toyCurve(b), 47, 71)
	k := big.NewInt(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NaiveMul(k)
	}
}

func BenchmarkScalarMul(b *testing.B) {
	g := toyPoint(b, toyCurve(b), 47, 71)
	k := big.NewInt(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ScalarMul(k)
	}
}

func BenchmarkScalarMulP256(b *testing.B) {
	g, n := p256(b)
	k := new(big.Int).Sub(n, big.NewInt(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ScalarMul(k)
	}
}
