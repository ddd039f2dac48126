package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takakv/ecc-core/curve"
	"github.com/takakv/ecc-core/field"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--x", "192", "--y", "105")
	require.NoError(t, err)
	assert.Equal(t, "on curve: Point(192, 105)", out)

	out, err = run(t, "check", "--x", "200", "--y", "119")
	require.NoError(t, err)
	assert.Equal(t, "not on curve", out)

	_, err = run(t, "check", "--x", "300", "--y", "119")
	assert.True(t, errors.Is(err, field.ErrInvalidElement), "got %v", err)

	_, err = run(t, "check", "--x", "abc")
	assert.Error(t, err)
}

func TestMul(t *testing.T) {
	for _, naive := range []string{"false", "true"} {
		out, err := run(t, "mul", "--k", "8", "--naive="+naive)
		require.NoError(t, err)
		assert.Equal(t, "Point(116, 55)", out)

		out, err = run(t, "mul", "--k", "0x15", "--naive="+naive)
		require.NoError(t, err)
		assert.Equal(t, "Point(infinity)", out)
	}

	_, err := run(t, "mul", "--x", "42", "--y", "99")
	assert.True(t, errors.Is(err, curve.ErrPointNotOnCurve), "got %v", err)
}

func TestOrderCmd(t *testing.T) {
	out, err := run(t, "order", "--x", "15", "--y", "86")
	require.NoError(t, err)
	assert.Equal(t, "7", out)

	_, err = run(t, "order", "--limit", "5")
	assert.True(t, errors.Is(err, curve.ErrOrderNotFound), "got %v", err)
}

func TestSecp256k1Cmd(t *testing.T) {
	out, err := run(t, "secp256k1", "--k", "1", "--verbose")
	require.NoError(t, err)
	assert.Equal(t,
		"secp256k1(79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798, 483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8)",
		out)

	out, err = run(t, "secp256k1", "--k", "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	require.NoError(t, err)
	assert.Equal(t, "secp256k1(infinity)", out)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("ECC_X", "15")
	t.Setenv("ECC_Y", "86")
	out, err := run(t, "order")
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}
