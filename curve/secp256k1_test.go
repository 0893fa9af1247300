package curve

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecp256k1PointArithmetic(t *testing.T) {
	c := NewSecp256k1()
	g := c.Generator()

	t.Run("GeneratorIsOnCurve", func(t *testing.T) {
		gp := asPoint(g)
		rhs := new(big.Int).Mul(gp.x, gp.x)
		rhs.Mul(rhs, gp.x)
		rhs.Add(rhs, secp256k1B)
		rhs.Mod(rhs, secp256k1P)
		lhs := new(big.Int).Mul(gp.y, gp.y)
		lhs.Mod(lhs, secp256k1P)
		require.Equal(t, 0, lhs.Cmp(rhs), "y^2 should equal x^3+7")
	})

	t.Run("AddIdentity", func(t *testing.T) {
		require.True(t, c.Equal(c.Add(g, c.Identity()), g))
		require.True(t, c.Equal(c.Add(c.Identity(), g), g))
	})

	t.Run("AddNegateGivesIdentity", func(t *testing.T) {
		sum := c.Add(g, c.Negate(g))
		require.True(t, asPoint(sum).IsIdentity())
	})

	t.Run("DoubleMatchesAdd", func(t *testing.T) {
		require.True(t, c.Equal(c.double(asPoint(g)), c.Add(g, g)))
	})

	t.Run("ScalarMultDistributesOverAdd", func(t *testing.T) {
		a, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)
		b, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)

		lhs := c.ScalarMult(c.AddScalars(a, b), g)
		rhs := c.Add(c.ScalarMult(a, g), c.ScalarMult(b, g))
		require.True(t, c.Equal(lhs, rhs))
	})

	t.Run("ScalarBaseMultMatchesScalarMult", func(t *testing.T) {
		a, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)
		require.True(t, c.Equal(c.ScalarBaseMult(a), c.ScalarMult(a, g)))
	})

	t.Run("PointRoundTrip", func(t *testing.T) {
		a, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)
		p := c.ScalarBaseMult(a)

		encoded := c.PointBytes(p)
		require.Len(t, encoded, c.PointSize())

		decoded, err := c.PointFromBytes(encoded)
		require.NoError(t, err)
		require.True(t, c.Equal(p, decoded))
	})

	t.Run("IdentityRoundTrip", func(t *testing.T) {
		encoded := c.PointBytes(c.Identity())
		decoded, err := c.PointFromBytes(encoded)
		require.NoError(t, err)
		require.True(t, c.Equal(c.Identity(), decoded))
	})

	t.Run("RejectsBadTag", func(t *testing.T) {
		encoded := c.PointBytes(g)
		encoded[0] = 0x05
		_, err := c.PointFromBytes(encoded)
		require.Error(t, err)
		var ce *Error
		require.ErrorAs(t, err, &ce)
		require.Equal(t, BadArguments, ce.Kind)
	})
}

func TestSecp256k1ScalarArithmetic(t *testing.T) {
	c := NewSecp256k1()

	t.Run("InverseRoundTrip", func(t *testing.T) {
		a, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)
		inv, err := c.InvertScalar(a)
		require.NoError(t, err)
		require.True(t, c.ScalarsEqual(c.OneScalar(), c.MulScalars(a, inv)))
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		_, err := c.InvertScalar(c.ZeroScalar())
		require.Error(t, err)
	})

	t.Run("ScalarByteRoundTrip", func(t *testing.T) {
		a, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)
		encoded := c.ScalarBytes(a)
		require.Len(t, encoded, c.ScalarSize())
		decoded, err := c.ScalarFromBytes(encoded)
		require.NoError(t, err)
		require.True(t, c.ScalarsEqual(a, decoded))
	})

	t.Run("SubThenAddIsIdentity", func(t *testing.T) {
		a, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)
		b, err := c.RandomScalar(rand.Reader)
		require.NoError(t, err)
		diff := c.SubScalars(a, b)
		require.True(t, c.ScalarsEqual(a, c.AddScalars(diff, b)))
	})
}
