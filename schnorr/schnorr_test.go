package schnorr

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ringproofs/incognito/curve"
)

func newKeyPair(t *testing.T, g curve.Group) (curve.Scalar, curve.Point) {
	t.Helper()
	sk, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return sk, g.ScalarBaseMult(sk)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	g := curve.NewSecp256k1()
	for _, h := range []curve.Hasher{curve.Sha256Hasher{}, curve.Blake256Hasher{}} {
		sk, pk := newKeyPair(t, g)
		msg := []byte("a message to sign")

		sig, err := Sign(g, h, rand.Reader, sk, msg)
		require.NoError(t, err)
		require.NoError(t, Verify(g, h, pk, msg, sig))
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	sk, pk := newKeyPair(t, g)

	sig, err := Sign(g, h, rand.Reader, sk, []byte("original"))
	require.NoError(t, err)

	err = Verify(g, h, pk, []byte("tampered"), sig)
	require.Error(t, err)
	var ce *curve.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, curve.InvalidSignature, ce.Kind)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	sk, _ := newKeyPair(t, g)
	_, otherPk := newKeyPair(t, g)
	msg := []byte("message")

	sig, err := Sign(g, h, rand.Reader, sk, msg)
	require.NoError(t, err)
	require.Error(t, Verify(g, h, otherPk, msg, sig))
}

func TestSignRejectsZeroKey(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	_, err := Sign(g, h, rand.Reader, g.ZeroScalar(), []byte("m"))
	require.Error(t, err)
	var ce *curve.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, curve.BadArguments, ce.Kind)
}

func TestSignatureMarshalRoundTrip(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	sk, pk := newKeyPair(t, g)
	msg := []byte("roundtrip")

	sig, err := Sign(g, h, rand.Reader, sk, msg)
	require.NoError(t, err)

	encoded, err := sig.MarshalBinary(g)
	require.NoError(t, err)

	decoded, err := UnmarshalSignature(g, encoded)
	require.NoError(t, err)
	require.True(t, sig.IsEqual(g, decoded))
	require.NoError(t, Verify(g, h, pk, msg, decoded))
}

func TestCryptoSignerAdapter(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	sk, _ := newKeyPair(t, g)

	signer := &Signer{Group: g, Hasher: h, SecretKey: sk}
	sigBytes, err := signer.Sign(rand.Reader, []byte("digest"), &SignOptions{})
	require.NoError(t, err)

	sig, err := UnmarshalSignature(g, sigBytes)
	require.NoError(t, err)

	pk, ok := signer.Public().(curve.Point)
	require.True(t, ok)
	require.NoError(t, Verify(g, h, pk, []byte("digest"), sig))
}
