package incognito

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ringproofs/incognito/curve"
	"github.com/ringproofs/incognito/schnorr"
)

type ring struct {
	sks []curve.Scalar
	pks []curve.Point
}

func buildRing(t *testing.T, g curve.Group, n int) *ring {
	t.Helper()
	r := &ring{sks: make([]curve.Scalar, n), pks: make([]curve.Point, n)}
	for i := 0; i < n; i++ {
		sk, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		r.sks[i] = sk
		r.pks[i] = g.ScalarBaseMult(sk)
	}
	return r
}

func testConvertVerifyN(t *testing.T, n, index int) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}

	params, err := NewParams(g, h, rand.Reader, n)
	require.NoError(t, err)

	r := buildRing(t, g, n)
	message := []byte{0, 3, 6, 9}

	sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[index], message)
	require.NoError(t, err)
	require.NoError(t, schnorr.Verify(g, h, r.pks[index], message, sig))

	incSig, err := params.Convert(rand.Reader, r.pks, message, sig, index)
	require.NoError(t, err, "n=%d index=%d", n, index)
	require.NoError(t, params.Verify(r.pks, message, incSig), "n=%d index=%d", n, index)
}

func TestConvertVerifyCorrectness(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16} {
		testConvertVerifyN(t, n, n/2)
	}
}

// A ring of 128 keys with the signer near its midpoint, round-tripped
// through signature serialization before the final verify.
func TestConvertVerifyLargeRingWithSerialization(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	n, index := 128, 65

	params, err := NewParams(g, h, rand.Reader, n)
	require.NoError(t, err)
	r := buildRing(t, g, n)
	message := []byte{0, 3, 6, 9}

	sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[index], message)
	require.NoError(t, err)

	incSig, err := params.Convert(rand.Reader, r.pks, message, sig, index)
	require.NoError(t, err)
	require.NoError(t, params.Verify(r.pks, message, incSig))

	encoded, err := incSig.MarshalBinary(g)
	require.NoError(t, err)
	decoded, err := UnmarshalSignature(g, encoded)
	require.NoError(t, err)
	require.NoError(t, params.Verify(r.pks, message, decoded))
}

// A ring of 256 keys; the signature is verified again under Params
// that went through a serialization round-trip.
func TestConvertVerifyWithParamsSerialization(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	n, index := 256, 128

	params, err := NewParams(g, h, rand.Reader, n)
	require.NoError(t, err)
	r := buildRing(t, g, n)
	message := []byte{0, 3, 6, 9}

	sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[index], message)
	require.NoError(t, err)

	incSig, err := params.Convert(rand.Reader, r.pks, message, sig, index)
	require.NoError(t, err)
	require.NoError(t, params.Verify(r.pks, message, incSig))

	paramsBytes, err := params.MarshalBinary()
	require.NoError(t, err)
	paramsDecoded, err := UnmarshalParams(g, h, paramsBytes)
	require.NoError(t, err)
	require.True(t, params.Equal(paramsDecoded))
	require.NoError(t, paramsDecoded.Verify(r.pks, message, incSig))
}

// Verification must fail, as InvalidSignature, when the message is
// changed after conversion.
func TestVerifyRejectsTamperedMessage(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	n, index := 8, 3

	params, err := NewParams(g, h, rand.Reader, n)
	require.NoError(t, err)
	r := buildRing(t, g, n)
	message := []byte("original message")

	sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[index], message)
	require.NoError(t, err)
	incSig, err := params.Convert(rand.Reader, r.pks, message, sig, index)
	require.NoError(t, err)

	err = params.Verify(r.pks, []byte("tampered message"), incSig)
	require.Error(t, err)
	var ce *curve.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, curve.InvalidSignature, ce.Kind)
}

// A ring size that is not a power of two is rejected before any
// cryptographic work.
func TestConvertRejectsNonPowerOfTwoRing(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	n, index := 6, 2

	params, err := NewParams(g, h, rand.Reader, 16)
	require.NoError(t, err)
	r := buildRing(t, g, n)
	message := []byte("m")

	sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[index], message)
	require.NoError(t, err)

	_, err = params.Convert(rand.Reader, r.pks, message, sig, index)
	require.Error(t, err)
	var ce *curve.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, curve.BadArguments, ce.Kind)
}

// An out-of-ring signer index is rejected.
func TestConvertRejectsOutOfRangeIndex(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	n := 4

	params, err := NewParams(g, h, rand.Reader, n)
	require.NoError(t, err)
	r := buildRing(t, g, n)
	message := []byte("m")

	sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[0], message)
	require.NoError(t, err)

	_, err = params.Convert(rand.Reader, r.pks, message, sig, n)
	require.Error(t, err)
	var ce *curve.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, curve.BadArguments, ce.Kind)
}

// A signature produced under a different key than the claimed index
// does not fail Convert: Convert performs no verification of its own.
// The mismatch is only caught when the resulting Signature is passed
// to Verify, which must reject it as InvalidSignature.
func TestConvertAcceptsMismatchedSignatureButVerifyRejects(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	n := 4

	params, err := NewParams(g, h, rand.Reader, n)
	require.NoError(t, err)
	r := buildRing(t, g, n)
	message := []byte("m")

	sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[0], message)
	require.NoError(t, err)

	incSig, err := params.Convert(rand.Reader, r.pks, message, sig, 1)
	require.NoError(t, err)

	err = params.Verify(r.pks, message, incSig)
	require.Error(t, err)
	var ce *curve.Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, curve.InvalidSignature, ce.Kind)
}

func TestHasherInterchangeability(t *testing.T) {
	g := curve.NewSecp256k1()
	n, index := 4, 1

	for _, h := range []curve.Hasher{curve.Sha256Hasher{}, curve.Blake256Hasher{}} {
		params, err := NewParams(g, h, rand.Reader, n)
		require.NoError(t, err)
		r := buildRing(t, g, n)
		message := []byte("hasher interchangeability")

		sig, err := schnorr.Sign(g, h, rand.Reader, r.sks[index], message)
		require.NoError(t, err)
		incSig, err := params.Convert(rand.Reader, r.pks, message, sig, index)
		require.NoError(t, err)
		require.NoError(t, params.Verify(r.pks, message, incSig))
	}
}

func TestParamsEquality(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}

	p1, err := NewParams(g, h, rand.Reader, 4)
	require.NoError(t, err)
	p2, err := NewParams(g, h, rand.Reader, 4)
	require.NoError(t, err)

	require.True(t, p1.Equal(p1))
	require.False(t, p1.Equal(p2))
}
