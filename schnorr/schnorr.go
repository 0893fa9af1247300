// Package schnorr implements a generic Schnorr signature scheme over any
// curve.Group: R = G*r, c = H(R||m), z = r + sk*c, verified by checking
// pk*c + R == G*z.
package schnorr

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ringproofs/incognito/curve"
)

// Signature is a single-signer Schnorr signature over some message.
type Signature struct {
	R curve.Point
	Z curve.Scalar
}

// Challenge computes c = H(R||m), reducing the hash output modulo the
// group order. Package incognito calls it unchanged, so both schemes
// derive the same c from the same R and m.
func Challenge(g curve.Group, h curve.Hasher, r curve.Point, msg []byte) curve.Scalar {
	return h.DigestScalar(g, g.PointBytes(r), msg)
}

// Sign produces a Signature over msg under secretKey, drawing its nonce
// from rand.
func Sign(g curve.Group, h curve.Hasher, rand io.Reader, secretKey curve.Scalar, msg []byte) (*Signature, error) {
	if secretKey.IsZero() {
		return nil, curve.NewError(curve.BadArguments, "schnorr: secret key must not be zero")
	}

	r, err := g.RandomScalar(rand)
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: sampling nonce")
	}

	pointR := g.ScalarBaseMult(r)
	c := Challenge(g, h, pointR, msg)
	z := g.AddScalars(r, g.MulScalars(secretKey, c))

	return &Signature{R: pointR, Z: z}, nil
}

// Verify reports whether sig is a valid signature over msg under
// publicKey. It returns a *curve.Error of kind InvalidSignature on
// failure, never distinguishing which check failed.
func Verify(g curve.Group, h curve.Hasher, publicKey curve.Point, msg []byte, sig *Signature) error {
	if sig == nil || sig.R == nil || sig.Z == nil {
		return curve.NewError(curve.InvalidSignature, "schnorr: malformed signature")
	}

	c := Challenge(g, h, sig.R, msg)

	lhs := g.Add(g.ScalarMult(c, publicKey), sig.R)
	rhs := g.ScalarBaseMult(sig.Z)

	if !g.Equal(lhs, rhs) {
		return curve.NewError(curve.InvalidSignature, "schnorr: signature does not verify")
	}
	return nil
}

// IsEqual reports whether sig and other encode the same R and Z values.
func (sig *Signature) IsEqual(g curve.Group, other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return g.Equal(sig.R, other.R) && g.ScalarsEqual(sig.Z, other.Z)
}

// MarshalBinary encodes sig as R||Z using g's canonical point/scalar
// encodings, in that field order.
func (sig *Signature) MarshalBinary(g curve.Group) ([]byte, error) {
	buf := make([]byte, 0, g.PointSize()+g.ScalarSize())
	buf = curve.WritePoint(buf, g, sig.R)
	buf = curve.WriteScalar(buf, g, sig.Z)
	return buf, nil
}

// UnmarshalSignature decodes a Signature previously produced by
// MarshalBinary.
func UnmarshalSignature(g curve.Group, b []byte) (*Signature, error) {
	r, rest, err := curve.ReadPoint(b, g)
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: decoding R")
	}
	z, rest, err := curve.ReadScalar(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "schnorr: decoding Z")
	}
	if len(rest) != 0 {
		return nil, curve.NewError(curve.BadArguments, "schnorr: trailing bytes after signature")
	}
	return &Signature{R: r, Z: z}, nil
}
