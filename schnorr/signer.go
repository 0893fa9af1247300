package schnorr

import (
	"crypto"
	cryptorand "crypto/rand"
	"io"

	"github.com/ringproofs/incognito/curve"
)

// SignOptions selects the digest identity reported by HashFunc. It
// exists so a Signer satisfies crypto.SignerOpts callers that inspect
// the requested hash, even though the signature itself is always
// produced with the Signer's own Group/Hasher.
type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Signer adapts a secret key to the standard library's crypto.Signer
// interface, so Schnorr keys can be used anywhere that interface is
// expected.
type Signer struct {
	Group     curve.Group
	Hasher    curve.Hasher
	SecretKey curve.Scalar
}

// Public implements crypto.Signer, returning the curve.Point
// corresponding to the Signer's secret key boxed as a crypto.PublicKey.
func (s *Signer) Public() crypto.PublicKey {
	return s.Group.ScalarBaseMult(s.SecretKey)
}

// Sign implements crypto.Signer. rand overrides the Signer's default
// entropy source when non-nil, falling back to crypto/rand.Reader
// otherwise, per the crypto.Signer contract; digest is treated as the
// message to sign directly (this scheme has no separate hash-then-sign
// split), and opts is accepted but unused beyond satisfying the
// interface.
func (s *Signer) Sign(rand io.Reader, digest []byte, _ crypto.SignerOpts) ([]byte, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	sig, err := Sign(s.Group, s.Hasher, rand, s.SecretKey, digest)
	if err != nil {
		return nil, err
	}
	return sig.MarshalBinary(s.Group)
}

var _ crypto.Signer = (*Signer)(nil)
