// Package incognito implements the Incognito Signature Conversion: a
// non-interactive protocol that turns a single-signer Schnorr signature
// into a ring-hiding, zero-knowledge-verifiable one.
package incognito

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ringproofs/incognito/curve"
)

// Params is the common reference string shared by every prover and
// verifier: a pair of blinding bases g, h and two parallel vectors of
// per-position bases vecG, vecH, sized to the largest ring the params
// will ever be asked to handle (MaxN).
type Params struct {
	Group  curve.Group
	Hasher curve.Hasher

	G    curve.Point
	H    curve.Point
	VecG []curve.Point
	VecH []curve.Point

	MaxN int
}

// NewParams draws a fresh, random common reference string supporting
// rings of up to maxN members. maxN itself need not be a power of two;
// individual Convert/Verify calls each enforce that their own ring
// length is.
func NewParams(g curve.Group, h curve.Hasher, rand io.Reader, maxN int) (*Params, error) {
	if maxN <= 0 {
		return nil, curve.NewError(curve.BadArguments, "incognito: maxN must be positive, got %d", maxN)
	}

	randomPoint := func() (curve.Point, error) {
		s, err := g.RandomScalar(rand)
		if err != nil {
			return nil, err
		}
		return g.ScalarBaseMult(s), nil
	}

	base, err := randomPoint()
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: generating g base")
	}
	blind, err := randomPoint()
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: generating h base")
	}

	vecG := make([]curve.Point, maxN)
	vecH := make([]curve.Point, maxN)
	for i := 0; i < maxN; i++ {
		vecG[i], err = randomPoint()
		if err != nil {
			return nil, errors.WithMessagef(err, "incognito: generating vecG[%d]", i)
		}
		vecH[i], err = randomPoint()
		if err != nil {
			return nil, errors.WithMessagef(err, "incognito: generating vecH[%d]", i)
		}
	}

	return &Params{
		Group:  g,
		Hasher: h,
		G:      base,
		H:      blind,
		VecG:   vecG,
		VecH:   vecH,
		MaxN:   maxN,
	}, nil
}

// Equal reports whether p and other share the same CRS, comparing
// structurally rather than by pointer identity.
func (p *Params) Equal(other *Params) bool {
	if p.MaxN != other.MaxN || len(p.VecG) != len(other.VecG) || len(p.VecH) != len(other.VecH) {
		return false
	}
	g := p.Group
	if !g.Equal(p.G, other.G) || !g.Equal(p.H, other.H) {
		return false
	}
	for i := range p.VecG {
		if !g.Equal(p.VecG[i], other.VecG[i]) {
			return false
		}
	}
	for i := range p.VecH {
		if !g.Equal(p.VecH[i], other.VecH[i]) {
			return false
		}
	}
	return true
}

// buildPowers returns [1, y, y^2, ..., y^(n-1)].
func buildPowers(g curve.Group, n int, y curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, n)
	cur := g.OneScalar()
	for i := 0; i < n; i++ {
		out[i] = cur
		cur = g.MulScalars(cur, y)
	}
	return out
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
