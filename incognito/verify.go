package incognito

import (
	"github.com/pkg/errors"

	"github.com/ringproofs/incognito/bulletproof"
	"github.com/ringproofs/incognito/curve"
	"github.com/ringproofs/incognito/schnorr"
)

// Verify checks a Signature against a ring of public keys and a
// message, without learning which ring member signed. It returns a
// *curve.Error of kind BadArguments when the ring is empty, larger than
// p.MaxN, or not a power of two, and one of kind InvalidSignature when
// the signature fails, never distinguishing which of the three checks
// failed.
func (p *Params) Verify(pks []curve.Point, message []byte, sig *Signature) error {
	g, h := p.Group, p.Hasher
	n := len(pks)

	if n == 0 || n > p.MaxN {
		return curve.NewError(curve.BadArguments, "incognito: ring size %d exceeds MaxN %d", n, p.MaxN)
	}
	if !isPowerOfTwo(n) {
		return curve.NewError(curve.BadArguments, "incognito: ring size %d must be a power of two", n)
	}
	if sig == nil || sig.BulletProof == nil {
		return curve.NewError(curve.InvalidSignature, "incognito: malformed signature")
	}

	c := schnorr.Challenge(g, h, sig.R, message)

	cZ := challengeCz(g, h, sig.RZ, sig.CPk)
	y := challengeY(g, h, p.G, sig.A, sig.S, sig.SPk, sig.CPk)
	w := challengeW(g, h, p.G, sig.A, sig.S, sig.SPk, sig.CPk)

	// Check 1: the re-randomized Schnorr-knowledge proof.
	lhs := g.Add(g.ScalarBaseMult(sig.SZ), g.ScalarMult(g.MulScalars(sig.SBeta, c), p.G))
	rhs := g.Add(g.Add(sig.RZ, g.ScalarMult(cZ, sig.R)), g.ScalarMult(g.MulScalars(cZ, c), sig.CPk))
	if !g.Equal(lhs, rhs) {
		return curve.NewError(curve.InvalidSignature, "incognito: signature does not verify")
	}

	x := challengeX(g, h, sig.T1, sig.T2, y, w)

	// Check 2: the polynomial identity t(x) = t0 + t1*x + t2*x^2.
	scalarN := g.ZeroScalar()
	sumYn := g.ZeroScalar()
	yn := g.OneScalar()
	for i := 0; i < n; i++ {
		scalarN = g.AddScalars(scalarN, g.OneScalar())
		sumYn = g.AddScalars(sumYn, yn)
		yn = g.MulScalars(yn, y)
	}
	wSq := g.MulScalars(w, w)
	wCube := g.MulScalars(wSq, w)
	t0 := g.SubScalars(wSq, g.MulScalars(wCube, scalarN))
	t0 = g.AddScalars(t0, g.MulScalars(g.SubScalars(w, wSq), sumYn))

	polyLhs := g.Add(g.ScalarBaseMult(sig.Tx), g.ScalarMult(sig.Taux, p.H))
	polyRhs := g.Add(g.Add(g.ScalarBaseMult(t0), g.ScalarMult(x, sig.T1)), g.ScalarMult(g.MulScalars(x, x), sig.T2))
	if !g.Equal(polyLhs, polyRhs) {
		return curve.NewError(curve.InvalidSignature, "incognito: signature does not verify")
	}

	// Check 3: the inner-product delegation over rebound bases.
	vecYn := buildPowers(g, n, y)
	yInv, err := g.InvertScalar(y)
	if err != nil {
		return errors.WithMessage(err, "incognito: inverting y challenge")
	}
	vecYnInv := buildPowers(g, n, yInv)
	d := challengeD(g, h, x, sig.Taux, sig.Mu, sig.Nu, sig.Tx)

	point1 := g.Add(g.ScalarMult(g.MulScalars(d, sig.Nu), p.G), g.ScalarMult(sig.Mu, p.H))

	point2 := g.Add(g.Add(sig.A, g.ScalarMult(x, sig.S)), g.Add(g.ScalarMult(d, sig.CPk), g.ScalarMult(g.MulScalars(x, d), sig.SPk)))

	bulletBaseG := make([]curve.Point, n)
	bulletBaseH := make([]curve.Point, n)
	negW := g.NegateScalar(w)
	wYnPlusWSq := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		wYnPlusWSq[i] = g.AddScalars(g.MulScalars(w, vecYn[i]), wSq)
	}
	for i := 0; i < n; i++ {
		bulletBaseG[i] = g.Add(p.VecG[i], g.ScalarMult(d, pks[i]))
		bulletBaseH[i] = g.ScalarMult(vecYnInv[i], p.VecH[i])
		point2 = g.Add(point2, g.ScalarMult(negW, bulletBaseG[i]))
		point2 = g.Add(point2, g.ScalarMult(wYnPlusWSq[i], bulletBaseH[i]))
	}

	if err := bulletproof.Verify(g, h, bulletBaseG, bulletBaseH, sig.BulletProof); err != nil {
		return curve.NewError(curve.InvalidSignature, "incognito: signature does not verify")
	}

	if !g.Equal(g.Add(point1, sig.BulletProof.Target), point2) {
		return curve.NewError(curve.InvalidSignature, "incognito: signature does not verify")
	}

	return nil
}
