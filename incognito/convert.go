package incognito

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ringproofs/incognito/bulletproof"
	"github.com/ringproofs/incognito/curve"
	"github.com/ringproofs/incognito/schnorr"
)

// challengeCz binds the re-randomized Schnorr commitment to the
// Pedersen commitment of the signer's public key.
func challengeCz(g curve.Group, h curve.Hasher, rz, cpk curve.Point) curve.Scalar {
	return h.DigestScalar(g, g.PointBytes(rz), g.PointBytes(cpk))
}

// challengeY and challengeW derive the two bit-vector-proof challenges
// from the same transcript prefix, domain-separated by a trailing
// 0x00/0x01 byte.
func challengeY(g curve.Group, h curve.Hasher, base, a, s, sPk, cpk curve.Point) curve.Scalar {
	return h.DigestScalar(g, g.PointBytes(base), g.PointBytes(a), g.PointBytes(s), g.PointBytes(sPk), g.PointBytes(cpk), []byte{0x00})
}

func challengeW(g curve.Group, h curve.Hasher, base, a, s, sPk, cpk curve.Point) curve.Scalar {
	return h.DigestScalar(g, g.PointBytes(base), g.PointBytes(a), g.PointBytes(s), g.PointBytes(sPk), g.PointBytes(cpk), []byte{0x01})
}

func challengeX(g curve.Group, h curve.Hasher, t1, t2 curve.Point, y, w curve.Scalar) curve.Scalar {
	return h.DigestScalar(g, g.PointBytes(t1), g.PointBytes(t2), g.ScalarBytes(y), g.ScalarBytes(w))
}

func challengeD(g curve.Group, h curve.Hasher, x, taux, mu, nu, tx curve.Scalar) curve.Scalar {
	return h.DigestScalar(g, g.ScalarBytes(x), g.ScalarBytes(taux), g.ScalarBytes(mu), g.ScalarBytes(nu), g.ScalarBytes(tx))
}

// Convert produces a Signature proving, without revealing which, that
// one of the public keys in pks signed message — specifically the one
// at position index. Convert does not itself check that sig verifies
// under pks[index]: if it doesn't, Convert still succeeds, but the
// resulting Signature fails Verify. len(pks) must be a power of two
// not exceeding p.MaxN.
func (p *Params) Convert(rand io.Reader, pks []curve.Point, message []byte, sig *schnorr.Signature, index int) (*Signature, error) {
	g, h := p.Group, p.Hasher
	n := len(pks)

	if n == 0 || n > p.MaxN {
		return nil, curve.NewError(curve.BadArguments, "incognito: ring size %d exceeds MaxN %d", n, p.MaxN)
	}
	if !isPowerOfTwo(n) {
		return nil, curve.NewError(curve.BadArguments, "incognito: ring size %d must be a power of two", n)
	}
	if index < 0 || index >= n {
		return nil, curve.NewError(curve.BadArguments, "incognito: signer index %d out of range for ring of size %d", index, n)
	}

	draw := func() (curve.Scalar, error) { return g.RandomScalar(rand) }

	// Step 1: Pedersen-commit to the signer's public key.
	beta, err := draw()
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: drawing beta")
	}
	cpk := g.Add(g.ScalarMult(beta, p.G), pks[index])

	// Step 2: re-randomized Schnorr-knowledge proof binding R and CPk.
	rZ, err := draw()
	if err != nil {
		return nil, err
	}
	rBeta, err := draw()
	if err != nil {
		return nil, err
	}
	c := schnorr.Challenge(g, h, sig.R, message)

	pointRZ := g.Add(g.ScalarBaseMult(rZ), g.ScalarMult(g.MulScalars(rBeta, c), p.G))
	cZ := challengeCz(g, h, pointRZ, cpk)

	sZ := g.AddScalars(rZ, g.MulScalars(cZ, sig.Z))
	sBeta := g.AddScalars(rBeta, g.MulScalars(cZ, beta))

	// Step 3: one-of-many bit-vector commitment.
	alpha, err := draw()
	if err != nil {
		return nil, err
	}
	rho, err := draw()
	if err != nil {
		return nil, err
	}
	zeta, err := draw()
	if err != nil {
		return nil, err
	}

	vecSa := make([]curve.Scalar, n)
	vecSb := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		if vecSa[i], err = draw(); err != nil {
			return nil, err
		}
		if vecSb[i], err = draw(); err != nil {
			return nil, err
		}
	}

	vecB := make([]curve.Scalar, n)
	vecA := make([]curve.Scalar, n)
	one := g.OneScalar()
	for i := 0; i < n; i++ {
		if i == index {
			vecB[i] = one
		} else {
			vecB[i] = g.ZeroScalar()
		}
		vecA[i] = g.SubScalars(vecB[i], one)
	}

	pointA := g.ScalarMult(alpha, p.H)
	pointS := g.ScalarMult(rho, p.H)
	pointSPk := g.ScalarMult(zeta, p.G)
	for i := 0; i < n; i++ {
		pointA = g.Add(pointA, g.Add(g.ScalarMult(vecB[i], p.VecG[i]), g.ScalarMult(vecA[i], p.VecH[i])))
		pointS = g.Add(pointS, g.Add(g.ScalarMult(vecSb[i], p.VecG[i]), g.ScalarMult(vecSa[i], p.VecH[i])))
		pointSPk = g.Add(pointSPk, g.ScalarMult(vecSb[i], pks[i]))
	}

	y := challengeY(g, h, p.G, pointA, pointS, pointSPk, cpk)
	w := challengeW(g, h, p.G, pointA, pointS, pointSPk, cpk)

	// Step 4: polynomial-identity opening.
	vecYn := buildPowers(g, n, y)
	t1 := g.ZeroScalar()
	t2 := g.ZeroScalar()
	for i := 0; i < n; i++ {
		t1 = g.AddScalars(t1, g.MulScalars(vecSb[i], g.AddScalars(g.MulScalars(vecYn[i], g.AddScalars(vecA[i], w)), g.MulScalars(w, w))))
		t1 = g.AddScalars(t1, g.MulScalars(g.SubScalars(vecB[i], w), g.MulScalars(vecYn[i], vecSa[i])))
		t2 = g.AddScalars(t2, g.MulScalars(vecSb[i], g.MulScalars(vecYn[i], vecSa[i])))
	}

	tau1, err := draw()
	if err != nil {
		return nil, err
	}
	tau2, err := draw()
	if err != nil {
		return nil, err
	}
	pointT1 := g.Add(g.ScalarBaseMult(t1), g.ScalarMult(tau1, p.H))
	pointT2 := g.Add(g.ScalarBaseMult(t2), g.ScalarMult(tau2, p.H))

	x := challengeX(g, h, pointT1, pointT2, y, w)
	taux := g.AddScalars(g.MulScalars(tau2, g.MulScalars(x, x)), g.MulScalars(tau1, x))
	mu := g.AddScalars(alpha, g.MulScalars(rho, x))
	nu := g.AddScalars(beta, g.MulScalars(zeta, x))

	vecL := make([]curve.Scalar, n)
	vecR := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		vecL[i] = g.AddScalars(g.SubScalars(vecB[i], w), g.MulScalars(vecSb[i], x))
		inner := g.AddScalars(g.AddScalars(vecA[i], w), g.MulScalars(vecSa[i], x))
		vecR[i] = g.AddScalars(g.MulScalars(vecYn[i], inner), g.MulScalars(w, w))
	}
	tx := g.ZeroScalar()
	for i := 0; i < n; i++ {
		tx = g.AddScalars(tx, g.MulScalars(vecL[i], vecR[i]))
	}

	// Step 5: inner-product delegation over rebound bases.
	d := challengeD(g, h, x, taux, mu, nu, tx)

	yInv, err := g.InvertScalar(y)
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: inverting y challenge")
	}
	vecYnInv := buildPowers(g, n, yInv)

	bulletBaseG := make([]curve.Point, n)
	bulletBaseH := make([]curve.Point, n)
	bulletTarget := g.Identity()
	for i := 0; i < n; i++ {
		bulletBaseG[i] = g.Add(p.VecG[i], g.ScalarMult(d, pks[i]))
		bulletBaseH[i] = g.ScalarMult(vecYnInv[i], p.VecH[i])
		bulletTarget = g.Add(bulletTarget, g.Add(g.ScalarMult(vecL[i], bulletBaseG[i]), g.ScalarMult(vecR[i], bulletBaseH[i])))
	}

	bp, err := bulletproof.Prove(g, h, bulletBaseG, bulletBaseH, vecL, vecR, bulletTarget)
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: proving inner-product argument")
	}

	return &Signature{
		R:     sig.R,
		CPk:   cpk,
		RZ:    pointRZ,
		SZ:    sZ,
		SBeta: sBeta,
		A:     pointA,
		S:     pointS,
		SPk:   pointSPk,
		T1:    pointT1,
		T2:    pointT2,
		Taux:  taux,
		Mu:    mu,
		Nu:    nu,
		Tx:    tx,

		BulletProof: bp,
	}, nil
}
