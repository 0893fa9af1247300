// Package bulletproof implements a Bulletproof-style inner-product
// argument: a logarithmic-size proof that
//
//	target = sum(G_i * l_i) + sum(H_i * r_i)
//
// for secret vectors l, r known to the prover, without revealing them.
package bulletproof

import (
	"github.com/pkg/errors"

	"github.com/ringproofs/incognito/curve"
)

// Proof is a non-interactive inner-product argument over vectors of
// length n = 2^len(L).
type Proof struct {
	Target curve.Point
	L      []curve.Point
	R      []curve.Point
	A      curve.Scalar
	B      curve.Scalar
}

// challenge derives the per-round folding scalar from the proof's
// original (never-updated) target together with this round's L, R —
// never from the evolving folded accumulator, so a verifier can
// recompute each round's challenge without tracking prover-side state.
func challenge(g curve.Group, h curve.Hasher, target, roundL, roundR curve.Point) curve.Scalar {
	return h.DigestScalar(g, g.PointBytes(target), g.PointBytes(roundL), g.PointBytes(roundR))
}

// Prove constructs a Proof that target = sum(vecG_i*vecL_i) +
// sum(vecH_i*vecR_i). vecG, vecH, vecL, vecR must all have equal,
// power-of-two length.
func Prove(g curve.Group, h curve.Hasher, vecG, vecH []curve.Point, vecL, vecR []curve.Scalar, target curve.Point) (*Proof, error) {
	n := len(vecG)
	if n == 0 || (n&(n-1)) != 0 {
		return nil, curve.NewError(curve.BadArguments, "bulletproof: vector length must be a positive power of two, got %d", n)
	}
	if len(vecH) != n || len(vecL) != n || len(vecR) != n {
		return nil, curve.NewError(curve.BadArguments, "bulletproof: vecG, vecH, vecL, vecR must all have the same length")
	}

	// Work on private copies; the caller's slices are never mutated.
	curG := append([]curve.Point(nil), vecG...)
	curH := append([]curve.Point(nil), vecH...)
	curL := append([]curve.Scalar(nil), vecL...)
	curR := append([]curve.Scalar(nil), vecR...)
	p := target

	var ls, rs []curve.Point

	for n > 1 {
		n /= 2

		g0, g1 := curG[:n], curG[n:]
		h0, h1 := curH[:n], curH[n:]
		l0, l1 := curL[:n], curL[n:]
		r0, r1 := curR[:n], curR[n:]

		roundL := g.Identity()
		roundR := g.Identity()
		for i := 0; i < n; i++ {
			roundL = g.Add(roundL, g.Add(g.ScalarMult(l0[i], g1[i]), g.ScalarMult(r1[i], h0[i])))
			roundR = g.Add(roundR, g.Add(g.ScalarMult(l1[i], g0[i]), g.ScalarMult(r0[i], h1[i])))
		}
		ls = append(ls, roundL)
		rs = append(rs, roundR)

		x := challenge(g, h, target, roundL, roundR)
		xInv, err := g.InvertScalar(x)
		if err != nil {
			return nil, errors.WithMessage(err, "bulletproof: inverting challenge")
		}
		xSq := g.MulScalars(x, x)
		xInvSq := g.MulScalars(xInv, xInv)

		p = g.Add(g.Add(g.ScalarMult(xSq, roundL), p), g.ScalarMult(xInvSq, roundR))

		nextG := make([]curve.Point, n)
		nextH := make([]curve.Point, n)
		nextL := make([]curve.Scalar, n)
		nextR := make([]curve.Scalar, n)
		for i := 0; i < n; i++ {
			nextG[i] = g.Add(g.ScalarMult(xInv, g0[i]), g.ScalarMult(x, g1[i]))
			nextH[i] = g.Add(g.ScalarMult(x, h0[i]), g.ScalarMult(xInv, h1[i]))
			nextL[i] = g.AddScalars(g.MulScalars(x, l0[i]), g.MulScalars(xInv, l1[i]))
			nextR[i] = g.AddScalars(g.MulScalars(xInv, r0[i]), g.MulScalars(x, r1[i]))
		}
		curG, curH, curL, curR = nextG, nextH, nextL, nextR
	}

	return &Proof{
		Target: target,
		L:      ls,
		R:      rs,
		A:      curL[0],
		B:      curR[0],
	}, nil
}

// Verify reports whether proof is a valid inner-product argument for
// target = sum(vecG_i*vecL_i) + sum(vecH_i*vecR_i) over the bases
// vecG, vecH.
func Verify(g curve.Group, h curve.Hasher, vecG, vecH []curve.Point, proof *Proof) error {
	n := len(vecG)
	if n == 0 || (n&(n-1)) != 0 {
		return curve.NewError(curve.BadArguments, "bulletproof: vector length must be a positive power of two, got %d", n)
	}
	if len(vecH) != n {
		return curve.NewError(curve.BadArguments, "bulletproof: vecG and vecH must have the same length")
	}
	if proof == nil || len(proof.L) != len(proof.R) {
		return curve.NewError(curve.InvalidSignature, "bulletproof: malformed proof")
	}

	rounds := len(proof.L)
	want := 1 << uint(rounds)
	if n != want {
		return curve.NewError(curve.InvalidSignature, "bulletproof: vector length does not match proof round count")
	}

	curG := append([]curve.Point(nil), vecG...)
	curH := append([]curve.Point(nil), vecH...)
	p := proof.Target

	for i := 0; i < rounds; i++ {
		n /= 2
		g0, g1 := curG[:n], curG[n:]
		h0, h1 := curH[:n], curH[n:]
		roundL := proof.L[i]
		roundR := proof.R[i]

		x := challenge(g, h, proof.Target, roundL, roundR)
		xInv, err := g.InvertScalar(x)
		if err != nil {
			return errors.WithMessage(err, "bulletproof: inverting challenge")
		}
		xSq := g.MulScalars(x, x)
		xInvSq := g.MulScalars(xInv, xInv)

		p = g.Add(g.Add(g.ScalarMult(xSq, roundL), p), g.ScalarMult(xInvSq, roundR))

		nextG := make([]curve.Point, n)
		nextH := make([]curve.Point, n)
		for j := 0; j < n; j++ {
			nextG[j] = g.Add(g.ScalarMult(xInv, g0[j]), g.ScalarMult(x, g1[j]))
			nextH[j] = g.Add(g.ScalarMult(x, h0[j]), g.ScalarMult(xInv, h1[j]))
		}
		curG, curH = nextG, nextH
	}

	expected := g.Add(g.ScalarMult(proof.A, curG[0]), g.ScalarMult(proof.B, curH[0]))
	if !g.Equal(p, expected) {
		return curve.NewError(curve.InvalidSignature, "bulletproof: inner-product check failed")
	}
	return nil
}
