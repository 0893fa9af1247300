package incognito

import (
	"github.com/ringproofs/incognito/bulletproof"
	"github.com/ringproofs/incognito/curve"
)

// Signature is the ring-hiding, zero-knowledge-verifiable signature
// produced by Params.Convert from an underlying single-signer Schnorr
// signature.
type Signature struct {
	R     curve.Point // the original Schnorr signature's R
	CPk   curve.Point // Pedersen commitment to the signer's public key
	RZ    curve.Point // re-randomized Schnorr-knowledge commitment
	SZ    curve.Scalar
	SBeta curve.Scalar

	A   curve.Point
	S   curve.Point
	SPk curve.Point

	T1 curve.Point
	T2 curve.Point

	Taux curve.Scalar
	Mu   curve.Scalar
	Nu   curve.Scalar
	Tx   curve.Scalar

	BulletProof *bulletproof.Proof
}

// MarshalBinary encodes sig in the exact field order
// R, CPk, RZ, SZ, SBeta, A, S, SPk, T1, T2, Taux, Mu, Nu, Tx, BulletProof.
func (sig *Signature) MarshalBinary(g curve.Group) ([]byte, error) {
	buf := make([]byte, 0, 512)
	buf = curve.WritePoint(buf, g, sig.R)
	buf = curve.WritePoint(buf, g, sig.CPk)
	buf = curve.WritePoint(buf, g, sig.RZ)
	buf = curve.WriteScalar(buf, g, sig.SZ)
	buf = curve.WriteScalar(buf, g, sig.SBeta)
	buf = curve.WritePoint(buf, g, sig.A)
	buf = curve.WritePoint(buf, g, sig.S)
	buf = curve.WritePoint(buf, g, sig.SPk)
	buf = curve.WritePoint(buf, g, sig.T1)
	buf = curve.WritePoint(buf, g, sig.T2)
	buf = curve.WriteScalar(buf, g, sig.Taux)
	buf = curve.WriteScalar(buf, g, sig.Mu)
	buf = curve.WriteScalar(buf, g, sig.Nu)
	buf = curve.WriteScalar(buf, g, sig.Tx)

	bpBytes, err := sig.BulletProof.MarshalBinary(g)
	if err != nil {
		return nil, err
	}
	buf = curve.WriteUint32(buf, uint32(len(bpBytes)))
	buf = append(buf, bpBytes...)

	return buf, nil
}

// UnmarshalSignature decodes a Signature previously produced by
// MarshalBinary.
func UnmarshalSignature(g curve.Group, b []byte) (*Signature, error) {
	var sig Signature
	var err error
	rest := b

	read := func(dst *curve.Point) bool {
		if err != nil {
			return false
		}
		*dst, rest, err = curve.ReadPoint(rest, g)
		return err == nil
	}
	readScalar := func(dst *curve.Scalar) bool {
		if err != nil {
			return false
		}
		*dst, rest, err = curve.ReadScalar(rest, g)
		return err == nil
	}

	read(&sig.R)
	read(&sig.CPk)
	read(&sig.RZ)
	readScalar(&sig.SZ)
	readScalar(&sig.SBeta)
	read(&sig.A)
	read(&sig.S)
	read(&sig.SPk)
	read(&sig.T1)
	read(&sig.T2)
	readScalar(&sig.Taux)
	readScalar(&sig.Mu)
	readScalar(&sig.Nu)
	readScalar(&sig.Tx)
	if err != nil {
		return nil, err
	}

	bpLen, rest2, err2 := curve.ReadUint32(rest)
	if err2 != nil {
		return nil, err2
	}
	if uint32(len(rest2)) < bpLen {
		return nil, curve.NewError(curve.BadArguments, "incognito: truncated bulletproof payload")
	}
	bp, err3 := bulletproof.UnmarshalProof(g, rest2[:bpLen])
	if err3 != nil {
		return nil, err3
	}
	if len(rest2[bpLen:]) != 0 {
		return nil, curve.NewError(curve.BadArguments, "incognito: trailing bytes after signature")
	}
	sig.BulletProof = bp

	return &sig, nil
}
