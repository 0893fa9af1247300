package bulletproof

import (
	"github.com/pkg/errors"

	"github.com/ringproofs/incognito/curve"
)

// MarshalBinary encodes proof in the field order Target, L, R, A, B
// using g's canonical point/scalar encodings, with a 4-byte big-endian
// length prefix ahead of the L and R vectors.
func (proof *Proof) MarshalBinary(g curve.Group) ([]byte, error) {
	buf := make([]byte, 0, g.PointSize()*(2*len(proof.L)+1)+2*g.ScalarSize()+8)
	buf = curve.WritePoint(buf, g, proof.Target)
	buf = curve.WritePointVector(buf, g, proof.L)
	buf = curve.WritePointVector(buf, g, proof.R)
	buf = curve.WriteScalar(buf, g, proof.A)
	buf = curve.WriteScalar(buf, g, proof.B)
	return buf, nil
}

// UnmarshalProof decodes a Proof previously produced by MarshalBinary.
func UnmarshalProof(g curve.Group, b []byte) (*Proof, error) {
	target, rest, err := curve.ReadPoint(b, g)
	if err != nil {
		return nil, errors.WithMessage(err, "bulletproof: decoding target")
	}
	ls, rest, err := curve.ReadPointVector(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "bulletproof: decoding L vector")
	}
	rs, rest, err := curve.ReadPointVector(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "bulletproof: decoding R vector")
	}
	if len(ls) != len(rs) {
		return nil, curve.NewError(curve.BadArguments, "bulletproof: L and R vectors have mismatched length")
	}
	a, rest, err := curve.ReadScalar(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "bulletproof: decoding A")
	}
	bScalar, rest, err := curve.ReadScalar(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "bulletproof: decoding B")
	}
	if len(rest) != 0 {
		return nil, curve.NewError(curve.BadArguments, "bulletproof: trailing bytes after proof")
	}

	return &Proof{Target: target, L: ls, R: rs, A: a, B: bScalar}, nil
}
