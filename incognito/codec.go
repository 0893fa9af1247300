package incognito

import (
	"github.com/pkg/errors"

	"github.com/ringproofs/incognito/curve"
)

// MarshalBinary encodes p's CRS in the field order G, H, VecG, VecH,
// with a leading 4-byte MaxN so a decoder need not be told the ring
// capacity out of band.
func (p *Params) MarshalBinary() ([]byte, error) {
	g := p.Group
	buf := make([]byte, 0, g.PointSize()*(2*len(p.VecG)+2)+4)
	buf = curve.WriteUint32(buf, uint32(p.MaxN))
	buf = curve.WritePoint(buf, g, p.G)
	buf = curve.WritePoint(buf, g, p.H)
	buf = curve.WritePointVector(buf, g, p.VecG)
	buf = curve.WritePointVector(buf, g, p.VecH)
	return buf, nil
}

// UnmarshalParams decodes a Params CRS previously produced by
// MarshalBinary, under the given Group and Hasher.
func UnmarshalParams(g curve.Group, h curve.Hasher, b []byte) (*Params, error) {
	maxN, rest, err := curve.ReadUint32(b)
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: decoding MaxN")
	}
	base, rest, err := curve.ReadPoint(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: decoding G")
	}
	blind, rest, err := curve.ReadPoint(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: decoding H")
	}
	vecG, rest, err := curve.ReadPointVector(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: decoding VecG")
	}
	vecH, rest, err := curve.ReadPointVector(rest, g)
	if err != nil {
		return nil, errors.WithMessage(err, "incognito: decoding VecH")
	}
	if len(rest) != 0 {
		return nil, curve.NewError(curve.BadArguments, "incognito: trailing bytes after params")
	}
	if len(vecG) != int(maxN) || len(vecH) != int(maxN) {
		return nil, curve.NewError(curve.BadArguments, "incognito: VecG/VecH length does not match MaxN")
	}

	return &Params{
		Group:  g,
		Hasher: h,
		G:      base,
		H:      blind,
		VecG:   vecG,
		VecH:   vecH,
		MaxN:   int(maxN),
	}, nil
}
