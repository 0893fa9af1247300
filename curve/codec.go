package curve

import (
	"encoding/binary"
)

// WriteUint32 appends the big-endian encoding of v to buf and returns
// the result, the length-prefix convention used ahead of every
// variable-length vector in the module's wire format.
func WriteUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// ReadUint32 reads a big-endian uint32 from the front of b, returning
// the value and the remaining bytes.
func ReadUint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, NewError(BadArguments, "codec: truncated length prefix")
	}
	return binary.BigEndian.Uint32(b), b[4:], nil
}

// WritePoint appends g's canonical encoding of p to buf.
func WritePoint(buf []byte, g Group, p Point) []byte {
	return append(buf, g.PointBytes(p)...)
}

// ReadPoint decodes one point of g's canonical size from the front of
// b, returning the point and the remaining bytes.
func ReadPoint(b []byte, g Group) (Point, []byte, error) {
	size := g.PointSize()
	if len(b) < size {
		return nil, nil, NewError(BadArguments, "codec: truncated point encoding")
	}
	p, err := g.PointFromBytes(b[:size])
	if err != nil {
		return nil, nil, err
	}
	return p, b[size:], nil
}

// WriteScalar appends g's canonical encoding of s to buf.
func WriteScalar(buf []byte, g Group, s Scalar) []byte {
	return append(buf, g.ScalarBytes(s)...)
}

// ReadScalar decodes one scalar of g's canonical size from the front of
// b, returning the scalar and the remaining bytes.
func ReadScalar(b []byte, g Group) (Scalar, []byte, error) {
	size := g.ScalarSize()
	if len(b) < size {
		return nil, nil, NewError(BadArguments, "codec: truncated scalar encoding")
	}
	s, err := g.ScalarFromBytes(b[:size])
	if err != nil {
		return nil, nil, err
	}
	return s, b[size:], nil
}

// WritePointVector appends a 4-byte length prefix followed by each
// point's canonical encoding, in order.
func WritePointVector(buf []byte, g Group, pts []Point) []byte {
	buf = WriteUint32(buf, uint32(len(pts)))
	for _, p := range pts {
		buf = WritePoint(buf, g, p)
	}
	return buf
}

// ReadPointVector decodes a length-prefixed point vector from the front
// of b, returning the vector and the remaining bytes.
func ReadPointVector(b []byte, g Group) ([]Point, []byte, error) {
	n, rest, err := ReadUint32(b)
	if err != nil {
		return nil, nil, err
	}
	if uint64(n) > uint64(len(rest))/uint64(g.PointSize()) {
		return nil, nil, NewError(BadArguments, "codec: point vector length %d exceeds remaining bytes", n)
	}
	pts := make([]Point, 0, n)
	for i := uint32(0); i < n; i++ {
		var p Point
		p, rest, err = ReadPoint(rest, g)
		if err != nil {
			return nil, nil, err
		}
		pts = append(pts, p)
	}
	return pts, rest, nil
}
