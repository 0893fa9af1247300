package curve

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Domain parameters for secp256k1, per [SECG] section 2.4.1. The
// arithmetic built on top of them here is independent, affine-only
// math/big code (see DESIGN.md for why).
var (
	secp256k1P  = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	secp256k1N  = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	secp256k1B  = big.NewInt(7)
	secp256k1Gx = mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	secp256k1Gy = mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant: " + s)
	}
	return v
}

// secp256k1Point is an affine point on secp256k1. A nil x/y pair
// represents the identity (point at infinity).
type secp256k1Point struct {
	x, y *big.Int
}

func (p *secp256k1Point) IsIdentity() bool {
	return p.x == nil && p.y == nil
}

// secp256k1Scalar is an element of Z_n held as a reduced big.Int.
type secp256k1Scalar struct {
	v *big.Int
}

func (s *secp256k1Scalar) IsZero() bool { return s.v.Sign() == 0 }

// Secp256k1 implements Group for the secp256k1 curve y^2 = x^3 + 7 over
// the prime field of order secp256k1P, using affine big.Int arithmetic.
type Secp256k1 struct{}

// NewSecp256k1 returns the secp256k1 Group.
func NewSecp256k1() *Secp256k1 { return &Secp256k1{} }

func asPoint(p Point) *secp256k1Point {
	sp, ok := p.(*secp256k1Point)
	if !ok {
		panic("curve: Point from a different Group passed to Secp256k1")
	}
	return sp
}

func asScalar(s Scalar) *secp256k1Scalar {
	ss, ok := s.(*secp256k1Scalar)
	if !ok {
		panic("curve: Scalar from a different Group passed to Secp256k1")
	}
	return ss
}

func (c *Secp256k1) Generator() Point {
	return &secp256k1Point{x: new(big.Int).Set(secp256k1Gx), y: new(big.Int).Set(secp256k1Gy)}
}

func (c *Secp256k1) Identity() Point {
	return &secp256k1Point{}
}

// Add computes a+b on the short-Weierstrass curve y^2 = x^3 + ax + b
// (a=0 for secp256k1), using the textbook chord-and-tangent law in affine
// coordinates.
func (c *Secp256k1) Add(a, b Point) Point {
	pa, pb := asPoint(a), asPoint(b)
	p := secp256k1P

	if pa.IsIdentity() {
		return &secp256k1Point{x: pb.x, y: pb.y}
	}
	if pb.IsIdentity() {
		return &secp256k1Point{x: pa.x, y: pa.y}
	}

	if pa.x.Cmp(pb.x) == 0 {
		// Either pa == pb (doubling) or pa == -pb (sum is identity).
		ySum := new(big.Int).Add(pa.y, pb.y)
		ySum.Mod(ySum, p)
		if ySum.Sign() == 0 {
			return &secp256k1Point{}
		}
		return c.double(pa)
	}

	// lambda = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(pb.y, pa.y)
	den := new(big.Int).Sub(pb.x, pa.x)
	den.Mod(den, p)
	lambda := new(big.Int).Mul(num, modInverse(den, p))
	lambda.Mod(lambda, p)

	return c.finishAdd(pa, pb, lambda)
}

func (c *Secp256k1) double(pa *secp256k1Point) Point {
	p := secp256k1P
	if pa.IsIdentity() || pa.y.Sign() == 0 {
		return &secp256k1Point{}
	}

	// lambda = 3*x1^2 / (2*y1)   (curve parameter a = 0)
	num := new(big.Int).Mul(pa.x, pa.x)
	num.Mul(num, big.NewInt(3))
	num.Mod(num, p)

	den := new(big.Int).Lsh(pa.y, 1)
	den.Mod(den, p)

	lambda := new(big.Int).Mul(num, modInverse(den, p))
	lambda.Mod(lambda, p)

	return c.finishAdd(pa, pa, lambda)
}

// finishAdd applies x3 = lambda^2 - x1 - x2, y3 = lambda*(x1-x3) - y1
// given the already-computed slope lambda.
func (c *Secp256k1) finishAdd(pa, pb *secp256k1Point, lambda *big.Int) Point {
	p := secp256k1P

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, pa.x)
	x3.Sub(x3, pb.x)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(pa.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, pa.y)
	y3.Mod(y3, p)

	return &secp256k1Point{x: x3, y: y3}
}

func modInverse(v, p *big.Int) *big.Int {
	return new(big.Int).ModInverse(v, p)
}

func (c *Secp256k1) Negate(a Point) Point {
	pa := asPoint(a)
	if pa.IsIdentity() {
		return &secp256k1Point{}
	}
	ny := new(big.Int).Sub(secp256k1P, pa.y)
	ny.Mod(ny, secp256k1P)
	return &secp256k1Point{x: new(big.Int).Set(pa.x), y: ny}
}

func (c *Secp256k1) ScalarMult(s Scalar, pt Point) Point {
	ss := asScalar(s)
	result := Point(&secp256k1Point{})
	addend := asPoint(pt)

	k := ss.v
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = c.double(asPoint(result))
		if k.Bit(i) == 1 {
			result = c.Add(result, addend)
		}
	}
	return result
}

func (c *Secp256k1) ScalarBaseMult(s Scalar) Point {
	return c.ScalarMult(s, c.Generator())
}

func (c *Secp256k1) Equal(a, b Point) bool {
	pa, pb := asPoint(a), asPoint(b)
	if pa.IsIdentity() || pb.IsIdentity() {
		return pa.IsIdentity() == pb.IsIdentity()
	}
	return pa.x.Cmp(pb.x) == 0 && pa.y.Cmp(pb.y) == 0
}

// PointSize is the SEC1 compressed point encoding length: one tag byte
// plus a 32-byte field element.
func (c *Secp256k1) PointSize() int { return 33 }

// PointBytes returns the SEC1 compressed encoding of p: a single tag
// byte (0x00 for the identity, 0x02/0x03 for the parity of y otherwise)
// followed by the 32-byte big-endian X coordinate.
func (c *Secp256k1) PointBytes(p Point) []byte {
	pt := asPoint(p)
	out := make([]byte, 33)
	if pt.IsIdentity() {
		return out
	}
	if pt.y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	putFixed(out[1:], pt.x, 32)
	return out
}

// PointFromBytes decodes a SEC1 compressed encoding produced by
// PointBytes, recovering y via y^2 = x^3 + 7 mod p.
func (c *Secp256k1) PointFromBytes(b []byte) (Point, error) {
	if len(b) != 33 {
		return nil, NewError(BadArguments, "secp256k1 point must be 33 bytes, got %d", len(b))
	}
	tag := b[0]
	if tag == 0x00 {
		allZero := true
		for _, v := range b[1:] {
			if v != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			return nil, NewError(BadArguments, "secp256k1 identity encoding must be all-zero")
		}
		return &secp256k1Point{}, nil
	}
	if tag != 0x02 && tag != 0x03 {
		return nil, NewError(BadArguments, "secp256k1 point tag must be 0x00, 0x02, or 0x03, got 0x%02x", tag)
	}

	x := new(big.Int).SetBytes(b[1:])
	if x.Cmp(secp256k1P) >= 0 {
		return nil, NewError(BadArguments, "secp256k1 point X coordinate out of range")
	}

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, secp256k1B)
	rhs.Mod(rhs, secp256k1P)

	y := new(big.Int).ModSqrt(rhs, secp256k1P)
	if y == nil {
		return nil, NewError(BadArguments, "secp256k1 X coordinate is not on the curve")
	}
	wantOdd := tag == 0x03
	if y.Bit(0) == 1 != wantOdd {
		y.Sub(secp256k1P, y)
	}
	return &secp256k1Point{x: x, y: y}, nil
}

func putFixed(dst []byte, v *big.Int, size int) {
	b := v.Bytes()
	if len(b) > size {
		panic("curve: value overflows fixed-width field")
	}
	copy(dst[size-len(b):], b)
}

// --- Scalar arithmetic ---

func (c *Secp256k1) ZeroScalar() Scalar { return &secp256k1Scalar{v: big.NewInt(0)} }
func (c *Secp256k1) OneScalar() Scalar  { return &secp256k1Scalar{v: big.NewInt(1)} }

func (c *Secp256k1) ScalarFromUint64(v uint64) Scalar {
	return &secp256k1Scalar{v: new(big.Int).SetUint64(v)}
}

func (c *Secp256k1) AddScalars(a, b Scalar) Scalar {
	v := new(big.Int).Add(asScalar(a).v, asScalar(b).v)
	v.Mod(v, secp256k1N)
	return &secp256k1Scalar{v: v}
}

func (c *Secp256k1) SubScalars(a, b Scalar) Scalar {
	v := new(big.Int).Sub(asScalar(a).v, asScalar(b).v)
	v.Mod(v, secp256k1N)
	return &secp256k1Scalar{v: v}
}

func (c *Secp256k1) MulScalars(a, b Scalar) Scalar {
	v := new(big.Int).Mul(asScalar(a).v, asScalar(b).v)
	v.Mod(v, secp256k1N)
	return &secp256k1Scalar{v: v}
}

func (c *Secp256k1) NegateScalar(a Scalar) Scalar {
	v := new(big.Int).Neg(asScalar(a).v)
	v.Mod(v, secp256k1N)
	return &secp256k1Scalar{v: v}
}

func (c *Secp256k1) InvertScalar(a Scalar) (Scalar, error) {
	av := asScalar(a).v
	if av.Sign() == 0 {
		return nil, NewError(BadArguments, "cannot invert the zero scalar")
	}
	v := new(big.Int).ModInverse(av, secp256k1N)
	if v == nil {
		return nil, NewError(Internal, "scalar has no inverse mod the group order")
	}
	return &secp256k1Scalar{v: v}, nil
}

func (c *Secp256k1) ScalarsEqual(a, b Scalar) bool {
	return asScalar(a).v.Cmp(asScalar(b).v) == 0
}

func (c *Secp256k1) ScalarSize() int { return 32 }

func (c *Secp256k1) ScalarBytes(s Scalar) []byte {
	out := make([]byte, 32)
	putFixed(out, asScalar(s).v, 32)
	return out
}

func (c *Secp256k1) ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) == 0 {
		return nil, NewError(BadArguments, "scalar encoding must not be empty")
	}
	v := new(big.Int).SetBytes(b)
	v.Mod(v, secp256k1N)
	return &secp256k1Scalar{v: v}, nil
}

func (c *Secp256k1) RandomScalar(rand io.Reader) (Scalar, error) {
	v, err := cryptoRandFieldElement(rand, secp256k1N)
	if err != nil {
		return nil, errors.WithMessage(err, "curve: generating random scalar")
	}
	return &secp256k1Scalar{v: v}, nil
}
