package curve

import "io"

// Point is an opaque group element. Concrete implementations (such as
// *secp256k1Point) are only ever produced and consumed through a Group,
// never constructed directly by callers outside this package.
type Point interface {
	// IsIdentity reports whether this point is the group identity.
	IsIdentity() bool
}

// Scalar is an opaque element of Z_n, where n is the group's order.
type Scalar interface {
	// IsZero reports whether this scalar is the additive identity.
	IsZero() bool
}

// Group is the generic elliptic-curve group interface that schnorr,
// bulletproof, and incognito are built against. It is deliberately
// small: every operation the higher-level protocols need, and nothing
// they don't.
type Group interface {
	Generator() Point
	Identity() Point

	Add(a, b Point) Point
	Negate(p Point) Point
	ScalarMult(s Scalar, p Point) Point
	ScalarBaseMult(s Scalar) Point
	Equal(a, b Point) bool

	PointBytes(p Point) []byte
	PointFromBytes(b []byte) (Point, error)
	PointSize() int

	// AddScalars, SubScalars, MulScalars, NegateScalar implement Z_n
	// arithmetic on the Scalar values this Group produces.
	AddScalars(a, b Scalar) Scalar
	SubScalars(a, b Scalar) Scalar
	MulScalars(a, b Scalar) Scalar
	NegateScalar(a Scalar) Scalar
	InvertScalar(a Scalar) (Scalar, error)
	ScalarsEqual(a, b Scalar) bool

	ZeroScalar() Scalar
	OneScalar() Scalar
	RandomScalar(rand io.Reader) (Scalar, error)
	ScalarFromBytes(b []byte) (Scalar, error)
	ScalarFromUint64(v uint64) Scalar
	ScalarBytes(s Scalar) []byte
	ScalarSize() int
}

// Hasher derives a Scalar from the length-framed concatenation of an
// arbitrary number of byte strings (a Fiat-Shamir transcript). Each
// part is preceded by its own 4-byte big-endian length so that two
// different splits of the same bytes never hash to the same digest.
type Hasher interface {
	DigestScalar(g Group, parts ...[]byte) Scalar
}
