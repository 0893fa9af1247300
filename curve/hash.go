package curve

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/decred/dcrd/crypto/blake256"
)

// digestParts writes each part to h preceded by its own 4-byte
// big-endian length, so H(a||b) can never collide with H(a'||b') for a
// different split of the same concatenated bytes.
func digestParts(h hash.Hash, parts ...[]byte) []byte {
	var lenBuf [4]byte
	for _, part := range parts {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(part)))
		h.Write(lenBuf[:])
		h.Write(part)
	}
	return h.Sum(nil)
}

// Sha256Hasher implements Hasher using crypto/sha256.
type Sha256Hasher struct{}

func (Sha256Hasher) DigestScalar(g Group, parts ...[]byte) Scalar {
	digest := digestParts(sha256.New(), parts...)
	s, err := g.ScalarFromBytes(digest)
	if err != nil {
		// ScalarFromBytes on a well-formed non-empty digest cannot fail.
		panic(err)
	}
	return s
}

// Blake256Hasher implements Hasher using blake256, an alternate digest
// to Sha256Hasher for transcripts that want a faster, non-SHA hash.
type Blake256Hasher struct{}

func (Blake256Hasher) DigestScalar(g Group, parts ...[]byte) Scalar {
	digest := digestParts(blake256.New(), parts...)
	s, err := g.ScalarFromBytes(digest)
	if err != nil {
		panic(err)
	}
	return s
}
