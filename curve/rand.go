package curve

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// cryptoRandFieldElement draws a uniform nonzero value in [1, n) from
// rand via rejection sampling.
func cryptoRandFieldElement(rand io.Reader, n *big.Int) (*big.Int, error) {
	for {
		v, err := cryptorand.Int(rand, n)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if v.Sign() != 0 {
			return v, nil
		}
	}
}
