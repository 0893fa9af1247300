// Command incognitodemo generates a ring of public keys, signs a
// message under one of them, converts the signature into a ring-hiding
// proof, and verifies it — printing the encoded signature size and a
// spew dump when run with -v.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ringproofs/incognito/curve"
	"github.com/ringproofs/incognito/incognito"
	"github.com/ringproofs/incognito/schnorr"
)

func main() {
	ringSize := flag.Int("n", 16, "ring size (must be a power of two)")
	signerIndex := flag.Int("index", 0, "index of the signer within the ring")
	verbose := flag.Bool("v", false, "dump the generated signature with go-spew")
	flag.Parse()

	if err := run(*ringSize, *signerIndex, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(n, index int, verbose bool) error {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}

	params, err := incognito.NewParams(g, h, rand.Reader, n)
	if err != nil {
		return err
	}

	pks := make([]curve.Point, n)
	var signerKey curve.Scalar
	for i := 0; i < n; i++ {
		sk, err := g.RandomScalar(rand.Reader)
		if err != nil {
			return err
		}
		pks[i] = g.ScalarBaseMult(sk)
		if i == index {
			signerKey = sk
		}
	}

	message := []byte("incognitodemo message")
	sig, err := schnorr.Sign(g, h, rand.Reader, signerKey, message)
	if err != nil {
		return err
	}

	incSig, err := params.Convert(rand.Reader, pks, message, sig, index)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if err := params.Verify(pks, message, incSig); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	encoded, err := incSig.MarshalBinary(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ring size: %d, signer index: %d, encoded signature size: %d bytes\n", n, index, len(encoded))
	if verbose {
		spew.Fdump(os.Stdout, incSig)
	}
	return nil
}
