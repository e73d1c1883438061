// Package rs implements a systematic Reed-Solomon code over GF(2^8)
// that can correct up to eccSize/2 byte errors per codeword, finding
// the error locations with the Berlekamp-Massey algorithm.
package rs

import "github.com/akalin/golfsr/gf2p8"

// GeneratorPoly returns the generator polynomial
//
//	P(x) = prod_{i=0}^{eccSize-1} (x - 2^i)
//
// which has eccSize+1 coefficients, the first of which is always 1.
// P evaluates to 0 at every 2^i for i < eccSize.
func GeneratorPoly(f *gf2p8.Field, eccSize int) []byte {
	if eccSize < 0 {
		panic("invalid ecc size")
	}

	p := []byte{1}
	for i := 0; i < eccSize; i++ {
		// Subtraction is xor, so x - 2^i = x + 2^i.
		p = f.MulPoly(p, []byte{1, f.Pow(gf2p8.Generator, uint32(i))})
	}
	return p
}
