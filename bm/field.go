// Package bm implements the Berlekamp-Massey algorithm, which finds
// the shortest linear-feedback shift register (LFSR) that generates a
// given sequence, over any field that provides the Field operations.
package bm

// Field is the arithmetic the synthesizer needs from a field with
// characteristic 2, where addition and subtraction coincide.
// gf2.Field and *gf2p8.Field both implement it.
type Field[E comparable] interface {
	Add(a, b E) E
	Mul(a, b E) E
	// Div must panic if b is zero; the synthesizer never divides
	// by zero.
	Div(a, b E) E
	Zero() E
	One() E
}

// xorPoly returns a + b for coefficient slices stored lowest degree
// first. The shorter one is zero-extended at its tail.
func xorPoly[E comparable](f Field[E], a, b []E) []E {
	if len(a) < len(b) {
		a, b = b, a
	}
	r := make([]E, len(a))
	copy(r, a)
	for i, c := range b {
		r[i] = f.Add(r[i], c)
	}
	return r
}

// scalePoly returns c * p.
func scalePoly[E comparable](f Field[E], p []E, c E) []E {
	r := make([]E, len(p))
	for i, x := range p {
		r[i] = f.Mul(x, c)
	}
	return r
}

// shiftPoly returns x * p.
func shiftPoly[E comparable](f Field[E], p []E) []E {
	r := make([]E, len(p)+1)
	r[0] = f.Zero()
	copy(r[1:], p)
	return r
}
