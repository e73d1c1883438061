package rs

import (
	"errors"

	"github.com/akalin/golfsr/bm"
	"github.com/akalin/golfsr/gf2p8"
)

var (
	// ErrInvalidSize is returned by NewCoder for a codeword or ecc
	// size that the field can't support.
	ErrInvalidSize = errors.New("invalid codeword or ecc size")

	// ErrTooManyErrors is returned by Correct when the codeword
	// has more errors than the coder is allowed to correct.
	ErrTooManyErrors = errors.New("too many errors")

	// ErrUncorrectable is returned by Correct when the errors
	// couldn't be located.
	ErrUncorrectable = errors.New("uncorrectable errors")
)

// maxCodeSize is the number of distinct non-zero elements of
// GF(2^8), each of which labels one codeword position.
const maxCodeSize = 255

// A Coder encodes messages into codewords of a fixed size, and
// corrects errors in them. A codeword is the message followed by
// eccSize bytes of ecc, and read as a polynomial, most significant
// coefficient first, it is divisible by the generator polynomial.
type Coder struct {
	f                 *gf2p8.Field
	codeSize, eccSize int
	maxErrors         int
	generator         []byte
}

// NewCoder returns a Coder for codewords of codeSize bytes, eccSize of
// which are ecc. codeSize must be at most 255, and leave room for at
// least one message byte.
func NewCoder(f *gf2p8.Field, codeSize, eccSize int) (Coder, error) {
	if codeSize <= 0 || codeSize > maxCodeSize {
		return Coder{}, ErrInvalidSize
	}
	if eccSize <= 0 || eccSize >= codeSize {
		return Coder{}, ErrInvalidSize
	}

	return Coder{
		f:         f,
		codeSize:  codeSize,
		eccSize:   eccSize,
		maxErrors: eccSize / 2,
		generator: GeneratorPoly(f, eccSize),
	}, nil
}

// WithErrorCorrection returns a copy of c that corrects at most n
// byte errors. Each error corrected is two fewer errors that can be
// reliably detected. n == 0 means eccSize/2, the most possible, and
// n < 0 disables correction, so that Correct fails on any error.
func (c Coder) WithErrorCorrection(n int) Coder {
	switch {
	case n == 0 || n > c.eccSize/2:
		c.maxErrors = c.eccSize / 2
	case n < 0:
		c.maxErrors = 0
	default:
		c.maxErrors = n
	}
	return c
}

// CodeSize returns the size of a codeword.
func (c Coder) CodeSize() int {
	return c.codeSize
}

// EccSize returns the number of ecc bytes in a codeword.
func (c Coder) EccSize() int {
	return c.eccSize
}

// MessageSize returns the number of message bytes in a codeword.
func (c Coder) MessageSize() int {
	return c.codeSize - c.eccSize
}

// MaxErrors returns the number of byte errors Correct will fix.
func (c Coder) MaxErrors() int {
	return c.maxErrors
}

// Generator returns a copy of the generator polynomial, including its
// leading 1.
func (c Coder) Generator() []byte {
	return append([]byte(nil), c.generator...)
}

// Encode returns the codeword for msg, which must be MessageSize()
// bytes long:
//
//	C(x) = M(x) x^n + (M(x) x^n mod P(x))
func (c Coder) Encode(msg []byte) []byte {
	if len(msg) != c.MessageSize() {
		panic("message size mismatch")
	}

	code := make([]byte, c.codeSize)
	copy(code, msg)
	_, rem := c.f.DivModPoly(code, c.generator)
	copy(code[len(msg):], rem)
	return code
}

func (c Coder) checkCodeword(code []byte) {
	if len(code) != c.codeSize {
		panic("codeword size mismatch")
	}
}

// Syndromes returns S_i = C(2^i) for i < eccSize. These are all zero
// exactly when code is a valid codeword; otherwise
// S_i = sum_j Y_j X_j^i, where X_j is the location and Y_j the
// magnitude of error j.
func (c Coder) Syndromes(code []byte) []byte {
	c.checkCodeword(code)
	s := make([]byte, c.eccSize)
	for i := range s {
		s[i] = c.f.EvalPoly(code, c.f.Exp(i))
	}
	return s
}

func isZero(p []byte) bool {
	for _, x := range p {
		if x != 0 {
			return false
		}
	}
	return true
}

// Check returns whether code is a valid codeword.
func (c Coder) Check(code []byte) bool {
	return isZero(c.Syndromes(code))
}

// errorLocator returns the error-locator polynomial
//
//	Λ(x) = prod_j (1 - X_j x)
//
// most significant coefficient first, by treating the syndromes as
// the output of an LFSR whose taps are the coefficients of Λ.
func (c Coder) errorLocator(s []byte) []byte {
	taps := bm.Synthesize[byte](c.f, s).Taps()
	e := len(taps)
	l := make([]byte, e+1)
	l[e] = 1
	for k, t := range taps {
		l[e-1-k] = t
	}
	return l
}

// errorEvaluator returns Ω(x) = S(x) Λ(x) mod x^eccSize, where S(x)
// has the syndromes as coefficients, S_0 lowest.
func (c Coder) errorEvaluator(s, l []byte) []byte {
	sPoly := make([]byte, len(s))
	for i, x := range s {
		sPoly[len(s)-1-i] = x
	}
	p := c.f.MulPoly(sPoly, l)
	return p[len(p)-c.eccSize:]
}

// Correct fixes up to MaxErrors() byte errors in code, in place, and
// returns how many it fixed. If code can't be corrected, it is left
// untouched and ErrTooManyErrors or ErrUncorrectable is returned.
func (c Coder) Correct(code []byte) (int, error) {
	s := c.Syndromes(code)
	if isZero(s) {
		return 0, nil
	}

	l := c.errorLocator(s)
	n := len(l) - 1
	if n > c.maxErrors {
		return 0, ErrTooManyErrors
	}

	omega := c.errorEvaluator(s, l)
	dl := c.f.DerivPoly(l)

	fixed := append([]byte(nil), code...)
	found := 0
	// Brute force search for the error locations X_j = 2^k, where
	// k is the degree of position j, for which Λ(X_j^-1) = 0.
	for j := range fixed {
		x := c.f.Exp(c.codeSize - 1 - j)
		xInv := c.f.Inverse(x)
		if c.f.EvalPoly(l, xInv) != 0 {
			continue
		}

		//               Ω(X_j^-1)
		// let Y_j = X_j ----------
		//               Λ'(X_j^-1)
		denom := c.f.EvalPoly(dl, xInv)
		if denom == 0 {
			return 0, ErrUncorrectable
		}
		y := c.f.Mul(x, c.f.Div(c.f.EvalPoly(omega, xInv), denom))
		fixed[j] ^= y
		found++
	}

	if found != n || !c.Check(fixed) {
		return 0, ErrUncorrectable
	}

	copy(code, fixed)
	return n, nil
}
