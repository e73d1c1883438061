// Package gf2p8 implements arithmetic in GF(2^8), using log/exp
// tables built from a caller-chosen irreducible polynomial with 2 as
// the generator, along with just enough polynomial arithmetic to
// build Reed-Solomon generator polynomials and correct errors.
package gf2p8

import (
	"errors"

	"github.com/akalin/golfsr/gf2"
)

const order = 1 << 8

// DefaultPoly is x^8 + x^4 + x^3 + x^2 + 1, the lexicographically
// smallest 9-bit irreducible polynomial for which 2 is a generator.
const DefaultPoly uint16 = 0x11d

// Generator is the element whose powers make up the exp table. Only 2
// is supported.
const Generator byte = 2

// logZero is stored in log[0], which has no discrete log.
const logZero = 0xff

var (
	// ErrDivisionByZero is the panic value of Div and Inverse
	// when dividing by zero.
	ErrDivisionByZero = gf2.ErrDivisionByZero

	// ErrUnsupportedField is returned by NewField when the given
	// polynomial isn't a degree-8 polynomial for which 2
	// generates all 255 non-zero elements.
	ErrUnsupportedField = errors.New("unsupported field polynomial")

	// ErrLogOfZero is the panic value of Log(0).
	ErrLogOfZero = errors.New("zero has no discrete log")
)

// Field is GF(2^8) as defined by a particular irreducible
// polynomial. It is immutable once built, so a single *Field can be
// shared freely, including between goroutines.
type Field struct {
	p   uint16
	pow [order]byte
	log [order]byte
}

// NewField builds the pow and log tables of the field defined by p,
// which must be a 9-bit polynomial for which 2 is primitive.
func NewField(p uint16) (*Field, error) {
	if p < 0x100 || p > 0x1ff {
		return nil, ErrUnsupportedField
	}

	f := &Field{p: p}
	var seen [order]bool
	x := gf2.Poly64(1)
	for i := 0; i < order; i++ {
		if i < order-1 {
			if x == 0 || seen[x] {
				// 2 has order < 255, so p is
				// reducible or 2 isn't primitive.
				return nil, ErrUnsupportedField
			}
			seen[x] = true
			f.log[x] = byte(i)
		}
		f.pow[i] = byte(x)
		_, x = x.Times(gf2.Poly64(Generator)).Div(gf2.Poly64(p))
	}
	f.log[0] = logZero
	return f, nil
}

// MustNewField is like NewField, but panics if p is unsupported. It is
// meant for package-level initialization with a known-good p.
func MustNewField(p uint16) *Field {
	f, err := NewField(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Poly returns the polynomial that defines f.
func (f *Field) Poly() uint16 {
	return f.p
}

// Tables returns copies of the pow and log tables, where pow[i] =
// 2^i and log[pow[i]] = i. log[0] holds 0xff, which is not a valid
// discrete log.
func (f *Field) Tables() (pow, log [order]byte) {
	return f.pow, f.log
}

// Zero returns the additive identity.
func (f *Field) Zero() byte {
	return 0
}

// One returns the multiplicative identity.
func (f *Field) One() byte {
	return 1
}

// Add returns the sum of a and b, which is just the bitwise xor of
// the two.
func (f *Field) Add(a, b byte) byte {
	return a ^ b
}

// Sub returns the difference of a and b, which is also just the
// bitwise xor of the two.
func (f *Field) Sub(a, b byte) byte {
	return a ^ b
}

// Exp returns 2^i.
func (f *Field) Exp(i int) byte {
	i %= order - 1
	if i < 0 {
		i += order - 1
	}
	return f.pow[i]
}

// Log returns the discrete log of a, base 2. It panics with
// ErrLogOfZero if a == 0.
func (f *Field) Log(a byte) int {
	if a == 0 {
		panic(ErrLogOfZero)
	}
	return int(f.log[a])
}

// Mul returns the product of a and b.
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	x := int(f.log[a]) + int(f.log[b])
	if x >= order-1 {
		x -= order - 1
	}
	return f.pow[x]
}

// Div returns the product of a and b^{-1}. It panics with
// ErrDivisionByZero if b == 0.
func (f *Field) Div(a, b byte) byte {
	if b == 0 {
		panic(ErrDivisionByZero)
	}

	if a == 0 {
		return 0
	}

	x := int(f.log[a]) + (order - 1) - int(f.log[b])
	if x >= order-1 {
		x -= order - 1
	}
	return f.pow[x]
}

// Inverse returns the multiplicative inverse of a. It panics with
// ErrDivisionByZero if a == 0.
func (f *Field) Inverse(a byte) byte {
	return f.Div(1, a)
}

// Pow returns a^e, with 0^0 = 1.
func (f *Field) Pow(a byte, e uint32) byte {
	if e == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}

	x := (uint64(f.log[a]) * uint64(e)) % (order - 1)
	return f.pow[x]
}
