package gf2

import "errors"

// ErrDivisionByZero is the panic value for division by the zero
// element, in GF(2) and in any field built on top of it.
var ErrDivisionByZero = errors.New("division by zero")

// T is an element of GF(2), i.e. a single bit. Only the values 0 and
// 1 are valid.
type T uint8

// Field implements GF(2) arithmetic on T: addition is xor and
// multiplication is and. The zero value is ready to use.
type Field struct{}

// Add returns a + b, which is a xor b.
func (Field) Add(a, b T) T {
	return a ^ b
}

// Mul returns a * b, which is a and b.
func (Field) Mul(a, b T) T {
	return a & b
}

// Div returns a / b. The only valid divisor is 1, so this is the
// identity on a. It panics with ErrDivisionByZero if b == 0.
func (Field) Div(a, b T) T {
	if b == 0 {
		panic(ErrDivisionByZero)
	}
	return a
}

// Zero returns the additive identity.
func (Field) Zero() T {
	return 0
}

// One returns the multiplicative identity.
func (Field) One() T {
	return 1
}
