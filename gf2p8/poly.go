package gf2p8

// Polynomials over GF(2^8) are byte slices with the most significant
// coefficient first, so p[0] is the coefficient of x^(len(p)-1). None
// of the functions below modify their arguments.

// EvalPoly returns p(x), using Horner's method.
func (f *Field) EvalPoly(p []byte, x byte) byte {
	var y byte
	for _, c := range p {
		y = f.Mul(y, x) ^ c
	}
	return y
}

// ScalePoly returns c*p.
func (f *Field) ScalePoly(p []byte, c byte) []byte {
	r := make([]byte, len(p))
	f.MulSlice(c, p, r)
	return r
}

// AddPoly returns a+b, which is also a-b. The shorter of the two is
// zero-extended at its high-order end.
func (f *Field) AddPoly(a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	r := make([]byte, len(a))
	copy(r, a)
	off := len(a) - len(b)
	for i, c := range b {
		r[off+i] ^= c
	}
	return r
}

// MulPoly returns a*b, which has len(a)+len(b)-1 coefficients.
func (f *Field) MulPoly(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	r := make([]byte, len(a)+len(b)-1)
	for i, c := range a {
		f.MulAndAddSlice(c, b, r[i:i+len(b)])
	}
	return r
}

// DivModPoly returns the quotient and remainder of a divided by b, via
// synthetic division. The remainder always has len(b)-1
// coefficients. It panics if len(a) < len(b) or if b's leading
// coefficient is zero.
func (f *Field) DivModPoly(a, b []byte) (quo, rem []byte) {
	if len(b) == 0 || len(a) < len(b) {
		panic("dividend shorter than divisor")
	}
	lead := b[0]
	if lead == 0 {
		panic(ErrDivisionByZero)
	}

	r := make([]byte, len(a))
	copy(r, a)
	n := len(a) - len(b) + 1
	for i := 0; i < n; i++ {
		if r[i] == 0 {
			continue
		}
		r[i] = f.Div(r[i], lead)
		f.MulAndAddSlice(r[i], b[1:], r[i+1:i+len(b)])
	}
	return r[:n], r[n:]
}

// DerivPoly returns the formal derivative of p. Since 2 = 0 in
// GF(2^8), only the odd-degree terms of p survive.
func (f *Field) DerivPoly(p []byte) []byte {
	if len(p) <= 1 {
		return []byte{0}
	}
	r := make([]byte, len(p)-1)
	for i := range r {
		if (len(p)-1-i)%2 == 1 {
			r[i] = p[i]
		}
	}
	return r
}
