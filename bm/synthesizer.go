package bm

import "fmt"

// Case says which update rule a step applied.
type Case int

const (
	// NoDiscrepancy means the current LFSR predicted the symbol,
	// so only C was shifted.
	NoDiscrepancy Case = iota
	// Adjust means the LFSR mispredicted, but its taps could be
	// corrected without growing it.
	Adjust
	// Grow means the LFSR mispredicted and had to get longer.
	Grow
)

func (c Case) String() string {
	switch c {
	case NoDiscrepancy:
		return "none"
	case Adjust:
		return "adjust"
	case Grow:
		return "grow"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// State is a snapshot of a Synthesizer between steps.
type State[E comparable] struct {
	// N is the number of symbols consumed so far.
	N int
	// Len is the length of the current LFSR.
	Len int
	// L holds the current LFSR's connection coefficients, lowest
	// degree first. L[0] is an unused placeholder and is always
	// zero; L[i] multiplies the symbol i steps back.
	L []E
	// C is the correction polynomial, lowest degree first.
	C []E
}

// Step describes what happened while consuming a single symbol.
type Step[E comparable] struct {
	// N is the index of the consumed symbol.
	N int
	// Predicted is what the LFSR in Before generated for symbol
	// N, and Expected is the symbol actually consumed.
	Predicted, Expected E
	// Discrepancy is Predicted - Expected.
	Discrepancy E
	Case        Case
	Before      State[E]
	After       State[E]
}

// A Synthesizer consumes a sequence one symbol at a time, and after
// each symbol holds the shortest LFSR that generates everything
// consumed so far. It must not be used from more than one goroutine
// at a time.
type Synthesizer[E comparable] struct {
	f       Field[E]
	symbols []E
	l, c    []E
	e       int
}

// New returns a Synthesizer that hasn't consumed anything yet, and so
// holds the trivial LFSR of length 0.
func New[E comparable](f Field[E]) *Synthesizer[E] {
	return &Synthesizer[E]{
		f: f,
		l: []E{f.Zero()},
		c: []E{f.One()},
	}
}

// N returns the number of symbols consumed so far.
func (s *Synthesizer[E]) N() int {
	return len(s.symbols)
}

// Len returns the length of the current LFSR.
func (s *Synthesizer[E]) Len() int {
	return s.e
}

// L returns a copy of the current connection coefficients.
func (s *Synthesizer[E]) L() []E {
	return append([]E(nil), s.l...)
}

// C returns a copy of the current correction polynomial.
func (s *Synthesizer[E]) C() []E {
	return append([]E(nil), s.c...)
}

// Symbols returns a copy of the symbols consumed so far, oldest
// first.
func (s *Synthesizer[E]) Symbols() []E {
	return append([]E(nil), s.symbols...)
}

// State returns a snapshot of s.
func (s *Synthesizer[E]) State() State[E] {
	return State[E]{N: s.N(), Len: s.e, L: s.L(), C: s.C()}
}

// LFSR returns the current LFSR.
func (s *Synthesizer[E]) LFSR() LFSR[E] {
	return newLFSR(s.f, s.l, s.e)
}

// predict returns what the current LFSR generates after the symbols
// consumed so far.
func (s *Synthesizer[E]) predict() E {
	next := s.f.Zero()
	n := len(s.symbols)
	for i := 1; i < len(s.l) && i <= n; i++ {
		next = s.f.Add(next, s.f.Mul(s.l[i], s.symbols[n-i]))
	}
	return next
}

// Step consumes the next symbol, oldest first, and updates the LFSR.
func (s *Synthesizer[E]) Step(symbol E) Step[E] {
	f := s.f
	n := len(s.symbols)
	before := s.State()

	next := s.predict()
	d := f.Add(next, symbol)

	var c Case
	var e int
	var l, cNext []E
	switch {
	case d == f.Zero():
		// let C'(i) = C(i-1)
		c, e, l = NoDiscrepancy, s.e, s.l
		cNext = shiftPoly(f, s.c)

	case n < 2*s.e:
		// let L'(i) = L(i) + d C(i-1), C'(i) = C(i-1)
		c, e = Adjust, s.e
		l = xorPoly(f, s.l, scalePoly(f, shiftPoly(f, s.c), d))
		cNext = shiftPoly(f, s.c)

	default:
		// let |L'| = n+1-|L|, L'(i) = L(i) + d C(i-1),
		// C'(i) = d^-1 (s_i + L(i))
		c, e = Grow, n+1-s.e
		l = xorPoly(f, s.l, scalePoly(f, shiftPoly(f, s.c), d))
		cNext = make([]E, len(s.l))
		cNext[0] = f.Div(f.One(), d)
		for i := 1; i < len(s.l); i++ {
			cNext[i] = f.Div(s.l[i], d)
		}
	}

	s.e, s.l, s.c = e, l, cNext
	s.symbols = append(s.symbols, symbol)

	return Step[E]{
		N:           n,
		Predicted:   next,
		Expected:    symbol,
		Discrepancy: d,
		Case:        c,
		Before:      before,
		After:       s.State(),
	}
}

// Synthesize returns the shortest LFSR that generates seq, which is
// given oldest symbol first. An empty seq gives the LFSR of length 0.
func Synthesize[E comparable](f Field[E], seq []E) LFSR[E] {
	s := New(f)
	for _, x := range seq {
		s.Step(x)
	}
	return s.LFSR()
}
