package bm

// An LFSR is a linear-feedback shift register of length Len over a
// field: every symbol from index Len on is
//
//	s_i = Taps[0] s_(i-1) + Taps[1] s_(i-2) + ... + Taps[Len-1] s_(i-Len)
//
// LFSR values are immutable.
type LFSR[E comparable] struct {
	f    Field[E]
	taps []E
}

// newLFSR returns the LFSR of length e whose taps are l[1:e+1], with
// any missing taps being zero.
func newLFSR[E comparable](f Field[E], l []E, e int) LFSR[E] {
	taps := make([]E, e)
	for i := range taps {
		if i+1 < len(l) {
			taps[i] = l[i+1]
		} else {
			taps[i] = f.Zero()
		}
	}
	return LFSR[E]{f: f, taps: taps}
}

// NewLFSR returns the LFSR with the given taps, where taps[i]
// multiplies the symbol i+1 steps back.
func NewLFSR[E comparable](f Field[E], taps []E) LFSR[E] {
	return LFSR[E]{f: f, taps: append([]E(nil), taps...)}
}

// Len returns the number of stages in the register.
func (r LFSR[E]) Len() int {
	return len(r.taps)
}

// Taps returns a copy of the feedback coefficients.
func (r LFSR[E]) Taps() []E {
	return append([]E(nil), r.taps...)
}

// Next returns the symbol generated after window, which holds the
// most recent symbols, most recent first. Symbols missing from a
// short window count as zero.
func (r LFSR[E]) Next(window []E) E {
	next := r.f.Zero()
	for i, t := range r.taps {
		if i >= len(window) {
			break
		}
		next = r.f.Add(next, r.f.Mul(t, window[i]))
	}
	return next
}

// Generate runs r forward for n steps starting from seed, which must
// hold Len symbols, oldest first. It returns seed followed by the n
// generated symbols.
func (r LFSR[E]) Generate(seed []E, n int) []E {
	if len(seed) != r.Len() {
		panic("seed length doesn't match LFSR length")
	}

	s := make([]E, len(seed), len(seed)+n)
	copy(s, seed)
	for k := 0; k < n; k++ {
		next := r.f.Zero()
		for i, t := range r.taps {
			next = r.f.Add(next, r.f.Mul(t, s[len(s)-1-i]))
		}
		s = append(s, next)
	}
	return s
}
