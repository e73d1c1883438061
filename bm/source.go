package bm

import (
	"errors"
	"math/rand"
)

// ErrInvalidSize is returned by RandomLFSR.Symbols for a negative
// size.
var ErrInvalidSize = errors.New("invalid LFSR size")

// A Source supplies the sequence to synthesize an LFSR for, oldest
// symbol first.
type Source[E comparable] interface {
	Symbols() ([]E, error)
}

// Literal is a Source for a fixed sequence, oldest symbol first.
type Literal[E comparable] []E

// Symbols returns a copy of l.
func (l Literal[E]) Symbols() ([]E, error) {
	return append([]E(nil), l...), nil
}

// RandomLFSR is a Source that picks an LFSR of the given size with
// random taps, seeds it with random symbols, and runs it for another
// Size steps, for 2*Size symbols in all.
type RandomLFSR[E comparable] struct {
	Field Field[E]
	Size  int
	Rand  *rand.Rand
	// Elem returns a uniformly random field element.
	Elem func(*rand.Rand) E
}

// Symbols generates a fresh random sequence on every call.
func (s RandomLFSR[E]) Symbols() ([]E, error) {
	if s.Size < 0 {
		return nil, ErrInvalidSize
	}

	taps := make([]E, s.Size)
	for i := range taps {
		taps[i] = s.Elem(s.Rand)
	}
	seed := make([]E, s.Size)
	for i := range seed {
		seed[i] = s.Elem(s.Rand)
	}
	return NewLFSR(s.Field, taps).Generate(seed, s.Size), nil
}

// Solve runs a fresh Synthesizer over every symbol of src. It returns
// the final LFSR, the consumed sequence and a record of every step.
func Solve[E comparable](f Field[E], src Source[E]) (LFSR[E], []E, []Step[E], error) {
	seq, err := src.Symbols()
	if err != nil {
		return LFSR[E]{}, nil, nil, err
	}

	s := New(f)
	steps := make([]Step[E], 0, len(seq))
	for _, x := range seq {
		steps = append(steps, s.Step(x))
	}
	return s.LFSR(), seq, steps, nil
}
