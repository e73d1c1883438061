package bm

import (
	"math/rand"
	"testing"

	"github.com/akalin/golfsr/gf2"
	"github.com/stretchr/testify/require"
)

func randomBit(r *rand.Rand) gf2.T {
	return gf2.T(r.Intn(2))
}

func randomByte(r *rand.Rand) byte {
	return byte(r.Intn(256))
}

func TestLiteralSource(t *testing.T) {
	lit := Literal[gf2.T](bits(1, 0, 1))
	seq, err := lit.Symbols()
	require.NoError(t, err)
	require.Equal(t, bits(1, 0, 1), seq)

	seq[0] = 0
	again, err := lit.Symbols()
	require.NoError(t, err)
	require.Equal(t, bits(1, 0, 1), again)
}

func TestRandomLFSRSource(t *testing.T) {
	for size := 0; size < 20; size++ {
		src := RandomLFSR[byte]{
			Field: gf256,
			Size:  size,
			Rand:  rand.New(rand.NewSource(int64(size))),
			Elem:  randomByte,
		}
		seq, err := src.Symbols()
		require.NoError(t, err)
		require.Len(t, seq, 2*size)

		r := Synthesize[byte](gf256, seq)
		require.LessOrEqual(t, r.Len(), size, "size=%d", size)
		requireGenerates(t, r, seq)
	}
}

func TestRandomLFSRSourceInvalidSize(t *testing.T) {
	src := RandomLFSR[gf2.T]{
		Field: gf2.Field{},
		Size:  -1,
		Rand:  rand.New(rand.NewSource(1)),
		Elem:  randomBit,
	}
	_, err := src.Symbols()
	require.Equal(t, ErrInvalidSize, err)

	_, _, _, err = Solve[gf2.T](gf2.Field{}, src)
	require.Equal(t, ErrInvalidSize, err)
}

func TestSolve(t *testing.T) {
	src := RandomLFSR[gf2.T]{
		Field: gf2.Field{},
		Size:  8,
		Rand:  rand.New(rand.NewSource(2)),
		Elem:  randomBit,
	}
	r, seq, steps, err := Solve[gf2.T](gf2.Field{}, src)
	require.NoError(t, err)
	require.Len(t, seq, 16)
	require.Len(t, steps, 16)
	for i, step := range steps {
		require.Equal(t, i, step.N)
		require.Equal(t, seq[i], step.Expected)
	}
	require.Equal(t, r.Len(), steps[len(steps)-1].After.Len)
	requireGenerates(t, r, seq)
}

func TestLFSRNext(t *testing.T) {
	r := NewLFSR[byte](gf256, []byte{2, 3})
	// 2*5 + 3*7.
	require.Equal(t, gf256.Mul(2, 5)^gf256.Mul(3, 7), r.Next([]byte{5, 7}))
	// A short window counts missing symbols as zero.
	require.Equal(t, gf256.Mul(2, 5), r.Next([]byte{5}))
	require.Equal(t, byte(0), r.Next(nil))
}

func TestLFSRGenerateSeedLength(t *testing.T) {
	r := NewLFSR[byte](gf256, []byte{2, 3})
	require.Panics(t, func() { r.Generate([]byte{1}, 3) })
}
