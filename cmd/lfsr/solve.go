package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akalin/golfsr/bm"
	"github.com/akalin/golfsr/errorcode"
	"github.com/akalin/golfsr/gf2"
	"github.com/akalin/golfsr/gf2p8"
	"github.com/akalin/golfsr/render"
)

// solveFlags are shared by the solve commands.
type solveFlags struct {
	random int
	seed   int64
}

func (s *solveFlags) register(cmd *cobra.Command, what string) {
	cmd.Flags().IntVarP(&s.random, "random", "r", -1,
		fmt.Sprintf("Use a %s sequence generated by a random LFSR of this size", what))
	cmd.Flags().Int64Var(&s.seed, "seed", 0, "Seed for --random (default: random.seed from the config, or the clock)")
}

func (s *solveFlags) useRandom(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("random")
}

func (s *solveFlags) rand(a *app, cmd *cobra.Command) *rand.Rand {
	seed := a.cfg.Random.Seed
	if cmd.Flags().Changed("seed") {
		seed = s.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("random source", "seed", seed, "size", s.random)
	return rand.New(rand.NewSource(seed))
}

// parseBits accepts bits with or without spaces, most recent first, and
// returns them oldest first.
func parseBits(args []string) ([]gf2.T, error) {
	var bits []gf2.T
	for _, arg := range args {
		for _, c := range arg {
			switch {
			case c == '0', c == '1':
				bits = append(bits, gf2.T(c-'0'))
			case unicode.IsSpace(c):
			default:
				return nil, errorcode.UsageError{Err: fmt.Errorf("invalid bit %q in %q", c, arg)}
			}
		}
	}
	return reversed(bits), nil
}

// parseBytes accepts one hex byte per argument, most recent first, and
// returns them oldest first.
func parseBytes(args []string) ([]byte, error) {
	var bytes []byte
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			digits := strings.TrimPrefix(strings.ToLower(field), "0x")
			b, err := strconv.ParseUint(digits, 16, 8)
			if err != nil {
				return nil, errorcode.UsageError{Err: fmt.Errorf("invalid byte %q: %w", field, err)}
			}
			bytes = append(bytes, byte(b))
		}
	}
	return reversed(bytes), nil
}

func reversed[E any](s []E) []E {
	r := make([]E, len(s))
	for i, x := range s {
		r[len(s)-1-i] = x
	}
	return r
}

func solve[E ~uint8](a *app, cmd *cobra.Command, f bm.Field[E], format render.Format, src bm.Source[E]) error {
	l, seq, steps, err := bm.Solve(f, src)
	if err != nil {
		return err
	}
	for _, st := range steps {
		a.logger.Debug("step",
			"n", st.N,
			"d", byte(st.Discrepancy),
			"case", st.Case.String(),
			"len", st.After.Len)
	}
	a.logger.Info("solved", "symbols", len(seq), "len", l.Len())

	p := render.Printer{
		Format:    format,
		Highlight: a.colored(color.FgRed, color.Bold).SprintfFunc(),
	}
	return render.WriteSolve(cmd.OutOrStdout(), p, seq, steps)
}

func newSolveCommand(a *app) *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve [bits...]",
		Short: "Find the minimal LFSR for a sequence of bits",
		Long: `Find the minimal LFSR for a sequence of bits using the Berlekamp-Massey
algorithm. Bits are given most recent first, with or without spaces.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := gf2.Field{}
			var src bm.Source[gf2.T]
			if flags.useRandom(cmd) {
				src = bm.RandomLFSR[gf2.T]{
					Field: f,
					Size:  flags.random,
					Rand:  flags.rand(a, cmd),
					Elem: func(r *rand.Rand) gf2.T {
						return gf2.T(r.Intn(2))
					},
				}
			} else {
				bits, err := parseBits(args)
				if err != nil {
					return err
				}
				src = bm.Literal[gf2.T](bits)
			}
			return solve[gf2.T](a, cmd, f, render.GF2, src)
		},
	}
	flags.register(cmd, "bit")
	return cmd
}

func newSolve256Command(a *app) *cobra.Command {
	var flags solveFlags
	var poly uint16
	cmd := &cobra.Command{
		Use:   "solve256 [bytes...]",
		Short: "Find the minimal LFSR for a sequence of GF(2^8) bytes",
		Long: `Find the minimal LFSR for a sequence of GF(2^8) bytes using the
Berlekamp-Massey algorithm. Bytes are given in hex, most recent first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("poly") {
				poly = a.cfg.Field.Poly
			}
			f, err := gf2p8.NewField(poly)
			if err != nil {
				return fmt.Errorf("p=%#x: %w", poly, err)
			}

			var src bm.Source[byte]
			if flags.useRandom(cmd) {
				src = bm.RandomLFSR[byte]{
					Field: f,
					Size:  flags.random,
					Rand:  flags.rand(a, cmd),
					Elem: func(r *rand.Rand) byte {
						return byte(r.Intn(256))
					},
				}
			} else {
				bytes, err := parseBytes(args)
				if err != nil {
					return err
				}
				src = bm.Literal[byte](bytes)
			}
			return solve[byte](a, cmd, f, render.GF256, src)
		},
	}
	flags.register(cmd, "byte")
	addPolyFlag(cmd, &poly)
	return cmd
}

// addPolyFlag adds -p, which overrides field.poly from the config.
func addPolyFlag(cmd *cobra.Command, poly *uint16) {
	cmd.Flags().Uint16VarP(poly, "poly", "p", gf2p8.DefaultPoly,
		"The irreducible polynomial that defines the field (default: field.poly from the config)")
}
