package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akalin/golfsr/errorcode"
	"github.com/akalin/golfsr/gf2p8"
	"github.com/akalin/golfsr/render"
	"github.com/akalin/golfsr/rs"
)

// parseInt parses a C-style integer argument, such as 0x11d.
func parseInt(what, s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, errorcode.UsageError{Err: fmt.Errorf("invalid %s %q: %w", what, s, err)}
	}
	return v, nil
}

func prefixFlag(cmd *cobra.Command, prefix *string) {
	cmd.Flags().StringVar(prefix, "prefix", "", "Prefix for the C array names (default: output.prefix from the config)")
}

func newTablesCommand(a *app) *cobra.Command {
	var pow, log bool
	var prefix string
	cmd := &cobra.Command{
		Use:   "tables [p] [g]",
		Short: "Generate GF(2^8) pow/log tables",
		Long: `Generate GF(2^8) pow/log tables as C arrays. p is the irreducible
polynomial that defines the field (default: field.poly from the config), and
g is the generator element, which must be 2.`,
		Args: usage(cobra.MaximumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.cfg.Field.Poly
			if len(args) > 0 {
				v, err := parseInt("p", args[0], 16)
				if err != nil {
					return err
				}
				p = uint16(v)
			}
			if len(args) > 1 {
				g, err := parseInt("g", args[1], 8)
				if err != nil {
					return err
				}
				if byte(g) != gf2p8.Generator {
					return errorcode.UsageError{Err: fmt.Errorf("g=%#x: only %d is supported", g, gf2p8.Generator)}
				}
			}
			if !pow && !log {
				pow, log = true, true
			}
			if prefix == "" {
				prefix = a.cfg.Output.Prefix
			}

			f, err := gf2p8.NewField(p)
			if err != nil {
				return fmt.Errorf("p=%#x: %w", p, err)
			}
			powTable, logTable := f.Tables()

			w := cmd.OutOrStdout()
			if pow {
				if err := render.WritePowTable(w, prefix, powTable[:]); err != nil {
					return err
				}
			}
			if log {
				if err := render.WriteLogTable(w, prefix, logTable[:]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pow, "pow", false, "Generate the pow table. Defaults to generating both")
	cmd.Flags().BoolVar(&log, "log", false, "Generate the log table. Defaults to generating both")
	prefixFlag(cmd, &prefix)
	return cmd
}

func newRSPolyCommand(a *app) *cobra.Command {
	var poly uint16
	var full bool
	var prefix string
	cmd := &cobra.Command{
		Use:   "rspoly ecc_size",
		Short: "Generate the generator polynomial for a Reed-Solomon code",
		Long: `Generate the generator polynomial P(x) = prod_i^n-1 (x - g^i) for a
Reed-Solomon code with ecc_size bytes of ECC, as a C array. The leading 1
is left out unless --no-truncate is given.`,
		Args: usage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			eccSize, err := parseInt("ecc_size", args[0], 8)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("poly") {
				poly = a.cfg.Field.Poly
			}
			if prefix == "" {
				prefix = a.cfg.Output.Prefix
			}

			f, err := gf2p8.NewField(poly)
			if err != nil {
				return fmt.Errorf("p=%#x: %w", poly, err)
			}
			p := rs.GeneratorPoly(f, int(eccSize))
			return render.WriteGeneratorPoly(cmd.OutOrStdout(), prefix, p, full)
		},
	}
	addPolyFlag(cmd, &poly)
	cmd.Flags().BoolVarP(&full, "no-truncate", "T", false,
		"Include the leading 1 byte. This makes the resulting polynomial ecc_size+1 bytes")
	prefixFlag(cmd, &prefix)
	return cmd
}
