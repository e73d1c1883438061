package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akalin/golfsr/errorcode"
	"github.com/akalin/golfsr/gf2p8"
	"github.com/akalin/golfsr/rs"
)

// rsFlags are shared by the rs subcommands.
type rsFlags struct {
	poly      uint16
	eccSize   int
	maxErrors int
}

func (r *rsFlags) register(cmd *cobra.Command) {
	addPolyFlag(cmd, &r.poly)
	cmd.Flags().IntVarP(&r.eccSize, "ecc", "e", 4, "Number of ecc bytes per codeword")
}

func (r *rsFlags) coder(a *app, cmd *cobra.Command, codeSize int) (rs.Coder, error) {
	if !cmd.Flags().Changed("poly") {
		r.poly = a.cfg.Field.Poly
	}
	f, err := gf2p8.NewField(r.poly)
	if err != nil {
		return rs.Coder{}, fmt.Errorf("p=%#x: %w", r.poly, err)
	}
	c, err := rs.NewCoder(f, codeSize, r.eccSize)
	if err != nil {
		return rs.Coder{}, fmt.Errorf("code size %d, ecc size %d: %w", codeSize, r.eccSize, err)
	}
	return c.WithErrorCorrection(r.maxErrors), nil
}

func parseHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, errorcode.UsageError{Err: fmt.Errorf("invalid hex: %w", err)}
	}
	return data, nil
}

func newRSCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rs",
		Short: "Encode and correct GF(2^8) Reed-Solomon codewords",
	}
	cmd.AddCommand(newRSEncodeCommand(a), newRSCorrectCommand(a))
	return cmd
}

func newRSEncodeCommand(a *app) *cobra.Command {
	var flags rsFlags
	cmd := &cobra.Command{
		Use:   "encode message",
		Short: "Append ecc bytes to a hex message",
		Args:  usage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := parseHex(args[0])
			if err != nil {
				return err
			}
			c, err := flags.coder(a, cmd, len(msg)+flags.eccSize)
			if err != nil {
				return err
			}
			code := c.Encode(msg)
			a.logger.Debug("encoded", "code_size", c.CodeSize(), "ecc_size", c.EccSize())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(code))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newRSCorrectCommand(a *app) *cobra.Command {
	var flags rsFlags
	cmd := &cobra.Command{
		Use:   "correct codeword",
		Short: "Correct errors in a hex codeword",
		Long: `Correct errors in a hex codeword, whose last --ecc bytes are ecc, and
print the corrected codeword. Up to ecc/2 byte errors can be corrected.`,
		Args: usage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseHex(args[0])
			if err != nil {
				return err
			}
			c, err := flags.coder(a, cmd, len(code))
			if err != nil {
				return err
			}
			a.logger.Debug("syndromes", "s", hex.EncodeToString(c.Syndromes(code)))

			n, err := c.Correct(code)
			if err != nil {
				return err
			}
			a.logger.Info("corrected", "errors", n)

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(code)); err != nil {
				return err
			}
			if n > 0 {
				a.colored(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "corrected %d byte errors\n", n)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&flags.maxErrors, "max-errors", 0,
		"Correct at most this many byte errors; 0 means ecc/2, negative means detect only")
	return cmd
}
