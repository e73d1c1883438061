package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akalin/golfsr/config"
	"github.com/akalin/golfsr/errorcode"
)

var Version = "dev"

// app holds the state shared by every subcommand once flags and the
// config file have been read.
type app struct {
	configPath string
	verbose    bool
	colorMode  string

	cfg    *config.Config
	logger *slog.Logger
	color  bool
}

// colored returns a color that is only applied when output is
// colored.
func (a *app) colored(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Defaults()
	if a.configPath != "" {
		var err error
		cfg, err = config.Load(a.configPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = a.colorMode
		if err := cfg.Validate(); err != nil {
			return errorcode.UsageError{Err: err}
		}
	}
	a.cfg = cfg

	level := cfg.SlogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(a.logger)

	switch cfg.Output.Color {
	case "always":
		a.color = true
	case "never":
		a.color = false
	default:
		a.color = isTerminal(cmd.OutOrStdout())
	}
	return nil
}

// usage wraps an argument validator so that its errors map to the
// invalid-arguments exit code.
func usage(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := args(cmd, a); err != nil {
			return errorcode.UsageError{Err: err}
		}
		return nil
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "lfsr",
		Short: "Berlekamp-Massey LFSR synthesis and GF(2^8) Reed-Solomon tools",
		Long: `lfsr finds the shortest linear-feedback shift register that generates a
sequence of bits or GF(2^8) bytes using the Berlekamp-Massey algorithm, and
prints every step of the search.

It also emits GF(2^8) pow/log tables and Reed-Solomon generator polynomials
as C arrays, and encodes and corrects Reed-Solomon codewords.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errorcode.UsageError{Err: err}
	})

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "Color output: auto, always or never")

	rootCmd.AddCommand(
		newSolveCommand(a),
		newSolve256Command(a),
		newTablesCommand(a),
		newRSPolyCommand(a),
		newRSCommand(a),
	)
	return rootCmd
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(int(errorcode.For(err)))
}
