package render

import (
	"fmt"
	"io"
	"strings"
)

const perRow = 8

func writeRows(b *strings.Builder, xs []byte) {
	for i := 0; i < len(xs); i += perRow {
		b.WriteString("    ")
		for j := i; j < len(xs) && j < i+perRow; j++ {
			if j != i {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "0x%02x,", xs[j])
		}
		b.WriteByte('\n')
	}
}

// WritePowTable writes pow as a C array literal named <prefix>_GF_POW.
func WritePowTable(w io.Writer, prefix string, pow []byte) error {
	name := prefix + "_GF_POW"
	return writeTable(w, fmt.Sprintf("power table, %s[x] = g^x", name), name, pow)
}

// WriteLogTable writes log as a C array literal named <prefix>_GF_LOG.
func WriteLogTable(w io.Writer, prefix string, log []byte) error {
	name := prefix + "_GF_LOG"
	return writeTable(w, fmt.Sprintf("log table, %s[x] = log_g x", name), name, log)
}

func writeTable(w io.Writer, comment, name string, table []byte) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n", comment)
	fmt.Fprintf(&b, "static const uint8_t %s[%d] = {\n", name, len(table))
	writeRows(&b, table)
	b.WriteString("};\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteGeneratorPoly writes the Reed-Solomon generator polynomial p,
// highest degree first, as a C array literal named <prefix>_P. Unless
// full is set, the leading coefficient, which is always 1, is left out.
func WriteGeneratorPoly(w io.Writer, prefix string, p []byte, full bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// generator polynomial for ecc_size=%d\n", len(p)-1)
	b.WriteString("//\n")
	b.WriteString("// P(x) = prod_i^n-1 (x - g^i)\n")
	b.WriteString("//\n")
	size := len(p) - 1
	if full {
		size = len(p)
	}
	fmt.Fprintf(&b, "static const uint8_t %s_P[%d] = {\n", prefix, size)
	if full {
		fmt.Fprintf(&b, "    0x%02x,\n", p[0])
	}
	writeRows(&b, p[1:])
	b.WriteString("};\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}
