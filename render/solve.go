package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/akalin/golfsr/bm"
)

// Printer writes out a Berlekamp-Massey run step by step.
type Printer struct {
	Format
	// Highlight, if non-nil, marks up non-zero discrepancies.
	Highlight func(format string, a ...interface{}) string
}

func (p Printer) highlight(s string) string {
	if p.Highlight == nil {
		return s
	}
	return p.Highlight("%s", s)
}

// WriteSolve writes the run of a synthesizer over seq, given oldest
// symbol first, that produced steps. Sequences are written most recent
// symbol first, in the order they sit in the drawn register.
func WriteSolve[E ~uint8](w io.Writer, p Printer, seq []E, steps []bm.Step[E]) error {
	var b strings.Builder
	line := func(format string, a ...interface{}) {
		fmt.Fprintf(&b, format, a...)
		b.WriteByte('\n')
	}
	lines := func(ls []string) {
		for _, l := range ls {
			line("%s", l)
		}
	}

	s := Reversed(Bytes(seq))
	// consumed returns the first n symbols of seq, most recent
	// first.
	consumed := func(n int) []byte {
		return s[len(s)-n:]
	}
	diagram := func(l []byte) []string {
		taps := l[1:]
		state := s
		if len(taps) < len(s) {
			state = consumed(len(taps))
		}
		return p.Diagram(taps, state)
	}
	d := ""
	if p.Scaled {
		d = "d "
	}

	line("Solving: %s", p.Sequence(s))
	line("")
	line("|L0| = 0")
	line("L0(i) = %s", p.Recurrence([]byte{0}))
	line("C0(i) = %s", p.Recurrence([]byte{1}))
	line("")

	last := []byte{0}
	for _, st := range steps {
		n := st.N
		before, after := st.Before, st.After
		label := fmt.Sprintf("L%d = ", n)
		output := append([]byte{byte(st.Predicted)}, consumed(n)...)
		dNote := fmt.Sprintf("      d = %s", p.Symbol(byte(st.Discrepancy)))
		if st.Discrepancy != 0 {
			dNote = p.highlight(dNote)
		}
		lines(Label(label, diagram(Bytes(before.L)),
			"Output:   "+p.Sequence(output),
			"Expected: "+p.Sequence(consumed(n+1)),
			dNote))
		line("")

		l, c := p.Recurrence(Bytes(after.L)), p.Recurrence(Bytes(after.C))
		switch st.Case {
		case bm.NoDiscrepancy:
			line("|L%d| = |L%d| = %d", n+1, n, after.Len)
			line("L%d(i) = L%d(i) = %s", n+1, n, l)
			line("C%d(i) = C%d(i-1) = %s", n+1, n, c)
		case bm.Adjust:
			line("|L%d| = |L%d| = %d", n+1, n, after.Len)
			line("L%d(i) = L%d(i) + %sC%d(i-1) = %s", n+1, n, d, n, l)
			line("C%d(i) = C%d(i-1) = %s", n+1, n, c)
		case bm.Grow:
			line("|L%d| = %d+1-|L%d| = %d", n+1, n, n, after.Len)
			line("L%d(i) = L%d(i) + %sC%d(i-1) = %s", n+1, n, d, n, l)
			if p.Scaled {
				line("C%d(i) = d^-1 L%d(i) = %s", n+1, n, c)
			} else {
				line("C%d(i) = L%d(i) = %s", n+1, n, c)
			}
		}
		line("")
		last = Bytes(after.L)
	}

	final := Label(fmt.Sprintf("L%d = ", len(s)), diagram(last),
		"Output:   "+p.Sequence(s),
		"Expected: "+p.Sequence(s))
	lines(final[:len(final)-1])
	line("")

	_, err := io.WriteString(w, b.String())
	return err
}
