package render

import (
	"fmt"
	"strings"
)

const cell = "     "

// Diagram draws an LFSR as a row of register cells, holding state
// (most recent symbol first), with a feedback wire that sums the cells
// picked out by the non-zero taps and feeds the result back in on the
// left. taps[i] multiplies cell i. Cells that state doesn't cover are
// drawn as zero.
//
// The last three lines of the drawing are the register row, its
// bottom edge and a blank line, for annotations.
func (f Format) Diagram(taps, state []byte) []string {
	wire := 0
	anyTap := false
	for i, t := range taps {
		if t != 0 {
			wire = i
			anyTap = true
		}
	}

	// pick returns a if there's any feedback at all, and b
	// otherwise.
	pick := func(a, b string) string {
		if anyTap {
			return a
		}
		return b
	}
	// ifCells returns s if there are any cells at all.
	ifCells := func(s string) string {
		if len(taps) > 0 {
			return s
		}
		return ""
	}

	var lines []string
	var b strings.Builder

	b.WriteString(pick(".----", cell))
	for i, t := range taps {
		switch {
		case t != 0 && i == wire:
			b.WriteString("-.   ")
		case i >= wire:
			b.WriteString(cell)
		case t != 0:
			b.WriteString(" + <-")
		default:
			b.WriteString("-----")
		}
	}
	lines = append(lines, b.String())

	b.Reset()
	b.WriteString(pick("|    ", cell))
	for i, t := range taps {
		switch {
		case t != 0 && i == wire:
			b.WriteString(" |   ")
		case t != 0:
			b.WriteString(" ^   ")
		default:
			b.WriteString(cell)
		}
	}
	lines = append(lines, b.String())

	if f.Scaled {
		b.Reset()
		b.WriteString(pick("|    ", cell))
		for _, t := range taps {
			if t != 0 {
				fmt.Fprintf(&b, "*%s  ", f.Symbol(t))
			} else {
				b.WriteString(cell)
			}
		}
		lines = append(lines, b.String())

		b.Reset()
		b.WriteString(pick("|    ", cell))
		for _, t := range taps {
			if t != 0 {
				b.WriteString(" ^   ")
			} else {
				b.WriteString(cell)
			}
		}
		lines = append(lines, b.String())
	}

	b.Reset()
	b.WriteString(pick("|   ", "    "))
	b.WriteString(ifCells("."))
	for _, t := range taps {
		if t != 0 {
			b.WriteString("-|--.")
		} else {
			b.WriteString("----.")
		}
	}
	lines = append(lines, b.String())

	b.Reset()
	b.WriteString(pick("'-> ", "0-> "))
	b.WriteString(ifCells("|"))
	for i := range taps {
		var x byte
		if i < len(state) {
			x = state[i]
		}
		fmt.Fprintf(&b, " %-3s|", f.Symbol(x))
	}
	b.WriteString(ifCells("-> "))
	lines = append(lines, b.String())

	lines = append(lines,
		"    "+ifCells("'")+strings.Repeat("----'", len(taps))+ifCells("   "),
		"    "+ifCells(" ")+strings.Repeat(cell, len(taps))+ifCells("   "))
	return lines
}

// Label prefixes the register row of a diagram with label, indents
// every other line to match, and appends notes to the register row and
// the lines after it.
func Label(label string, diagram []string, notes ...string) []string {
	row := len(diagram) - 3
	pad := strings.Repeat(" ", len(label))
	r := make([]string, len(diagram))
	for i, line := range diagram {
		prefix := pad
		if i == row {
			prefix = label
		}
		r[i] = prefix + line
		if j := i - row; j >= 0 && j < len(notes) {
			r[i] += notes[j]
		}
	}
	return r
}
