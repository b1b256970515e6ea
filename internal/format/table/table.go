// Package table lays out text rows as aligned columns measured in terminal
// cells.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const (
	gap      = "  "
	ellipsis = "…"
)

// Format returns the rows padded according to the widest entry in each column.
// When maxWidth is positive the first column shrinks, truncating its cells, so
// that every line fits. Short rows simply end early.
func Format(rows [][]string, alignments []Alignment, maxWidth int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	if maxWidth > 0 {
		total := (colCount - 1) * len(gap)
		for _, w := range widths {
			total += w
		}
		if over := total - maxWidth; over > 0 {
			widths[0] -= over
			if widths[0] < 1 {
				widths[0] = 1
			}
		}
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if ansi.StringWidth(cell) > widths[c] {
				cell = ansi.Truncate(cell, widths[c], ellipsis)
			}
			if c > 0 {
				b.WriteString(gap)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(row)-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
