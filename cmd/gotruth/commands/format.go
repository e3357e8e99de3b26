package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/bawdo/gotruth/analysis"
	"github.com/bawdo/gotruth/engine"
)

// cellStyles maps a --format value to its true and false cells.
var cellStyles = map[string][2]string{
	"tf": {"T", "F"},
	"01": {"1", "0"},
}

func validFormat(format string) error {
	if _, ok := cellStyles[format]; !ok {
		return fmt.Errorf("unknown format %q (want tf or 01)", format)
	}
	return nil
}

// cells renders table rows in the given format.
func cells(t *engine.Table, format string) [][]string {
	style := cellStyles[format]
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		line := make([]string, len(row))
		for j, v := range row {
			if v {
				line[j] = style[0]
			} else {
				line[j] = style[1]
			}
		}
		out[i] = line
	}
	return out
}

// formatTable draws an ASCII grid. Widths count runes so operator symbols
// in header labels line up.
func formatTable(columns []string, rows [][]string) string {
	if len(columns) == 0 {
		return rowCount(len(rows))
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	var b strings.Builder
	sep := buildSeparator(widths)
	b.WriteString(sep)
	writeRow(&b, widths, columns)
	b.WriteString(sep)
	for _, row := range rows {
		writeRow(&b, widths, row)
	}
	b.WriteString(sep)
	b.WriteString(rowCount(len(rows)))
	return b.String()
}

func writeRow(b *strings.Builder, widths []int, row []string) {
	b.WriteByte('|')
	for i, cell := range row {
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}

func buildSeparator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func rowCount(n int) string {
	if n == 1 {
		return "(1 row)\n"
	}
	return fmt.Sprintf("(%s rows)\n", humanize.Comma(int64(n)))
}

// writeSummary prints one line per statement with its class and how many
// rows satisfy it.
func writeSummary(w io.Writer, stmts []analysis.Statement) {
	for i, st := range stmts {
		_, _ = fmt.Fprintf(w, "  %d. %s: %s (%s of %s rows true)\n",
			i+1, st.Source, st.Class,
			humanize.Comma(int64(st.Satisfying)), humanize.Comma(int64(st.Rows)))
	}
}
