// Package render draws views of the cleaned plant table for the
// terminal: aligned data tables, the KPI block, and the coordinate map.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"plantdash/internal/table"
)

// Table writes an aligned text table of the view's rows. columns selects
// and orders the output columns; nil means all. limit caps the rows
// printed (0 = all), with a trailing note for what was cut.
func Table(w io.Writer, v table.View, columns []string, limit int) error {
	if columns == nil {
		columns = v.Columns()
	}

	rows := v.Len()
	shown := rows

	if limit > 0 && limit < rows {
		shown = limit
	}

	// Column width = widest of header and shown cells. Display width, not
	// byte length, so CJK plant names stay aligned.
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}

	cells := make([][]string, shown)

	for r := 0; r < shown; r++ {
		cells[r] = make([]string, len(columns))

		for i, col := range columns {
			s := v.Value(r, col).String()
			cells[r][i] = s

			if sw := runewidth.StringWidth(s); sw > widths[i] {
				widths[i] = sw
			}
		}
	}

	if err := writeRow(w, columns, widths); err != nil {
		return err
	}

	rule := make([]string, len(columns))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}

	if err := writeRow(w, rule, widths); err != nil {
		return err
	}

	for r := 0; r < shown; r++ {
		if err := writeRow(w, cells[r], widths); err != nil {
			return err
		}
	}

	if shown < rows {
		if _, err := fmt.Fprintf(w, "... %d more rows\n", rows-shown); err != nil {
			return err
		}
	}

	return nil
}

// writeRow pads each cell to its column width and joins with two spaces.
func writeRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(cells))

	for i, cell := range cells {
		pad := widths[i] - runewidth.StringWidth(cell)
		if pad < 0 {
			pad = 0
		}

		parts[i] = cell + strings.Repeat(" ", pad)
	}

	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))

	return err
}

// DefaultColumns picks a readable column subset for row display: the
// identity and geography columns that exist, in a fixed order.
func DefaultColumns(v table.View, preferred []string) []string {
	var out []string

	for _, col := range preferred {
		if v.Has(col) {
			out = append(out, col)
		}
	}

	if len(out) == 0 {
		return v.Columns()
	}

	return out
}
